package vec

import "math"

// V2 is a 2D vector
type V2 struct {
	X, Y float64
}

func V(x, y float64) V2 { return V2{x, y} }

func (v V2) Add(o V2) V2      { return V2{v.X + o.X, v.Y + o.Y} }
func (v V2) Sub(o V2) V2      { return V2{v.X - o.X, v.Y - o.Y} }
func (v V2) Scale(s float64) V2 { return V2{v.X * s, v.Y * s} }
func (v V2) Dot(o V2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product
func (v V2) Cross(o V2) float64 { return v.X*o.Y - v.Y*o.X }

func (v V2) Len() float64   { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
func (v V2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

func (v V2) Normalize() V2 {
	l := v.Len()
	if l < 1e-10 {
		return V2{}
	}
	return V2{v.X / l, v.Y / l}
}

func (v V2) Lerp(o V2, t float64) V2 {
	return V2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// Perp returns v rotated 90 degrees counter-clockwise
func (v V2) Perp() V2 { return V2{-v.Y, v.X} }

// Rotate returns v rotated by angle radians
func (v V2) Rotate(angle float64) V2 {
	c, s := math.Cos(angle), math.Sin(angle)
	return V2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Angle returns the planar angle of v in radians
func (v V2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleTo returns the signed angle from v to o in (-pi, pi]
func (v V2) AngleTo(o V2) float64 {
	return math.Atan2(v.Cross(o), v.Dot(o))
}

func (v V2) Dist(o V2) float64 { return o.Sub(v).Len() }

// IsFinite reports whether both components are finite numbers
func (v V2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// FromAngle returns the unit vector at angle radians
func FromAngle(angle float64) V2 {
	return V2{math.Cos(angle), math.Sin(angle)}
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Noise2 is a cheap deterministic 2D value noise in roughly [-1, 1].
// Smooth enough for flight wobble; not gradient noise.
func Noise2(p V2) float64 {
	return (math.Sin(p.X*2.7+p.Y*1.3) +
		math.Sin(p.X*1.1-p.Y*3.2) +
		math.Sin(p.X*4.5+p.Y*0.7)) / 3.0
}
