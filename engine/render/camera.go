package render

import (
	"math"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

// Camera is the viewport into the combat plane. It trails its target
// with a soft deadzone and leads along the target's nose so the pilot
// sees more of what they are flying into.
type Camera struct {
	Pos     vec.V2 // viewport center (world coords)
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	ScreenW int // viewport width in pixels
	ScreenH int // viewport height in pixels

	Speed    float64 // follow ease per tick
	Offset   float64 // lead distance along the target's forward
	Deadzone float64 // distance where the chase response saturates

	// Shake is an additive view offset, written by the feedback layer
	// and consumed here every frame.
	Shake vec.V2
}

// NewCamera creates a camera with the tuning from settings
func NewCamera(screenW, screenH int, s *core.Settings) *Camera {
	return &Camera{
		Zoom:     1.0,
		MinZoom:  0.25,
		MaxZoom:  3.0,
		ScreenW:  screenW,
		ScreenH:  screenH,
		Speed:    s.CameraSpeed,
		Offset:   s.CameraOffset,
		Deadzone: s.CameraDeadzone,
	}
}

// Follow eases the viewport toward a point ahead of the target. The
// response is a sigmoid over distance: near-still close in, full chase
// once the target approaches the deadzone edge.
func (c *Camera) Follow(target, forward vec.V2) {
	want := target.Add(forward.Scale(c.Offset))
	delta := want.Sub(c.Pos)
	d := delta.Len()
	if d < 1e-6 {
		return
	}
	x := d / c.Deadzone
	ease := 1 / (1 + math.Exp(-8*(x-0.5)))
	step := delta.Scale(ease * c.Speed)
	if !step.IsFinite() {
		return
	}
	c.Pos = c.Pos.Add(step)
}

// CenterOn snaps the viewport without easing
func (c *Camera) CenterOn(p vec.V2) {
	c.Pos = p
}

// Pan moves the viewport by a world-space delta
func (c *Camera) Pan(dx, dy float64) {
	c.Pos.X += dx
	c.Pos.Y += dy
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms toward a screen point
func (c *Camera) ZoomAt(delta float64, screenX, screenY float64) {
	// Convert screen point to world before zoom
	before := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	// Convert same screen point to world after zoom
	after := c.ScreenToWorld(screenX, screenY)
	// Adjust camera to keep the point stationary
	c.Pos = c.Pos.Add(before.Sub(after))
}

// WorldToScreen converts a world position to screen pixels. World Y
// points up; screen Y points down.
func (c *Camera) WorldToScreen(p vec.V2) (float64, float64) {
	view := c.Pos.Add(c.Shake)
	sx := (p.X-view.X)*c.Zoom + float64(c.ScreenW)/2
	sy := -(p.Y-view.Y)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts screen pixels to a world position
func (c *Camera) ScreenToWorld(sx, sy float64) vec.V2 {
	view := c.Pos.Add(c.Shake)
	wx := (sx-float64(c.ScreenW)/2)/c.Zoom + view.X
	wy := -(sy-float64(c.ScreenH)/2)/c.Zoom + view.Y
	return vec.V(wx, wy)
}

// OnScreen reports whether a world point lands inside the viewport,
// with a margin in screen pixels for sprite overhang
func (c *Camera) OnScreen(p vec.V2, margin float64) bool {
	sx, sy := c.WorldToScreen(p)
	return sx >= -margin && sx <= float64(c.ScreenW)+margin &&
		sy >= -margin && sy <= float64(c.ScreenH)+margin
}
