package core

import (
	"math"

	"github.com/relayzero/drift-engine/engine/vec"
)

// ---- Transform & Motion ----

// Transform represents a world-space pose. World Y points up; the
// renderer flips the axis when mapping to screen.
type Transform struct {
	Pos   vec.V2
	Rot   float64 // planar angle in radians, counter-clockwise
	Scale float64
}

func (t *Transform) Type() ComponentType { return CompTransform }

// Forward returns the unit vector the entity is facing (up axis at Rot=0)
func (t *Transform) Forward() vec.V2 {
	return vec.FromAngle(t.Rot + math.Pi/2)
}

// Right returns the unit vector perpendicular to Forward
func (t *Transform) Right() vec.V2 {
	return vec.FromAngle(t.Rot)
}

// DistanceTo returns euclidean distance to another transform
func (t *Transform) DistanceTo(other *Transform) float64 {
	return t.Pos.Dist(other.Pos)
}

// Velocity is applied additively to Transform.Pos each tick,
// in pixels per tick at the fixed step
type Velocity struct {
	V vec.V2
}

func (v *Velocity) Type() ComponentType { return CompVelocity }

// ActivationTime damps a projectile while it counts down. While present,
// velocity runs at 35% and wobble is suppressed; the component is removed
// once Remaining reaches zero.
type ActivationTime struct {
	Remaining float64 // seconds
}

func (a *ActivationTime) Type() ComponentType { return CompActivation }

// Fadeout decays opacity each tick. At zero alpha the entity is destroyed
// and replaced by an explosion visual.
type Fadeout struct {
	Rate  float64 // alpha removed per tick
	Alpha float64
}

func (f *Fadeout) Type() ComponentType { return CompFadeout }

func NewFadeout(rate float64) *Fadeout {
	return &Fadeout{Rate: rate, Alpha: 1}
}

// ---- Health & Sides ----

// Health represents hit points
type Health struct {
	Current int
	Max     int
}

func (h *Health) Type() ComponentType { return CompHealth }

func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

// SideID separates combatants; same-side entities never damage each other
type SideID uint8

const (
	SidePlayer SideID = iota
	SideEnemy
)

// Side tags an entity with its combatant side
type Side struct {
	S SideID
}

func (s *Side) Type() ComponentType { return CompSide }

func (s SideID) Opposes(o SideID) bool { return s != o }

// FireTarget marks whether the player's scan cone currently covers a ship.
// Recomputed every tick, never persisted.
type FireTarget struct {
	InCone bool
}

func (f *FireTarget) Type() ComponentType { return CompFireTarget }

// ---- Weapons ----

// BulletPod is point-defense mount state. Heat sign encodes the phase:
// heat >= 0 accrues while ready, a burst resets it to a negative cooldown,
// and no firing happens until it climbs back to zero.
type BulletPod struct {
	Heat  float64
	Range float64
}

func (b *BulletPod) Type() ComponentType { return CompBulletPod }

func NewBulletPod(heat, rng float64) *BulletPod {
	return &BulletPod{Heat: heat, Range: rng}
}

// MissileTarget is a weak reference from a missile to the entity it homes
// toward. The target may despawn independently; holders must check liveness.
type MissileTarget struct {
	Target EntityID
}

func (m *MissileTarget) Type() ComponentType { return CompMissileTarget }

// SpatialElement registers an entity in the spatial index during rebuilds
type SpatialElement struct {
	Radius float64
}

func (s *SpatialElement) Type() ComponentType { return CompSpatial }

// ---- Ships ----

// Ship tags a hull entity with its blueprint kind
type Ship struct {
	Kind string
}

func (s *Ship) Type() ComponentType { return CompShip }

// ShipControl holds eased control state for a piloted ship
type ShipControl struct {
	Thrust float64
	Strafe float64
}

func (s *ShipControl) Type() ComponentType { return CompShipControl }

// ShipStats carries blueprint-derived handling numbers
type ShipStats struct {
	TurnSpeed float64
	MoveSpeed float64
}

func (s *ShipStats) Type() ComponentType { return CompShipStats }

// Player tags the player-controlled ship
type Player struct{}

func (p *Player) Type() ComponentType { return CompPlayer }

// ---- Projectiles ----

// Missile tags a homing torpedo
type Missile struct{}

func (m *Missile) Type() ComponentType { return CompMissile }

// Rail tags a railgun round
type Rail struct{}

func (r *Rail) Type() ComponentType { return CompRail }

// Slug tags a point-defense round
type Slug struct{}

func (s *Slug) Type() ComponentType { return CompSlug }

// NoiseFlight adds lateral wobble to a projectile's flight path
type NoiseFlight struct{}

func (n *NoiseFlight) Type() ComponentType { return CompNoiseFlight }

// GameObject marks entities owned by the loaded level; a level reload
// sweeps exactly these
type GameObject struct{}

func (g *GameObject) Type() ComponentType { return CompGameObject }

// ---- Effects ----

// VisualKind selects a spawned effect's appearance
type VisualKind uint8

const (
	VisualSmoke VisualKind = iota
	VisualExplosion
	VisualDebris
)

// Effect tags a short-lived visual entity
type Effect struct {
	Kind VisualKind
	Age  float64
}

func (e *Effect) Type() ComponentType { return CompEffect }
