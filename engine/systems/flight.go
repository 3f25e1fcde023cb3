package systems

import (
	"math"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

const (
	// Velocity factor while a projectile is still in its activation window
	activationFactor = 0.35
	// Missile turn rate limit, radians per second (270 deg/s)
	guidanceTurnRate = 270 * math.Pi / 180
	// Forward/target alignment threshold; float32 epsilon, matching the
	// precision the balance was tuned at
	alignedEpsilon = 1.19e-7
)

// FlightSystem advances every moving entity: full velocity once active,
// damped velocity during the activation window, plus noise wobble for
// flagged projectiles.
type FlightSystem struct{}

func (s *FlightSystem) Priority() int { return 40 }

func (s *FlightSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompVelocity, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		vel := w.Get(id, core.CompVelocity).(*core.Velocity)

		factor := 1.0
		if a, ok := w.Get(id, core.CompActivation).(*core.ActivationTime); ok {
			factor = activationFactor
			a.Remaining -= dt
			if a.Remaining <= 0 {
				w.Detach(id, core.CompActivation)
			}
		}

		step := vel.V.Scale(factor)
		if w.Has(id, core.CompNoiseFlight) {
			// Lateral wobble, scaled down hard during activation and by
			// projectile size
			n := vec.Noise2(tr.Pos)
			wobble := vel.V.Normalize().Perp().Scale(n * factor * factor * tr.Scale * tr.Scale)
			step = step.Add(wobble)
		}
		if !step.IsFinite() {
			step = vec.V2{}
		}
		tr.Pos = tr.Pos.Add(step)
	}
}

// GuidanceSystem steers homing missiles toward their assigned targets
// with a bounded turn rate. Missiles still inside their activation
// window fly unguided; dead targets are skipped silently.
type GuidanceSystem struct{}

func (s *GuidanceSystem) Priority() int { return 45 }

func (s *GuidanceSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompMissile, core.CompMissileTarget, core.CompVelocity, core.CompTransform) {
		if w.Has(id, core.CompActivation) {
			continue
		}
		mt := w.Get(id, core.CompMissileTarget).(*core.MissileTarget)
		if !w.Alive(mt.Target) {
			continue
		}
		ttr, ok := w.Get(mt.Target, core.CompTransform).(*core.Transform)
		if !ok {
			continue
		}

		tr := w.Get(id, core.CompTransform).(*core.Transform)
		vel := w.Get(id, core.CompVelocity).(*core.Velocity)

		to := ttr.Pos.Sub(tr.Pos).Normalize()
		if to.LenSq() == 0 {
			continue
		}
		forward := tr.Forward()
		if forward.Dot(to) >= 1-alignedEpsilon {
			continue
		}

		angle := forward.AngleTo(to)
		maxTurn := guidanceTurnRate * dt
		turn := vec.Clamp(angle, -maxTurn, maxTurn)
		tr.Rot += turn
		vel.V = tr.Forward().Scale(vel.V.Len())
	}
}
