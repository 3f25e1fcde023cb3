package systems

import (
	"math"
	"testing"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

func TestFlightActivationDampsThenExpires(t *testing.T) {
	w, _ := newTestWorld()
	id := w.Spawn()
	w.Attach(id, &core.Transform{Scale: 1})
	w.Attach(id, &core.Velocity{V: vec.V(0, 2)})
	w.Attach(id, &core.ActivationTime{Remaining: 2 * dt})
	tr := w.Get(id, core.CompTransform).(*core.Transform)

	sys := &FlightSystem{}
	sys.Update(w, dt)
	if got, want := tr.Pos.Y, 2*activationFactor; math.Abs(got-want) > 1e-12 {
		t.Fatalf("activating step = %v, want damped %v", got, want)
	}
	if !w.Has(id, core.CompActivation) {
		t.Fatal("activation window should still be open after one tick")
	}

	sys.Update(w, dt)
	if w.Has(id, core.CompActivation) {
		t.Fatal("activation component should be removed once the window closes")
	}

	before := tr.Pos.Y
	sys.Update(w, dt)
	if got := tr.Pos.Y - before; math.Abs(got-2) > 1e-12 {
		t.Fatalf("post-activation step = %v, want full velocity 2", got)
	}
}

func TestFlightNoiseWobbleIsLateral(t *testing.T) {
	w, _ := newTestWorld()
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: vec.V(3, 7), Scale: 1})
	w.Attach(id, &core.Velocity{V: vec.V(0, 2)})
	w.Attach(id, &core.NoiseFlight{})
	tr := w.Get(id, core.CompTransform).(*core.Transform)

	sys := &FlightSystem{}
	sys.Update(w, dt)

	if tr.Pos.X == 3 {
		t.Fatal("noise flight should push the projectile off its straight line")
	}
	if math.Abs(tr.Pos.X-3) > 1 {
		t.Fatalf("wobble exceeded the noise amplitude, drift %v", tr.Pos.X-3)
	}
	if math.Abs(tr.Pos.Y-9) > 1e-12 {
		t.Fatalf("wobble must stay perpendicular to the velocity, y = %v", tr.Pos.Y)
	}
}

func TestFlightWobbleShrinksWithScale(t *testing.T) {
	w, _ := newTestWorld()
	big := w.Spawn()
	w.Attach(big, &core.Transform{Pos: vec.V(3, 7), Scale: 1})
	w.Attach(big, &core.Velocity{V: vec.V(0, 2)})
	w.Attach(big, &core.NoiseFlight{})
	small := w.Spawn()
	w.Attach(small, &core.Transform{Pos: vec.V(3, 7), Scale: 0.33})
	w.Attach(small, &core.Velocity{V: vec.V(0, 2)})
	w.Attach(small, &core.NoiseFlight{})

	sys := &FlightSystem{}
	sys.Update(w, dt)

	bigDrift := math.Abs(w.Get(big, core.CompTransform).(*core.Transform).Pos.X - 3)
	smallDrift := math.Abs(w.Get(small, core.CompTransform).(*core.Transform).Pos.X - 3)
	if smallDrift >= bigDrift {
		t.Fatalf("small projectile drift %v should be below full-size drift %v", smallDrift, bigDrift)
	}
}

func TestFlightNonFiniteStepIsDropped(t *testing.T) {
	w, _ := newTestWorld()
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: vec.V(1, 1), Scale: 1})
	w.Attach(id, &core.Velocity{V: vec.V(math.NaN(), 0)})
	tr := w.Get(id, core.CompTransform).(*core.Transform)

	sys := &FlightSystem{}
	sys.Update(w, dt)
	if tr.Pos.X != 1 || tr.Pos.Y != 1 {
		t.Fatalf("non-finite step should leave position untouched, got %v", tr.Pos)
	}
}

func TestGuidanceClampsTurnRate(t *testing.T) {
	w, s := newTestWorld()
	e := spawnEnemyAt(w, s, 100, 0) // due east of the missile
	m := spawnMissileAt(w, 0, 0, core.SidePlayer, e)
	tr := w.Get(m, core.CompTransform).(*core.Transform)
	vel := w.Get(m, core.CompVelocity).(*core.Velocity)

	sys := &GuidanceSystem{}
	sys.Update(w, dt)

	maxTurn := guidanceTurnRate * dt
	if math.Abs(tr.Rot-(-maxTurn)) > 1e-12 {
		t.Fatalf("first turn = %v, want clamped to %v", tr.Rot, -maxTurn)
	}
	if got := vel.V.Len(); math.Abs(got-5) > 1e-9 {
		t.Fatalf("guidance must preserve speed, got %v", got)
	}

	for i := 0; i < 100; i++ {
		sys.Update(w, dt)
	}
	if math.Abs(tr.Rot-(-math.Pi/2)) > 1e-6 {
		t.Fatalf("missile should settle nose-on to the target, rot %v", tr.Rot)
	}
}

func TestGuidanceIdleDuringActivation(t *testing.T) {
	w, s := newTestWorld()
	e := spawnEnemyAt(w, s, 100, 0)
	m := spawnMissileAt(w, 0, 0, core.SidePlayer, e)
	w.Attach(m, &core.ActivationTime{Remaining: 1})
	tr := w.Get(m, core.CompTransform).(*core.Transform)

	sys := &GuidanceSystem{}
	sys.Update(w, dt)
	if tr.Rot != 0 {
		t.Fatalf("missile should not steer inside the activation window, rot %v", tr.Rot)
	}
}

func TestGuidanceSkipsDeadTarget(t *testing.T) {
	w, s := newTestWorld()
	e := spawnEnemyAt(w, s, 100, 0)
	m := spawnMissileAt(w, 0, 0, core.SidePlayer, e)
	w.Destroy(e)
	w.Flush()
	tr := w.Get(m, core.CompTransform).(*core.Transform)
	vel := w.Get(m, core.CompVelocity).(*core.Velocity)
	v0 := vel.V

	sys := &GuidanceSystem{}
	sys.Update(w, dt)
	if tr.Rot != 0 || vel.V != v0 {
		t.Fatalf("dead target must leave the missile flying straight, rot %v vel %v", tr.Rot, vel.V)
	}
}

func TestGuidanceAlignedIsNoOp(t *testing.T) {
	w, s := newTestWorld()
	e := spawnEnemyAt(w, s, 0, 200) // dead ahead
	m := spawnMissileAt(w, 0, 0, core.SidePlayer, e)
	tr := w.Get(m, core.CompTransform).(*core.Transform)
	vel := w.Get(m, core.CompVelocity).(*core.Velocity)
	v0 := vel.V

	sys := &GuidanceSystem{}
	sys.Update(w, dt)
	if tr.Rot != 0 {
		t.Fatalf("aligned missile should not turn, rot %v", tr.Rot)
	}
	if vel.V != v0 {
		t.Fatalf("aligned missile velocity must be untouched, got %v", vel.V)
	}
}

func TestGuidanceCoLocatedTargetIsNoOp(t *testing.T) {
	w, s := newTestWorld()
	e := spawnEnemyAt(w, s, 0, 0)
	m := spawnMissileAt(w, 0, 0, core.SidePlayer, e)
	tr := w.Get(m, core.CompTransform).(*core.Transform)

	sys := &GuidanceSystem{}
	sys.Update(w, dt)
	if tr.Rot != 0 {
		t.Fatalf("zero-length bearing must not steer the missile, rot %v", tr.Rot)
	}
}
