package systems

import (
	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

// Fade rates per effect kind, alpha per tick
const (
	smokeFade     = 0.02
	explosionFade = 0.04
	debrisFade    = 0.01
	thrustFade    = 0.05
)

// EffectsSystem owns the visual side of the simulation: it turns
// spawn-visual and thrust events into short-lived effect entities, ages
// them, and runs the fadeout countdown that despawns projectiles.
type EffectsSystem struct{}

// NewEffectsSystem registers the event consumers and returns the
// ticking half of the pair
func NewEffectsSystem(w *core.World, bus *core.EventBus) *EffectsSystem {
	s := &EffectsSystem{}
	bus.On(core.EvtSpawnVisual, func(e core.Event) {
		s.spawnVisual(w, e.Payload.(core.SpawnVisualPayload))
	})
	bus.On(core.EvtThrust, func(e core.Event) {
		s.spawnThrustSmoke(w, e.Payload.(core.ThrustPayload))
	})
	return s
}

func (s *EffectsSystem) Priority() int { return 70 }

func (s *EffectsSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompEffect) {
		w.Get(id, core.CompEffect).(*core.Effect).Age += dt
	}

	for _, id := range w.Query(core.CompFadeout) {
		f := w.Get(id, core.CompFadeout).(*core.Fadeout)
		f.Alpha -= f.Rate
		if f.Alpha > 0 {
			continue
		}
		// Projectiles burning out leave an explosion; effects just end
		if !w.Has(id, core.CompEffect) {
			if tr, ok := w.Get(id, core.CompTransform).(*core.Transform); ok {
				s.spawnVisual(w, core.SpawnVisualPayload{
					Kind:  core.VisualExplosion,
					Pos:   tr.Pos,
					Rot:   tr.Rot,
					Scale: tr.Scale,
				})
			}
		}
		w.Destroy(id)
	}
}

func (s *EffectsSystem) spawnVisual(w *core.World, p core.SpawnVisualPayload) {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: p.Pos, Rot: p.Rot, Scale: scale})
	w.Attach(id, &core.Effect{Kind: p.Kind})
	w.Attach(id, &core.GameObject{})
	switch p.Kind {
	case core.VisualSmoke:
		w.Attach(id, core.NewFadeout(smokeFade))
	case core.VisualExplosion:
		w.Attach(id, core.NewFadeout(explosionFade))
	case core.VisualDebris:
		w.Attach(id, core.NewFadeout(debrisFade))
		w.Attach(id, &core.Velocity{V: vec.V(
			w.Rand.Float64()*2-1,
			w.Rand.Float64()*2-1,
		)})
	}
}

func (s *EffectsSystem) spawnThrustSmoke(w *core.World, p core.ThrustPayload) {
	tr, ok := w.Get(p.Ship, core.CompTransform).(*core.Transform)
	if !ok {
		return
	}
	back := tr.Forward().Scale(-12)
	jitter := vec.V(w.Rand.Float64()*4-2, w.Rand.Float64()*4-2)

	id := w.Spawn()
	w.Attach(id, &core.Transform{
		Pos:   tr.Pos.Add(back).Add(jitter),
		Rot:   tr.Rot,
		Scale: 0.3 + p.Strength*0.4,
	})
	w.Attach(id, &core.Effect{Kind: core.VisualSmoke})
	w.Attach(id, core.NewFadeout(thrustFade))
	w.Attach(id, &core.Velocity{V: tr.Forward().Scale(-(0.5 + w.Rand.Float64()*0.5))})
	w.Attach(id, &core.GameObject{})
}
