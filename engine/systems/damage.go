package systems

import (
	"github.com/relayzero/drift-engine/engine/core"
)

// DamageSystem applies queued damage with a saturating floor, then
// sweeps zero-health entities. The two phases are separate so that
// every damage source landing in a tick is accounted before any
// destruction decision.
type DamageSystem struct {
	EventBus *core.EventBus

	pending []core.DamagePayload
}

func (s *DamageSystem) Priority() int { return 60 }

// Queue records damage for resolution later this tick. Collision
// passes call this; nothing is applied until Update runs.
func (s *DamageSystem) Queue(target core.EntityID, amount int) {
	s.pending = append(s.pending, core.DamagePayload{Target: target, Amount: amount})
}

func (s *DamageSystem) Update(w *core.World, dt float64) {
	// Phase one: apply
	for _, d := range s.pending {
		if !w.Alive(d.Target) {
			continue
		}
		h, ok := w.Get(d.Target, core.CompHealth).(*core.Health)
		if !ok {
			continue
		}
		h.Current -= d.Amount
		if h.Current < 0 {
			h.Current = 0
		}
		if s.EventBus != nil {
			s.EventBus.Emit(core.Event{Type: core.EvtDamage, Tick: w.TickCount, Payload: d})
		}
	}
	s.pending = s.pending[:0]

	// Phase two: sweep the dead
	for _, id := range w.Query(core.CompHealth) {
		h := w.Get(id, core.CompHealth).(*core.Health)
		if h.Current > 0 {
			continue
		}
		if tr, ok := w.Get(id, core.CompTransform).(*core.Transform); ok {
			s.emitVisual(w, core.VisualSmoke, tr)
			s.emitVisual(w, core.VisualDebris, tr)
			if w.Has(id, core.CompShip) && s.EventBus != nil {
				sideID := core.SideEnemy
				if sd, ok := w.Get(id, core.CompSide).(*core.Side); ok {
					sideID = sd.S
				}
				s.EventBus.Emit(core.Event{
					Type:    core.EvtShipDestroyed,
					Tick:    w.TickCount,
					Payload: core.ShipDestroyedPayload{ID: id, Side: sideID, Pos: tr.Pos},
				})
			}
		}
		w.Destroy(id)
	}
}

func (s *DamageSystem) emitVisual(w *core.World, kind core.VisualKind, tr *core.Transform) {
	if s.EventBus == nil {
		return
	}
	s.EventBus.Emit(core.Event{
		Type: core.EvtSpawnVisual,
		Tick: w.TickCount,
		Payload: core.SpawnVisualPayload{
			Kind:  kind,
			Pos:   tr.Pos,
			Rot:   tr.Rot,
			Scale: tr.Scale,
		},
	})
}
