package systems

import (
	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/spatial"
)

const (
	missileHitRadius = 10.0
	slugHitRadius    = 2.0
)

// CollisionSystem resolves proximity hits between projectile classes
// using the spatial index. Queries are snapshot reads: every hit is
// liveness-checked before use, and stale references are skipped.
type CollisionSystem struct {
	Grid     *spatial.Grid
	Settings *core.Settings
	Damage   *DamageSystem
	EventBus *core.EventBus

	buf []spatial.Hit
}

func (s *CollisionSystem) Priority() int { return 50 }

func (s *CollisionSystem) Update(w *core.World, dt float64) {
	s.missilesVsShips(w)
	s.railsVsSlugs(w)
	s.slugsVsTargets(w)
}

// missilesVsShips detonates a missile against the first live ship of
// the opposite side within range. One damage event per missile at most.
func (s *CollisionSystem) missilesVsShips(w *core.World) {
	for _, mid := range w.Query(core.CompMissile, core.CompTransform, core.CompSide) {
		tr := w.Get(mid, core.CompTransform).(*core.Transform)
		side := w.Get(mid, core.CompSide).(*core.Side)

		s.buf = s.Grid.WithinDistanceBuf(tr.Pos, missileHitRadius, s.buf[:0])
		for _, hit := range s.buf {
			if hit.ID == mid || !w.Alive(hit.ID) || !w.Has(hit.ID, core.CompShip) {
				continue
			}
			other, ok := w.Get(hit.ID, core.CompSide).(*core.Side)
			if !ok || !side.S.Opposes(other.S) {
				continue
			}
			s.Damage.Queue(hit.ID, 1)
			w.Destroy(mid)
			s.emitVisual(w, core.VisualExplosion, tr)
			break
		}
	}
}

// railsVsSlugs lets a railgun round swat point-defense fire. Side is
// deliberately not checked for this pair; the rail survives the hit.
func (s *CollisionSystem) railsVsSlugs(w *core.World) {
	for _, rid := range w.Query(core.CompRail, core.CompTransform) {
		tr := w.Get(rid, core.CompTransform).(*core.Transform)

		s.buf = s.Grid.WithinDistanceBuf(tr.Pos, s.Settings.RailgunRange, s.buf[:0])
		for _, hit := range s.buf {
			if !w.Alive(hit.ID) || !w.Has(hit.ID, core.CompSlug) {
				continue
			}
			w.Destroy(hit.ID)
			// Smoke at the rail's position, not the slug's
			s.emitVisual(w, core.VisualSmoke, tr)
			break
		}
	}
}

// slugsVsTargets resolves point-defense rounds against missiles
// (deterministic trade) and the player hull (two independent chance
// draws: slug loss and damage).
func (s *CollisionSystem) slugsVsTargets(w *core.World) {
	for _, sid := range w.Query(core.CompSlug, core.CompTransform, core.CompSide) {
		tr := w.Get(sid, core.CompTransform).(*core.Transform)
		side := w.Get(sid, core.CompSide).(*core.Side)

		s.buf = s.Grid.WithinDistanceBuf(tr.Pos, slugHitRadius, s.buf[:0])
		for _, hit := range s.buf {
			if hit.ID == sid || !w.Alive(hit.ID) {
				continue
			}
			if w.Has(hit.ID, core.CompMissile) {
				w.Destroy(hit.ID)
				w.Destroy(sid)
				break
			}
			if w.Has(hit.ID, core.CompPlayer) {
				other, ok := w.Get(hit.ID, core.CompSide).(*core.Side)
				if !ok || !side.S.Opposes(other.S) {
					continue
				}
				if w.Rand.Float64() < s.Settings.PDCDestroyChance {
					w.Destroy(sid)
				}
				if w.Rand.Float64() < s.Settings.PDCDamageChance {
					s.Damage.Queue(hit.ID, 1)
				}
			}
		}
	}
}

func (s *CollisionSystem) emitVisual(w *core.World, kind core.VisualKind, tr *core.Transform) {
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
