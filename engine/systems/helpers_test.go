package systems

import (
	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

const dt = 1.0 / 60

func newTestWorld() (*core.World, *core.Settings) {
	return core.NewWorld(60, 1), core.DefaultSettings()
}

func spawnPlayerAt(w *core.World, x, y float64) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: vec.V(x, y), Scale: 1})
	w.Attach(id, &core.Velocity{})
	w.Attach(id, &core.Health{Current: 10, Max: 10})
	w.Attach(id, &core.Ship{Kind: "corvette"})
	w.Attach(id, &core.ShipStats{TurnSpeed: 0.06, MoveSpeed: 1.2})
	w.Attach(id, &core.ShipControl{})
	w.Attach(id, &core.Side{S: core.SidePlayer})
	w.Attach(id, &core.Player{})
	w.Attach(id, &core.SpatialElement{Radius: 10})
	return id
}

func spawnEnemyAt(w *core.World, s *core.Settings, x, y float64) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: vec.V(x, y), Scale: 1})
	w.Attach(id, &core.Velocity{})
	w.Attach(id, &core.Health{Current: 3, Max: 3})
	w.Attach(id, &core.Ship{Kind: "raider"})
	w.Attach(id, &core.Side{S: core.SideEnemy})
	w.Attach(id, &core.FireTarget{})
	w.Attach(id, core.NewBulletPod(-s.EnemyPodLockout, s.EnemyPodRange))
	w.Attach(id, &core.SpatialElement{Radius: 10})
	return id
}

func spawnMissileAt(w *core.World, x, y float64, side core.SideID, target core.EntityID) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: vec.V(x, y), Scale: 1})
	w.Attach(id, &core.Velocity{V: vec.V(0, 5)})
	w.Attach(id, &core.Side{S: side})
	w.Attach(id, &core.Missile{})
	w.Attach(id, &core.NoiseFlight{})
	w.Attach(id, core.NewFadeout(0.01))
	w.Attach(id, &core.SpatialElement{Radius: 5})
	if target != 0 {
		w.Attach(id, &core.MissileTarget{Target: target})
	}
	return id
}

func spawnSlugAt(w *core.World, x, y float64, side core.SideID) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: vec.V(x, y), Scale: 0.33})
	w.Attach(id, &core.Velocity{V: vec.V(0, 2.5)})
	w.Attach(id, &core.Side{S: side})
	w.Attach(id, &core.Slug{})
	w.Attach(id, core.NewFadeout(0.005))
	w.Attach(id, &core.SpatialElement{Radius: 2})
	return id
}

func spawnRailAt(w *core.World, x, y float64) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: vec.V(x, y), Scale: 1})
	w.Attach(id, &core.Velocity{V: vec.V(0, 4)})
	w.Attach(id, &core.Side{S: core.SidePlayer})
	w.Attach(id, &core.Rail{})
	w.Attach(id, core.NewFadeout(0.025))
	w.Attach(id, &core.SpatialElement{Radius: 2})
	return id
}

// countVisuals registers a listener that tallies spawn-visual events
// by kind as the bus dispatches them.
func countVisuals(bus *core.EventBus) map[core.VisualKind]int {
	counts := make(map[core.VisualKind]int)
	bus.On(core.EvtSpawnVisual, func(e core.Event) {
		counts[e.Payload.(core.SpawnVisualPayload).Kind]++
	})
	return counts
}
