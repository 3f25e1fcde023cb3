package systems

import (
	"testing"
	"time"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/spatial"
	"github.com/relayzero/drift-engine/engine/vec"
)

func newCollision(w *core.World, s *core.Settings) (*CollisionSystem, *DamageSystem, *spatial.Grid) {
	grid := spatial.NewGrid(64, time.Second)
	dmg := &DamageSystem{EventBus: w.Events}
	col := &CollisionSystem{Grid: grid, Settings: s, Damage: dmg, EventBus: w.Events}
	return col, dmg, grid
}

func healthOf(w *core.World, id core.EntityID) int {
	return w.Get(id, core.CompHealth).(*core.Health).Current
}

func TestMissileDetonatesOnOpposingShip(t *testing.T) {
	w, s := newTestWorld()
	e := spawnEnemyAt(w, s, 0, 5)
	m := spawnMissileAt(w, 0, 0, core.SidePlayer, 0)
	col, dmg, grid := newCollision(w, s)
	grid.Rebuild(w)

	visuals := countVisuals(w.Events)
	var hitPos vec.V2
	w.Events.On(core.EvtSpawnVisual, func(ev core.Event) {
		hitPos = ev.Payload.(core.SpawnVisualPayload).Pos
	})

	col.Update(w, dt)
	dmg.Update(w, dt)
	w.Flush()
	w.Events.Dispatch()

	if w.Alive(m) {
		t.Fatal("missile should be consumed by the detonation")
	}
	if got := healthOf(w, e); got != 2 {
		t.Fatalf("ship health = %d, want 2 after one missile", got)
	}
	if visuals[core.VisualExplosion] != 1 {
		t.Fatalf("want one explosion, got %v", visuals)
	}
	if hitPos != vec.V(0, 0) {
		t.Fatalf("explosion should spawn at the missile, got %v", hitPos)
	}
}

func TestMissileIgnoresFriendlyShip(t *testing.T) {
	w, s := newTestWorld()
	p := spawnPlayerAt(w, 0, 5)
	m := spawnMissileAt(w, 0, 0, core.SidePlayer, 0)
	col, dmg, grid := newCollision(w, s)
	grid.Rebuild(w)

	col.Update(w, dt)
	dmg.Update(w, dt)
	w.Flush()

	if !w.Alive(m) {
		t.Fatal("missile must pass through ships of its own side")
	}
	if got := healthOf(w, p); got != 10 {
		t.Fatalf("friendly ship took damage, health %d", got)
	}
}

func TestMissileDetonatesOnNearestShipOnly(t *testing.T) {
	w, s := newTestWorld()
	near := spawnEnemyAt(w, s, 0, 4)
	far := spawnEnemyAt(w, s, 0, 7)
	spawnMissileAt(w, 0, 0, core.SidePlayer, 0)
	col, dmg, grid := newCollision(w, s)
	grid.Rebuild(w)

	col.Update(w, dt)
	dmg.Update(w, dt)
	w.Flush()

	if got := healthOf(w, near); got != 2 {
		t.Fatalf("nearest ship health = %d, want 2", got)
	}
	if got := healthOf(w, far); got != 3 {
		t.Fatalf("second ship must be spared, health %d", got)
	}
}

func TestMissileSkipsStaleIndexEntries(t *testing.T) {
	w, s := newTestWorld()
	e := spawnEnemyAt(w, s, 0, 5)
	m := spawnMissileAt(w, 0, 0, core.SidePlayer, 0)
	col, dmg, grid := newCollision(w, s)
	grid.Rebuild(w)

	// The ship dies after the index was built; the stale entry must be
	// tolerated, not resolved as a hit.
	w.Destroy(e)
	w.Flush()

	col.Update(w, dt)
	dmg.Update(w, dt)
	w.Flush()

	if !w.Alive(m) {
		t.Fatal("missile should survive a query that only finds stale entries")
	}
}

func TestRailSwatsFirstSlugOnly(t *testing.T) {
	w, s := newTestWorld()
	r := spawnRailAt(w, 0, 0)
	near := spawnSlugAt(w, 0, 3, core.SideEnemy)
	far := spawnSlugAt(w, 0, 6, core.SideEnemy)
	col, _, grid := newCollision(w, s)
	grid.Rebuild(w)

	visuals := countVisuals(w.Events)
	var smokePos vec.V2
	w.Events.On(core.EvtSpawnVisual, func(ev core.Event) {
		smokePos = ev.Payload.(core.SpawnVisualPayload).Pos
	})

	col.Update(w, dt)
	w.Flush()
	w.Events.Dispatch()

	if w.Alive(near) {
		t.Fatal("nearest slug should be destroyed")
	}
	if !w.Alive(far) {
		t.Fatal("rail stops after the first slug each tick")
	}
	if !w.Alive(r) {
		t.Fatal("the rail itself survives the hit")
	}
	if visuals[core.VisualSmoke] != 1 {
		t.Fatalf("want one smoke puff, got %v", visuals)
	}
	if smokePos != vec.V(0, 0) {
		t.Fatalf("smoke should spawn at the rail, got %v", smokePos)
	}
}

func TestSlugTradesWithMissile(t *testing.T) {
	w, s := newTestWorld()
	m := spawnMissileAt(w, 0, 1, core.SidePlayer, 0)
	sl := spawnSlugAt(w, 0, 0, core.SideEnemy)
	col, _, grid := newCollision(w, s)
	grid.Rebuild(w)

	col.Update(w, dt)
	w.Flush()

	if w.Alive(m) || w.Alive(sl) {
		t.Fatalf("slug and missile should trade: missile alive=%v slug alive=%v",
			w.Alive(m), w.Alive(sl))
	}
}

func TestSlugChancesAgainstPlayer(t *testing.T) {
	run := func(t *testing.T, destroy, damage float64) (slugAlive bool, hp int) {
		w, s := newTestWorld()
		s.PDCDestroyChance = destroy
		s.PDCDamageChance = damage
		p := spawnPlayerAt(w, 0, 0)
		sl := spawnSlugAt(w, 0, 1, core.SideEnemy)
		col, dmg, grid := newCollision(w, s)
		grid.Rebuild(w)

		col.Update(w, dt)
		dmg.Update(w, dt)
		w.Flush()
		return w.Alive(sl), healthOf(w, p)
	}

	t.Run("both certain", func(t *testing.T) {
		alive, hp := run(t, 1, 1)
		if alive {
			t.Error("slug should be destroyed when the destroy draw passes")
		}
		if hp != 9 {
			t.Errorf("player health = %d, want 9", hp)
		}
	})
	t.Run("destroy without damage", func(t *testing.T) {
		alive, hp := run(t, 1, 0)
		if alive {
			t.Error("slug should be destroyed")
		}
		if hp != 10 {
			t.Errorf("player health = %d, want untouched 10", hp)
		}
	})
	t.Run("neither", func(t *testing.T) {
		alive, hp := run(t, 0, 0)
		if !alive {
			t.Error("slug should survive when the destroy draw fails")
		}
		if hp != 10 {
			t.Errorf("player health = %d, want untouched 10", hp)
		}
	})
}

func TestSlugIgnoresFriendlySide(t *testing.T) {
	w, s := newTestWorld()
	s.PDCDestroyChance = 1
	s.PDCDamageChance = 1
	p := spawnPlayerAt(w, 0, 0)
	sl := spawnSlugAt(w, 0, 1, core.SidePlayer)
	col, dmg, grid := newCollision(w, s)
	grid.Rebuild(w)

	col.Update(w, dt)
	dmg.Update(w, dt)
	w.Flush()

	if !w.Alive(sl) {
		t.Fatal("friendly slug must not be consumed against its own side")
	}
	if got := healthOf(w, p); got != 10 {
		t.Fatalf("friendly fire applied, health %d", got)
	}
}
