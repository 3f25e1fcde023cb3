// Package ai paces the opposition: a director that feeds fresh enemy
// ships into the fight at a fixed cadence.
package ai

import (
	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/level"
)

// Director spawns reinforcement waves from a blueprint template at the
// configured interval, scattered around the origin.
type Director struct {
	Settings *core.Settings
	Template level.ShipBlueprint

	spawnTimer float64
	spawned    int
}

func NewDirector(s *core.Settings, template level.ShipBlueprint) *Director {
	return &Director{Settings: s, Template: template}
}

func (d *Director) Priority() int { return 15 }

func (d *Director) Update(w *core.World, dt float64) {
	d.spawnTimer += dt
	if d.spawnTimer < d.Settings.SpawnInterval {
		return
	}
	d.spawnTimer = 0
	d.think(w)
}

// think places one reinforcement at a random offset from the origin
func (d *Director) think(w *core.World) {
	bp := d.Template
	bp.Player = false
	bp.X = (w.Rand.Float64()*2 - 1) * d.Settings.SpawnSpread
	bp.Y = (w.Rand.Float64()*2 - 1) * d.Settings.SpawnSpread

	d.spawned++
	level.SpawnShip(w, d.Settings, bp)
}

// Spawned returns how many reinforcements the director has placed
func (d *Director) Spawned() int {
	return d.spawned
}
