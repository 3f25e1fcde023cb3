// Package level defines ship and level blueprints and their JSON form.
// Blueprints are plain data; Apply instantiates them into a world.
package level

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

// ShipBlueprint describes one ship to spawn
type ShipBlueprint struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"` // hull appearance key
	Health    int     `json:"health"`
	TurnSpeed float64 `json:"turnSpeed"`
	MoveSpeed float64 `json:"moveSpeed"`
	Player    bool    `json:"player"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Rotation  float64 `json:"rotation"`
}

// Blueprint is a complete level definition
type Blueprint struct {
	Name  string          `json:"name"`
	Ships []ShipBlueprint `json:"ships"`
}

// New creates an empty level
func New(name string) *Blueprint {
	return &Blueprint{Name: name}
}

// Default returns the built-in level used when no file is given
func Default() *Blueprint {
	return &Blueprint{
		Name: "first contact",
		Ships: []ShipBlueprint{
			{Name: "Vagrant", Kind: "corvette", Health: 10, TurnSpeed: 0.06, MoveSpeed: 1.2, Player: true},
			{Name: "Jackal 1", Kind: "raider", Health: 3, TurnSpeed: 0.03, MoveSpeed: 0.8, X: 250, Y: 180},
			{Name: "Jackal 2", Kind: "raider", Health: 3, TurnSpeed: 0.03, MoveSpeed: 0.8, X: -300, Y: -120},
		},
	}
}

// SaveJSON writes the level to disk
func (b *Blueprint) SaveJSON(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON reads a level from disk
func LoadJSON(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Blueprint
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate reports blueprint problems that would make the level
// unplayable
func (b *Blueprint) Validate() error {
	players := 0
	for _, s := range b.Ships {
		if s.Player {
			players++
		}
		if s.Health <= 0 {
			return errors.New("ship " + s.Name + " has no health")
		}
	}
	if players > 1 {
		return errors.New("level has more than one player ship")
	}
	return nil
}

// Apply clears previously loaded level entities and spawns the
// blueprint's ships. Safe to call between ticks for a reload.
func (b *Blueprint) Apply(w *core.World, s *core.Settings) {
	for _, id := range w.Query(core.CompGameObject) {
		w.Destroy(id)
	}
	w.Flush()
	for _, ship := range b.Ships {
		SpawnShip(w, s, ship)
	}
}

// SpawnShip instantiates one blueprint ship
func SpawnShip(w *core.World, s *core.Settings, bp ShipBlueprint) core.EntityID {
	id := w.Spawn()
	w.Attach(id, &core.Transform{Pos: vec.V(bp.X, bp.Y), Rot: bp.Rotation, Scale: 1})
	w.Attach(id, &core.Velocity{})
	w.Attach(id, &core.Health{Current: bp.Health, Max: bp.Health})
	w.Attach(id, &core.Ship{Kind: bp.Kind})
	w.Attach(id, &core.ShipStats{TurnSpeed: bp.TurnSpeed, MoveSpeed: bp.MoveSpeed})
	w.Attach(id, &core.SpatialElement{Radius: 10})
	w.Attach(id, &core.GameObject{})
	if bp.Player {
		w.Attach(id, &core.Side{S: core.SidePlayer})
		w.Attach(id, &core.Player{})
		w.Attach(id, &core.ShipControl{})
	} else {
		w.Attach(id, &core.Side{S: core.SideEnemy})
		w.Attach(id, &core.FireTarget{})
		w.Attach(id, core.NewBulletPod(-s.EnemyPodLockout, s.EnemyPodRange))
	}
	return id
}

// LoadSettings reads tunables from disk, applying them over the
// defaults; fields missing from the file keep their default values
func LoadSettings(path string) (*core.Settings, error) {
	s := core.DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}
