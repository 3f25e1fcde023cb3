// Headless benchmark: runs the combat simulation without a display,
// for profiling hot paths and checking balance over long runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/pkg/profile"

	"github.com/relayzero/drift-engine/engine/ai"
	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/level"
	"github.com/relayzero/drift-engine/engine/spatial"
	"github.com/relayzero/drift-engine/engine/systems"
	"github.com/relayzero/drift-engine/engine/vec"
)

func main() {
	ships := flag.Int("ships", 24, "hostile ships at start")
	ticks := flag.Int("ticks", 36000, "ticks to run, 36000 is ten minutes at 60Hz")
	seed := flag.Int64("seed", 1, "simulation seed")
	prof := flag.String("profile", "", "write a profile: cpu or mem")
	flag.Parse()

	switch *prof {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	s := core.DefaultSettings()
	loop := core.NewGameLoop(60, *seed)
	w := loop.World
	bus := w.Events

	pilot := &systems.PilotInput{}
	grid := spatial.NewGrid(64, 5*time.Millisecond)
	damage := &systems.DamageSystem{EventBus: bus}
	director := ai.NewDirector(s, level.ShipBlueprint{
		Name: "Jackal", Kind: "raider", Health: 3, TurnSpeed: 0.03, MoveSpeed: 0.8,
	})

	w.AddSystem(&systems.ControlSystem{Input: pilot, EventBus: bus})
	w.AddSystem(director)
	w.AddSystem(&systems.ScannerSystem{Settings: s})
	w.AddSystem(&systems.WeaponSystem{Settings: s, Input: pilot})
	w.AddSystem(&systems.FlightSystem{})
	w.AddSystem(&systems.GuidanceSystem{})
	w.AddSystem(&systems.CollisionSystem{Grid: grid, Settings: s, Damage: damage, EventBus: bus})
	w.AddSystem(damage)
	w.AddSystem(systems.NewEffectsSystem(w, bus))

	kills := 0
	bus.On(core.EvtShipDestroyed, func(e core.Event) {
		if e.Payload.(core.ShipDestroyedPayload).Side == core.SideEnemy {
			kills++
		}
	})

	// A player plus a ring of hostiles around it
	level.SpawnShip(w, s, level.ShipBlueprint{
		Name: "Vagrant", Kind: "corvette", Health: 10, TurnSpeed: 0.06, MoveSpeed: 1.2, Player: true,
	})
	for i := 0; i < *ships; i++ {
		ang := float64(i) / float64(*ships) * 2 * math.Pi
		pos := vec.FromAngle(ang).Scale(s.SpawnSpread)
		level.SpawnShip(w, s, level.ShipBlueprint{
			Name: fmt.Sprintf("Jackal %d", i+1), Kind: "raider",
			Health: 3, TurnSpeed: 0.03, MoveSpeed: 0.8, X: pos.X, Y: pos.Y,
		})
	}

	// Autopilot: burn forward, rail along the nose, torpedo volleys
	// every five seconds
	loop.PreTick = func(dt float64) {
		f := core.InputFrame{Move: vec.V(0, 1), Aim: vec.V(0, 1)}
		if loop.CurrentTick()%300 < 5 {
			f.Buttons |= core.BtnFireMissile
		}
		pilot.Frame = f
	}
	loop.PostTick = func(dt float64) {
		bus.Dispatch()
	}

	// A synthetic clock paces index rebuilds the way a real frame loop
	// would, independent of how fast the benchmark itself runs
	simNow := time.Now()
	const frame = time.Second / 60

	start := time.Now()
	for i := 0; i < *ticks; i++ {
		grid.MaybeRebuild(w, simNow)
		simNow = simNow.Add(frame)
		loop.Step()
	}
	elapsed := time.Since(start)

	log.Printf("simbench: %d ticks in %v (%.0f ticks/s)", *ticks, elapsed, float64(*ticks)/elapsed.Seconds())
	log.Printf("simbench: %d entities alive, %d kills, %d spawned, %d index rebuilds",
		w.EntityCount(), kills, director.Spawned(), grid.Rebuilds())
}
