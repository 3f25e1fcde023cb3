package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/relayzero/drift-engine/engine/ai"
	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/feedback"
	"github.com/relayzero/drift-engine/engine/input"
	"github.com/relayzero/drift-engine/engine/level"
	"github.com/relayzero/drift-engine/engine/render"
	"github.com/relayzero/drift-engine/engine/replay"
	"github.com/relayzero/drift-engine/engine/spatial"
	"github.com/relayzero/drift-engine/engine/systems"
	"github.com/relayzero/drift-engine/engine/ui"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TickRate     = 60.0 // fixed simulation rate
)

// Game implements ebiten.Game interface
type Game struct {
	loop     *core.GameLoop
	settings *core.Settings
	bp       *level.Blueprint

	reader   *input.Reader
	pilot    *systems.PilotInput
	grid     *spatial.Grid
	director *ai.Director
	damage   *systems.DamageSystem
	shake    *feedback.Manager

	renderer *render.Renderer
	hud      *ui.HUD
	menu     *ui.Menu

	recorder *replay.Recorder
	tape     *replay.Tape

	seed      int64
	levelPath string

	// Buttons accumulate between ticks so a press on a frame where no
	// tick lands still reaches the simulation exactly once
	pendingButtons core.ButtonMask

	quit bool
}

type config struct {
	levelPath    string
	settingsPath string
	seed         int64
	recordPath   string
	replayPath   string
}

func NewGame(cfg config) *Game {
	g := &Game{
		settings:  core.DefaultSettings(),
		bp:        level.Default(),
		reader:    input.NewReader(),
		seed:      cfg.seed,
		levelPath: cfg.levelPath,
	}

	if cfg.settingsPath != "" {
		s, err := level.LoadSettings(cfg.settingsPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		g.settings = s
	}
	if cfg.levelPath != "" {
		b, err := level.LoadJSON(cfg.levelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		g.bp = b
	}
	if err := g.bp.Validate(); err != nil {
		log.Fatalf("Bad level: %v", err)
	}

	if cfg.replayPath != "" {
		tape, err := replay.Load(cfg.replayPath)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		g.tape = tape
		g.seed = tape.Header.Seed
	}

	g.renderer = render.NewRenderer(ScreenWidth, ScreenHeight, g.settings)
	g.hud = ui.NewHUD(ScreenWidth, ScreenHeight)
	g.menu = ui.NewMenu(ScreenWidth, ScreenHeight)
	g.menu.OnStart = g.startRun
	g.menu.OnResume = func() { g.loop.Play() }
	g.menu.OnRestart = g.restartRun
	g.menu.OnQuit = func() { g.quit = true }

	g.buildSim()

	if cfg.recordPath != "" {
		rec, err := replay.NewRecorder(cfg.recordPath, replay.Header{Seed: g.seed, TickRate: TickRate})
		if err != nil {
			log.Fatalf("Failed to open recording: %v", err)
		}
		g.recorder = rec
	}

	return g
}

// buildSim stands up a fresh world with the full system roster. Called
// once at startup and again on every restart.
func (g *Game) buildSim() {
	g.loop = core.NewGameLoop(TickRate, g.seed)
	w := g.loop.World
	bus := w.Events

	g.pilot = &systems.PilotInput{}
	g.grid = spatial.NewGrid(64, 5*time.Millisecond)
	g.damage = &systems.DamageSystem{EventBus: bus}
	g.director = ai.NewDirector(g.settings, level.ShipBlueprint{
		Name: "Jackal", Kind: "raider", Health: 3, TurnSpeed: 0.03, MoveSpeed: 0.8,
	})

	w.AddSystem(&systems.ControlSystem{Input: g.pilot, EventBus: bus})
	w.AddSystem(g.director)
	w.AddSystem(&systems.ScannerSystem{Settings: g.settings})
	w.AddSystem(&systems.WeaponSystem{Settings: g.settings, Input: g.pilot})
	w.AddSystem(&systems.FlightSystem{})
	w.AddSystem(&systems.GuidanceSystem{})
	w.AddSystem(&systems.CollisionSystem{Grid: g.grid, Settings: g.settings, Damage: g.damage, EventBus: bus})
	w.AddSystem(g.damage)
	w.AddSystem(systems.NewEffectsSystem(w, bus))

	g.shake = feedback.NewManager(w, g.settings, bus)

	bus.On(core.EvtShipDestroyed, func(e core.Event) {
		p := e.Payload.(core.ShipDestroyedPayload)
		if p.Side == core.SideEnemy {
			g.hud.Kills++
			return
		}
		g.loop.State = core.StateGameOver
		g.menu.Stats = ui.GameOverStats{
			Kills:   g.hud.Kills,
			Waves:   g.director.Spawned(),
			Seconds: float64(g.loop.CurrentTick()) / TickRate,
		}
	})
	bus.On(core.EvtToggleUI, func(core.Event) {
		g.hud.Visible = !g.hud.Visible
	})

	g.loop.PreTick = g.preTick
	g.loop.PostTick = g.postTick
}

func (g *Game) preTick(dt float64) {
	var frame core.InputFrame
	if g.tape != nil {
		frame = g.tape.FrameForTick(g.loop.CurrentTick())
	} else {
		frame = g.reader.Frame()
		frame.Buttons = g.pendingButtons
		g.pendingButtons = 0
	}
	g.pilot.Frame = frame

	if g.recorder != nil && frame != (core.InputFrame{}) {
		if err := g.recorder.Record(g.loop.CurrentTick(), frame); err != nil {
			log.Printf("Recording failed: %v", err)
			g.recorder = nil
		}
	}
}

func (g *Game) postTick(dt float64) {
	g.loop.World.Events.Dispatch()
	g.shake.Update(dt)
}

func (g *Game) startRun() {
	g.hud.Kills = 0
	g.bp.Apply(g.loop.World, g.settings)
	g.loop.Play()
}

func (g *Game) restartRun() {
	if g.recorder != nil {
		// A tape covers one run; ticks restart from zero here
		if err := g.recorder.Close(); err != nil {
			log.Printf("Recording close failed: %v", err)
		}
		g.recorder = nil
	}
	if g.tape != nil {
		g.tape.Rewind()
	}
	g.buildSim()
	g.startRun()
}

func (g *Game) Update() error {
	if g.quit {
		if g.recorder != nil {
			if err := g.recorder.Close(); err != nil {
				log.Printf("Recording close failed: %v", err)
			}
			g.recorder = nil
		}
		return ebiten.Termination
	}

	g.reader.Update()

	if g.loop.State != core.StatePlaying {
		g.menu.Update(g.loop.State, 1.0/TickRate)
		return nil
	}

	g.pendingButtons |= g.reader.Frame().Buttons
	g.handleDebugKeys()

	if g.reader.JustPressed(ebiten.KeyEscape) {
		g.loop.Pause()
		return nil
	}

	w := g.loop.World
	g.grid.MaybeRebuild(w, time.Now())
	g.loop.Update()

	g.shake.SetPad(g.reader.Pad())
	if players := w.Query(core.CompPlayer, core.CompTransform); len(players) > 0 {
		tr := w.Get(players[0], core.CompTransform).(*core.Transform)
		g.shake.SetListener(tr.Pos)
		g.renderer.Camera.Follow(tr.Pos, tr.Forward())
	}
	g.renderer.Camera.Shake = g.shake.Shake()

	g.hud.Wave = g.director.Spawned()
	g.hud.Debug = ui.DebugInfo{
		Tick:     g.loop.CurrentTick(),
		Entities: w.EntityCount(),
		IndexLen: g.grid.Len(),
		Rebuilds: g.grid.Rebuilds(),
		Pending:  w.Events.Pending(),
		TPS:      ebiten.ActualTPS(),
		FPS:      ebiten.ActualFPS(),
	}

	return nil
}

func (g *Game) handleDebugKeys() {
	if g.reader.JustPressed(ebiten.KeyF1) {
		g.hud.ShowDebug = !g.hud.ShowDebug
	}
	if g.reader.JustPressed(ebiten.KeyF2) {
		g.renderer.ShowGizmos = !g.renderer.ShowGizmos
	}
	if g.reader.JustPressed(ebiten.KeyF3) {
		g.hud.Visible = !g.hud.Visible
	}
	if g.reader.JustPressed(ebiten.KeyF4) {
		if g.loop.TimeScale == 1.0 {
			g.loop.TimeScale = 0.25
		} else {
			g.loop.TimeScale = 1.0
		}
	}
	if g.reader.JustPressed(ebiten.KeyF5) {
		g.reloadLevel()
	}
	if g.reader.JustPressed(ebiten.KeyD) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		// Self-damage for testing the hull readout and game over path
		w := g.loop.World
		if players := w.Query(core.CompPlayer, core.CompHealth); len(players) > 0 {
			g.damage.Queue(players[0], 1+w.Rand.Intn(10))
		}
	}
}

func (g *Game) reloadLevel() {
	if g.levelPath != "" {
		b, err := level.LoadJSON(g.levelPath)
		if err != nil {
			log.Printf("Reload failed: %v", err)
			return
		}
		if err := b.Validate(); err != nil {
			log.Printf("Reload rejected: %v", err)
			return
		}
		g.bp = b
	}
	g.bp.Apply(g.loop.World, g.settings)
	log.Printf("Level reloaded: %s", g.bp.Name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{6, 7, 12, 255})
	g.renderer.Draw(screen, g.loop.World, g.settings)
	g.hud.Draw(screen, g.loop.World, g.renderer.Camera)

	if g.tape != nil && g.tape.Done(g.loop.CurrentTick()) && g.loop.State == core.StatePlaying {
		ebitenutil.DebugPrintAt(screen, "TAPE ENDED", ScreenWidth/2-40, 30)
	}

	if g.loop.State != core.StatePlaying {
		g.menu.Draw(screen, g.loop.State)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	var cfg config
	flag.StringVar(&cfg.levelPath, "level", "", "level file to load")
	flag.StringVar(&cfg.settingsPath, "settings", "", "settings override file")
	flag.Int64Var(&cfg.seed, "seed", 0, "simulation seed, 0 picks one")
	flag.StringVar(&cfg.recordPath, "record", "", "record input to a replay tape")
	flag.StringVar(&cfg.replayPath, "replay", "", "play back a replay tape")
	flag.Parse()

	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	log.Printf("Drift starting, seed %d", cfg.seed)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("🚀 Drift v0.1.0")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	game := NewGame(cfg)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
