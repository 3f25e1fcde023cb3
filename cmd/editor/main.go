package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/relayzero/drift-engine/editor"
	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/input"
	"github.com/relayzero/drift-engine/engine/level"
	"github.com/relayzero/drift-engine/engine/render"
	"github.com/relayzero/drift-engine/engine/vec"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	sidebarWidth = 200
	gridStep     = 100.0
	panSpeed     = 8.0
)

type brushEntry struct {
	label string
	ship  level.ShipBlueprint
}

type EditorApp struct {
	editor  *editor.Editor
	camera  *render.Camera
	sprites *render.SpriteManager
	mouse   *input.Mouse
	hover   vec.V2

	brushes  []brushEntry
	selIdx   int
	selected int

	dragIndex int
	dragOld   level.ShipBlueprint
}

func NewEditorApp() *EditorApp {
	a := &EditorApp{
		editor:  editor.NewEditor(),
		camera:  render.NewCamera(ScreenWidth, ScreenHeight, core.DefaultSettings()),
		sprites: render.NewSpriteManager(),
		mouse:   input.NewMouse(),
		brushes: []brushEntry{
			{label: "Raider", ship: level.ShipBlueprint{Kind: "raider", Health: 3, TurnSpeed: 0.03, MoveSpeed: 0.8}},
			{label: "Corvette", ship: level.ShipBlueprint{Kind: "corvette", Health: 10, TurnSpeed: 0.06, MoveSpeed: 1.2}},
		},
		selected:  -1,
		dragIndex: -1,
	}
	a.editor.Brush = a.brushes[0].ship

	// Load file from command line if provided
	if len(os.Args) > 1 {
		if err := a.editor.Load(os.Args[1]); err != nil {
			log.Printf("Failed to load level: %v", err)
		}
	}

	return a
}

func (a *EditorApp) Update() error {
	a.mouse.Update()

	// Camera controls
	step := panSpeed / a.camera.Zoom
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		a.camera.Pan(0, step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		a.camera.Pan(0, -step)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		a.camera.Pan(-step, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		a.camera.Pan(step, 0)
	}
	if a.mouse.ScrollY != 0 {
		a.camera.ZoomAt(a.mouse.ScrollY*0.1, float64(a.mouse.X), float64(a.mouse.Y))
	}
	if a.mouse.MiddlePressed {
		a.camera.Pan(float64(-a.mouse.DX)/a.camera.Zoom, float64(a.mouse.DY)/a.camera.Zoom)
	}

	a.hover = a.camera.ScreenToWorld(float64(a.mouse.X), float64(a.mouse.Y))

	// Brush selection via number keys
	for i := range a.brushes {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			a.selIdx = i
			a.editor.Brush = a.brushes[i].ship
		}
	}

	// Grid toggle
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.editor.ShowGrid = !a.editor.ShowGrid
	}

	overSidebar := a.mouse.X >= ScreenWidth-sidebarWidth

	// Pick or place with left click
	if a.mouse.LeftJustPressed && !overSidebar {
		pick := a.editor.PickAt(a.hover.X, a.hover.Y, 24/a.camera.Zoom)
		if pick >= 0 {
			a.selected = pick
			a.dragIndex = pick
			a.dragOld = a.editor.Level.Ships[pick]
		} else {
			a.selected = a.editor.Place(a.hover.X, a.hover.Y)
		}
	}

	// Drag moves the grabbed ship live, committed as one edit on release
	if a.mouse.Dragging && a.dragIndex >= 0 {
		a.editor.Level.Ships[a.dragIndex].X = a.hover.X
		a.editor.Level.Ships[a.dragIndex].Y = a.hover.Y
	}
	if a.mouse.LeftJustReleased && a.dragIndex >= 0 {
		moved := a.editor.Level.Ships[a.dragIndex]
		if moved.X != a.dragOld.X || moved.Y != a.dragOld.Y {
			a.editor.Level.Ships[a.dragIndex] = a.dragOld
			a.editor.MoveShip(a.dragIndex, moved.X, moved.Y)
		}
		a.dragIndex = -1
	}

	// Selected ship edits
	if a.selected >= 0 && a.selected < len(a.editor.Level.Ships) {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			rot := a.editor.Level.Ships[a.selected].Rotation + math.Pi/8
			a.editor.RotateShip(a.selected, rot)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			a.editor.SetPlayer(a.selected)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			a.editor.Remove(a.selected)
			a.selected = -1
			a.dragIndex = -1
		}
	}

	// Undo/Redo (Ctrl+Z / Ctrl+Shift+Z)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		if shift {
			a.editor.Redo()
		} else {
			a.editor.Undo()
		}
		if a.selected >= len(a.editor.Level.Ships) {
			a.selected = -1
		}
		a.dragIndex = -1
	}

	// Save (Ctrl+S)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		path := a.editor.FilePath
		if path == "" {
			path = "arena.level"
		}
		if err := a.editor.Save(path); err != nil {
			log.Printf("Save failed: %v", err)
		} else {
			log.Printf("Saved to %s", path)
		}
	}

	return nil
}

func (a *EditorApp) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 10, 18, 255})

	if a.editor.ShowGrid {
		a.drawGrid(screen)
	}

	// Ships
	for i, s := range a.editor.Level.Ships {
		side := core.SideEnemy
		if s.Player {
			side = core.SidePlayer
		}
		img := a.sprites.Hull(s.Kind, side)
		sx, sy := a.camera.WorldToScreen(vec.V(s.X, s.Y))

		op := &ebiten.DrawImageOptions{}
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		op.GeoM.Rotate(-s.Rotation)
		op.GeoM.Scale(a.camera.Zoom, a.camera.Zoom)
		op.GeoM.Translate(sx, sy)
		screen.DrawImage(img, op)

		if i == a.selected {
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(20*a.camera.Zoom), 1.5, color.RGBA{0, 240, 220, 255}, true)
		}
		if s.Player {
			ebitenutil.DebugPrintAt(screen, "P1", int(sx)-6, int(sy)+int(16*a.camera.Zoom))
		}
	}

	// Hover crosshair
	mx, my := float32(a.mouse.X), float32(a.mouse.Y)
	if a.mouse.X < ScreenWidth-sidebarWidth {
		cross := color.RGBA{255, 255, 0, 150}
		vector.StrokeLine(screen, mx-6, my, mx+6, my, 1, cross, false)
		vector.StrokeLine(screen, mx, my-6, mx, my+6, 1, cross, false)
	}

	a.drawSidebar(screen)

	info := fmt.Sprintf("Level Editor | %s | (%.0f,%.0f) | Ships:%d | [1-%d]Brush [G]Grid [R]Rotate [P]Player [Del]Remove [Ctrl+Z]Undo [Ctrl+S]Save",
		a.editor.Level.Name, a.hover.X, a.hover.Y, len(a.editor.Level.Ships), len(a.brushes))
	ebitenutil.DebugPrintAt(screen, info, 5, ScreenHeight-20)
}

func (a *EditorApp) drawGrid(screen *ebiten.Image) {
	clr := color.RGBA{30, 34, 48, 255}
	topLeft := a.camera.ScreenToWorld(0, 0)
	botRight := a.camera.ScreenToWorld(ScreenWidth-sidebarWidth, ScreenHeight)

	for x := math.Floor(topLeft.X/gridStep) * gridStep; x <= botRight.X; x += gridStep {
		sx, _ := a.camera.WorldToScreen(vec.V(x, 0))
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), ScreenHeight, 1, clr, false)
	}
	for y := math.Floor(botRight.Y/gridStep) * gridStep; y <= topLeft.Y; y += gridStep {
		_, sy := a.camera.WorldToScreen(vec.V(0, y))
		vector.StrokeLine(screen, 0, float32(sy), ScreenWidth-sidebarWidth, float32(sy), 1, clr, false)
	}

	// Origin axes
	axis := color.RGBA{50, 58, 80, 255}
	ox, oy := a.camera.WorldToScreen(vec.V2{})
	vector.StrokeLine(screen, float32(ox), 0, float32(ox), ScreenHeight, 1, axis, false)
	vector.StrokeLine(screen, 0, float32(oy), ScreenWidth-sidebarWidth, float32(oy), 1, axis, false)
}

func (a *EditorApp) drawSidebar(screen *ebiten.Image) {
	sx := float32(ScreenWidth - sidebarWidth)
	vector.DrawFilledRect(screen, sx, 0, sidebarWidth, float32(ScreenHeight), color.RGBA{20, 20, 40, 220}, false)

	y := 10
	ebitenutil.DebugPrintAt(screen, "=== SHIPS ===", int(sx)+10, y)
	y += 20
	for i, b := range a.brushes {
		clr := color.RGBA{50, 50, 80, 255}
		if i == a.selIdx {
			clr = color.RGBA{100, 100, 200, 255}
		}
		vector.DrawFilledRect(screen, sx+10, float32(y), 180, 20, clr, false)
		label := fmt.Sprintf("[%d] %s (hp %d)", i+1, b.label, b.ship.Health)
		ebitenutil.DebugPrintAt(screen, label, int(sx)+15, y+3)
		y += 22
	}

	y += 10
	tools := []string{"[R] Rotate", "[P] Make player", "[Del] Remove", "[G] Grid"}
	for _, t := range tools {
		ebitenutil.DebugPrintAt(screen, t, int(sx)+10, y)
		y += 18
	}

	if a.selected >= 0 && a.selected < len(a.editor.Level.Ships) {
		s := a.editor.Level.Ships[a.selected]
		y += 10
		ebitenutil.DebugPrintAt(screen, "=== SELECTED ===", int(sx)+10, y)
		y += 20
		lines := []string{
			s.Name,
			fmt.Sprintf("kind: %s", s.Kind),
			fmt.Sprintf("hp: %d", s.Health),
			fmt.Sprintf("pos: %.0f,%.0f", s.X, s.Y),
			fmt.Sprintf("rot: %.0f deg", s.Rotation*180/math.Pi),
		}
		for _, l := range lines {
			ebitenutil.DebugPrintAt(screen, l, int(sx)+10, y)
			y += 16
		}
	}

	if a.editor.Modified {
		ebitenutil.DebugPrintAt(screen, "* MODIFIED *", int(sx)+10, y+20)
	}
}

func (a *EditorApp) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("🛰️ Drift Level Editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	app := NewEditorApp()
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
