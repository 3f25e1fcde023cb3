package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/relayzero/drift-engine/engine/core"
)

var (
	menuBG     = color.RGBA{8, 8, 16, 255}
	menuDim    = color.RGBA{4, 6, 12, 200}
	menuAccent = color.RGBA{0, 200, 255, 255}
	menuItem   = color.RGBA{150, 170, 190, 255}
	menuGrid   = color.RGBA{0, 80, 120, 15}
)

// GameOverStats holds the end-of-run numbers for the summary screen
type GameOverStats struct {
	Victory bool
	Kills   int
	Waves   int
	Seconds float64
}

// Menu draws and drives the title, pause, and game-over screens. The
// game state itself lives in the loop; the menu only raises callbacks.
type Menu struct {
	ScreenW, ScreenH int
	Tick             float64
	Stats            GameOverStats

	cursor int

	OnStart   func()
	OnResume  func()
	OnRestart func()
	OnQuit    func()
}

func NewMenu(sw, sh int) *Menu {
	return &Menu{ScreenW: sw, ScreenH: sh}
}

func (m *Menu) items(state core.GameState) []string {
	switch state {
	case core.StatePaused:
		return []string{"RESUME", "RESTART", "QUIT"}
	case core.StateGameOver:
		return []string{"RESTART", "QUIT"}
	default:
		return []string{"LAUNCH", "QUIT"}
	}
}

// Update handles menu navigation for the current state
func (m *Menu) Update(state core.GameState, dt float64) {
	m.Tick += dt
	items := m.items(state)

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.cursor--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.cursor++
	}
	m.cursor = (m.cursor + len(items)) % len(items)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && state == core.StatePaused {
		m.fire("RESUME")
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.fire(items[m.cursor])
	}
}

func (m *Menu) fire(item string) {
	cb := map[string]func(){
		"LAUNCH":  m.OnStart,
		"RESUME":  m.OnResume,
		"RESTART": m.OnRestart,
		"QUIT":    m.OnQuit,
	}[item]
	if cb != nil {
		m.cursor = 0
		cb()
	}
}

// Draw renders the screen for the given state
func (m *Menu) Draw(screen *ebiten.Image, state core.GameState) {
	switch state {
	case core.StateMenu:
		screen.Fill(menuBG)
		m.drawAnimatedBG(screen)
		m.drawTitle(screen, "DRIFT", "burn hard, shoot first")
		m.drawItems(screen, state)
	case core.StatePaused:
		m.dimWorld(screen)
		m.drawTitle(screen, "PAUSED", "")
		m.drawItems(screen, state)
	case core.StateGameOver:
		m.dimWorld(screen)
		title := "SHIP LOST"
		if m.Stats.Victory {
			title = "SECTOR CLEAR"
		}
		m.drawTitle(screen, title, "")
		m.drawStats(screen)
		m.drawItems(screen, state)
	}
}

func (m *Menu) dimWorld(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(m.ScreenW), float32(m.ScreenH), menuDim, false)
}

func (m *Menu) drawTitle(screen *ebiten.Image, title, subtitle string) {
	cx := m.ScreenW / 2
	ty := 90
	// Fake bold: repeat the print with one-pixel offsets
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3+dx, ty+dy)
		}
	}
	lineY := float32(ty + 22)
	vector.DrawFilledRect(screen, float32(cx-120), lineY, 240, 2, menuAccent, false)
	vector.DrawFilledRect(screen, float32(cx-120), lineY-1, 240, 4, color.RGBA{0, 180, 255, 40}, false)
	if subtitle != "" {
		ebitenutil.DebugPrintAt(screen, subtitle, cx-len(subtitle)*3, ty+32)
	}
}

func (m *Menu) drawItems(screen *ebiten.Image, state core.GameState) {
	items := m.items(state)
	cx := m.ScreenW / 2
	y := m.ScreenH/2 + 20
	for i, item := range items {
		clr := color.Color(menuItem)
		label := item
		if i == m.cursor {
			clr = menuAccent
			label = "> " + item + " <"
		}
		x := cx - len(label)*7/2
		text.Draw(screen, label, basicfont.Face7x13, x, y, clr)
		y += 26
	}
}

func (m *Menu) drawStats(screen *ebiten.Image) {
	cx := m.ScreenW / 2
	y := m.ScreenH/2 - 60
	lines := []string{
		fmt.Sprintf("kills      %d", m.Stats.Kills),
		fmt.Sprintf("waves      %d", m.Stats.Waves),
		fmt.Sprintf("flight time %0.1fs", m.Stats.Seconds),
	}
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, cx-70, y)
		y += 16
	}
}

func (m *Menu) drawAnimatedBG(screen *ebiten.Image) {
	t := m.Tick
	for i := 0; i < 20; i++ {
		x := float32(math.Mod(float64(i)*70+t*20, float64(m.ScreenW)))
		vector.StrokeLine(screen, x, 0, x, float32(m.ScreenH), 1, menuGrid, false)
	}
	for i := 0; i < 12; i++ {
		y := float32(math.Mod(float64(i)*65+t*15, float64(m.ScreenH)))
		vector.StrokeLine(screen, 0, y, float32(m.ScreenW), y, 1, menuGrid, false)
	}
	for i := 0; i < 30; i++ {
		px := float32(math.Mod(float64(i)*43.7+t*10+float64(i*i)*0.3, float64(m.ScreenW)))
		py := float32(math.Mod(float64(i)*67.3+t*5+float64(i)*1.7, float64(m.ScreenH)))
		alpha := uint8(20 + 20*math.Sin(t*2+float64(i)))
		vector.DrawFilledCircle(screen, px, py, 1.5, color.RGBA{0, 180, 255, alpha}, false)
	}
}
