package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/render"
	"github.com/relayzero/drift-engine/engine/vec"
)

// Hull bar geometry: player health renders as a strip of cells along
// the bottom edge
const (
	hullCells   = 36
	hullCellW   = 8
	hullCellH   = 10
	hullCellGap = 2
)

var (
	hudPanel   = color.RGBA{10, 12, 22, 170}
	hudBorder  = color.RGBA{0, 140, 200, 255}
	hudAccent  = color.RGBA{0, 220, 255, 255}
	cellFull   = color.RGBA{0, 210, 120, 255}
	cellWarn   = color.RGBA{255, 200, 0, 255}
	cellCrit   = color.RGBA{255, 60, 40, 255}
	cellEmpty  = color.RGBA{40, 50, 60, 180}
	contactDim = color.RGBA{200, 90, 70, 160}
	contactHot = color.RGBA{255, 220, 80, 255}
)

// DebugInfo is the per-frame snapshot the overlay prints
type DebugInfo struct {
	Tick     uint64
	Entities int
	IndexLen int
	Rebuilds uint64
	Pending  int
	TPS      float64
	FPS      float64
}

// HUD is the in-game overlay: hull cells, contact markers, the score
// line, and an optional debug readout.
type HUD struct {
	ScreenW, ScreenH int

	Visible   bool // flipped by the UI toggle button
	ShowDebug bool

	Kills int
	Wave  int
	Debug DebugInfo
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{ScreenW: sw, ScreenH: sh, Visible: true}
}

// Draw renders the overlay for the current world state
func (h *HUD) Draw(screen *ebiten.Image, w *core.World, cam *render.Camera) {
	if h.Visible {
		h.drawHull(screen, w)
		h.drawContacts(screen, w, cam)
		h.drawScore(screen)
	}
	if h.ShowDebug {
		h.drawDebug(screen)
	}
}

// drawHull renders the player's health as discrete cells, green to red
func (h *HUD) drawHull(screen *ebiten.Image, w *core.World) {
	players := w.Query(core.CompPlayer, core.CompHealth)
	if len(players) == 0 {
		return
	}
	hp := w.Get(players[0], core.CompHealth).(*core.Health)
	ratio := hp.Ratio()
	filled := int(ratio*hullCells + 0.5)

	barW := hullCells*(hullCellW+hullCellGap) - hullCellGap
	x0 := float32(h.ScreenW-barW) / 2
	y := float32(h.ScreenH - 26)

	vector.DrawFilledRect(screen, x0-6, y-5, float32(barW)+12, hullCellH+10, hudPanel, false)
	vector.StrokeRect(screen, x0-6, y-5, float32(barW)+12, hullCellH+10, 1, hudBorder, false)

	clr := cellFull
	if ratio < 0.5 {
		clr = cellWarn
	}
	if ratio < 0.25 {
		clr = cellCrit
	}
	for i := 0; i < hullCells; i++ {
		x := x0 + float32(i*(hullCellW+hullCellGap))
		c := clr
		if i >= filled {
			c = cellEmpty
		}
		vector.DrawFilledRect(screen, x, y, hullCellW, hullCellH, c, false)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HULL %d/%d", hp.Current, hp.Max),
		int(x0)-6, h.ScreenH-46)
}

// drawContacts marks every hostile ship: a tick above ships on screen,
// a clamped edge diamond for ships beyond it. Scanner locks burn hot.
func (h *HUD) drawContacts(screen *ebiten.Image, w *core.World, cam *render.Camera) {
	const margin = 14
	for _, id := range w.Query(core.CompFireTarget, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		ft := w.Get(id, core.CompFireTarget).(*core.FireTarget)
		clr := contactDim
		if ft.InCone {
			clr = contactHot
		}

		sx, sy := cam.WorldToScreen(tr.Pos)
		if cam.OnScreen(tr.Pos, 0) {
			x := float32(sx)
			y := float32(sy) - 18
			vector.StrokeLine(screen, x-4, y, x, y+5, 1.5, clr, false)
			vector.StrokeLine(screen, x+4, y, x, y+5, 1.5, clr, false)
			if ft.InCone {
				vector.StrokeCircle(screen, float32(sx), float32(sy), 14, 1, clr, false)
			}
			continue
		}

		// Clamp to the viewport border
		cx := vec.Clamp(sx, margin, float64(h.ScreenW)-margin)
		cy := vec.Clamp(sy, margin, float64(h.ScreenH)-margin)
		x := float32(cx)
		y := float32(cy)
		vector.StrokeLine(screen, x-5, y, x, y-5, 1.5, clr, false)
		vector.StrokeLine(screen, x, y-5, x+5, y, 1.5, clr, false)
		vector.StrokeLine(screen, x+5, y, x, y+5, 1.5, clr, false)
		vector.StrokeLine(screen, x, y+5, x-5, y, 1.5, clr, false)
	}
}

func (h *HUD) drawScore(screen *ebiten.Image) {
	info := fmt.Sprintf("WAVE %d | KILLS %d", h.Wave, h.Kills)
	vector.DrawFilledRect(screen, 6, 6, float32(len(info)*6+14), 20, hudPanel, false)
	ebitenutil.DebugPrintAt(screen, info, 13, 9)
	vector.DrawFilledRect(screen, 6, 27, float32(len(info)*6+14), 1, hudAccent, false)
}

func (h *HUD) drawDebug(screen *ebiten.Image) {
	d := h.Debug
	msg := fmt.Sprintf(
		"tick %d\nentities %d\nindex %d (%d rebuilds)\nevents pending %d\ntps %0.1f fps %0.1f",
		d.Tick, d.Entities, d.IndexLen, d.Rebuilds, d.Pending, d.TPS, d.FPS)
	ebitenutil.DebugPrintAt(screen, msg, 10, 40)
}
