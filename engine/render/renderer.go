package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/relayzero/drift-engine/engine/core"
)

// Renderer draws the combat plane each frame: starfield, effects,
// ships, then projectiles on top. Gizmos overlay the lot when enabled.
type Renderer struct {
	Camera  *Camera
	Sprites *SpriteManager

	// ShowGizmos overlays collision radii and the scan cone
	ShowGizmos bool
}

// NewRenderer creates the renderer and builds the sprite set
func NewRenderer(screenW, screenH int, s *core.Settings) *Renderer {
	return &Renderer{
		Camera:  NewCamera(screenW, screenH, s),
		Sprites: NewSpriteManager(),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *core.World, s *core.Settings) {
	r.drawStarfield(screen)
	r.drawEffects(screen, w)
	r.drawShips(screen, w)
	r.drawShots(screen, w)
	if r.ShowGizmos {
		r.drawGizmos(screen, w, s)
	}
}

// drawSprite places a sprite at a world transform with the given
// alpha. World rotation is counterclockwise; after the Y flip that
// appears clockwise on screen, hence the negation.
func (r *Renderer) drawSprite(screen *ebiten.Image, img *ebiten.Image, tr *core.Transform, alpha float64, grow float64) {
	if !r.Camera.OnScreen(tr.Pos, 64) {
		return
	}
	sx, sy := r.Camera.WorldToScreen(tr.Pos)
	sw := img.Bounds().Dx()
	sh := img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Rotate(-tr.Rot)
	scale := tr.Scale * grow * r.Camera.Zoom
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx, sy)
	a := float32(alpha)
	op.ColorScale.Scale(a, a, a, a)
	screen.DrawImage(img, op)
}

// alphaOf reads the fadeout alpha, 1 for entities that never fade
func alphaOf(w *core.World, id core.EntityID) float64 {
	f, ok := w.Get(id, core.CompFadeout).(*core.Fadeout)
	if !ok {
		return 1
	}
	if f.Alpha < 0 {
		return 0
	}
	return f.Alpha
}

func (r *Renderer) drawShips(screen *ebiten.Image, w *core.World) {
	for _, id := range w.Query(core.CompShip, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		ship := w.Get(id, core.CompShip).(*core.Ship)
		side := core.SideEnemy
		if sd, ok := w.Get(id, core.CompSide).(*core.Side); ok {
			side = sd.S
		}
		r.drawSprite(screen, r.Sprites.Hull(ship.Kind, side), tr, 1, 1)
	}
}

func (r *Renderer) drawShots(screen *ebiten.Image, w *core.World) {
	for _, id := range w.Query(core.CompSlug, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		r.drawSprite(screen, r.Sprites.Shots["slug"], tr, alphaOf(w, id), 1)
	}
	for _, id := range w.Query(core.CompRail, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		r.drawSprite(screen, r.Sprites.Shots["rail"], tr, alphaOf(w, id), 1)
	}
	for _, id := range w.Query(core.CompMissile, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		r.drawSprite(screen, r.Sprites.Shots["torpedo"], tr, alphaOf(w, id), 1)
	}
}

func (r *Renderer) drawEffects(screen *ebiten.Image, w *core.World) {
	for _, id := range w.Query(core.CompEffect, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		eff := w.Get(id, core.CompEffect).(*core.Effect)
		img, ok := r.Sprites.Puffs[eff.Kind]
		if !ok {
			continue
		}
		// Explosions bloom outward as they age; smoke drifts larger slowly
		grow := 1 + eff.Age*0.5
		if eff.Kind == core.VisualExplosion {
			grow = 1 + eff.Age*2.5
		}
		r.drawSprite(screen, img, tr, alphaOf(w, id), grow)
	}
}

// drawStarfield fills the background with parallax stars derived from
// the camera position, no state kept between frames
func (r *Renderer) drawStarfield(screen *ebiten.Image) {
	sw := float64(r.Camera.ScreenW)
	sh := float64(r.Camera.ScreenH)
	for layer, parallax := range []float64{0.15, 0.35, 0.6} {
		alpha := uint8(60 + 50*layer)
		size := float32(1 + layer)
		for i := 0; i < 40; i++ {
			fi := float64(i + layer*40)
			px := wrap(fi*97.31+13*fi*fi*0.17-r.Camera.Pos.X*parallax, sw)
			py := wrap(fi*57.13+7*fi*fi*0.29+r.Camera.Pos.Y*parallax, sh)
			vector.DrawFilledCircle(screen, float32(px), float32(py), size,
				color.RGBA{200, 210, 230, alpha}, false)
		}
	}
}

func wrap(v, size float64) float64 {
	m := math.Mod(v, size)
	if m < 0 {
		m += size
	}
	return m
}

// drawGizmos overlays the collision radii and the player's scan cone
func (r *Renderer) drawGizmos(screen *ebiten.Image, w *core.World, s *core.Settings) {
	ringColor := color.RGBA{0, 255, 180, 90}
	for _, id := range w.Query(core.CompSpatial, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		if !r.Camera.OnScreen(tr.Pos, 64) {
			continue
		}
		sx, sy := r.Camera.WorldToScreen(tr.Pos)
		radius := w.Get(id, core.CompSpatial).(*core.SpatialElement).Radius
		vector.StrokeCircle(screen, float32(sx), float32(sy),
			float32(radius*r.Camera.Zoom), 1, ringColor, false)
	}

	players := w.Query(core.CompPlayer, core.CompTransform)
	if len(players) == 0 {
		return
	}
	tr := w.Get(players[0], core.CompTransform).(*core.Transform)
	sx, sy := r.Camera.WorldToScreen(tr.Pos)
	coneColor := color.RGBA{255, 220, 80, 70}
	for _, off := range []float64{-math.Pi / 4, math.Pi / 4} {
		dir := tr.Forward().Rotate(off).Scale(s.ScanRadius * r.Camera.Zoom)
		// Screen Y runs opposite to world Y
		vector.StrokeLine(screen, float32(sx), float32(sy),
			float32(sx+dir.X), float32(sy-dir.Y), 1, coneColor, false)
	}
	vector.StrokeCircle(screen, float32(sx), float32(sy),
		float32(s.ScanRadius*r.Camera.Zoom), 1, color.RGBA{255, 220, 80, 40}, false)
}
