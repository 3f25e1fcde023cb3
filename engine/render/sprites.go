package render

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/relayzero/drift-engine/engine/core"
)

// Hull palettes per side
var (
	playerBody   = color.RGBA{150, 205, 225, 255}
	playerAccent = color.RGBA{0, 240, 220, 255}
	enemyBody    = color.RGBA{185, 115, 85, 255}
	enemyAccent  = color.RGBA{255, 120, 60, 255}
)

// SpriteManager builds and holds the procedural sprite set. Everything
// is drawn once at startup with vector primitives; no image files are
// involved. Sprites face up; the renderer rotates them into place.
type SpriteManager struct {
	Hulls map[string]*ebiten.Image // key: kind_side
	Shots map[string]*ebiten.Image // "slug", "rail", "torpedo"
	Puffs map[core.VisualKind]*ebiten.Image
}

// NewSpriteManager draws the full sprite set
func NewSpriteManager() *SpriteManager {
	sm := &SpriteManager{
		Hulls: make(map[string]*ebiten.Image),
		Shots: make(map[string]*ebiten.Image),
		Puffs: make(map[core.VisualKind]*ebiten.Image),
	}

	for _, side := range []core.SideID{core.SidePlayer, core.SideEnemy} {
		body, accent := palette(side)
		sm.Hulls[hullKey("corvette", side)] = buildCorvette(body, accent)
		sm.Hulls[hullKey("raider", side)] = buildRaider(body, accent)
	}

	sm.Shots["slug"] = buildSlug()
	sm.Shots["rail"] = buildRail()
	sm.Shots["torpedo"] = buildTorpedo()

	sm.Puffs[core.VisualSmoke] = buildPuff(7, color.RGBA{120, 120, 130, 90}, color.RGBA{175, 175, 185, 130})
	sm.Puffs[core.VisualExplosion] = buildPuff(9, color.RGBA{255, 140, 40, 180}, color.RGBA{255, 230, 120, 230})
	sm.Puffs[core.VisualDebris] = buildDebris()

	log.Printf("SpriteManager: built %d hulls, %d shots, %d puffs",
		len(sm.Hulls), len(sm.Shots), len(sm.Puffs))
	return sm
}

// Hull returns the sprite for a ship kind and side, falling back to
// the corvette silhouette for unknown kinds
func (sm *SpriteManager) Hull(kind string, side core.SideID) *ebiten.Image {
	if img, ok := sm.Hulls[hullKey(kind, side)]; ok {
		return img
	}
	return sm.Hulls[hullKey("corvette", side)]
}

func hullKey(kind string, side core.SideID) string {
	return fmt.Sprintf("%s_%d", kind, side)
}

func palette(side core.SideID) (body, accent color.RGBA) {
	if side == core.SidePlayer {
		return playerBody, playerAccent
	}
	return enemyBody, enemyAccent
}

// buildCorvette draws the blunt wedge flown by the player: wide engine
// block, tapering spine, cockpit dot near the nose
func buildCorvette(body, accent color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(24, 32)
	// Engine block and exhaust glow
	vector.DrawFilledRect(img, 7, 23, 10, 6, body, false)
	vector.DrawFilledRect(img, 9, 28, 6, 3, color.RGBA{255, 180, 80, 160}, false)
	// Mid hull
	vector.DrawFilledRect(img, 9, 10, 6, 15, body, false)
	vector.DrawFilledCircle(img, 12, 16, 6, body, false)
	// Nose taper
	vector.StrokeLine(img, 12, 2, 7, 14, 2, body, false)
	vector.StrokeLine(img, 12, 2, 17, 14, 2, body, false)
	// Cockpit and wingtip lights
	vector.DrawFilledCircle(img, 12, 12, 2.5, accent, false)
	vector.DrawFilledCircle(img, 6, 24, 1.5, accent, false)
	vector.DrawFilledCircle(img, 18, 24, 1.5, accent, false)
	return img
}

// buildRaider draws the narrow swept hull of the hostile ships
func buildRaider(body, accent color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(24, 28)
	// Swept wings
	vector.StrokeLine(img, 12, 3, 2, 24, 3, body, false)
	vector.StrokeLine(img, 12, 3, 22, 24, 3, body, false)
	// Spine
	vector.DrawFilledRect(img, 10, 6, 4, 18, body, false)
	// Pod housing, where the point defense lives
	vector.DrawFilledCircle(img, 12, 13, 3.5, accent, false)
	vector.DrawFilledRect(img, 9, 22, 6, 3, color.RGBA{255, 160, 70, 150}, false)
	return img
}

func buildSlug() *ebiten.Image {
	img := ebiten.NewImage(6, 6)
	vector.DrawFilledCircle(img, 3, 3, 3, color.RGBA{255, 210, 110, 80}, false)
	vector.DrawFilledCircle(img, 3, 3, 1.8, color.RGBA{255, 230, 150, 255}, false)
	return img
}

func buildRail() *ebiten.Image {
	img := ebiten.NewImage(4, 16)
	vector.DrawFilledRect(img, 0, 0, 4, 16, color.RGBA{120, 220, 255, 70}, false)
	vector.DrawFilledRect(img, 1, 0, 2, 16, color.RGBA{230, 250, 255, 255}, false)
	return img
}

func buildTorpedo() *ebiten.Image {
	img := ebiten.NewImage(8, 16)
	vector.DrawFilledRect(img, 2, 3, 4, 9, color.RGBA{160, 170, 190, 255}, false)
	vector.DrawFilledCircle(img, 4, 3, 2, color.RGBA{220, 235, 245, 255}, false)
	vector.DrawFilledCircle(img, 4, 14, 2, color.RGBA{255, 170, 70, 190}, false)
	return img
}

func buildPuff(r float32, outer, inner color.RGBA) *ebiten.Image {
	size := int(2*r) + 2
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, r, outer, false)
	vector.DrawFilledCircle(img, c, c, r*0.55, inner, false)
	return img
}

func buildDebris() *ebiten.Image {
	img := ebiten.NewImage(10, 10)
	vector.DrawFilledRect(img, 1, 2, 4, 3, color.RGBA{160, 150, 140, 230}, false)
	vector.DrawFilledRect(img, 6, 6, 3, 3, color.RGBA{130, 120, 115, 210}, false)
	vector.DrawFilledCircle(img, 7, 2, 1.5, color.RGBA{180, 170, 160, 200}, false)
	return img
}
