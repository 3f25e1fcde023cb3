// Renders the game's procedural sprite set to PNG at print size: each
// sprite alone plus a contact sheet, upscaled with CatmullRom so the
// art can be checked outside the engine.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

const (
	cell    = 64
	upscale = 4
)

type sprite struct {
	name string
	w, h int
	fn   func(*image.RGBA, int, int)
}

func main() {
	outDir := "assets_preview"
	os.MkdirAll(outDir, 0755)

	sprites := []sprite{
		{"corvette_player", 32, 32, func(img *image.RGBA, w, h int) { corvetteSprite(img, w, h, playerBody, playerAccent) }},
		{"corvette_enemy", 32, 32, func(img *image.RGBA, w, h int) { corvetteSprite(img, w, h, enemyBody, enemyAccent) }},
		{"raider_player", 24, 24, func(img *image.RGBA, w, h int) { raiderSprite(img, w, h, playerBody, playerAccent) }},
		{"raider_enemy", 24, 24, func(img *image.RGBA, w, h int) { raiderSprite(img, w, h, enemyBody, enemyAccent) }},
		{"slug", 8, 8, slugSprite},
		{"rail", 6, 14, railSprite},
		{"torpedo", 8, 16, torpedoSprite},
		{"smoke", 16, 16, smokeSprite},
		{"explosion", 20, 20, explosionSprite},
		{"debris", 10, 10, debrisSprite},
	}

	sheet := image.NewRGBA(image.Rect(0, 0, 5*cell, 2*cell))
	for i, s := range sprites {
		img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
		s.fn(img, s.w, s.h)

		big := image.NewRGBA(image.Rect(0, 0, s.w*upscale, s.h*upscale))
		xdraw.CatmullRom.Scale(big, big.Bounds(), img, img.Bounds(), xdraw.Over, nil)
		savePNG(filepath.Join(outDir, s.name+".png"), big)

		// Center the original into its contact sheet cell
		cx := (i%5)*cell + (cell-s.w)/2
		cy := (i/5)*cell + (cell-s.h)/2
		xdraw.Draw(sheet, image.Rect(cx, cy, cx+s.w, cy+s.h), img, image.Point{}, xdraw.Over)
	}

	bigSheet := image.NewRGBA(image.Rect(0, 0, sheet.Bounds().Dx()*upscale, sheet.Bounds().Dy()*upscale))
	xdraw.CatmullRom.Scale(bigSheet, bigSheet.Bounds(), sheet, sheet.Bounds(), xdraw.Over, nil)
	savePNG(filepath.Join(outDir, "sheet.png"), bigSheet)

	fmt.Println("✅ All art generated in", outDir)
}

func savePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	png.Encode(f, img)
	fmt.Println("  →", path)
}

// Faction palettes, matching the in-engine sprite builders
var (
	playerBody   = color.RGBA{150, 205, 225, 255}
	playerAccent = color.RGBA{0, 240, 220, 255}
	enemyBody    = color.RGBA{185, 115, 85, 255}
	enemyAccent  = color.RGBA{255, 120, 60, 255}
)

// ============= HULLS (nose up) =============

func corvetteSprite(img *image.RGBA, w, h int, body, accent color.RGBA) {
	cx := w / 2
	// Hull wedge
	fillTriangle(img, cx, 3, cx-8, h-7, cx+8, h-7, body)
	// Engine block
	fillRect(img, cx-6, h-8, 12, 4, darken(body, 0.7))
	// Exhaust notches
	fillRect(img, cx-5, h-4, 3, 2, accent)
	fillRect(img, cx+2, h-4, 3, 2, accent)
	// Spine stripe
	drawLineAA(img, cx, 5, cx, h-9, accent)
	// Cockpit
	fillCircle(img, cx, h/2-2, 2, color.RGBA{220, 240, 255, 230})
	// Wing tips
	drawLineAA(img, cx-8, h-7, cx-11, h-5, darken(body, 0.8))
	drawLineAA(img, cx+8, h-7, cx+11, h-5, darken(body, 0.8))
}

func raiderSprite(img *image.RGBA, w, h int, body, accent color.RGBA) {
	cx := w / 2
	// Narrow dart
	fillTriangle(img, cx, 2, cx-5, h-5, cx+5, h-5, body)
	fillRect(img, cx-3, h-6, 7, 3, darken(body, 0.7))
	drawLineAA(img, cx, 4, cx, h-7, accent)
	fillCircle(img, cx, h/2, 1, color.RGBA{255, 240, 200, 220})
}

// ============= SHOTS =============

func slugSprite(img *image.RGBA, w, h int) {
	fillCircle(img, w/2, h/2, 2, color.RGBA{255, 230, 140, 255})
	fillCircle(img, w/2, h/2, 1, color.RGBA{255, 255, 230, 255})
}

func railSprite(img *image.RGBA, w, h int) {
	cx := w / 2
	for y := 1; y < h-1; y++ {
		t := float64(y) / float64(h)
		a := uint8(255 - t*140)
		setPixelBlend(img, cx, y, color.RGBA{170, 240, 255, a})
		setPixelBlend(img, cx-1, y, color.RGBA{90, 180, 220, a / 2})
		setPixelBlend(img, cx+1, y, color.RGBA{90, 180, 220, a / 2})
	}
	fillCircle(img, cx, 2, 1, color.RGBA{230, 255, 255, 255})
}

func torpedoSprite(img *image.RGBA, w, h int) {
	cx := w / 2
	fillTriangle(img, cx, 1, cx-2, 5, cx+2, 5, color.RGBA{210, 210, 220, 255})
	fillRect(img, cx-2, 5, 5, h-9, color.RGBA{160, 165, 180, 255})
	// Fins
	fillTriangle(img, cx-2, h-5, cx-4, h-2, cx-2, h-2, color.RGBA{120, 125, 140, 255})
	fillTriangle(img, cx+2, h-5, cx+4, h-2, cx+2, h-2, color.RGBA{120, 125, 140, 255})
	// Drive flare
	fillCircle(img, cx, h-3, 1, color.RGBA{255, 180, 80, 255})
}

// ============= PUFFS =============

func smokeSprite(img *image.RGBA, w, h int) {
	softCircle(img, w/2, h/2, 7, color.RGBA{165, 165, 175, 200})
	softCircle(img, w/2-2, h/2-1, 4, color.RGBA{200, 200, 210, 160})
}

func explosionSprite(img *image.RGBA, w, h int) {
	softCircle(img, w/2, h/2, 9, color.RGBA{255, 120, 40, 230})
	softCircle(img, w/2, h/2, 5, color.RGBA{255, 220, 120, 255})
	softCircle(img, w/2, h/2, 2, color.RGBA{255, 255, 240, 255})
}

func debrisSprite(img *image.RGBA, w, h int) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 6; i++ {
		px := 2 + rng.Intn(w-4)
		py := 2 + rng.Intn(h-4)
		g := uint8(120 + rng.Intn(80))
		fillRect(img, px, py, 1+rng.Intn(2), 1, color.RGBA{g, g, uint8(float64(g) * 0.9), 255})
	}
}

// ============= PIXEL HELPERS =============

func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		clampU8(float64(c.R) * f),
		clampU8(float64(c.G) * f),
		clampU8(float64(c.B) * f),
		c.A,
	}
}

func clampU8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func setPixelBlend(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= img.Bounds().Dx() || y >= img.Bounds().Dy() {
		return
	}
	existing := img.RGBAAt(x, y)
	if existing.A == 0 {
		img.SetRGBA(x, y, c)
		return
	}
	alpha := float64(c.A) / 255.0
	img.SetRGBA(x, y, color.RGBA{
		R: uint8(float64(existing.R)*(1-alpha) + float64(c.R)*alpha),
		G: uint8(float64(existing.G)*(1-alpha) + float64(c.G)*alpha),
		B: uint8(float64(existing.B)*(1-alpha) + float64(c.B)*alpha),
		A: 255,
	})
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			setPixelBlend(img, px, py, c)
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx := float64(px - cx)
			dy := float64(py - cy)
			d := math.Sqrt(dx*dx + dy*dy)
			if d <= float64(r) {
				alpha := c.A
				if d > float64(r)-1 {
					alpha = uint8(float64(alpha) * (float64(r) - d))
				}
				setPixelBlend(img, px, py, color.RGBA{c.R, c.G, c.B, alpha})
			}
		}
	}
}

// softCircle fades alpha linearly from center to rim
func softCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for py := cy - r; py <= cy+r; py++ {
		for px := cx - r; px <= cx+r; px++ {
			dx := float64(px - cx)
			dy := float64(py - cy)
			d := math.Sqrt(dx*dx+dy*dy) / float64(r)
			if d <= 1 {
				a := uint8(float64(c.A) * (1 - d*d))
				setPixelBlend(img, px, py, color.RGBA{c.R, c.G, c.B, a})
			}
		}
	}
}

func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	minX := min3(x0, x1, x2)
	maxX := max3(x0, x1, x2)
	minY := min3(y0, y1, y2)
	maxY := max3(y0, y1, y2)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			if pointInTriangle(px, py, x0, y0, x1, y1, x2, y2) {
				setPixelBlend(img, px, py, c)
			}
		}
	}
}

func pointInTriangle(px, py, x0, y0, x1, y1, x2, y2 int) bool {
	d1 := edgeSign(px, py, x0, y0, x1, y1)
	d2 := edgeSign(px, py, x1, y1, x2, y2)
	d3 := edgeSign(px, py, x2, y2, x0, y0)
	hasNeg := (d1 < 0) || (d2 < 0) || (d3 < 0)
	hasPos := (d1 > 0) || (d2 > 0) || (d3 > 0)
	return !(hasNeg && hasPos)
}

func edgeSign(px, py, x0, y0, x1, y1 int) float64 {
	return float64((px-x1)*(y0-y1) - (x0-x1)*(py-y1))
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func drawLineAA(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	steps := int(math.Max(dx, dy))
	if steps == 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := float64(x0) + t*float64(x1-x0)
		y := float64(y0) + t*float64(y1-y0)
		setPixelBlend(img, int(x), int(y), c)
	}
}
