package render

import (
	"math"
	"testing"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

func newTestCamera() *Camera {
	return NewCamera(800, 600, core.DefaultSettings())
}

func TestFollowLeadsAlongForward(t *testing.T) {
	c := newTestCamera()
	target := vec.V(0, 0)
	forward := vec.V(0, 1)

	for i := 0; i < 5000; i++ {
		c.Follow(target, forward)
	}
	want := vec.V(0, c.Offset)
	if c.Pos.Dist(want) > 2 {
		t.Fatalf("camera should settle near the lead point %v, got %v", want, c.Pos)
	}
}

func TestFollowBarelyMovesInsideDeadzone(t *testing.T) {
	c := newTestCamera()
	c.Pos = vec.V(0, 0)
	near := vec.V(10, 0) // well inside the deadzone

	c.Follow(near, vec.V2{})
	moved := c.Pos.Len()
	if moved == 0 {
		t.Fatal("soft deadzone still eases a little")
	}
	if moved > 0.1 {
		t.Fatalf("inside the deadzone the camera should barely move, moved %v", moved)
	}

	c2 := newTestCamera()
	c2.Pos = vec.V(0, 0)
	farTarget := vec.V(c2.Deadzone*2, 0)
	c2.Follow(farTarget, vec.V2{})
	if c2.Pos.Len() <= moved {
		t.Fatal("chase response should grow with distance")
	}
}

func TestFollowSurvivesNonFiniteForward(t *testing.T) {
	c := newTestCamera()
	c.Pos = vec.V(5, 5)

	c.Follow(vec.V(100, 100), vec.V(math.NaN(), math.NaN()))
	if !c.Pos.IsFinite() {
		t.Fatalf("camera position corrupted: %v", c.Pos)
	}
	if c.Pos != vec.V(5, 5) {
		t.Fatalf("non-finite step should be dropped, pos %v", c.Pos)
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	c := newTestCamera()
	c.Pos = vec.V(0, 0)

	sx, sy := c.WorldToScreen(vec.V(0, 100))
	if sx != 400 {
		t.Fatalf("x should map to screen center, got %v", sx)
	}
	if sy >= 300 {
		t.Fatalf("world up should land above screen center, got %v", sy)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.Pos = vec.V(37, -18)
	c.SetZoom(1.7)

	p := vec.V(-250, 90)
	sx, sy := c.WorldToScreen(p)
	back := c.ScreenToWorld(sx, sy)
	if p.Dist(back) > 1e-9 {
		t.Fatalf("round trip drifted: %v -> %v", p, back)
	}
}

func TestZoomAtKeepsPointStationary(t *testing.T) {
	c := newTestCamera()
	c.Pos = vec.V(10, 20)

	anchor := c.ScreenToWorld(600, 150)
	c.ZoomAt(0.5, 600, 150)
	after := c.ScreenToWorld(600, 150)
	if anchor.Dist(after) > 1e-9 {
		t.Fatalf("anchor point moved under zoom: %v -> %v", anchor, after)
	}
}

func TestZoomClamping(t *testing.T) {
	c := newTestCamera()
	c.SetZoom(99)
	if c.Zoom != c.MaxZoom {
		t.Fatalf("zoom = %v, want clamped to %v", c.Zoom, c.MaxZoom)
	}
	c.SetZoom(0.0001)
	if c.Zoom != c.MinZoom {
		t.Fatalf("zoom = %v, want clamped to %v", c.Zoom, c.MinZoom)
	}
}

func TestShakeOffsetsView(t *testing.T) {
	c := newTestCamera()
	c.Pos = vec.V(0, 0)
	x0, y0 := c.WorldToScreen(vec.V(0, 0))

	c.Shake = vec.V(4, 0)
	x1, y1 := c.WorldToScreen(vec.V(0, 0))
	if x1 >= x0 || y1 != y0 {
		t.Fatalf("shake should shift the view: (%v,%v) -> (%v,%v)", x0, y0, x1, y1)
	}
}
