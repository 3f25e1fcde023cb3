package core

import (
	"math"
	"testing"

	"github.com/relayzero/drift-engine/engine/vec"
)

func newTestWorld() *World {
	return NewWorld(60, 1)
}

func TestSpawnAttachGet(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn()
	w.Attach(id, &Transform{Pos: vec.V(3, 4), Scale: 1})

	if !w.Has(id, CompTransform) {
		t.Fatal("expected entity to have a transform")
	}
	tr := w.Get(id, CompTransform).(*Transform)
	if tr.Pos.X != 3 || tr.Pos.Y != 4 {
		t.Errorf("expected (3,4), got %v", tr.Pos)
	}
	if w.Get(id, CompHealth) != nil {
		t.Error("expected nil for missing component")
	}
}

func TestDestroyIsDeferred(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn()
	w.Attach(id, &Health{Current: 1, Max: 1})

	w.Destroy(id)
	if !w.Alive(id) {
		t.Fatal("entity removed before the sweep")
	}

	w.Tick(1.0 / 60)
	if w.Alive(id) {
		t.Fatal("entity still alive after the sweep")
	}
	if w.Get(id, CompHealth) != nil {
		t.Error("component lookup must fail after destruction")
	}
}

func TestDestroyTwiceIsHarmless(t *testing.T) {
	w := newTestWorld()
	id := w.Spawn()
	w.Destroy(id)
	w.Destroy(id)
	w.Tick(1.0 / 60)
	if w.Alive(id) {
		t.Fatal("entity survived double destroy")
	}
}

func TestQueryRequiresAllTypes(t *testing.T) {
	w := newTestWorld()
	a := w.Spawn()
	w.Attach(a, &Transform{Scale: 1})
	w.Attach(a, &Velocity{})
	b := w.Spawn()
	w.Attach(b, &Transform{Scale: 1})

	got := w.Query(CompTransform, CompVelocity)
	if len(got) != 1 || got[0] != a {
		t.Errorf("expected [%d], got %v", a, got)
	}
	if n := len(w.Query(CompTransform)); n != 2 {
		t.Errorf("expected 2 transforms, got %d", n)
	}
}

func TestQueryOrderIsSorted(t *testing.T) {
	w := newTestWorld()
	var ids []EntityID
	for i := 0; i < 20; i++ {
		id := w.Spawn()
		w.Attach(id, &Transform{Scale: 1})
		ids = append(ids, id)
	}
	got := w.Query(CompTransform)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("unsorted query result at %d: %v", i, got)
		}
	}
	if len(got) != len(ids) {
		t.Errorf("expected %d ids, got %d", len(ids), len(got))
	}
}

type orderProbe struct {
	prio int
	log  *[]int
}

func (o *orderProbe) Update(w *World, dt float64) { *o.log = append(*o.log, o.prio) }
func (o *orderProbe) Priority() int               { return o.prio }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld()
	var log []int
	w.AddSystem(&orderProbe{prio: 50, log: &log})
	w.AddSystem(&orderProbe{prio: 10, log: &log})
	w.AddSystem(&orderProbe{prio: 30, log: &log})

	w.Tick(1.0 / 60)
	want := []int{10, 30, 50}
	if len(log) != len(want) {
		t.Fatalf("expected %d runs, got %d", len(want), len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("position %d: expected priority %d, got %d", i, want[i], log[i])
		}
	}
}

func TestHealthRatio(t *testing.T) {
	h := &Health{Current: 5, Max: 10}
	if h.Ratio() != 0.5 {
		t.Errorf("expected 0.5, got %f", h.Ratio())
	}
	zero := &Health{Current: 5, Max: 0}
	if zero.Ratio() != 0 {
		t.Errorf("expected 0 for zero max, got %f", zero.Ratio())
	}
}

func TestSideOpposes(t *testing.T) {
	if SidePlayer.Opposes(SidePlayer) {
		t.Error("same side must not oppose itself")
	}
	if !SidePlayer.Opposes(SideEnemy) {
		t.Error("player must oppose enemy")
	}
}

func TestTransformForwardRight(t *testing.T) {
	tr := &Transform{Scale: 1}
	f := tr.Forward()
	if math.Abs(f.X) > 1e-9 || math.Abs(f.Y-1) > 1e-9 {
		t.Errorf("expected forward (0,1) at rot 0, got %v", f)
	}
	r := tr.Right()
	if math.Abs(r.X-1) > 1e-9 || math.Abs(r.Y) > 1e-9 {
		t.Errorf("expected right (1,0) at rot 0, got %v", r)
	}

	tr.Rot = math.Pi / 2
	f = tr.Forward()
	if math.Abs(f.X+1) > 1e-9 || math.Abs(f.Y) > 1e-9 {
		t.Errorf("expected forward (-1,0) at rot pi/2, got %v", f)
	}
}

func TestSeededRandIsDeterministic(t *testing.T) {
	a := NewWorld(60, 42)
	b := NewWorld(60, 42)
	for i := 0; i < 100; i++ {
		if a.Rand.Float64() != b.Rand.Float64() {
			t.Fatal("same seed produced different sequences")
		}
	}
}
