// Package spatial provides the periodically rebuilt position index used
// by collision queries. The grid is rebuilt wholesale on a fixed wall-time
// cadence rather than on every mutation; queries are snapshot reads and
// may return entities destroyed since the last rebuild. Consumers must
// liveness-check every hit.
package spatial

import (
	"math"
	"sort"
	"time"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

// Hit is one query result: distance from the query point and the entity
// that was there at the last rebuild
type Hit struct {
	Dist float64
	ID   core.EntityID
}

type cellKey struct {
	X, Y int32
}

type entry struct {
	id  core.EntityID
	pos vec.V2
}

// Grid is a uniform cell hash over entity positions
type Grid struct {
	CellSize     float64
	RebuildEvery time.Duration
	cells        map[cellKey][]entry
	count        int
	rebuilds     uint64
	lastRebuild  time.Time
}

// NewGrid creates a grid with the given cell size and rebuild cadence
func NewGrid(cellSize float64, rebuildEvery time.Duration) *Grid {
	return &Grid{
		CellSize:     cellSize,
		RebuildEvery: rebuildEvery,
		cells:        make(map[cellKey][]entry),
	}
}

func (g *Grid) key(p vec.V2) cellKey {
	return cellKey{
		X: int32(math.Floor(p.X / g.CellSize)),
		Y: int32(math.Floor(p.Y / g.CellSize)),
	}
}

// Rebuild discards the previous snapshot and indexes every registered
// entity's current position
func (g *Grid) Rebuild(w *core.World) {
	for k := range g.cells {
		delete(g.cells, k)
	}
	g.count = 0
	for _, id := range w.Query(core.CompSpatial, core.CompTransform) {
		tr := w.Get(id, core.CompTransform).(*core.Transform)
		k := g.key(tr.Pos)
		g.cells[k] = append(g.cells[k], entry{id: id, pos: tr.Pos})
		g.count++
	}
	g.rebuilds++
}

// MaybeRebuild rebuilds when the cadence has elapsed. It runs on wall
// time, out of phase with simulation ticks. Returns true when a rebuild
// happened.
func (g *Grid) MaybeRebuild(w *core.World, now time.Time) bool {
	if now.Sub(g.lastRebuild) < g.RebuildEvery {
		return false
	}
	g.Rebuild(w)
	g.lastRebuild = now
	return true
}

// WithinDistance returns all indexed entities within radius of p, sorted
// by distance then ID. Results reflect the last rebuild, not the live
// world.
func (g *Grid) WithinDistance(p vec.V2, radius float64) []Hit {
	return g.WithinDistanceBuf(p, radius, nil)
}

// WithinDistanceBuf appends hits to buf and returns it, avoiding
// allocation on hot paths
func (g *Grid) WithinDistanceBuf(p vec.V2, radius float64, buf []Hit) []Hit {
	minK := g.key(vec.V(p.X-radius, p.Y-radius))
	maxK := g.key(vec.V(p.X+radius, p.Y+radius))
	for cy := minK.Y; cy <= maxK.Y; cy++ {
		for cx := minK.X; cx <= maxK.X; cx++ {
			for _, e := range g.cells[cellKey{X: cx, Y: cy}] {
				d := p.Dist(e.pos)
				if d <= radius {
					buf = append(buf, Hit{Dist: d, ID: e.id})
				}
			}
		}
	}
	sort.Slice(buf, func(i, j int) bool {
		if buf[i].Dist != buf[j].Dist {
			return buf[i].Dist < buf[j].Dist
		}
		return buf[i].ID < buf[j].ID
	})
	return buf
}

// Len returns the number of indexed entities in the current snapshot
func (g *Grid) Len() int {
	return g.count
}

// Rebuilds returns how many times the index has been rebuilt
func (g *Grid) Rebuilds() uint64 {
	return g.rebuilds
}
