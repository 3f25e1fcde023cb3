package systems

import (
	"math"

	"github.com/relayzero/drift-engine/engine/core"
)

// scanConeHalfAngle is the half-width of the player's forward scan cone
const scanConeHalfAngle = math.Pi / 4

// ScannerSystem recomputes, every tick, which hostile ships sit inside
// the player's forward scan cone. Marks are overwritten wholesale each
// pass; nothing carries over from the previous tick while a player is
// present.
type ScannerSystem struct {
	Settings *core.Settings
}

func (s *ScannerSystem) Priority() int { return 20 }

func (s *ScannerSystem) Update(w *core.World, dt float64) {
	players := w.Query(core.CompPlayer, core.CompTransform)
	if len(players) == 0 {
		return
	}
	pt := w.Get(players[0], core.CompTransform).(*core.Transform)
	forward := pt.Forward()

	for _, id := range w.Query(core.CompFireTarget, core.CompTransform) {
		tt := w.Get(id, core.CompTransform).(*core.Transform)
		ft := w.Get(id, core.CompFireTarget).(*core.FireTarget)

		to := tt.Pos.Sub(pt.Pos)
		angle := forward.AngleTo(to)
		// Inclusive on angle, exclusive on distance
		ft.InCone = math.Abs(angle) <= scanConeHalfAngle && to.Len() < s.Settings.ScanRadius
	}
}
