package systems

import (
	"math"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

// PilotInput carries the per-tick input batch into the simulation.
// The shell (device polling or replay playback) writes Frame before
// each tick; control and weapon systems read it.
type PilotInput struct {
	Frame core.InputFrame
}

const (
	thrustEase   = 0.1
	thrustDecay  = 0.015
	strafeKick   = 3.0
	strafeDecay  = 0.895
	minTurnBlend = 0.02
)

// ControlSystem turns the pilot's stick input into ship motion: eased
// thrust along the nose, impulse strafe, and rotation toward the stick
// direction.
type ControlSystem struct {
	Input    *PilotInput
	EventBus *core.EventBus
}

func (s *ControlSystem) Priority() int { return 10 }

func (s *ControlSystem) Update(w *core.World, dt float64) {
	if s.Input.Frame.Buttons.Has(core.BtnToggleUI) && s.EventBus != nil {
		s.EventBus.Emit(core.Event{Type: core.EvtToggleUI, Tick: w.TickCount})
	}

	players := w.Query(core.CompPlayer, core.CompTransform, core.CompShipControl, core.CompShipStats)
	if len(players) == 0 {
		return
	}
	id := players[0]
	tr := w.Get(id, core.CompTransform).(*core.Transform)
	ctl := w.Get(id, core.CompShipControl).(*core.ShipControl)
	stats := w.Get(id, core.CompShipStats).(*core.ShipStats)
	frame := s.Input.Frame

	move := frame.Move
	if move.LenSq() > 0 {
		target := math.Min(move.Len(), 1)
		ctl.Thrust += (target - ctl.Thrust) * thrustEase

		// Rotate toward the stick; sluggish at low thrust, never stalled
		blend := math.Max(stats.TurnSpeed*ctl.Thrust, minTurnBlend)
		diff := tr.Forward().AngleTo(move)
		tr.Rot += diff * blend
	} else {
		ctl.Thrust -= thrustDecay
		if ctl.Thrust < 0 {
			ctl.Thrust = 0
		}
	}

	if frame.Buttons.Has(core.BtnStrafeLeft) {
		ctl.Strafe = -strafeKick
	}
	if frame.Buttons.Has(core.BtnStrafeRight) {
		ctl.Strafe = strafeKick
	}

	step := tr.Forward().Scale(ctl.Thrust * stats.MoveSpeed).
		Add(tr.Right().Scale(ctl.Strafe))
	if !step.IsFinite() {
		step = vec.V2{}
	}
	tr.Pos = tr.Pos.Add(step)

	ctl.Strafe *= strafeDecay

	if ctl.Thrust > 0.05 && s.EventBus != nil {
		s.EventBus.Emit(core.Event{
			Type:    core.EvtThrust,
			Tick:    w.TickCount,
			Payload: core.ThrustPayload{Ship: id, Strength: ctl.Thrust},
		})
	}
}
