package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

// Stick deadzones. The aim stick doubles as the railgun trigger, so it
// wants a firm push before it registers.
const (
	moveDeadzone = 0.5
	aimDeadzone  = 0.8
)

// Reader polls keyboard and gamepad once per frame and folds both into
// the single InputFrame the simulation consumes. Keyboard wins when
// both devices speak.
type Reader struct {
	frame  core.InputFrame
	ids    []ebiten.GamepadID
	pad    ebiten.GamepadID
	hasPad bool
}

func NewReader() *Reader {
	return &Reader{}
}

// Update should be called every frame, before the simulation ticks
func (r *Reader) Update() {
	r.ids = ebiten.AppendGamepadIDs(r.ids[:0])
	r.hasPad = len(r.ids) > 0
	if r.hasPad {
		r.pad = r.ids[0]
	}

	var f core.InputFrame
	f.Move = keyboardVector(ebiten.KeyW, ebiten.KeyS, ebiten.KeyA, ebiten.KeyD)
	f.Aim = keyboardVector(ebiten.KeyUp, ebiten.KeyDown, ebiten.KeyLeft, ebiten.KeyRight)

	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		f.Buttons |= core.BtnFireMissile
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		f.Buttons |= core.BtnStrafeLeft
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		f.Buttons |= core.BtnStrafeRight
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		f.Buttons |= core.BtnToggleUI
	}

	if r.hasPad {
		if f.Move.LenSq() == 0 {
			f.Move = r.padStick(0, moveDeadzone)
		}
		if f.Aim.LenSq() == 0 {
			f.Aim = r.padStick(1, aimDeadzone)
		}
		f.Buttons |= r.padButtons()
	}

	r.frame = f
}

// Frame returns the batch assembled by the last Update
func (r *Reader) Frame() core.InputFrame {
	return r.frame
}

// Pad reports the active gamepad, for rumble
func (r *Reader) Pad() (ebiten.GamepadID, bool) {
	return r.pad, r.hasPad
}

// JustPressed wraps the one-frame edge check
func (r *Reader) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func keyboardVector(up, down, left, right ebiten.Key) vec.V2 {
	var v vec.V2
	if ebiten.IsKeyPressed(up) {
		v.Y += 1
	}
	if ebiten.IsKeyPressed(down) {
		v.Y -= 1
	}
	if ebiten.IsKeyPressed(left) {
		v.X -= 1
	}
	if ebiten.IsKeyPressed(right) {
		v.X += 1
	}
	return v.Normalize()
}

// padStick reads stick 0 (left) or 1 (right), with a radial deadzone.
// Pad Y axes point down; world Y points up.
func (r *Reader) padStick(stick int, deadzone float64) vec.V2 {
	var h, v float64
	if ebiten.IsStandardGamepadLayoutAvailable(r.pad) {
		if stick == 0 {
			h = ebiten.StandardGamepadAxisValue(r.pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
			v = ebiten.StandardGamepadAxisValue(r.pad, ebiten.StandardGamepadAxisLeftStickVertical)
		} else {
			h = ebiten.StandardGamepadAxisValue(r.pad, ebiten.StandardGamepadAxisRightStickHorizontal)
			v = ebiten.StandardGamepadAxisValue(r.pad, ebiten.StandardGamepadAxisRightStickVertical)
		}
	} else if stick == 0 {
		// No mapping known; assume the common axis order
		h = ebiten.GamepadAxisValue(r.pad, 0)
		v = ebiten.GamepadAxisValue(r.pad, 1)
	} else {
		h = ebiten.GamepadAxisValue(r.pad, 2)
		v = ebiten.GamepadAxisValue(r.pad, 3)
	}
	out := vec.V(h, -v)
	if out.Len() < deadzone {
		return vec.V2{}
	}
	return out
}

func (r *Reader) padButtons() core.ButtonMask {
	if !ebiten.IsStandardGamepadLayoutAvailable(r.pad) {
		return 0
	}
	var b core.ButtonMask
	if ebiten.IsStandardGamepadButtonPressed(r.pad, ebiten.StandardGamepadButtonFrontBottomRight) {
		b |= core.BtnFireMissile
	}
	if inpututil.IsStandardGamepadButtonJustPressed(r.pad, ebiten.StandardGamepadButtonFrontTopLeft) {
		b |= core.BtnStrafeLeft
	}
	if inpututil.IsStandardGamepadButtonJustPressed(r.pad, ebiten.StandardGamepadButtonFrontTopRight) {
		b |= core.BtnStrafeRight
	}
	if inpututil.IsStandardGamepadButtonJustPressed(r.pad, ebiten.StandardGamepadButtonCenterLeft) {
		b |= core.BtnToggleUI
	}
	return b
}
