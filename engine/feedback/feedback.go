// Package feedback turns combat events into screen shake and gamepad
// rumble. Trauma accumulates from hits and decays over time; shake
// magnitude is trauma squared, so glancing hits whisper and kills slam.
package feedback

import (
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/relayzero/drift-engine/engine/core"
	"github.com/relayzero/drift-engine/engine/vec"
)

const (
	traumaDecay    = 1.0 // per second
	maxTrauma      = 1.0
	maxShake       = 14.0 // pixels at full trauma
	hitTrauma      = 0.45
	killTrauma     = 0.7
	attenuateDist  = 600.0
	rumbleDuration = 180 * time.Millisecond
)

// Manager listens for damage and destruction, shaking the camera and
// buzzing the pad in response
type Manager struct {
	Settings *core.Settings

	trauma      float64
	sinceRumble float64
	listener    vec.V2
	rng         *rand.Rand

	pad    ebiten.GamepadID
	hasPad bool
}

// NewManager registers the event consumers on the bus
func NewManager(w *core.World, s *core.Settings, bus *core.EventBus) *Manager {
	m := &Manager{
		Settings:    s,
		sinceRumble: s.TimeBetweenRumbles,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	bus.On(core.EvtDamage, func(e core.Event) {
		d := e.Payload.(core.DamagePayload)
		if w.Has(d.Target, core.CompPlayer) {
			m.AddTrauma(hitTrauma)
			m.rumble(0.9, 0.5)
		}
	})
	bus.On(core.EvtShipDestroyed, func(e core.Event) {
		p := e.Payload.(core.ShipDestroyedPayload)
		att := m.attenuate(p.Pos)
		m.AddTrauma(killTrauma * att)
		m.rumble(0.6*att, 1.0*att)
	})
	return m
}

// SetPad points the rumble at the active gamepad
func (m *Manager) SetPad(id ebiten.GamepadID, ok bool) {
	m.pad = id
	m.hasPad = ok
}

// SetListener moves the attenuation origin, normally the player
func (m *Manager) SetListener(p vec.V2) {
	m.listener = p
}

// AddTrauma raises the shake level, clamped to the ceiling
func (m *Manager) AddTrauma(t float64) {
	m.trauma += t
	if m.trauma > maxTrauma {
		m.trauma = maxTrauma
	}
}

// Trauma reports the current level
func (m *Manager) Trauma() float64 {
	return m.trauma
}

// Update decays trauma and advances the rumble rate limiter
func (m *Manager) Update(dt float64) {
	m.trauma -= traumaDecay * dt
	if m.trauma < 0 {
		m.trauma = 0
	}
	m.sinceRumble += dt
}

// Shake returns this frame's camera offset: a random direction scaled
// by trauma squared
func (m *Manager) Shake() vec.V2 {
	if m.trauma <= 0 {
		return vec.V2{}
	}
	mag := m.trauma * m.trauma * maxShake
	return vec.V(
		(m.rng.Float64()*2-1)*mag,
		(m.rng.Float64()*2-1)*mag,
	)
}

// attenuate scales an event by its distance from the listener,
// linear falloff to silence
func (m *Manager) attenuate(p vec.V2) float64 {
	dist := m.listener.Dist(p)
	if dist >= attenuateDist {
		return 0
	}
	return 1 - dist/attenuateDist
}

func (m *Manager) rumble(strong, weak float64) {
	if m.Settings != nil && !m.Settings.UseRumble {
		return
	}
	if !m.hasPad {
		return
	}
	if m.Settings != nil && m.sinceRumble < m.Settings.TimeBetweenRumbles {
		return
	}
	m.sinceRumble = 0
	ebiten.VibrateGamepad(m.pad, &ebiten.VibrateGamepadOptions{
		Duration:        rumbleDuration,
		StrongMagnitude: vec.Clamp(strong, 0, 1),
		WeakMagnitude:   vec.Clamp(weak, 0, 1),
	})
}
