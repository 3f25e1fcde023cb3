package core

import "github.com/relayzero/drift-engine/engine/vec"

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtThrust EventType = iota
	EvtDamage
	EvtSpawnVisual
	EvtShipDestroyed
	EvtToggleUI
)

// ButtonMask holds the discrete buttons pressed this tick
type ButtonMask uint16

const (
	BtnFireMissile ButtonMask = 1 << iota
	BtnStrafeLeft
	BtnStrafeRight
	BtnToggleUI
)

func (b ButtonMask) Has(m ButtonMask) bool { return b&m != 0 }

// InputFrame is the per-tick input batch: stick vectors plus pressed
// buttons, already deadzone-filtered. Delivered to the simulation once
// per tick, and recorded verbatim by replays.
type InputFrame struct {
	Move    vec.V2
	Aim     vec.V2
	Buttons ButtonMask
}

// ThrustPayload reports a ship burning its drive at the given strength
type ThrustPayload struct {
	Ship     EntityID
	Strength float64
}

// DamagePayload deals integer damage to a target entity
type DamagePayload struct {
	Target EntityID
	Amount int
}

// SpawnVisualPayload requests a visual effect
type SpawnVisualPayload struct {
	Kind  VisualKind
	Pos   vec.V2
	Rot   float64
	Scale float64
}

// ShipDestroyedPayload reports a hull reaching zero health
type ShipDestroyedPayload struct {
	ID   EntityID
	Side SideID
	Pos  vec.V2
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Dispatch processes all queued events. Called exactly once per tick,
// after systems have run.
func (eb *EventBus) Dispatch() {
	for _, e := range eb.queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	eb.queue = eb.queue[:0]
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}
