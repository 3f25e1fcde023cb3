package core

import "testing"

func TestEventsQueuedUntilDispatch(t *testing.T) {
	eb := NewEventBus()
	var got []int
	eb.On(EvtDamage, func(e Event) {
		got = append(got, e.Payload.(DamagePayload).Amount)
	})

	eb.Emit(Event{Type: EvtDamage, Payload: DamagePayload{Amount: 3}})
	eb.Emit(Event{Type: EvtDamage, Payload: DamagePayload{Amount: 4}})
	if len(got) != 0 {
		t.Fatal("events delivered before dispatch")
	}

	eb.Dispatch()
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("expected [3 4], got %v", got)
	}

	// Queue must be drained exactly once
	eb.Dispatch()
	if len(got) != 2 {
		t.Errorf("queue not drained: got %v", got)
	}
}

func TestDispatchSkipsUnregisteredTypes(t *testing.T) {
	eb := NewEventBus()
	eb.Emit(Event{Type: EvtToggleUI})
	eb.Dispatch()
	if eb.Pending() != 0 {
		t.Errorf("expected empty queue, got %d pending", eb.Pending())
	}
}

func TestMultipleHandlersPerType(t *testing.T) {
	eb := NewEventBus()
	calls := 0
	eb.On(EvtThrust, func(e Event) { calls++ })
	eb.On(EvtThrust, func(e Event) { calls++ })
	eb.Emit(Event{Type: EvtThrust, Payload: ThrustPayload{Strength: 1}})
	eb.Dispatch()
	if calls != 2 {
		t.Errorf("expected 2 handler calls, got %d", calls)
	}
}

func TestButtonMask(t *testing.T) {
	b := BtnFireMissile | BtnStrafeLeft
	if !b.Has(BtnFireMissile) {
		t.Error("expected fire missile bit set")
	}
	if b.Has(BtnToggleUI) {
		t.Error("toggle bit must not be set")
	}
}
