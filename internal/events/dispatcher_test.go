package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherDeliversByType(t *testing.T) {
	d := NewInMemoryDispatcher()
	var leadEvents, ticketEvents []Event

	d.Subscribe(EventLeadCreated, func(_ context.Context, e Event) error {
		leadEvents = append(leadEvents, e)
		return nil
	})
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		ticketEvents = append(ticketEvents, e)
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventLeadCreated, EntityID: "l1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(leadEvents) != 1 || leadEvents[0].EntityID != "l1" {
		t.Errorf("lead handler got %v", leadEvents)
	}
	if len(ticketEvents) != 0 {
		t.Errorf("ticket handler got %v, want nothing", ticketEvents)
	}
}

func TestDispatcherCatchAll(t *testing.T) {
	d := NewInMemoryDispatcher()
	var seen []EventType
	d.SubscribeAll(func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	})

	ctx := context.Background()
	_ = d.Publish(ctx, Event{Type: EventLeadAssigned})
	_ = d.Publish(ctx, Event{Type: EventUserDeleted})

	if len(seen) != 2 || seen[0] != EventLeadAssigned || seen[1] != EventUserDeleted {
		t.Errorf("catch-all saw %v", seen)
	}
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	d := NewInMemoryDispatcher()
	calls := 0
	d.Subscribe(EventTicketAssigned, func(_ context.Context, _ Event) error {
		calls++
		return errors.New("boom")
	})
	d.Subscribe(EventTicketAssigned, func(_ context.Context, _ Event) error {
		calls++
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketAssigned}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
