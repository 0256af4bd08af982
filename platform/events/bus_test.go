package events

import (
	"context"
	"errors"
	"testing"

	"crmpulse/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishSyncDeliversInRegistrationOrder(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))
	var seen []string
	bus.Subscribe("ping", HandlerFunc(func(ctx context.Context, e Event) error {
		seen = append(seen, "first")
		return nil
	}))
	bus.Subscribe("ping", HandlerFunc(func(ctx context.Context, e Event) error {
		seen = append(seen, "second")
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{NewBaseEvent(), "ping"}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(seen) != 2 || seen[0] != "first" || seen[1] != "second" {
		t.Fatalf("unexpected delivery order: %v", seen)
	}
}

func TestPublishSyncJoinsHandlerErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))
	boom := errors.New("boom")
	bus.Subscribe("ping", HandlerFunc(func(ctx context.Context, e Event) error { return boom }))
	bus.Subscribe("ping", HandlerFunc(func(ctx context.Context, e Event) error { return nil }))

	err := bus.PublishSync(context.Background(), testEvent{NewBaseEvent(), "ping"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected handler error to surface, got %v", err)
	}
}

func TestPublishSyncNoSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))
	if err := bus.PublishSync(context.Background(), testEvent{NewBaseEvent(), "silence"}); err != nil {
		t.Fatalf("expected no error without subscribers, got %v", err)
	}
}

func TestSubscribeIsEventNameScoped(t *testing.T) {
	bus := NewInMemoryBus(logger.New("test"))
	called := false
	bus.Subscribe("a", HandlerFunc(func(ctx context.Context, e Event) error {
		called = true
		return nil
	}))

	_ = bus.PublishSync(context.Background(), testEvent{NewBaseEvent(), "b"})
	if called {
		t.Fatal("handler for a different event name was invoked")
	}
}
