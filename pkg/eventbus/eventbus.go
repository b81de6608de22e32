// Package eventbus provides a small in-memory publish/subscribe bus used
// to push pipeline state changes to display collaborators.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Event is implemented by every event published on the bus.
type Event interface {
	EventType() string
}

// Bus dispatches events to handlers registered per event type. A nil *Bus
// is valid and drops every publish, so components can treat the bus as
// optional.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]func(context.Context, Event)
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{handlers: make(map[string][]func(context.Context, Event))}
}

// Publish delivers event to every handler subscribed to its type, in
// subscription order, on the caller's goroutine.
func (b *Bus) Publish(ctx context.Context, event Event) {
	if b == nil {
		return
	}
	slog.Debug("eventbus publish", "event_type", event.EventType(), "concrete_type", fmt.Sprintf("%T", event))
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, handler := range b.handlers[event.EventType()] {
		handler(ctx, event)
	}
}

// Subscribe registers a handler for the given event type.
func (b *Bus) Subscribe(eventType string, handler func(context.Context, Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
