// Package publish broadcasts committed events to interested parties.
//
// Publication happens after the journal append commits, so subscribers only
// ever observe durable facts.
package publish

import (
	"context"
	"sync"

	"github.com/louisbranch/caseprogression/internal/services/progression/domain/event"
)

// Publisher receives the events of one committed append.
type Publisher interface {
	Publish(ctx context.Context, events []event.Event) error
}

// Handler reacts to one published event.
type Handler func(ctx context.Context, evt event.Event)

// Bus is a synchronous in-process publisher.
type Bus struct {
	mu          sync.RWMutex
	handlers    map[event.Type][]Handler
	allHandlers []Handler
	closed      bool
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[event.Type][]Handler)}
}

// Subscribe registers handler for one event type.
func (b *Bus) Subscribe(eventType event.Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers handler for every event.
func (b *Bus) SubscribeAll(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allHandlers = append(b.allHandlers, handler)
}

// Publish delivers events in order. Typed handlers run before global ones.
func (b *Bus) Publish(ctx context.Context, events []event.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil
	}
	for _, evt := range events {
		for _, handler := range b.handlers[evt.Type] {
			handler(ctx, evt)
		}
		for _, handler := range b.allHandlers {
			handler(ctx, evt)
		}
	}
	return nil
}

// Close stops delivery.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Fanout publishes to each publisher in turn and stops at the first error.
type Fanout []Publisher

// Publish satisfies Publisher.
func (f Fanout) Publish(ctx context.Context, events []event.Event) error {
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Publish(ctx, events); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Publisher = (*Bus)(nil)
	_ Publisher = Fanout(nil)
)
