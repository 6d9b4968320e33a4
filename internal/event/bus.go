// Package event provides the synchronous lifecycle event bus used by the publishing engine.
//
// Handlers run in registration order on the caller's goroutine. A payload is passed
// as-is, so handlers receiving a pointer may mutate it and later handlers, as well as
// the caller, observe the mutation once Trigger returns.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

type Handler func(ctx context.Context, payload any) error

type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *slog.Logger
}

func NewBus(log *slog.Logger) *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe appends h to the handlers of the named event.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], h)
}

// Trigger dispatches payload to every handler of the named event and stops at the first error.
func (b *Bus) Trigger(ctx context.Context, name string, payload any) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[name]))
	copy(handlers, b.handlers[name])
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	b.log.DebugContext(ctx, "triggering event", "event", name, "handlers", len(handlers))

	for i, h := range handlers {
		if err := h(ctx, payload); err != nil {
			return fmt.Errorf("event %s handler %d: %w", name, i, err)
		}
	}

	return nil
}

// Subscribers returns the number of handlers registered for the named event.
func (b *Bus) Subscribers(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[name])
}
