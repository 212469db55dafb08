package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/LootRoller_Go/internal/domain"
)

// Type represents the type of an event
type Type string

const (
	ItemRolled     Type = domain.EventTypeItemRolled
	SessionStarted Type = domain.EventTypeSessionStarted
)

// Metadata carries the context an event was raised in.
type Metadata struct {
	SessionID string `json:"session_id,omitempty"`
}

// Event is one notification on the bus. Payload holds a domain payload struct.
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

func newEvent(t Type, payload interface{}, sessionID string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{SessionID: sessionID},
	}
}

// NewItemRolledEvent wraps a finished roll for subscribers.
func NewItemRolledEvent(payload domain.ItemRolledPayload, sessionID string) Event {
	return newEvent(ItemRolled, payload, sessionID)
}

// NewSessionStartedEvent wraps the starting equipment of a session.
func NewSessionStartedEvent(payload domain.SessionStartedPayload, sessionID string) Event {
	return newEvent(SessionStarted, payload, sessionID)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus dispatches events to in-process subscribers on the caller's goroutine.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates a bus with no subscribers
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler subscribed to event.Type in subscription order.
// A failing handler does not stop the ones after it; all failures are joined
// into the returned error.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgHandlersFailedFormat, len(errs), event.Type, errors.Join(errs...))
}

// Subscribe registers handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
