// Package audit records an append-only trail of fund mutations.
// Events are queued in memory and persisted by a background worker so a slow
// or failing audit backend never blocks or fails a mutation.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the fund service.
const (
	MemberCreated  = "member.created"
	MemberUpdated  = "member.updated"
	MemberDeleted  = "member.deleted"
	PaymentCreated = "payment.created"
	PaymentUpdated = "payment.updated"
	PaymentDeleted = "payment.deleted"
	ExpenseCreated = "expense.created"
	ExpenseUpdated = "expense.updated"
	ExpenseDeleted = "expense.deleted"
)

// Event is one audited action.
type Event struct {
	ID        uuid.UUID         `json:"id"`
	Type      string            `json:"eventType"`
	Data      any               `json:"eventData,omitempty"`
	Metadata  map[string]string `json:"eventMetadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

type EventOption func(*Event)

func WithType(eventType string) EventOption {
	return func(e *Event) {
		e.Type = eventType
	}
}

func WithData(data any) EventOption {
	return func(e *Event) {
		e.Data = data
	}
}

func WithMetadata(key, value string) EventOption {
	return func(e *Event) {
		if value != "" {
			e.Metadata[key] = value
		}
	}
}

func NewEvent(opts ...EventOption) Event {
	e := Event{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Metadata:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Filter narrows ListEvents. Zero values match everything.
type Filter struct {
	Type  string
	Limit int
}

// Logger persists events.
type Logger interface {
	SaveEvent(ctx context.Context, e Event) error
	ListEvents(ctx context.Context, f Filter) ([]Event, error)
}

// Recorder accepts events for asynchronous persistence.
type Recorder interface {
	Record(e Event)
}

// Discard is a Recorder that drops every event.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Event) {}
