// Package fund is the single data-access boundary for members, payments and
// expenses. Service validates input and generates ids before touching the
// store, and records an audit event for each mutation.
package fund

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/azizulsheikh/studio/internal/audit"
	"github.com/azizulsheikh/studio/internal/metrics"
	"github.com/azizulsheikh/studio/internal/middleware"
	"github.com/azizulsheikh/studio/internal/prioritize"
	"github.com/azizulsheikh/studio/internal/storage"
)

// Service implements the fund's boundary operations on top of a storage.Store.
type Service struct {
	store    storage.Store
	delegate *prioritize.Delegate
	audit    audit.Recorder
	metrics  *metrics.Metrics
	now      func() time.Time
	newID    func() string
}

// Option configures a Service.
type Option func(*Service)

// WithAudit sends mutation events to r.
func WithAudit(r audit.Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.audit = r
		}
	}
}

// WithMetrics records mutation and integrity metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator overrides id generation (tests).
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// New creates a Service. A nil delegate leaves prioritization unconfigured.
func New(store storage.Store, delegate *prioritize.Delegate, opts ...Option) *Service {
	if delegate == nil {
		delegate = prioritize.New(nil, 0, nil)
	}
	s := &Service{
		store:    store,
		delegate: delegate,
		audit:    audit.Discard,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// record emits an audit event for a successful mutation.
func (s *Service) record(ctx context.Context, collection, op, eventType string, data any) {
	s.metrics.Mutation(collection, op)
	s.audit.Record(audit.NewEvent(
		audit.WithType(eventType),
		audit.WithData(data),
		audit.WithMetadata("actor", middleware.GetUserID(ctx)),
		audit.WithMetadata("request_id", middleware.GetRequestID(ctx)),
	))
}
