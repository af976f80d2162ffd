package audit

import (
	"context"
	"log/slog"
	"sync"
)

// Worker drains queued events into a Logger on a single goroutine.
type Worker struct {
	eventCh   chan Event
	logger    Logger
	onDropped func()
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	once      sync.Once

	mu     sync.RWMutex
	closed bool
}

// NewWorker creates a worker with a queue of bufferSize events.
// onDropped, if not nil, is called for every event lost to a full queue.
func NewWorker(logger Logger, bufferSize int, onDropped func()) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		eventCh:   make(chan Event, bufferSize),
		logger:    logger,
		onDropped: onDropped,
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.ctx.Done():
				slog.Info("Draining audit events before shutdown", "remaining_events", len(w.eventCh))
				for len(w.eventCh) > 0 {
					w.save(context.Background(), <-w.eventCh)
				}
				return
			case event := <-w.eventCh:
				w.save(context.Background(), event)
			}
		}
	}()
}

func (w *Worker) save(ctx context.Context, event Event) {
	if err := w.logger.SaveEvent(ctx, event); err != nil {
		slog.Error("Failed to save audit event", "error", err, "event_type", event.Type, "event_id", event.ID)
	}
}

// Record queues an event without blocking. A full queue or a worker that
// has been shut down drops the event.
func (w *Worker) Record(event Event) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		slog.Warn("Audit worker stopped, dropping event", "event_type", event.Type, "event_id", event.ID)
		w.dropped()
		return
	}
	select {
	case w.eventCh <- event:
	default:
		slog.Warn("Audit queue full, dropping event", "event_type", event.Type, "event_id", event.ID)
		w.dropped()
	}
}

func (w *Worker) dropped() {
	if w.onDropped != nil {
		w.onDropped()
	}
}

// Shutdown stops accepting events and returns once every queued event has
// been persisted.
func (w *Worker) Shutdown() {
	w.once.Do(func() {
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()

		w.cancel()
		w.wg.Wait()
	})
}
