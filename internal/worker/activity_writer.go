package worker

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

const writeTimeout = 5 * time.Second

// ActivityWriter is an asynchronous model.ActivityLog. Events are queued in a bounded buffer and
// persisted by a fixed pool of workers; nothing is ever reported back to the caller.
type ActivityWriter struct {
	repo    repository.ActivityRepository
	workers int
	logger  *slog.Logger

	jobs    chan model.ActivityEntry
	wg      sync.WaitGroup
	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewActivityWriter constructs activity writer worker pool.
func NewActivityWriter(repo repository.ActivityRepository, workers, buffer int, logger *slog.Logger) *ActivityWriter {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 1
	}
	return &ActivityWriter{
		repo:    repo,
		workers: workers,
		logger:  logger,
		jobs:    make(chan model.ActivityEntry, buffer),
	}
}

// Record enqueues the event without blocking. Events are dropped when the queue is full or the
// writer has been stopped.
func (w *ActivityWriter) Record(ctx context.Context, event string, payload map[string]any) {
	entry := model.ActivityEntry{
		ID:         uuid.NewString(),
		Event:      event,
		Payload:    maps.Clone(payload),
		OccurredAt: time.Now().UTC(),
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		w.logger.Warn("activity event dropped", slog.String("event", event), slog.String("reason", "writer stopped"))
		return
	}

	select {
	case w.jobs <- entry:
	default:
		w.logger.Warn("activity event dropped", slog.String("event", event), slog.String("reason", "queue full"))
	}
}

// Start launches background workers.
func (w *ActivityWriter) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started || w.closed {
		return
	}
	w.started = true

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker()
	}
}

// Stop closes the queue and waits until workers drain it or ctx expires.
func (w *ActivityWriter) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.jobs)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *ActivityWriter) worker() {
	defer w.wg.Done()
	for entry := range w.jobs {
		w.write(entry)
	}
}

func (w *ActivityWriter) write(entry model.ActivityEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := w.repo.Append(ctx, entry); err != nil {
		w.logger.Warn("activity event not persisted",
			slog.String("event", entry.Event),
			slog.String("event_id", entry.ID),
			slog.String("error", err.Error()),
		)
	}
}

var _ model.ActivityLog = (*ActivityWriter)(nil)
