package worker

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	testhelpers "github.com/polkiloo/storeadmin/internal/test"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewActivityWriterDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	w := NewActivityWriter(&testhelpers.ActivityRepositoryStub{}, 0, 0, logger)
	if w.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", w.workers)
	}
	if cap(w.jobs) != 1 {
		t.Fatalf("expected buffer default to 1, got %d", cap(w.jobs))
	}
}

func TestActivityWriterPersistsEvents(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := &testhelpers.ActivityRepositoryStub{}
	w := NewActivityWriter(repo, 2, 8, logger)
	w.Start()

	payload := map[string]any{"order_id": int64(1)}
	w.Record(context.Background(), "order.status_changed", payload)
	w.Record(context.Background(), "bulk.activate", map[string]any{"affected": int64(2)})
	payload["order_id"] = int64(99)

	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	entries := repo.Snapshot()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if _, err := uuid.Parse(e.ID); err != nil {
			t.Fatalf("expected uuid event id, got %q", e.ID)
		}
		if e.OccurredAt.IsZero() {
			t.Fatalf("expected occurrence time")
		}
		if e.Event == "order.status_changed" && e.Payload["order_id"] != int64(1) {
			t.Fatalf("payload must not follow caller mutation: %v", e.Payload)
		}
	}
}

func TestActivityWriterDropsWhenQueueFull(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	repo := &testhelpers.ActivityRepositoryStub{}
	w := NewActivityWriter(repo, 1, 1, logger)

	w.Record(context.Background(), "first", nil)
	w.Record(context.Background(), "second", nil)

	if !strings.Contains(out.String(), "queue full") {
		t.Fatalf("expected drop warning, got %q", out.String())
	}

	w.Start()
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	entries := repo.Snapshot()
	if len(entries) != 1 || entries[0].Event != "first" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestActivityWriterLogsWriteFailure(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	repo := &testhelpers.ActivityRepositoryStub{Err: errors.New("insert failed")}
	w := NewActivityWriter(repo, 1, 4, logger)
	w.Start()

	w.Record(context.Background(), "bulk.delete", nil)
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	if !strings.Contains(out.String(), "activity event not persisted") {
		t.Fatalf("expected failure warning, got %q", out.String())
	}
}

func TestActivityWriterRecordAfterStop(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	repo := &testhelpers.ActivityRepositoryStub{}
	w := NewActivityWriter(repo, 1, 4, logger)
	w.Start()
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("second stop failed: %v", err)
	}

	w.Record(context.Background(), "late", nil)
	w.Start()

	if len(repo.Snapshot()) != 0 {
		t.Fatal("expected nothing persisted after stop")
	}
	if !strings.Contains(out.String(), "writer stopped") {
		t.Fatalf("expected drop warning, got %q", out.String())
	}
}

func TestActivityWriterStopHonoursDeadline(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	gate := make(chan struct{})
	repo := &testhelpers.ActivityRepositoryStub{Gate: gate}
	w := NewActivityWriter(repo, 1, 4, logger)
	w.Start()
	w.Record(context.Background(), "slow", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := w.Stop(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	close(gate)
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("stop after release failed: %v", err)
	}
	if len(repo.Snapshot()) != 1 {
		t.Fatal("expected queued entry to be persisted")
	}
}
