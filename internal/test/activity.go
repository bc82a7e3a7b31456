package test

import (
	"context"
	"sync"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// ActivityCall captures one ActivityLog.Record invocation.
type ActivityCall struct {
	Event   string
	Payload map[string]any
}

// ActivityRecorder is an in-memory ActivityLog.
type ActivityRecorder struct {
	mu    sync.Mutex
	calls []ActivityCall
}

// Record stores the event.
func (r *ActivityRecorder) Record(ctx context.Context, event string, payload map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, ActivityCall{Event: event, Payload: payload})
}

// Calls returns a snapshot of recorded events.
func (r *ActivityRecorder) Calls() []ActivityCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ActivityCall(nil), r.calls...)
}

// PermissionStub answers every capability check with Allow and records what was asked.
type PermissionStub struct {
	Allow   bool
	Checked []model.Capability
}

// Has records the checked capability and returns Allow.
func (p *PermissionStub) Has(c model.Capability) bool {
	p.Checked = append(p.Checked, c)
	return p.Allow
}

var _ model.ActivityLog = (*ActivityRecorder)(nil)
var _ model.PermissionCheck = (*PermissionStub)(nil)

// ActivityRepositoryStub collects appended entries. Gate, when set, blocks Append until it is closed.
type ActivityRepositoryStub struct {
	sync.Mutex

	Entries []model.ActivityEntry
	Err     error
	Gate    chan struct{}
}

// Append implements repository.ActivityRepository.
func (s *ActivityRepositoryStub) Append(ctx context.Context, entry model.ActivityEntry) error {
	if s.Gate != nil {
		<-s.Gate
	}
	s.Lock()
	defer s.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Entries = append(s.Entries, entry)
	return nil
}

// Snapshot returns a copy of persisted entries.
func (s *ActivityRepositoryStub) Snapshot() []model.ActivityEntry {
	s.Lock()
	defer s.Unlock()
	return append([]model.ActivityEntry(nil), s.Entries...)
}
