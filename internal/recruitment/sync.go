package recruitment

import (
	"context"
	"sync"
)

// SyncState says where a mutation ended up.
type SyncState string

const (
	// SyncRemote means the write reached the remote backend.
	SyncRemote SyncState = "remote"
	// SyncLocal means the write only reached the local store, either because
	// no backend is configured or because the backend failed.
	SyncLocal SyncState = "local"
)

type syncRecorder struct {
	mu       sync.Mutex
	remote   bool
	fellBack bool
}

type recorderKey struct{}

// trackSync attaches a recorder to ctx, reusing one already present so that
// nested service calls report a single state.
func trackSync(ctx context.Context) (context.Context, *syncRecorder) {
	if rec, ok := ctx.Value(recorderKey{}).(*syncRecorder); ok {
		return ctx, rec
	}
	rec := &syncRecorder{}
	return context.WithValue(ctx, recorderKey{}, rec), rec
}

func recorderFrom(ctx context.Context) *syncRecorder {
	rec, _ := ctx.Value(recorderKey{}).(*syncRecorder)
	return rec
}

func (r *syncRecorder) markRemote() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.remote = true
	r.mu.Unlock()
}

func (r *syncRecorder) markLocal() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.fellBack = true
	r.mu.Unlock()
}

// State is SyncLocal if any write fell back, SyncRemote if at least one write
// reached the backend, and SyncLocal otherwise.
func (r *syncRecorder) State() SyncState {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.remote && !r.fellBack {
		return SyncRemote
	}
	return SyncLocal
}
