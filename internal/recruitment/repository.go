package recruitment

import (
	"context"
	"fmt"

	"github.com/jonathan/talentdesk/internal/localstore"
	"github.com/jonathan/talentdesk/internal/logging"
)

// Repository is the record store every service works against. Get returns
// nil, nil for a missing record.
type Repository[T localstore.Record] interface {
	All(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Put(ctx context.Context, item T) error
	Delete(ctx context.Context, id string) (bool, error)
}

// Fallback reads and writes through a remote repository and falls back to a
// local one when the remote fails. Successful remote writes are mirrored
// locally so the local copy stays usable offline. Remote errors are logged,
// never returned.
type Fallback[T localstore.Record] struct {
	name   string
	remote Repository[T]
	local  Repository[T]
	log    *logging.Logger
}

// NewFallback wraps remote with local.
func NewFallback[T localstore.Record](name string, remote, local Repository[T], log *logging.Logger) *Fallback[T] {
	if log == nil {
		log = logging.Nop()
	}
	return &Fallback[T]{name: name, remote: remote, local: local, log: log.With("collection", name)}
}

// All returns the remote records followed by local records the remote does
// not know yet, so writes made during an outage stay listed until pushed.
func (f *Fallback[T]) All(ctx context.Context) ([]T, error) {
	items, err := f.remote.All(ctx)
	if err != nil {
		f.log.Warn("remote read failed, using local store", "error", err)
		return f.local.All(ctx)
	}

	local, err := f.local.All(ctx)
	if err != nil {
		f.log.Warn("local read failed, listing remote only", "error", err)
		return items, nil
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item.RecordID()] = struct{}{}
	}
	for _, item := range local {
		if _, ok := seen[item.RecordID()]; !ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// Get prefers the remote copy and falls back to the local one when the remote
// fails or does not know the record, which happens for records saved during
// an outage.
func (f *Fallback[T]) Get(ctx context.Context, id string) (*T, error) {
	item, err := f.remote.Get(ctx, id)
	if err != nil {
		f.log.Warn("remote read failed, using local store", "id", id, "error", err)
	} else if item != nil {
		return item, nil
	}
	return f.local.Get(ctx, id)
}

func (f *Fallback[T]) Put(ctx context.Context, item T) error {
	rec := recorderFrom(ctx)
	if err := f.remote.Put(ctx, item); err != nil {
		f.log.Warn("remote write failed, saved locally", "id", item.RecordID(), "error", err)
		rec.markLocal()
		return f.local.Put(ctx, item)
	}
	rec.markRemote()
	if err := f.local.Put(ctx, item); err != nil {
		f.log.Warn("failed to mirror write locally", "id", item.RecordID(), "error", err)
	}
	return nil
}

func (f *Fallback[T]) Delete(ctx context.Context, id string) (bool, error) {
	rec := recorderFrom(ctx)
	remoteDeleted, err := f.remote.Delete(ctx, id)
	if err != nil {
		f.log.Warn("remote delete failed, deleting locally", "id", id, "error", err)
		rec.markLocal()
	} else {
		rec.markRemote()
	}
	localDeleted, err := f.local.Delete(ctx, id)
	if err != nil {
		return remoteDeleted, err
	}
	return remoteDeleted || localDeleted, nil
}

// Push copies every local record to the remote and returns how many were
// written. It stops at the first remote failure.
func (f *Fallback[T]) Push(ctx context.Context) (int, error) {
	items, err := f.local.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load local %s: %w", f.name, err)
	}
	for i, item := range items {
		if err := f.remote.Put(ctx, item); err != nil {
			return i, fmt.Errorf("failed to push %s %s: %w", f.name, item.RecordID(), err)
		}
	}
	return len(items), nil
}
