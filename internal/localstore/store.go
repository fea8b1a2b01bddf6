// Package localstore persists record collections as JSON arrays under
// well-known keys in a key-value store.
package localstore

import (
	"context"
	"fmt"
)

// Well-known collection keys.
const (
	KeyImportedCVs = "importedCVs"
	KeyInterviews  = "interviews"
	KeyJobPostings = "jobPostings"
	KeyCandidates  = "candidates"
)

// Store is a key-value store of serialized collections. Load returns nil, nil
// for a key that was never saved.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Options selects and configures a Store backend.
type Options struct {
	Backend  string
	Dir      string
	RedisURL string
}

// Open creates the Store selected by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.Dir)
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		return NewRedisStore(ctx, opts.RedisURL)
	default:
		return nil, fmt.Errorf("unknown local store backend %q", opts.Backend)
	}
}
