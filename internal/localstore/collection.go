package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/talentdesk/internal/schemas"
)

// Record is anything stored in a Collection.
type Record interface {
	RecordID() string
}

// Collection is a typed JSON array stored under one key. Every mutation loads
// the array, applies one change and rewrites it, holding the collection lock
// throughout so writes to the same key never interleave.
type Collection[T Record] struct {
	store Store
	key   string
	mu    sync.Mutex
}

// NewCollection binds a record type to a key.
func NewCollection[T Record](store Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key returns the store key.
func (c *Collection[T]) Key() string {
	return c.key
}

// All loads every record. A missing key is an empty collection. Keys with a
// registered schema are validated before decoding.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.store.Load(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []T{}, nil
	}

	if schemas.HasSchema(c.key) {
		if err := schemas.ValidateCollection(c.key, data); err != nil {
			return nil, fmt.Errorf("stored %s failed validation: %w", c.key, err)
		}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	return c.store.Save(ctx, c.key, data)
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(ctx, items)
}

// Get returns the record with id, or nil when absent.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	items, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].RecordID() == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Put appends item, or replaces the stored record with the same id.
func (c *Collection[T]) Put(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].RecordID() == item.RecordID() {
			items[i] = item
			return c.save(ctx, items)
		}
	}
	return c.save(ctx, append(items, item))
}

// Delete removes the record with id and reports whether it existed.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range items {
		if items[i].RecordID() == id {
			return true, c.save(ctx, append(items[:i], items[i+1:]...))
		}
	}
	return false, nil
}
