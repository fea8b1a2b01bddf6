//go:build integration

package localstore

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestRedis(t *testing.T) *RedisStore {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set, skipping redis integration test")
	}

	store, err := NewRedisStore(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := getTestRedis(t)
	key := "test-" + t.Name()
	t.Cleanup(func() { store.client.Del(ctx, redisKeyPrefix+key) })

	data, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.Save(ctx, key, []byte(`[{"id":"a"}]`)))
	data, err = store.Load(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, string(data))
}

func TestRedisStore_Collection(t *testing.T) {
	ctx := context.Background()
	store := getTestRedis(t)
	key := "test-notes"
	t.Cleanup(func() { store.client.Del(ctx, redisKeyPrefix+key) })

	notes := NewCollection[note](store, key)
	require.NoError(t, notes.Put(ctx, note{ID: "a", Text: "hello"}))

	got, err := notes.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hello", got.Text)
}
