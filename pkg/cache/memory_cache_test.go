package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetDel(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Set(ctx, "flash:1", "hello", time.Minute))

	v, err := c.Get(ctx, "flash:1")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	require.NoError(t, c.Del(ctx, "flash:1"))

	_, err = c.Get(ctx, "flash:1")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     func() time.Time { return now },
	}

	require.NoError(t, c.Set(ctx, "a", "1", time.Minute))
	require.NoError(t, c.Set(ctx, "b", "2", 0))

	now = now.Add(2 * time.Minute)

	_, err := c.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrMiss)

	v, err := c.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", v, "zero ttl never expires")
}

func TestPing_MemoryIsAlwaysReachable(t *testing.T) {
	assert.NoError(t, Ping(context.Background(), NewMemoryCache()))
}
