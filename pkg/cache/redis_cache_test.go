package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestPing_MemoryCacheAlwaysOK(t *testing.T) {
	assert.NoError(t, Ping(context.Background(), NewMemoryCache()))
}

func TestPing_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisCacheFromClient(client)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := Ping(ctx, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}
