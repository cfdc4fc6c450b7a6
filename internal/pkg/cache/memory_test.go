package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClient_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()

	_, err := c.Get(ctx, "product:P1")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "product:P1", []byte("1"), time.Minute))
	val, err := c.Get(ctx, "product:P1")
	require.NoError(t, err)
	assert.Equal(t, "1", val)

	require.NoError(t, c.Delete(ctx, "product:P1"))
	_, err = c.Get(ctx, "product:P1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_Expiration(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryClient()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", time.Second))
	now = now.Add(2 * time.Second)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_IncrKeepsTTL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryClient()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "rate-limit:1.2.3.4", 1, time.Minute))
	n, err := c.Incr(ctx, "rate-limit:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := c.GetInt(ctx, "rate-limit:1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	now = now.Add(time.Minute)
	_, err = c.GetInt(ctx, "rate-limit:1.2.3.4")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_IncrMissingKeyStartsAtOne(t *testing.T) {
	n, err := NewMemoryClient().Incr(context.Background(), "novo")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
