package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "value", time.Minute))

	var got string
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, "value", got)
}

func TestMemoryMiss(t *testing.T) {
	c := NewMemory()
	var got string
	err := c.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "value", time.Nanosecond))
	time.Sleep(time.Millisecond)

	var got string
	err := c.Get(ctx, "k", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "value", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	var got string
	assert.ErrorIs(t, c.Get(ctx, "k", &got), ErrNotFound)
}

func TestMemoryClosed(t *testing.T) {
	c := NewMemory()
	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Set(context.Background(), "k", "v", time.Minute), ErrClosed)
}
