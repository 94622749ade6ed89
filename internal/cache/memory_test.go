package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(2)

	_, ok, err := m.Get(ctx, "api:/a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "api:/a", []byte("A"), time.Minute))
	val, ok, err := m.Get(ctx, "api:/a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("A"), val)

	require.NoError(t, m.Set(ctx, "api:/a", []byte("A2"), time.Minute))
	val, _, _ = m.Get(ctx, "api:/a")
	assert.Equal(t, []byte("A2"), val)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(2)

	require.NoError(t, m.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, m.Set(ctx, "b", []byte("2"), 0))
	_, _, _ = m.Get(ctx, "a")
	require.NoError(t, m.Set(ctx, "c", []byte("3"), 0))

	_, okA, _ := m.Get(ctx, "a")
	_, okB, _ := m.Get(ctx, "b")
	_, okC, _ := m.Get(ctx, "c")
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, 2, m.Len())
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(10)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, _ := m.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = m.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestMemoryStore_ClearByPrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore(1000)
	for i := 0; i < 5; i++ {
		require.NoError(t, m.Set(ctx, fmt.Sprintf("api:/stats/%d", i), []byte("x"), 0))
	}
	require.NoError(t, m.Set(ctx, "other", []byte("x"), 0))

	n, err := m.Clear(ctx, "api:")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, m.Len())

	stats := m.Stats(ctx)
	assert.Equal(t, "memory", stats.Backend)
	assert.Equal(t, 1, stats.Keys)
	assert.Equal(t, 1000, stats.Capacity)
}

func TestNewMemoryStore_PanicsOnZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { NewMemoryStore(0) })
}
