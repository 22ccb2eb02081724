package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryPreferenceStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "theme_u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "theme_u1", "neon", 0))

	value, ok, err := store.Get(ctx, "theme_u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "neon", value)

	require.NoError(t, store.Delete(ctx, "theme_u1"))

	_, ok, err = store.Get(ctx, "theme_u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	store := NewMemoryPreferenceStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v", 10*time.Millisecond))

	_, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
