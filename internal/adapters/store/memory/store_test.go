package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

func TestStore_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "a", "1"))
	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, s.Remove(ctx, "a"))
	_, ok, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_KeysSorted(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Set(ctx, "b", "2"))
	require.NoError(t, s.Set(ctx, "a", "1"))

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestStore_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SetQuota(10)

	require.NoError(t, s.Set(ctx, "a", "abc")) // 6 bytes
	err := s.Set(ctx, "b", "abc")              // would be 12
	assert.ErrorIs(t, err, domain.ErrStorageQuotaExceeded)

	// overwriting the existing key does not double-count it
	require.NoError(t, s.Set(ctx, "a", "abcde"))
}

func TestStore_FailKey(t *testing.T) {
	ctx := context.Background()
	s := New()
	boom := errors.New("boom")
	s.FailKey("x", boom)

	assert.ErrorIs(t, s.Set(ctx, "x", "v"), boom)
	require.NoError(t, s.Set(ctx, "y", "v"))
}
