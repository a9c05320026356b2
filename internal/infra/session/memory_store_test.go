package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musea/internal/domain/service"
)

func TestMemoryStore_SaveAndFind(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	session := &service.Session{
		Token:     "token-1",
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.SaveSession(ctx, session))

	found, err := store.FindSession(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), found.UserID)

	// The store hands out copies, so mutating the result must not leak back.
	found.UserID = 7
	again, err := store.FindSession(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), again.UserID)
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	_, err := store.FindSession(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_ExpiredSession(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, &service.Session{
		Token:     "stale",
		UserID:    1,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := store.FindSession(ctx, "stale")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, &service.Session{
		Token:     "gone",
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, store.DeleteSession(ctx, "gone"))
	// Deleting twice is not an error.
	require.NoError(t, store.DeleteSession(ctx, "gone"))

	_, err := store.FindSession(ctx, "gone")
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}
