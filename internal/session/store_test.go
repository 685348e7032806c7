package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndCurrent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, ok := store.Current(ctx)
	assert.False(t, ok, "fresh store has no session")

	sess := Session{
		Email:         "ravi@example.com",
		VehicleNumber: "MH12AB1234",
		Token:         "token-abc",
		Role:          RoleUser,
	}
	require.NoError(t, store.Save(ctx, sess))

	got, ok := store.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestStoreSaveReplacesIdentity(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{
		Email:         "ravi@example.com",
		VehicleNumber: "MH12AB1234",
		Token:         "token-abc",
		Role:          RoleUser,
	}))
	require.NoError(t, store.Save(ctx, Session{
		Email: "asha@tollpass.in",
		Role:  RoleAdmin,
	}))

	got, ok := store.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "asha@tollpass.in", got.Email)
	assert.Equal(t, RoleAdmin, got.Role)
	assert.Empty(t, got.VehicleNumber, "previous identity must not leak through")
	assert.Empty(t, got.Token)
}

func TestStoreClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, Session{Email: "ravi@example.com", Role: RoleUser}))
	require.NoError(t, store.Clear(ctx))

	_, ok := store.Current(ctx)
	assert.False(t, ok)
}

func TestStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, Session{Email: "ravi@example.com", Role: RoleUser}))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "ravi@example.com", got.Email)
}
