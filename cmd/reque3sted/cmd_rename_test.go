package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mking11/reque3sted/internal/store"
)

func newSeededStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	st := store.NewMemoryStore(store.NoLatency())
	st.Preload(store.DemoUsers()...)
	return st
}

func TestRenameUser_LoadsEditsAndSaves(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newSeededStore(t)

	u, err := renameUser(ctx, st, 1, "Alex")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Alex", u.Name)
	assert.Equal(t, 29, u.Age)

	// The edit reached the store.
	persisted, err := st.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "Alex", persisted.Name)
}

func TestRenameUser_MissingID(t *testing.T) {
	t.Parallel()
	st := newSeededStore(t)

	_, err := renameUser(context.Background(), st, 404, "Alex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user with id 404")
}

func TestRenameUser_ContextExpiry(t *testing.T) {
	t.Parallel()
	slow := store.NewMemoryStore(store.Latency{Get: 10 * time.Second})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := renameUser(ctx, slow, 1, "Alex")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
