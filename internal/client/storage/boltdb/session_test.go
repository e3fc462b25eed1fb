package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbase/flightbase/internal/client/storage"
)

func TestSession_SaveAndGet(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	session := &storage.SessionData{
		Username:    "pilot1",
		UserID:      "user-1",
		AccessToken: "token-abc",
		ExpiresAt:   1709294400,
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSession_GetNotFound(t *testing.T) {
	store := setupTestStorage(t)

	got, err := store.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.Nil(t, got)
}

func TestSession_Delete(t *testing.T) {
	store := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, &storage.SessionData{Username: "pilot1"}))
	require.NoError(t, store.DeleteSession(ctx))

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление не ошибка
	assert.NoError(t, store.DeleteSession(ctx))
}
