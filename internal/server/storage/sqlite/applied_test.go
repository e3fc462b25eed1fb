package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbase/flightbase/internal/server/storage"
)

func TestStorage_AppliedLog(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	_, err := s.Lookup(ctx, "user-1", "local-1")
	assert.ErrorIs(t, err, storage.ErrAppliedNotFound)

	require.NoError(t, s.Record(ctx, "user-1", "local-1", "server-1"))

	serverID, err := s.Lookup(ctx, "user-1", "local-1")
	require.NoError(t, err)
	assert.Equal(t, "server-1", serverID)

	// Маппинг привязан к пользователю
	_, err = s.Lookup(ctx, "user-2", "local-1")
	assert.ErrorIs(t, err, storage.ErrAppliedNotFound)
}

func TestStorage_AppliedLog_ReplayKeepsFirstMapping(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "user-1", "local-1", "server-1"))
	require.NoError(t, s.Record(ctx, "user-1", "local-1", "server-2"))

	serverID, err := s.Lookup(ctx, "user-1", "local-1")
	require.NoError(t, err)
	assert.Equal(t, "server-1", serverID)
}
