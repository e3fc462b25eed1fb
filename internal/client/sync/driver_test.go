package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightbase/flightbase/internal/client/storage"
	"github.com/flightbase/flightbase/internal/models"
	"github.com/flightbase/flightbase/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fixture собирает драйвер поверх in-memory моков хранилищ
type fixture struct {
	driver    *Driver
	apiClient *ClientAPIMock

	mu        gosync.Mutex
	queued    []*models.QueuedMutation
	conflicts map[string]*models.ConflictRecord
	cached    map[string]*storage.CachedEntity
	cursor    int64
	offset    int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		conflicts: make(map[string]*models.ConflictRecord),
		cached:    make(map[string]*storage.CachedEntity),
	}

	queue := &storage.QueueStorageMock{
		EnqueueFunc: func(ctx context.Context, mutation *models.QueuedMutation) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.queued = append(f.queued, mutation)
			return nil
		},
		GetMutationFunc: func(ctx context.Context, localID string) (*models.QueuedMutation, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			for _, m := range f.queued {
				if m.LocalID == localID {
					return m, nil
				}
			}
			return nil, storage.ErrMutationNotFound
		},
		ListPendingFunc: func(ctx context.Context) ([]*models.QueuedMutation, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			out := make([]*models.QueuedMutation, len(f.queued))
			copy(out, f.queued)
			return out, nil
		},
		RemoveMutationFunc: func(ctx context.Context, localID string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			for i, m := range f.queued {
				if m.LocalID == localID {
					f.queued = append(f.queued[:i], f.queued[i+1:]...)
					return nil
				}
			}
			return storage.ErrMutationNotFound
		},
		CountPendingFunc: func(ctx context.Context) (int, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return len(f.queued), nil
		},
	}

	conflicts := &storage.ConflictStorageMock{
		SaveConflictFunc: func(ctx context.Context, conflict *models.ConflictRecord) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.conflicts[conflict.ID] = conflict
			return nil
		},
		GetConflictFunc: func(ctx context.Context, id string) (*models.ConflictRecord, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if c, ok := f.conflicts[id]; ok {
				return c, nil
			}
			return nil, storage.ErrConflictNotFound
		},
		ListConflictsFunc: func(ctx context.Context) ([]*models.ConflictRecord, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			var out []*models.ConflictRecord
			for _, c := range f.conflicts {
				out = append(out, c)
			}
			return out, nil
		},
		DeleteConflictFunc: func(ctx context.Context, id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if _, ok := f.conflicts[id]; !ok {
				return storage.ErrConflictNotFound
			}
			delete(f.conflicts, id)
			return nil
		},
		CountConflictsFunc: func(ctx context.Context) (int, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return len(f.conflicts), nil
		},
	}

	metadata := &storage.MetadataStorageMock{
		SaveLastSyncTimestampFunc: func(ctx context.Context, timestamp int64) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.cursor = timestamp
			return nil
		},
		GetLastSyncTimestampFunc: func(ctx context.Context) (int64, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return f.cursor, nil
		},
		SaveClockOffsetFunc: func(ctx context.Context, offset int64) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.offset = offset
			return nil
		},
		GetClockOffsetFunc: func(ctx context.Context) (int64, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return f.offset, nil
		},
	}

	cache := &storage.CacheStorageMock{
		SaveEntityFunc: func(ctx context.Context, entity *storage.CachedEntity) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.cached[string(entity.Kind)+"/"+entity.ID] = entity
			return nil
		},
		GetEntityFunc: func(ctx context.Context, kind models.EntityKind, id string) (*storage.CachedEntity, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if e, ok := f.cached[string(kind)+"/"+id]; ok {
				return e, nil
			}
			return nil, storage.ErrEntityNotCached
		},
		ListEntitiesFunc: func(ctx context.Context, kind models.EntityKind) ([]*storage.CachedEntity, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			var out []*storage.CachedEntity
			for _, e := range f.cached {
				if e.Kind == kind {
					out = append(out, e)
				}
			}
			return out, nil
		},
		DeleteEntityFunc: func(ctx context.Context, kind models.EntityKind, id string) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.cached, string(kind)+"/"+id)
			return nil
		},
	}

	f.apiClient = &ClientAPIMock{}
	f.driver = NewDriver(testLogger(), f.apiClient, queue, conflicts, metadata, cache)
	f.driver.SetSession("user-1", "token-abc")

	return f
}

// allApplied настраивает API мок подтверждать каждую мутацию
func (f *fixture) allApplied() {
	f.apiClient.SyncFunc = func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
		resp := &api.SyncResponse{
			Applied:   []api.AppliedChange{},
			Conflicts: []api.Conflict{},
			Errors:    []string{},
		}
		for _, c := range req.Changes {
			resp.Applied = append(resp.Applied, api.AppliedChange{
				LocalID:  c.LocalID,
				ServerID: "srv-" + c.LocalID,
			})
		}
		return resp, nil
	}
}

func TestQueueMutation_OfflineNonBlocking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Мутация встает в очередь без единого сетевого вызова
	localID, err := f.driver.QueueMutation(ctx, models.KindFlightLog, models.ActionCreate,
		map[string]any{"aircraft_id": "N12345"})
	require.NoError(t, err)
	assert.NotEmpty(t, localID)
	assert.Empty(t, f.apiClient.SyncCalls())

	count, err := f.driver.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// До первой синхронизации baseline отсутствует
	require.Len(t, f.queued, 1)
	assert.Nil(t, f.queued[0].LocalLastSyncedAt)
}

func TestQueueMutation_BaselineFromCursor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cursor := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	f.cursor = cursor.UnixNano()

	_, err := f.driver.QueueMutation(ctx, models.KindBooking, models.ActionUpdate,
		map[string]any{"id": "B1", "start_time": "2024-03-01T10:00:00Z"})
	require.NoError(t, err)

	require.Len(t, f.queued, 1)
	require.NotNil(t, f.queued[0].LocalLastSyncedAt)
	assert.True(t, cursor.Equal(*f.queued[0].LocalLastSyncedAt))
}

func TestQueueMutation_RejectsUnknownKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.driver.QueueMutation(context.Background(), "engine_anomaly", models.ActionCreate, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown entity kind")
	assert.Empty(t, f.queued)
}

func TestSyncNow_OfflineNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.driver.QueueMutation(ctx, models.KindFlightLog, models.ActionCreate, map[string]any{})
	require.NoError(t, err)

	result, err := f.driver.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Applied)
	assert.Empty(t, f.apiClient.SyncCalls())
	assert.Len(t, f.queued, 1)
}

func TestSyncNow_EmptyQueueNoop(t *testing.T) {
	f := newFixture(t)
	f.driver.SetOnline(true)

	result, err := f.driver.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Applied)
	assert.Empty(t, f.apiClient.SyncCalls())
}

func TestSyncNow_DrainsQueueAndAdvancesCursor(t *testing.T) {
	f := newFixture(t)
	f.allApplied()
	f.driver.SetOnline(true)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.driver.QueueMutation(ctx, models.KindFlightLog, models.ActionCreate,
			map[string]any{"remarks": fmt.Sprintf("entry %d", i)})
		require.NoError(t, err)
	}

	result, err := f.driver.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Applied)
	assert.Equal(t, 0, result.Conflicts)

	count, err := f.driver.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Курсор продвинулся
	assert.NotZero(t, f.cursor)

	// Порядок отправки совпадает с порядком постановки
	require.Len(t, f.apiClient.SyncCalls(), 1)
	sent := f.apiClient.SyncCalls()[0].Req.Changes
	require.Len(t, sent, 3)
	assert.Equal(t, map[string]any{"remarks": "entry 0"}, sent[0].Data)
	assert.Equal(t, map[string]any{"remarks": "entry 2"}, sent[2].Data)
}

func TestSyncNow_NetworkFailureKeepsQueue(t *testing.T) {
	f := newFixture(t)
	f.driver.SetOnline(true)
	ctx := context.Background()

	f.apiClient.SyncFunc = func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
		return nil, errors.New("connection refused")
	}

	_, err := f.driver.QueueMutation(ctx, models.KindFlightLog, models.ActionCreate, map[string]any{})
	require.NoError(t, err)

	_, err = f.driver.SyncNow(ctx)
	require.Error(t, err)

	// Очередь нетронута, курсор не двигался
	assert.Len(t, f.queued, 1)
	assert.Zero(t, f.cursor)
}

func TestSyncNow_ConflictRetainsMutation(t *testing.T) {
	f := newFixture(t)
	f.driver.SetOnline(true)
	ctx := context.Background()

	serverModified := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	f.apiClient.SyncFunc = func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{
			Applied: []api.AppliedChange{},
			Conflicts: []api.Conflict{{
				LocalID:          req.Changes[0].LocalID,
				Type:             "booking",
				Action:           "update",
				ConflictType:     "modified",
				ServerData:       map[string]any{"id": "B1", "start_time": "2024-03-01T11:00:00Z"},
				ServerModifiedAt: serverModified,
			}},
			Errors: []string{},
		}, nil
	}

	f.cursor = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).UnixNano()
	localID, err := f.driver.QueueMutation(ctx, models.KindBooking, models.ActionUpdate,
		map[string]any{"id": "B1", "start_time": "2024-03-01T10:00:00Z"})
	require.NoError(t, err)

	result, err := f.driver.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)

	// Мутация осталась в очереди, конфликт зафиксирован ровно один раз
	assert.Len(t, f.queued, 1)
	require.Len(t, f.conflicts, 1)

	for _, c := range f.conflicts {
		assert.Equal(t, localID, c.LocalID)
		assert.Equal(t, models.KindBooking, c.Kind)
		assert.Equal(t, models.ConflictModified, c.ConflictType)
		assert.Equal(t, "2024-03-01T10:00:00Z", c.LocalData["start_time"])
		assert.Equal(t, "2024-03-01T11:00:00Z", c.ServerData["start_time"])
		assert.True(t, serverModified.Equal(c.ServerModifiedAt))
	}
}

func TestSyncNow_RepeatedConflictKeepsOneRecord(t *testing.T) {
	f := newFixture(t)
	conflictID, localID := setupConflict(t, f)

	// Пользователь запускает синхронизацию снова, не решив конфликт:
	// мутация все еще в очереди и сервер сообщает тот же конфликт.
	// Запись перезаписывается по localId, дубликат не появляется.
	_, err := f.driver.SyncNow(context.Background())
	require.NoError(t, err)

	n, err := f.driver.ConflictCount(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got, ok := f.conflicts[conflictID]
	require.True(t, ok, "conflict id must stay stable across syncs")
	assert.Equal(t, localID, got.LocalID)
}

func TestSyncNow_AppliedUpdateMergesIntoCache(t *testing.T) {
	f := newFixture(t)
	f.driver.SetOnline(true)
	ctx := context.Background()

	f.cached["booking/B1"] = &storage.CachedEntity{
		ID:       "B1",
		Kind:     models.KindBooking,
		Snapshot: map[string]any{"id": "B1", "seats": 4, "aircraft_id": "N123AB"},
	}

	f.apiClient.SyncFunc = func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{
			Applied:   []api.AppliedChange{{LocalID: req.Changes[0].LocalID, ServerID: "B1"}},
			Conflicts: []api.Conflict{},
			Errors:    []string{},
		}, nil
	}

	_, err := f.driver.QueueMutation(ctx, models.KindBooking, models.ActionUpdate,
		map[string]any{"id": "B1", "seats": 2})
	require.NoError(t, err)

	_, err = f.driver.SyncNow(ctx)
	require.NoError(t, err)

	// Патч наложен поверх снимка: не упомянутые поля не теряются
	cached, ok := f.cached["booking/B1"]
	require.True(t, ok)
	assert.Equal(t, 2, cached.Snapshot["seats"])
	assert.Equal(t, "N123AB", cached.Snapshot["aircraft_id"])
}

func TestSyncNow_DeletedRowConflict(t *testing.T) {
	f := newFixture(t)
	f.driver.SetOnline(true)
	ctx := context.Background()

	f.apiClient.SyncFunc = func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{
			Applied: []api.AppliedChange{},
			Conflicts: []api.Conflict{{
				LocalID:      req.Changes[0].LocalID,
				Type:         "booking",
				Action:       "update",
				ConflictType: "deleted",
				ServerData:   map[string]any{},
			}},
			Errors: []string{},
		}, nil
	}

	f.cursor = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).UnixNano()
	_, err := f.driver.QueueMutation(ctx, models.KindBooking, models.ActionUpdate,
		map[string]any{"id": "B1", "start_time": "2024-03-01T10:00:00Z"})
	require.NoError(t, err)

	_, err = f.driver.SyncNow(ctx)
	require.NoError(t, err)

	require.Len(t, f.conflicts, 1)
	for _, c := range f.conflicts {
		assert.Equal(t, models.ConflictDeleted, c.ConflictType)
	}
}

func TestSyncNow_ErrorIsolation(t *testing.T) {
	f := newFixture(t)
	f.driver.SetOnline(true)
	ctx := context.Background()

	// Из трех мутаций вторую сервер отклоняет, остальные применяет
	f.apiClient.SyncFunc = func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
		require.Len(t, req.Changes, 3)
		return &api.SyncResponse{
			Applied: []api.AppliedChange{
				{LocalID: req.Changes[0].LocalID, ServerID: "srv-1"},
				{LocalID: req.Changes[2].LocalID, ServerID: "srv-3"},
			},
			Conflicts: []api.Conflict{},
			Errors:    []string{"booking update: entity not found"},
		}, nil
	}

	for i := 0; i < 3; i++ {
		_, err := f.driver.QueueMutation(ctx, models.KindBooking, models.ActionCreate, map[string]any{})
		require.NoError(t, err)
	}
	rejected := f.queued[1].LocalID

	result, err := f.driver.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 1, result.Errors)

	// Отклоненная мутация остается в очереди
	require.Len(t, f.queued, 1)
	assert.Equal(t, rejected, f.queued[0].LocalID)
}

func TestSyncNow_SingleFlight(t *testing.T) {
	f := newFixture(t)
	f.driver.SetOnline(true)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	f.apiClient.SyncFunc = func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
		close(started)
		<-release
		return &api.SyncResponse{
			Applied:   []api.AppliedChange{{LocalID: req.Changes[0].LocalID, ServerID: "srv-1"}},
			Conflicts: []api.Conflict{},
			Errors:    []string{},
		}, nil
	}

	_, err := f.driver.QueueMutation(ctx, models.KindFlightLog, models.ActionCreate, map[string]any{})
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.driver.SyncNow(ctx)
	}()

	<-started

	// Пока первый запрос в полете, повторный вызов сразу возвращается
	result, err := f.driver.SyncNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Applied)

	close(release)
	<-done

	assert.Len(t, f.apiClient.SyncCalls(), 1)
}

func TestSetOnline_DebouncedSync(t *testing.T) {
	f := newFixture(t)
	f.allApplied()
	f.driver.debounceDelay = 30 * time.Millisecond
	ctx := context.Background()

	_, err := f.driver.QueueMutation(ctx, models.KindFlightLog, models.ActionCreate, map[string]any{})
	require.NoError(t, err)

	f.driver.SetOnline(true)

	// До истечения дебаунса синхронизация не запускается
	assert.Empty(t, f.apiClient.SyncCalls())

	require.Eventually(t, func() bool {
		return len(f.apiClient.SyncCalls()) == 1
	}, time.Second, 5*time.Millisecond)

	count, err := f.driver.PendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSetOnline_FlappingResetsTimer(t *testing.T) {
	f := newFixture(t)
	f.allApplied()
	f.driver.debounceDelay = 40 * time.Millisecond
	ctx := context.Background()

	_, err := f.driver.QueueMutation(ctx, models.KindFlightLog, models.ActionCreate, map[string]any{})
	require.NoError(t, err)

	// Несколько переходов подряд: каждый offline снимает таймер
	f.driver.SetOnline(true)
	time.Sleep(20 * time.Millisecond)
	f.driver.SetOnline(false)
	f.driver.SetOnline(true)
	time.Sleep(20 * time.Millisecond)

	// 40ms от последнего перехода еще не прошло
	assert.Empty(t, f.apiClient.SyncCalls())

	require.Eventually(t, func() bool {
		return len(f.apiClient.SyncCalls()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSetOnline_SameStateNoop(t *testing.T) {
	f := newFixture(t)
	f.allApplied()
	f.driver.debounceDelay = 20 * time.Millisecond

	f.driver.SetOnline(true)
	f.driver.SetOnline(true)

	assert.True(t, f.driver.IsOnline())
}

func setupConflict(t *testing.T, f *fixture) (conflictID, localID string) {
	t.Helper()
	ctx := context.Background()

	f.driver.SetOnline(true)
	f.apiClient.SyncFunc = func(ctx context.Context, accessToken string, req api.SyncRequest) (*api.SyncResponse, error) {
		return &api.SyncResponse{
			Applied: []api.AppliedChange{},
			Conflicts: []api.Conflict{{
				LocalID:          req.Changes[0].LocalID,
				Type:             "booking",
				Action:           "update",
				ConflictType:     "modified",
				ServerData:       map[string]any{"id": "B1", "start_time": "2024-03-01T11:00:00Z"},
				ServerModifiedAt: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			}},
			Errors: []string{},
		}, nil
	}

	f.cursor = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).UnixNano()
	id, err := f.driver.QueueMutation(ctx, models.KindBooking, models.ActionUpdate,
		map[string]any{"id": "B1", "start_time": "2024-03-01T10:00:00Z"})
	require.NoError(t, err)

	_, err = f.driver.SyncNow(ctx)
	require.NoError(t, err)
	require.Len(t, f.conflicts, 1)

	for cid := range f.conflicts {
		conflictID = cid
	}
	return conflictID, id
}

func TestResolveConflict_Server(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conflictID, _ := setupConflict(t, f)

	require.NoError(t, f.driver.ResolveConflict(ctx, conflictID, models.ResolutionServer))

	// Конфликт и исходная мутация удалены
	assert.Empty(t, f.conflicts)
	assert.Empty(t, f.queued)

	// Серверная версия легла в кэш
	cached, ok := f.cached["booking/B1"]
	require.True(t, ok)
	assert.Equal(t, "2024-03-01T11:00:00Z", cached.Snapshot["start_time"])

	// Повторная синхронизация не отправляет ничего и не создает
	// новых конфликтов
	before := len(f.apiClient.SyncCalls())
	_, err := f.driver.SyncNow(ctx)
	require.NoError(t, err)
	assert.Len(t, f.apiClient.SyncCalls(), before)
	assert.Empty(t, f.conflicts)
}

func TestResolveConflict_Mine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conflictID, _ := setupConflict(t, f)

	require.NoError(t, f.driver.ResolveConflict(ctx, conflictID, models.ResolutionMine))

	assert.Empty(t, f.conflicts)

	// Локальная версия снова в очереди как создание новой записи
	require.Len(t, f.queued, 1)
	requeued := f.queued[0]
	assert.Equal(t, models.ActionCreate, requeued.Action)
	assert.Equal(t, models.KindBooking, requeued.Kind)
	assert.Equal(t, "2024-03-01T10:00:00Z", requeued.Payload["start_time"])

	// Старый id не переносится, сервер выдаст новый
	_, hasID := requeued.Payload["id"]
	assert.False(t, hasID)
}

func TestResolveConflict_Both(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conflictID, _ := setupConflict(t, f)

	require.NoError(t, f.driver.ResolveConflict(ctx, conflictID, models.ResolutionBoth))

	assert.Empty(t, f.conflicts)

	// Серверная версия в кэше, локальная продублирована с маркером
	cached, ok := f.cached["booking/B1"]
	require.True(t, ok)
	assert.Equal(t, "2024-03-01T11:00:00Z", cached.Snapshot["start_time"])

	require.Len(t, f.queued, 1)
	requeued := f.queued[0]
	assert.Equal(t, models.ActionCreate, requeued.Action)
	assert.Equal(t, "B1", requeued.Payload["duplicate_of"])
	assert.Equal(t, "2024-03-01T10:00:00Z", requeued.Payload["start_time"])
}

func TestResolveConflict_UnknownResolution(t *testing.T) {
	f := newFixture(t)

	err := f.driver.ResolveConflict(context.Background(), "c1", "merge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resolution")
}

func TestResolveConflict_NotFound(t *testing.T) {
	f := newFixture(t)

	err := f.driver.ResolveConflict(context.Background(), "missing", models.ResolutionServer)
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}

func TestReadThrough_ColdCacheLoadsSync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	loaded := map[string]any{"id": "A1", "status": "airworthy"}
	snapshot, err := f.driver.ReadThrough(ctx, models.KindAircraftStatus, "A1",
		func(ctx context.Context) (map[string]any, error) {
			return loaded, nil
		})
	require.NoError(t, err)
	assert.Equal(t, loaded, snapshot)

	// Снимок закэширован
	cached, ok := f.cached["aircraft_status/A1"]
	require.True(t, ok)
	assert.Equal(t, "airworthy", cached.Snapshot["status"])
}

func TestReadThrough_WarmCacheReturnsImmediately(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cached["aircraft_status/A1"] = &storage.CachedEntity{
		ID:       "A1",
		Kind:     models.KindAircraftStatus,
		Snapshot: map[string]any{"id": "A1", "status": "grounded"},
	}

	refreshed := make(chan struct{})
	snapshot, err := f.driver.ReadThrough(ctx, models.KindAircraftStatus, "A1",
		func(ctx context.Context) (map[string]any, error) {
			defer close(refreshed)
			return map[string]any{"id": "A1", "status": "airworthy"}, nil
		})
	require.NoError(t, err)

	// Возвращается старый снимок, обновление идет в фоне
	assert.Equal(t, "grounded", snapshot["status"])

	select {
	case <-refreshed:
	case <-time.After(time.Second):
		t.Fatal("background refresh never ran")
	}

	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.cached["aircraft_status/A1"].Snapshot["status"] == "airworthy"
	}, time.Second, 5*time.Millisecond)
}

func TestReadThrough_LoaderFailureKeepsCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.cached["aircraft_status/A1"] = &storage.CachedEntity{
		ID:       "A1",
		Kind:     models.KindAircraftStatus,
		Snapshot: map[string]any{"id": "A1", "status": "grounded"},
	}

	failed := make(chan struct{})
	snapshot, err := f.driver.ReadThrough(ctx, models.KindAircraftStatus, "A1",
		func(ctx context.Context) (map[string]any, error) {
			defer close(failed)
			return nil, errors.New("network down")
		})
	require.NoError(t, err)
	assert.Equal(t, "grounded", snapshot["status"])

	<-failed

	// Кэш не тронут
	f.mu.Lock()
	defer f.mu.Unlock()
	assert.Equal(t, "grounded", f.cached["aircraft_status/A1"].Snapshot["status"])
}

func TestSyncServerTime_StoresOffset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	localNow := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	serverNow := localNow.Add(90 * time.Second)

	f.driver.now = func() time.Time { return localNow }
	f.apiClient.ServerTimeFunc = func(ctx context.Context, accessToken string) (*api.ServerTimeResponse, error) {
		return &api.ServerTimeResponse{ServerTime: serverNow}, nil
	}

	got, err := f.driver.SyncServerTime(ctx)
	require.NoError(t, err)
	assert.True(t, serverNow.Equal(got))
	assert.Equal(t, int64(90*time.Second), f.offset)

	// Следующая мутация штампуется с коррекцией
	_, err = f.driver.QueueMutation(ctx, models.KindFlightLog, models.ActionCreate, map[string]any{})
	require.NoError(t, err)
	require.Len(t, f.queued, 1)
	assert.True(t, serverNow.Equal(f.queued[0].LocalCreatedAt))
}
