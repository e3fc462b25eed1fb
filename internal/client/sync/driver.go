package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	clientapi "github.com/flightbase/flightbase/internal/client/api"
	"github.com/flightbase/flightbase/internal/client/storage"
	"github.com/flightbase/flightbase/internal/models"
	"github.com/flightbase/flightbase/pkg/api"
)

// reconnectDebounce время после восстановления связи, в течение которого
// повторные переходы offline/online не запускают синхронизацию заново
const reconnectDebounce = 2 * time.Second

// Loader подгружает актуальный снимок записи с сервера для кэша
type Loader func(ctx context.Context) (map[string]any, error)

// SyncResult contains sync operation results
type SyncResult struct {
	Applied   int // количество подтвержденных сервером мутаций
	Conflicts int // количество новых конфликтов
	Errors    int // количество поэлементных ошибок сервера
}

// Driver keeps local changes flowing to the server. Mutations are queued
// durably, pushed in enqueue order when online, and reconciled against
// the per-item server response. A mutation leaves the queue only when
// the server names its local id in applied, or the user resolves its
// conflict.
type Driver struct {
	logger    *slog.Logger
	apiClient clientapi.ClientAPI
	queue     storage.QueueStorage
	conflicts storage.ConflictStorage
	metadata  storage.MetadataStorage
	cache     storage.CacheStorage

	// now подменяется в тестах
	now func() time.Time

	userID      string
	accessToken string

	mu            sync.Mutex
	debounce      *time.Timer
	debounceDelay time.Duration
	online        bool
	syncing       bool
}

// NewDriver creates a new sync driver
func NewDriver(
	logger *slog.Logger,
	apiClient clientapi.ClientAPI,
	queue storage.QueueStorage,
	conflicts storage.ConflictStorage,
	metadata storage.MetadataStorage,
	cache storage.CacheStorage,
) *Driver {
	return &Driver{
		logger:        logger,
		apiClient:     apiClient,
		queue:         queue,
		conflicts:     conflicts,
		metadata:      metadata,
		cache:         cache,
		debounceDelay: reconnectDebounce,
		now:           time.Now,
	}
}

// SetSession устанавливает идентификатор пользователя и access token,
// от имени которых выполняется синхронизация
func (d *Driver) SetSession(userID, accessToken string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.userID = userID
	d.accessToken = accessToken
}

// QueueMutation stamps and enqueues a local change without touching the
// network. Returns the generated local id. The caller gets control back
// immediately whether or not the server is reachable.
func (d *Driver) QueueMutation(ctx context.Context, kind models.EntityKind, action models.Action, payload map[string]any) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}
	if !action.Valid() {
		return "", fmt.Errorf("unknown action %q", action)
	}

	offset, err := d.metadata.GetClockOffset(ctx)
	if err != nil {
		d.logger.Warn("failed to get clock offset, using 0", "error", err)
		offset = 0
	}

	mutation := &models.QueuedMutation{
		LocalID:        uuid.NewString(),
		Kind:           kind,
		Action:         action,
		Payload:        payload,
		LocalCreatedAt: d.now().Add(time.Duration(offset)).UTC(),
	}

	// Baseline для optimistic concurrency: момент последней успешной
	// синхронизации. До первой синхронизации остается nil, и сервер
	// не проверяет такую мутацию на конфликт.
	cursor, err := d.metadata.GetLastSyncTimestamp(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get sync cursor: %w", err)
	}
	if cursor > 0 {
		baseline := time.Unix(0, cursor).UTC()
		mutation.LocalLastSyncedAt = &baseline
	}

	if err := d.queue.Enqueue(ctx, mutation); err != nil {
		return "", fmt.Errorf("failed to enqueue mutation: %w", err)
	}

	d.logger.Debug("mutation queued",
		"local_id", mutation.LocalID, "kind", kind, "action", action)

	return mutation.LocalID, nil
}

// ReadThrough returns the cached snapshot for kind/id immediately and
// refreshes it from loader in the background. When nothing is cached yet
// the loader is called synchronously. A failing loader leaves the cache
// untouched.
func (d *Driver) ReadThrough(ctx context.Context, kind models.EntityKind, id string, loader Loader) (map[string]any, error) {
	cached, err := d.cache.GetEntity(ctx, kind, id)
	if err == nil {
		go d.refreshCache(kind, id, loader)
		return cached.Snapshot, nil
	}
	if !errors.Is(err, storage.ErrEntityNotCached) {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	// Холодный кэш: единственный случай, когда чтение ждет сеть
	snapshot, err := loader(ctx)
	if err != nil {
		return nil, fmt.Errorf("loader failed: %w", err)
	}

	if err := d.cache.SaveEntity(ctx, &storage.CachedEntity{ID: id, Kind: kind, Snapshot: snapshot}); err != nil {
		d.logger.Warn("failed to cache entity", "kind", kind, "id", id, "error", err)
	}

	return snapshot, nil
}

// refreshCache обновляет снимок в кэше в фоне
func (d *Driver) refreshCache(kind models.EntityKind, id string, loader Loader) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snapshot, err := loader(ctx)
	if err != nil {
		d.logger.Debug("background refresh failed", "kind", kind, "id", id, "error", err)
		return
	}

	if err := d.cache.SaveEntity(ctx, &storage.CachedEntity{ID: id, Kind: kind, Snapshot: snapshot}); err != nil {
		d.logger.Warn("failed to cache entity", "kind", kind, "id", id, "error", err)
	}
}

// IsOnline reports the current connectivity assumption.
func (d *Driver) IsOnline() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.online
}

// SetOnline records a connectivity transition. Going online arms a
// debounce timer before syncing, so a flapping link does not fire a
// burst of syncs. Each transition resets the timer.
func (d *Driver) SetOnline(online bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.online == online {
		return
	}
	d.online = online

	if d.debounce != nil {
		d.debounce.Stop()
		d.debounce = nil
	}

	if online {
		d.logger.Info("connection restored, sync scheduled", "delay", d.debounceDelay)
		d.debounce = time.AfterFunc(d.debounceDelay, func() {
			if _, err := d.SyncNow(context.Background()); err != nil {
				d.logger.Warn("scheduled sync failed", "error", err)
			}
		})
	} else {
		d.logger.Info("connection lost, mutations will queue locally")
	}
}

// SyncNow pushes the whole queue to the server and reconciles the
// response. No-op while offline, while another sync is in flight, or
// when nothing is queued. The in-flight guard is its own flag, separate
// from the reconnect debounce.
func (d *Driver) SyncNow(ctx context.Context) (*SyncResult, error) {
	d.mu.Lock()
	if !d.online {
		d.mu.Unlock()
		return &SyncResult{}, nil
	}
	if d.syncing {
		d.mu.Unlock()
		return &SyncResult{}, nil
	}
	d.syncing = true
	userID, accessToken := d.userID, d.accessToken
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.syncing = false
		d.mu.Unlock()
	}()

	pending, err := d.queue.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mutations: %w", err)
	}
	if len(pending) == 0 {
		return &SyncResult{}, nil
	}

	d.logger.Info("starting sync", "pending", len(pending))

	changes := make([]api.Change, 0, len(pending))
	byLocalID := make(map[string]*models.QueuedMutation, len(pending))
	for _, m := range pending {
		changes = append(changes, api.Change{
			LocalID:           m.LocalID,
			Type:              string(m.Kind),
			Action:            string(m.Action),
			Data:              m.Payload,
			LocalCreatedAt:    m.LocalCreatedAt,
			LocalLastSyncedAt: m.LocalLastSyncedAt,
		})
		byLocalID[m.LocalID] = m
	}

	// Сетевая ошибка оставляет очередь нетронутой, мутации уйдут
	// при следующей попытке
	resp, err := d.apiClient.Sync(ctx, accessToken, api.SyncRequest{
		UserID:  userID,
		Changes: changes,
	})
	if err != nil {
		return nil, fmt.Errorf("sync request failed: %w", err)
	}

	result := &SyncResult{
		Applied:   len(resp.Applied),
		Conflicts: len(resp.Conflicts),
		Errors:    len(resp.Errors),
	}

	// Подтвержденные мутации покидают очередь
	for _, applied := range resp.Applied {
		if err := d.queue.RemoveMutation(ctx, applied.LocalID); err != nil {
			d.logger.Warn("failed to remove applied mutation",
				"local_id", applied.LocalID, "error", err)
			continue
		}
		d.updateCacheForApplied(ctx, byLocalID[applied.LocalID], applied.ServerID)
	}

	// Конфликт фиксируется одной записью на localId, мутация при этом
	// остается в очереди до явного решения пользователя
	for _, conflict := range resp.Conflicts {
		if err := d.recordConflict(ctx, byLocalID[conflict.LocalID], conflict); err != nil {
			d.logger.Error("failed to record conflict",
				"local_id", conflict.LocalID, "error", err)
		}
	}

	for _, itemErr := range resp.Errors {
		d.logger.Warn("server rejected item", "error", itemErr)
	}

	// Курсор двигается только после успешного раунда
	if err := d.metadata.SaveLastSyncTimestamp(ctx, d.serverNow(ctx).UnixNano()); err != nil {
		d.logger.Warn("failed to save sync cursor", "error", err)
	}

	d.logger.Info("sync completed",
		"applied", result.Applied,
		"conflicts", result.Conflicts,
		"errors", result.Errors)

	return result, nil
}

// updateCacheForApplied обновляет локальный кэш по подтвержденной мутации
func (d *Driver) updateCacheForApplied(ctx context.Context, mutation *models.QueuedMutation, serverID string) {
	if mutation == nil {
		return
	}

	switch mutation.Action {
	case models.ActionDelete:
		if err := d.cache.DeleteEntity(ctx, mutation.Kind, serverID); err != nil {
			d.logger.Warn("failed to evict cached entity", "id", serverID, "error", err)
		}
	case models.ActionCreate, models.ActionUpdate:
		snapshot := make(map[string]any, len(mutation.Payload)+1)

		// Payload обновления это частичный патч: не перечисленные поля
		// остаются как были, поэтому накладываем его поверх текущего
		// снимка в кэше
		if mutation.Action == models.ActionUpdate {
			if cached, err := d.cache.GetEntity(ctx, mutation.Kind, serverID); err == nil {
				for k, v := range cached.Snapshot {
					snapshot[k] = v
				}
			}
		}

		for k, v := range mutation.Payload {
			snapshot[k] = v
		}
		snapshot["id"] = serverID

		entity := &storage.CachedEntity{ID: serverID, Kind: mutation.Kind, Snapshot: snapshot}
		if err := d.cache.SaveEntity(ctx, entity); err != nil {
			d.logger.Warn("failed to cache applied entity", "id", serverID, "error", err)
		}
	}
}

// recordConflict сохраняет обнаруженный конфликт для решения пользователем.
// Запись ключуется по localId мутации: повторная синхронизация с тем же
// нерешенным конфликтом перезаписывает существующую запись, а не плодит
// дубликаты.
func (d *Driver) recordConflict(ctx context.Context, mutation *models.QueuedMutation, conflict api.Conflict) error {
	if mutation == nil {
		return fmt.Errorf("conflict for unknown local id %q", conflict.LocalID)
	}

	recordID := ""
	existing, err := d.conflicts.ListConflicts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list conflicts: %w", err)
	}
	for _, c := range existing {
		if c.LocalID == mutation.LocalID {
			recordID = c.ID
			break
		}
	}
	if recordID == "" {
		recordID = uuid.NewString()
	}

	record := &models.ConflictRecord{
		ID:               recordID,
		LocalID:          mutation.LocalID,
		Kind:             mutation.Kind,
		ConflictType:     models.ConflictType(conflict.ConflictType),
		LocalData:        mutation.Payload,
		ServerData:       conflict.ServerData,
		ServerModifiedAt: conflict.ServerModifiedAt,
		DetectedAt:       d.now().UTC(),
	}

	if err := d.conflicts.SaveConflict(ctx, record); err != nil {
		return fmt.Errorf("failed to save conflict: %w", err)
	}

	d.logger.Info("conflict recorded",
		"conflict_id", record.ID,
		"local_id", record.LocalID,
		"kind", record.Kind,
		"conflict_type", record.ConflictType)

	return nil
}

// ResolveConflict applies the user's decision to a recorded conflict.
//
//   - server: the local change is discarded, the conflict record and the
//     originating queue entry are removed.
//   - mine: the local payload is re-enqueued as a fresh create, so the
//     user's version becomes a new record next to the server's.
//   - both: like mine, with a duplicate_of marker naming the original id
//     so the copies stay traceable.
func (d *Driver) ResolveConflict(ctx context.Context, conflictID string, resolution models.Resolution) error {
	if !resolution.Valid() {
		return fmt.Errorf("unknown resolution %q", resolution)
	}

	conflict, err := d.conflicts.GetConflict(ctx, conflictID)
	if err != nil {
		return fmt.Errorf("failed to get conflict: %w", err)
	}

	// Исходная мутация больше не поедет на сервер ни при каком исходе
	if err := d.queue.RemoveMutation(ctx, conflict.LocalID); err != nil && !errors.Is(err, storage.ErrMutationNotFound) {
		return fmt.Errorf("failed to remove conflicting mutation: %w", err)
	}

	switch resolution {
	case models.ResolutionServer:
		d.acceptServerState(ctx, conflict)

	case models.ResolutionMine:
		if _, err := d.requeueAsCreate(ctx, conflict, nil); err != nil {
			return err
		}

	case models.ResolutionBoth:
		d.acceptServerState(ctx, conflict)

		originalID, _ := conflict.LocalData["id"].(string)
		if originalID == "" {
			originalID, _ = conflict.ServerData["id"].(string)
		}
		if _, err := d.requeueAsCreate(ctx, conflict, map[string]any{"duplicate_of": originalID}); err != nil {
			return err
		}
	}

	if err := d.conflicts.DeleteConflict(ctx, conflictID); err != nil {
		return fmt.Errorf("failed to delete conflict: %w", err)
	}

	d.logger.Info("conflict resolved",
		"conflict_id", conflictID,
		"resolution", resolution)

	return nil
}

// acceptServerState переносит серверную версию записи в локальный кэш
func (d *Driver) acceptServerState(ctx context.Context, conflict *models.ConflictRecord) {
	serverID, _ := conflict.ServerData["id"].(string)

	if conflict.ConflictType == models.ConflictDeleted || serverID == "" {
		if serverID == "" {
			serverID, _ = conflict.LocalData["id"].(string)
		}
		if serverID == "" {
			return
		}
		if err := d.cache.DeleteEntity(ctx, conflict.Kind, serverID); err != nil {
			d.logger.Warn("failed to evict cached entity", "id", serverID, "error", err)
		}
		return
	}

	entity := &storage.CachedEntity{ID: serverID, Kind: conflict.Kind, Snapshot: conflict.ServerData}
	if err := d.cache.SaveEntity(ctx, entity); err != nil {
		d.logger.Warn("failed to cache server state", "id", serverID, "error", err)
	}
}

// requeueAsCreate ставит локальную версию конфликта обратно в очередь
// как создание новой записи
func (d *Driver) requeueAsCreate(ctx context.Context, conflict *models.ConflictRecord, extra map[string]any) (string, error) {
	payload := make(map[string]any, len(conflict.LocalData)+len(extra))
	for k, v := range conflict.LocalData {
		// Старый id отбрасывается, сервер выдаст новый
		if k == "id" {
			continue
		}
		payload[k] = v
	}
	for k, v := range extra {
		payload[k] = v
	}

	localID, err := d.QueueMutation(ctx, conflict.Kind, models.ActionCreate, payload)
	if err != nil {
		return "", fmt.Errorf("failed to requeue local version: %w", err)
	}
	return localID, nil
}

// PendingCount returns the number of mutations waiting for the server.
func (d *Driver) PendingCount(ctx context.Context) (int, error) {
	return d.queue.CountPending(ctx)
}

// ConflictCount returns the number of conflicts awaiting a decision.
func (d *Driver) ConflictCount(ctx context.Context) (int, error) {
	return d.conflicts.CountConflicts(ctx)
}

// ListConflicts returns all conflicts awaiting a decision.
func (d *Driver) ListConflicts(ctx context.Context) ([]*models.ConflictRecord, error) {
	return d.conflicts.ListConflicts(ctx)
}

// SyncServerTime запрашивает серверное время и сохраняет измеренное
// расхождение часов для коррекции будущих локальных меток
func (d *Driver) SyncServerTime(ctx context.Context) (time.Time, error) {
	d.mu.Lock()
	accessToken := d.accessToken
	d.mu.Unlock()

	resp, err := d.apiClient.ServerTime(ctx, accessToken)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get server time: %w", err)
	}

	offset := resp.ServerTime.Sub(d.now())
	if err := d.metadata.SaveClockOffset(ctx, int64(offset)); err != nil {
		return time.Time{}, fmt.Errorf("failed to save clock offset: %w", err)
	}

	d.logger.Debug("clock offset measured", "offset", offset)

	return resp.ServerTime, nil
}

// serverNow возвращает текущее время с учетом измеренного расхождения
// часов
func (d *Driver) serverNow(ctx context.Context) time.Time {
	offset, err := d.metadata.GetClockOffset(ctx)
	if err != nil {
		return d.now().UTC()
	}
	return d.now().Add(time.Duration(offset)).UTC()
}
