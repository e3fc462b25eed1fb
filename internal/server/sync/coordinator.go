package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/flightbase/flightbase/internal/models"
	"github.com/flightbase/flightbase/internal/server/storage"
	"github.com/flightbase/flightbase/pkg/api"
)

// Coordinator processes sync batches. Items are handled independently
// and sequentially: a conflict or error on one item never aborts its
// siblings, and within one batch items are evaluated in submission
// order. There is no cross-batch ordering guarantee; the baseline
// comparison in Detect is the only defense against lost updates.
type Coordinator struct {
	logger   *slog.Logger
	registry *Registry
	applied  storage.AppliedLog
}

// NewCoordinator creates a new sync coordinator
func NewCoordinator(logger *slog.Logger, registry *Registry, applied storage.AppliedLog) *Coordinator {
	return &Coordinator{
		logger:   logger,
		registry: registry,
		applied:  applied,
	}
}

// SyncBatch resolves every queued mutation in the batch to exactly one
// of applied, conflict or error. The caller must already be
// authenticated; callerID is substituted as the owning user on creates.
func (c *Coordinator) SyncBatch(ctx context.Context, callerID string, changes []api.Change) *api.SyncResponse {
	resp := &api.SyncResponse{
		Applied:   []api.AppliedChange{},
		Conflicts: []api.Conflict{},
		Errors:    []string{},
	}

	for _, change := range changes {
		c.processChange(ctx, callerID, change, resp)
	}

	c.logger.Info("sync batch processed",
		"user_id", callerID,
		"changes", len(changes),
		"applied", len(resp.Applied),
		"conflicts", len(resp.Conflicts),
		"errors", len(resp.Errors),
	)

	return resp
}

// processChange handles a single queued mutation. Every failure path is
// absorbed into the response so the rest of the batch keeps going.
func (c *Coordinator) processChange(ctx context.Context, callerID string, change api.Change, resp *api.SyncResponse) {
	// Повторно присланный localId уже применен раньше: подтверждаем из
	// журнала, не применяя мутацию второй раз
	if serverID, err := c.applied.Lookup(ctx, callerID, change.LocalID); err == nil {
		c.logger.Debug("change already applied, acknowledging from log",
			"local_id", change.LocalID, "server_id", serverID)
		resp.Applied = append(resp.Applied, api.AppliedChange{LocalID: change.LocalID, ServerID: serverID})
		return
	} else if !errors.Is(err, storage.ErrAppliedNotFound) {
		resp.Errors = append(resp.Errors, itemError(change, err))
		return
	}

	kind := models.EntityKind(change.Type)
	handler, ok := c.registry.Handler(kind)
	if !ok {
		resp.Errors = append(resp.Errors, itemError(change, fmt.Errorf("unknown entity kind")))
		return
	}

	action := models.Action(change.Action)
	if !action.Valid() {
		resp.Errors = append(resp.Errors, itemError(change, fmt.Errorf("unknown action")))
		return
	}

	detection, err := handler.Detect(ctx, callerID, action, change.Data, change.LocalLastSyncedAt)
	if err != nil {
		resp.Errors = append(resp.Errors, itemError(change, err))
		return
	}

	if detection.HasConflict {
		resp.Conflicts = append(resp.Conflicts, api.Conflict{
			Type:             change.Type,
			Action:           change.Action,
			LocalID:          change.LocalID,
			ConflictType:     string(detection.Type),
			ServerData:       detection.ServerData,
			ServerModifiedAt: detection.ServerModifiedAt,
		})
		return
	}

	serverID, err := handler.Apply(ctx, callerID, action, change.Data)
	if err != nil {
		resp.Errors = append(resp.Errors, itemError(change, err))
		return
	}

	// Журнал идемпотентности пишется best-effort: мутация уже применена,
	// и клиент должен узнать об этом
	if err := c.applied.Record(ctx, callerID, change.LocalID, serverID); err != nil {
		c.logger.Warn("failed to record applied mapping",
			"local_id", change.LocalID, "error", err)
	}

	resp.Applied = append(resp.Applied, api.AppliedChange{LocalID: change.LocalID, ServerID: serverID})
}

// itemError formats a per-item failure tagged with kind and action.
func itemError(change api.Change, err error) string {
	return fmt.Sprintf("%s %s: %v", change.Type, change.Action, err)
}
