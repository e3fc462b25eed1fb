// Package sync implements the server side of the offline-first sync
// protocol: per-kind conflict detection against client baselines and
// per-item batch application.
package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flightbase/flightbase/internal/models"
	"github.com/flightbase/flightbase/internal/server/storage"
)

// Detection is the outcome of a conflict check for one queued mutation.
type Detection struct {
	ServerModifiedAt time.Time
	ServerData       map[string]any
	Type             models.ConflictType
	HasConflict      bool
}

// KindHandler is the per-kind capability for conflict detection and
// mutation application. Adding an entity kind to the protocol is a
// one-place change: implement the handler and register it.
type KindHandler interface {
	// Detect decides whether a mutation may apply cleanly. Server rows
	// are looked up within callerID's data only.
	// A nil baseline never conflicts: the mutation predates any sync and
	// is treated as new data.
	Detect(ctx context.Context, callerID string, action models.Action, payload map[string]any, baseline *time.Time) (*Detection, error)

	// Apply executes the mutation against the entity gateway and returns
	// the server-side row id.
	Apply(ctx context.Context, callerID string, action models.Action, payload map[string]any) (string, error)
}

// Registry holds the kind -> handler lookup table.
type Registry struct {
	handlers map[models.EntityKind]KindHandler
}

// NewRegistry builds the registry for the full closed kind set.
// aircraft_status narrows its conflict payload to the status fields;
// every other kind reports the full row snapshot.
func NewRegistry(gateway storage.EntityGateway) *Registry {
	r := &Registry{handlers: make(map[models.EntityKind]KindHandler)}

	for _, kind := range models.Kinds() {
		h := &entityHandler{kind: kind, gateway: gateway}
		if kind == models.KindAircraftStatus {
			h.project = statusProjection
		}
		r.handlers[kind] = h
	}

	return r
}

// Handler returns the handler registered for kind.
func (r *Registry) Handler(kind models.EntityKind) (KindHandler, bool) {
	h, ok := r.handlers[kind]
	return h, ok
}

// entityHandler is the default KindHandler over the entity gateway.
type entityHandler struct {
	gateway storage.EntityGateway
	project func(*models.EntityRecord) map[string]any
	kind    models.EntityKind
}

func (h *entityHandler) Detect(ctx context.Context, callerID string, action models.Action, payload map[string]any, baseline *time.Time) (*Detection, error) {
	// Без baseline мутация считается новой и применяется без проверки
	if baseline == nil {
		return &Detection{HasConflict: false}, nil
	}

	id, _ := payload["id"].(string)
	if id == "" {
		// Нечего сравнивать; путь Apply вернет осмысленную ошибку
		return &Detection{HasConflict: false}, nil
	}

	rec, err := h.gateway.FindByID(ctx, callerID, h.kind, id)
	if err != nil {
		if errors.Is(err, storage.ErrEntityNotFound) {
			// Строка исчезла после baseline клиента. Для create это не
			// конфликт. Для update/delete сообщаем deleted для всех
			// kinds единообразно.
			if action == models.ActionCreate {
				return &Detection{HasConflict: false}, nil
			}
			return &Detection{
				HasConflict: true,
				Type:        models.ConflictDeleted,
				ServerData:  map[string]any{"id": id},
			}, nil
		}
		return nil, fmt.Errorf("failed to fetch server row: %w", err)
	}

	if rec.UpdatedAt.After(*baseline) {
		return &Detection{
			HasConflict:      true,
			Type:             models.ConflictModified,
			ServerData:       h.snapshot(rec),
			ServerModifiedAt: rec.UpdatedAt,
		}, nil
	}

	return &Detection{HasConflict: false}, nil
}

func (h *entityHandler) Apply(ctx context.Context, callerID string, action models.Action, payload map[string]any) (string, error) {
	switch action {
	case models.ActionCreate:
		id, _ := payload["id"].(string)
		if id == "" {
			id = uuid.NewString()
		}

		fields := make(map[string]any, len(payload))
		for k, v := range payload {
			if k == "id" {
				continue
			}
			fields[k] = v
		}

		rec := &models.EntityRecord{
			ID:      id,
			Kind:    h.kind,
			OwnerID: callerID,
			Fields:  fields,
		}
		if err := h.gateway.Create(ctx, rec); err != nil {
			return "", err
		}
		return id, nil

	case models.ActionUpdate:
		id, _ := payload["id"].(string)
		if id == "" {
			return "", fmt.Errorf("update payload has no id")
		}
		if _, err := h.gateway.Update(ctx, callerID, h.kind, id, payload); err != nil {
			return "", err
		}
		return id, nil

	case models.ActionDelete:
		id, _ := payload["id"].(string)
		if id == "" {
			return "", fmt.Errorf("delete payload has no id")
		}
		if err := h.gateway.Delete(ctx, callerID, h.kind, id); err != nil {
			return "", err
		}
		return id, nil

	default:
		return "", fmt.Errorf("unknown action %q", action)
	}
}

func (h *entityHandler) snapshot(rec *models.EntityRecord) map[string]any {
	if h.project != nil {
		return h.project(rec)
	}
	return rec.Snapshot()
}

// statusProjection narrows an aircraft_status row to its status fields.
// Clients resolving a status conflict don't need the maintenance notes
// and squawk history carried on the full row.
func statusProjection(rec *models.EntityRecord) map[string]any {
	out := map[string]any{
		"id":         rec.ID,
		"updated_at": rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if v, ok := rec.Fields["status"]; ok {
		out["status"] = v
	}
	if v, ok := rec.Fields["status_note"]; ok {
		out["status_note"] = v
	}
	return out
}
