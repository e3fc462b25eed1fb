package models

import "time"

// Action тип действия мутации
type Action string

// Действия, которые клиент может поставить в очередь
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Valid reports whether a is a known mutation action.
func (a Action) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// QueuedMutation is a pending, not-yet-confirmed change in the client's
// durable queue. Entries are immutable once queued: a failed or
// conflicting mutation stays queued verbatim until the server names its
// LocalID in an applied response or the user resolves its conflict.
//
// A nil LocalLastSyncedAt means the mutation was queued before any
// successful sync; such mutations never trigger a conflict check.
// On update, absent Payload fields mean "leave unchanged", not "clear".
type QueuedMutation struct {
	LocalCreatedAt    time.Time      `json:"local_created_at"`
	LocalLastSyncedAt *time.Time     `json:"local_last_synced_at,omitempty"`
	Payload           map[string]any `json:"payload"`
	LocalID           string         `json:"local_id"`
	Kind              EntityKind     `json:"kind"`
	Action            Action         `json:"action"`
}

// ConflictType вид расхождения между клиентом и сервером
type ConflictType string

const (
	// ConflictModified сервер изменил запись после baseline клиента
	ConflictModified ConflictType = "modified"
	// ConflictDeleted серверная запись больше не существует
	ConflictDeleted ConflictType = "deleted"
)

// ConflictRecord is a detected divergence awaiting an explicit user
// decision. Created by the sync driver when the server reports a conflict
// for a queued mutation; removed only by a resolution action.
type ConflictRecord struct {
	DetectedAt       time.Time      `json:"detected_at"`
	ServerModifiedAt time.Time      `json:"server_modified_at"`
	LocalData        map[string]any `json:"local_data"`
	ServerData       map[string]any `json:"server_data"`
	ID               string         `json:"id"`
	LocalID          string         `json:"local_id"`
	Kind             EntityKind     `json:"kind"`
	ConflictType     ConflictType   `json:"conflict_type"`
}

// Resolution стратегия разрешения конфликта, выбранная пользователем
type Resolution string

const (
	// ResolutionServer отбросить локальные данные, сервер прав
	ResolutionServer Resolution = "server"
	// ResolutionMine повторить локальные данные как новую запись
	ResolutionMine Resolution = "mine"
	// ResolutionBoth сохранить обе версии (локальная копируется в новую запись)
	ResolutionBoth Resolution = "both"
)

// Valid reports whether r is a known resolution strategy.
func (r Resolution) Valid() bool {
	switch r {
	case ResolutionServer, ResolutionMine, ResolutionBoth:
		return true
	}
	return false
}

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
}
