package api

import "time"

// Change is a single queued mutation submitted by a client.
type Change struct {
	LocalCreatedAt    time.Time      `json:"localCreatedAt"`
	LocalLastSyncedAt *time.Time     `json:"localLastSyncedAt,omitempty"`
	Data              map[string]any `json:"data" validate:"required"`
	Type              string         `json:"type" validate:"required"`
	Action            string         `json:"action" validate:"required,oneof=create update delete"`
	LocalID           string         `json:"localId" validate:"required"`
}

// SyncRequest is the batch of pending mutations sent by a client.
// An empty Changes slice is a valid request and yields an empty response.
type SyncRequest struct {
	UserID  string   `json:"userId" validate:"required"`
	Changes []Change `json:"changes" validate:"dive"`
}

// AppliedChange correlates a queued mutation with the server row it produced.
// ServerID equals the submitted id for update/delete and the generated id
// for create.
type AppliedChange struct {
	LocalID  string `json:"localId"`
	ServerID string `json:"serverId"`
}

// Conflict reports a mutation whose baseline is stale relative to current
// server state.
type Conflict struct {
	ServerModifiedAt time.Time      `json:"serverModifiedAt"`
	ServerData       map[string]any `json:"serverData"`
	Type             string         `json:"type"`
	Action           string         `json:"action"`
	LocalID          string         `json:"localId"`
	ConflictType     string         `json:"conflictType"`
}

// SyncResponse carries the per-item outcome of a batch sync.
// Every submitted change lands in exactly one of Applied or Conflicts, or
// is represented by a string in Errors.
type SyncResponse struct {
	Applied   []AppliedChange `json:"applied"`
	Conflicts []Conflict      `json:"conflicts"`
	Errors    []string        `json:"errors"`
}

// ServerTimeResponse is the clock reference returned by GET sync.
// Clients may use it to correct local timestamp drift before stamping
// new mutations.
type ServerTimeResponse struct {
	ServerTime time.Time `json:"serverTime"`
}
