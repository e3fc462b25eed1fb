package models

import "time"

// EntityKind идентифицирует тип доменной записи, участвующей в синхронизации
type EntityKind string

// Закрытый набор типов записей, участвующих в синхронизации
const (
	KindFlightLog         EntityKind = "flight_log"
	KindMaintenanceRecord EntityKind = "maintenance_record"
	KindAircraftStatus    EntityKind = "aircraft_status"
	KindBooking           EntityKind = "booking"
)

// Kinds lists every entity kind eligible for sync.
func Kinds() []EntityKind {
	return []EntityKind{
		KindFlightLog,
		KindMaintenanceRecord,
		KindAircraftStatus,
		KindBooking,
	}
}

// Valid reports whether k belongs to the closed kind set.
func (k EntityKind) Valid() bool {
	switch k {
	case KindFlightLog, KindMaintenanceRecord, KindAircraftStatus, KindBooking:
		return true
	}
	return false
}

// EntityRecord представляет серверную строку любого типа записи.
// Доменные поля хранятся как документ в Fields; UpdatedAt монотонно
// растет при каждом применении мутации — на этом держится весь протокол
// обнаружения конфликтов.
type EntityRecord struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Fields    map[string]any `json:"fields"`
	ID        string         `json:"id"`
	OwnerID   string         `json:"owner_id"`
	Kind      EntityKind     `json:"kind"`
}

// Snapshot returns the record's fields plus identity and timestamp,
// as reported to clients in conflict payloads.
func (r *EntityRecord) Snapshot() map[string]any {
	out := make(map[string]any, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["id"] = r.ID
	out["updated_at"] = r.UpdatedAt.UTC().Format(time.RFC3339Nano)
	return out
}
