package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntityKind_Valid(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), "kind %s", k)
	}
	assert.False(t, EntityKind("fuel_order").Valid())
	assert.False(t, EntityKind("").Valid())
}

func TestAction_Valid(t *testing.T) {
	assert.True(t, ActionCreate.Valid())
	assert.True(t, ActionUpdate.Valid())
	assert.True(t, ActionDelete.Valid())
	assert.False(t, Action("upsert").Valid())
}

func TestResolution_Valid(t *testing.T) {
	assert.True(t, ResolutionServer.Valid())
	assert.True(t, ResolutionMine.Valid())
	assert.True(t, ResolutionBoth.Valid())
	assert.False(t, Resolution("theirs").Valid())
}

func TestEntityRecord_Snapshot(t *testing.T) {
	updated := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	rec := &EntityRecord{
		ID:        "B1",
		OwnerID:   "user-1",
		Kind:      KindBooking,
		Fields:    map[string]any{"aircraft_id": "N123AB", "start_time": "2024-03-01T10:00:00Z"},
		UpdatedAt: updated,
	}

	snap := rec.Snapshot()

	assert.Equal(t, "B1", snap["id"])
	assert.Equal(t, "N123AB", snap["aircraft_id"])
	assert.Equal(t, "2024-02-15T00:00:00Z", snap["updated_at"])

	// Snapshot не должен разделять map с записью
	snap["aircraft_id"] = "mutated"
	assert.Equal(t, "N123AB", rec.Fields["aircraft_id"])
}
