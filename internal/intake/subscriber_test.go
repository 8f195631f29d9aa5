package intake

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/models"
)

func TestSubscriber_IngestValidReport(t *testing.T) {
	store := db.NewStore(db.NewMemoryBlobStore())
	sub := NewSubscriber("tcp://localhost:1883", "field/incidents", store)

	payload, err := json.Marshal(models.Incident{
		Date:       "2025-08-30",
		LocationID: "loc-1",
		MachineID:  "mac-1",
		Difficulty: models.DifficultyHigh,
		PartsUsed:  []models.PartUsage{{PartID: "p1", Quantity: 1}},
		Technician: "Carlos Gomez",
	})
	require.NoError(t, err)

	sub.ingest(payload)

	incidents, err := store.Incidents(context.Background())
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.NotEmpty(t, incidents[0].ID)
	assert.Equal(t, "mac-1", incidents[0].MachineID)
}

func TestSubscriber_DropsUnparsableReport(t *testing.T) {
	store := db.NewStore(db.NewMemoryBlobStore())
	sub := NewSubscriber("tcp://localhost:1883", "field/incidents", store)

	sub.ingest([]byte("not json"))

	incidents, err := store.Incidents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestSubscriber_DropsInvalidReport(t *testing.T) {
	store := db.NewStore(db.NewMemoryBlobStore())
	sub := NewSubscriber("tcp://localhost:1883", "field/incidents", store)

	// Missing machineId.
	payload, err := json.Marshal(models.Incident{
		Date:       "2025-08-30",
		LocationID: "loc-1",
		Difficulty: models.DifficultyHigh,
	})
	require.NoError(t, err)

	sub.ingest(payload)

	incidents, err := store.Incidents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, incidents)
}

func TestSubscriber_StopWithoutStart(t *testing.T) {
	sub := NewSubscriber("tcp://localhost:1883", "field/incidents", db.NewStore(db.NewMemoryBlobStore()))
	sub.Stop() // must not panic
}
