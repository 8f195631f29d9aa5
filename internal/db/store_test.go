package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/printer-maintenance/internal/models"
)

func TestStore_EmptyCollections(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	incidents, err := store.Incidents(ctx)
	require.NoError(t, err)
	assert.Empty(t, incidents)

	locations, err := store.Locations(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations)

	machines, err := store.Machines(ctx)
	require.NoError(t, err)
	assert.Empty(t, machines)

	parts, err := store.Parts(ctx)
	require.NoError(t, err)
	assert.Empty(t, parts)
}

func TestStore_AddIncidentAssignsID(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	saved, err := store.AddIncident(ctx, models.Incident{
		Date:       "2025-09-01",
		LocationID: "loc-1",
		MachineID:  "mac-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	incidents, err := store.Incidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, saved.ID, incidents[0].ID)
}

func TestStore_AddIncidentKeepsGivenID(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	saved, err := store.AddIncident(ctx, models.Incident{ID: "inc-42", Date: "2025-09-01"})
	require.NoError(t, err)
	assert.Equal(t, "inc-42", saved.ID)
}

func TestStore_AddIncidentPreservesOrder(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := store.AddIncident(ctx, models.Incident{ID: id})
		require.NoError(t, err)
	}

	incidents, err := store.Incidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, "a", incidents[0].ID)
	assert.Equal(t, "b", incidents[1].ID)
	assert.Equal(t, "c", incidents[2].ID)
}

func TestStore_CorruptCollectionTreatedAsEmpty(t *testing.T) {
	cases := map[string][]byte{
		"syntax error": []byte("{not json"),
		// Valid JSON that fails decoding partway through. No record may
		// leak out of a payload like this.
		"type mismatch": []byte(`[{"id":"a","date":"2025-01-01"},{"id":"b","date":5}]`),
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			blobs := NewMemoryBlobStore()
			ctx := context.Background()
			require.NoError(t, blobs.Set(ctx, KeyIncidents, payload))

			store := NewStore(blobs)
			incidents, err := store.Incidents(ctx)
			require.NoError(t, err)
			assert.Empty(t, incidents)

			// Appending must still work after a corrupt read, and must not
			// resurrect any partially decoded records.
			_, err = store.AddIncident(ctx, models.Incident{ID: "fresh"})
			require.NoError(t, err)
			incidents, err = store.Incidents(ctx)
			require.NoError(t, err)
			require.Len(t, incidents, 1)
			assert.Equal(t, "fresh", incidents[0].ID)
		})
	}
}

func TestStore_ReplaceAll(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	_, err := store.AddIncident(ctx, models.Incident{ID: "old"})
	require.NoError(t, err)

	err = store.ReplaceAll(ctx, models.ExportData{
		Incidents: []models.Incident{{ID: "new-1"}, {ID: "new-2"}},
		Locations: []models.Location{{ID: "loc-1", Name: "Central Office"}},
		Parts:     []models.Part{{ID: "FUS-001", Name: "Fuser Unit"}},
		Machines:  []models.Machine{{ID: "mac-1", Model: "SL-M4020ND", LocationID: "loc-1"}},
	})
	require.NoError(t, err)

	incidents, err := store.Incidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, "new-1", incidents[0].ID)

	locations, err := store.Locations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Central Office", locations[0].Name)
}

func TestStore_ClearAll(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	_, err := store.AddIncident(ctx, models.Incident{ID: "x"})
	require.NoError(t, err)
	require.NoError(t, store.SaveAnalysis(ctx, models.AnalysisResult{Source: models.SourceFallback}))

	require.NoError(t, store.ClearAll(ctx))

	incidents, err := store.Incidents(ctx)
	require.NoError(t, err)
	assert.Empty(t, incidents)

	result, err := store.LoadAnalysis(ctx)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestStore_AnalysisRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	result, err := store.LoadAnalysis(ctx)
	require.NoError(t, err)
	assert.Nil(t, result, "no analysis stored yet")

	saved := models.AnalysisResult{
		Recommendations: []string{"Keep two fuser units on hand"},
		Source:          models.SourceRemote,
	}
	require.NoError(t, store.SaveAnalysis(ctx, saved))

	result, err = store.LoadAnalysis(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, saved.Recommendations, result.Recommendations)
	assert.Equal(t, models.SourceRemote, result.Source)
}

func TestStore_CorruptAnalysisDiscarded(t *testing.T) {
	blobs := NewMemoryBlobStore()
	ctx := context.Background()
	require.NoError(t, blobs.Set(ctx, KeyAnalysis, []byte("%%%")))

	store := NewStore(blobs)
	result, err := store.LoadAnalysis(ctx)
	require.NoError(t, err)
	assert.Nil(t, result)

	// The corrupt payload must be gone after the failed load.
	data, err := blobs.Get(ctx, KeyAnalysis)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStore_SeedOnlyWhenEmpty(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))

	locations, err := store.Locations(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, locations)

	machines, err := store.Machines(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, machines)

	parts, err := store.Parts(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, parts)

	incidents, err := store.Incidents(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, incidents)

	// Every machine must reference a known location and every incident a
	// known machine, or the rollups would silently drop them.
	locationIDs := map[string]bool{}
	for _, l := range locations {
		locationIDs[l.ID] = true
	}
	for _, m := range machines {
		assert.Truef(t, locationIDs[m.LocationID], "machine %s references unknown location %s", m.ID, m.LocationID)
	}
	machineIDs := map[string]bool{}
	for _, m := range machines {
		machineIDs[m.ID] = true
	}
	for _, in := range incidents {
		assert.Truef(t, machineIDs[in.MachineID], "incident %s references unknown machine %s", in.ID, in.MachineID)
	}
}

func TestStore_SeedDoesNotOverwrite(t *testing.T) {
	store := NewStore(NewMemoryBlobStore())
	ctx := context.Background()

	_, err := store.AddIncident(ctx, models.Incident{ID: "mine"})
	require.NoError(t, err)

	require.NoError(t, store.Seed(ctx))

	incidents, err := store.Incidents(ctx)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "mine", incidents[0].ID)

	locations, err := store.Locations(ctx)
	require.NoError(t, err)
	assert.Empty(t, locations, "partial data must block seeding entirely")
}
