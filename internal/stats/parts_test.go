package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukydev/printer-maintenance/internal/models"
)

func partsCatalog() []models.Part {
	return []models.Part{
		{ID: "1", Name: "Fuser", Code: "FUS-001", Category: "Components"},
		{ID: "2", Name: "Pickup", Code: "PIC-001", Category: "Components"},
		{ID: "3", Name: "Rubber", Code: "RUB-001", Category: "Components"},
	}
}

func TestComputePartStats_Accumulation(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", LocationID: "a", PartsUsed: []models.PartUsage{{PartID: "1", Quantity: 2}}},
		{ID: "2", LocationID: "b", PartsUsed: []models.PartUsage{{PartID: "1", Quantity: 1}, {PartID: "2", Quantity: 1}}},
		{ID: "3", LocationID: "a", PartsUsed: []models.PartUsage{{PartID: "1", Quantity: 1}}},
	}

	out := ComputePartStats(incidents, partsCatalog())
	if !assert.Len(t, out, 2) {
		return
	}

	fuser := out[0] // highest total quantity sorts first
	assert.Equal(t, "1", fuser.PartID)
	assert.Equal(t, "Fuser", fuser.Name)
	assert.Equal(t, 4, fuser.TotalQuantityUsed)
	assert.Equal(t, 3, fuser.IncidentFrequency)
	assert.Equal(t, []string{"a", "b"}, fuser.LocationIDs)

	pickup := out[1]
	assert.Equal(t, "2", pickup.PartID)
	assert.Equal(t, 1, pickup.TotalQuantityUsed)
	assert.Equal(t, 1, pickup.IncidentFrequency)
}

func TestComputePartStats_UnusedPartOmitted(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", LocationID: "a", PartsUsed: []models.PartUsage{{PartID: "1", Quantity: 1}}},
	}

	out := ComputePartStats(incidents, partsCatalog())
	for _, stat := range out {
		assert.NotEqual(t, "3", stat.PartID, "never-used part must not appear")
	}
	assert.Len(t, out, 1)
}

func TestComputePartStats_UnknownPartSkipped(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", LocationID: "a", PartsUsed: []models.PartUsage{
			{PartID: "ghost", Quantity: 5},
			{PartID: "2", Quantity: 1},
		}},
	}

	out := ComputePartStats(incidents, partsCatalog())
	if assert.Len(t, out, 1) {
		assert.Equal(t, "2", out[0].PartID)
	}
}

func TestComputePartStats_StableSortOnTies(t *testing.T) {
	incidents := []models.Incident{
		{ID: "1", LocationID: "a", PartsUsed: []models.PartUsage{{PartID: "2", Quantity: 1}}},
		{ID: "2", LocationID: "a", PartsUsed: []models.PartUsage{{PartID: "1", Quantity: 1}}},
	}

	first := ComputePartStats(incidents, partsCatalog())
	second := ComputePartStats(incidents, partsCatalog())
	assert.Equal(t, first, second)
	if assert.Len(t, first, 2) {
		assert.Equal(t, "1", first[0].PartID)
		assert.Equal(t, "2", first[1].PartID)
	}
}

func TestComputePartStats_NoIncidents(t *testing.T) {
	out := ComputePartStats(nil, partsCatalog())
	assert.Empty(t, out)
}
