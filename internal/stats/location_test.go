package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ukydev/printer-maintenance/internal/models"
)

func siteAFixture() ([]models.Incident, []models.Location, []models.Machine) {
	incidents := []models.Incident{
		{
			ID: "1", Date: "2025-08-12", LocationID: "a", MachineID: "m1",
			Difficulty: models.DifficultyMedium, RepairHours: 3,
			PartsUsed: []models.PartUsage{{PartID: "fuser", Quantity: 1}, {PartID: "pickup", Quantity: 1}},
		},
		{
			ID: "2", Date: "2025-09-04", LocationID: "a", MachineID: "m1",
			Difficulty: models.DifficultyCritical, RepairHours: 5,
			PartsUsed: []models.PartUsage{{PartID: "fuser", Quantity: 1}},
		},
	}
	locations := []models.Location{{ID: "a", Name: "Site A"}}
	machines := []models.Machine{
		{ID: "m1", LocationID: "a", Model: "SL-M4020ND"},
		{ID: "m2", LocationID: "a", Model: "x656"},
	}
	return incidents, locations, machines
}

func TestComputeLocationStats_SiteA(t *testing.T) {
	incidents, locations, machines := siteAFixture()

	out := ComputeLocationStats(incidents, locations, machines)
	if !assert.Len(t, out, 1) {
		return
	}
	stat := out[0]
	assert.Equal(t, "a", stat.LocationID)
	assert.Equal(t, 2, stat.IncidentCount)
	assert.Equal(t, 2, stat.MachineCount)
	assert.Equal(t, 3, stat.TotalPartsConsumed)
	assert.InDelta(t, 3.0, stat.AverageDifficulty, 1e-9) // (2+4)/2
	assert.InDelta(t, 4.0, stat.AverageRepairHours, 1e-9)
	assert.Equal(t, "2025-09-04", stat.LastIncidentDate)
}

func TestComputeLocationStats_ZeroIncidentLocation(t *testing.T) {
	locations := []models.Location{{ID: "a"}, {ID: "b"}}
	incidents := []models.Incident{
		{ID: "1", Date: "2025-08-12", LocationID: "a", Difficulty: models.DifficultyLow},
	}

	out := ComputeLocationStats(incidents, locations, nil)
	if !assert.Len(t, out, 2) {
		return
	}
	empty := out[1]
	assert.Equal(t, "b", empty.LocationID)
	assert.Equal(t, 0, empty.IncidentCount)
	assert.Equal(t, 0, empty.MachineCount)
	assert.Equal(t, 0.0, empty.AverageDifficulty)
	assert.Equal(t, 0.0, empty.AverageRepairHours)
	assert.Equal(t, "", empty.LastIncidentDate)
}

func TestComputeLocationStats_DanglingReferences(t *testing.T) {
	locations := []models.Location{{ID: "a"}}
	machines := []models.Machine{
		{ID: "m1", LocationID: "a"},
		{ID: "m2", LocationID: "gone"}, // must not crash or count anywhere
	}
	incidents := []models.Incident{
		{ID: "1", Date: "2025-08-12", LocationID: "gone", Difficulty: models.DifficultyCritical},
	}

	out := ComputeLocationStats(incidents, locations, machines)
	if !assert.Len(t, out, 1) {
		return
	}
	assert.Equal(t, 0, out[0].IncidentCount)
	assert.Equal(t, 1, out[0].MachineCount)
}

func TestComputeLocationStats_TotalsMatchIncidentLog(t *testing.T) {
	incidents, locations, machines := siteAFixture()
	locations = append(locations, models.Location{ID: "b"})

	out := ComputeLocationStats(incidents, locations, machines)

	statTotal := 0
	for _, stat := range out {
		statTotal += stat.TotalPartsConsumed
	}
	logTotal := 0
	for _, incident := range incidents {
		for _, usage := range incident.PartsUsed {
			logTotal += usage.Quantity
		}
	}
	assert.Equal(t, logTotal, statTotal)
}

func TestComputeLocationStats_Deterministic(t *testing.T) {
	incidents, locations, machines := siteAFixture()
	first := ComputeLocationStats(incidents, locations, machines)
	second := ComputeLocationStats(incidents, locations, machines)
	assert.Equal(t, first, second)
}

func TestComputeLocationStats_UnparsableDateIgnoredForLastVisit(t *testing.T) {
	locations := []models.Location{{ID: "a"}}
	incidents := []models.Incident{
		{ID: "1", Date: "2025-08-12", LocationID: "a", Difficulty: models.DifficultyLow},
		{ID: "2", Date: "not-a-date", LocationID: "a", Difficulty: models.DifficultyLow},
	}

	out := ComputeLocationStats(incidents, locations, nil)
	if !assert.Len(t, out, 1) {
		return
	}
	assert.Equal(t, 2, out[0].IncidentCount)
	assert.Equal(t, "2025-08-12", out[0].LastIncidentDate)
}
