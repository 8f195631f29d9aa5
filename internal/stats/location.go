package stats

import (
	"time"

	"github.com/ukydev/printer-maintenance/internal/models"
)

const isoDate = "2006-01-02"

// locationAccumulator collects the per-location running totals during a scan
// of the incident log.
type locationAccumulator struct {
	incidentCount   int
	partsConsumed   int
	difficultySum   int
	repairHoursSum  float64
	lastIncidentUTC time.Time
}

// ComputeLocationStats derives one statistic per location in the reference
// store, including locations with zero incidents. Incidents whose location
// does not resolve are left out of every rollup.
func ComputeLocationStats(incidents []models.Incident, locations []models.Location, machines []models.Machine) []models.LocationStatistic {
	acc := make(map[string]*locationAccumulator, len(locations))
	for _, loc := range locations {
		acc[loc.ID] = &locationAccumulator{}
	}

	machineCounts := make(map[string]int, len(locations))
	for _, machine := range machines {
		// Machines with a dangling location id stay out of the rollups.
		if _, ok := acc[machine.LocationID]; ok {
			machineCounts[machine.LocationID]++
		}
	}

	for _, incident := range incidents {
		a, ok := acc[incident.LocationID]
		if !ok {
			continue
		}
		a.incidentCount++
		for _, usage := range incident.PartsUsed {
			a.partsConsumed += usage.Quantity
		}
		a.difficultySum += models.DifficultyScore(incident.Difficulty)
		a.repairHoursSum += incident.RepairHours

		// Compare parsed timestamps rather than raw strings so an oddly
		// formatted date cannot win on byte order.
		if parsed, err := time.Parse(isoDate, incident.Date); err == nil {
			if parsed.After(a.lastIncidentUTC) {
				a.lastIncidentUTC = parsed
			}
		}
	}

	out := make([]models.LocationStatistic, 0, len(locations))
	for _, loc := range locations {
		a := acc[loc.ID]
		stat := models.LocationStatistic{
			LocationID:         loc.ID,
			IncidentCount:      a.incidentCount,
			MachineCount:       machineCounts[loc.ID],
			TotalPartsConsumed: a.partsConsumed,
		}
		if a.incidentCount > 0 {
			stat.AverageDifficulty = float64(a.difficultySum) / float64(a.incidentCount)
			stat.AverageRepairHours = a.repairHoursSum / float64(a.incidentCount)
		}
		if !a.lastIncidentUTC.IsZero() {
			stat.LastIncidentDate = a.lastIncidentUTC.Format(isoDate)
		}
		out = append(out, stat)
	}
	return out
}
