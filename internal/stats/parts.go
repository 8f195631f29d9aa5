package stats

import (
	"sort"

	"github.com/ukydev/printer-maintenance/internal/models"
)

// partAccumulator collects the per-part running totals.
type partAccumulator struct {
	totalQuantity int
	locationIDs   map[string]struct{}
	frequency     int
}

// ComputePartStats derives one statistic per part referenced by at least one
// incident. Parts never used get no entry. Usage entries whose part id does
// not resolve against the catalog are skipped. Output is sorted by total
// quantity used, descending, with part id as the stable tie-break.
func ComputePartStats(incidents []models.Incident, parts []models.Part) []models.PartStatistic {
	catalog := make(map[string]models.Part, len(parts))
	for _, part := range parts {
		catalog[part.ID] = part
	}

	acc := make(map[string]*partAccumulator)
	for _, incident := range incidents {
		for _, usage := range incident.PartsUsed {
			if _, known := catalog[usage.PartID]; !known {
				continue
			}
			a, ok := acc[usage.PartID]
			if !ok {
				a = &partAccumulator{locationIDs: make(map[string]struct{})}
				acc[usage.PartID] = a
			}
			a.totalQuantity += usage.Quantity
			a.locationIDs[incident.LocationID] = struct{}{}
			a.frequency++
		}
	}

	out := make([]models.PartStatistic, 0, len(acc))
	for partID, a := range acc {
		locationIDs := make([]string, 0, len(a.locationIDs))
		for id := range a.locationIDs {
			locationIDs = append(locationIDs, id)
		}
		sort.Strings(locationIDs)
		out = append(out, models.PartStatistic{
			PartID:            partID,
			Name:              catalog[partID].Name,
			TotalQuantityUsed: a.totalQuantity,
			LocationIDs:       locationIDs,
			IncidentFrequency: a.frequency,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalQuantityUsed != out[j].TotalQuantityUsed {
			return out[i].TotalQuantityUsed > out[j].TotalQuantityUsed
		}
		return out[i].PartID < out[j].PartID
	})
	return out
}
