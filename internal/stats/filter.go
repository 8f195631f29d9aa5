// Package stats holds the aggregation and filtering core. Every function in
// this package is pure: inputs are never mutated and results are recomputed
// from the raw records on each call.
package stats

import (
	"strings"

	"github.com/ukydev/printer-maintenance/internal/models"
)

// ApplyFilter returns the incidents satisfying every active predicate of the
// filter. Predicates combine with AND across categories and OR within a
// category's set values. Relative order of survivors matches the input. An
// empty filter returns the input slice unchanged.
func ApplyFilter(incidents []models.Incident, filter models.Filter) []models.Incident {
	if filter.IsEmpty() {
		return incidents
	}

	// ISO dates are zero-padded, so lexicographic comparison is date order.
	technician := strings.ToLower(filter.TechnicianSubstring)

	out := make([]models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if filter.DateFrom != "" && incident.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && incident.Date > filter.DateTo {
			continue
		}
		if len(filter.Difficulties) > 0 && !containsDifficulty(filter.Difficulties, incident.Difficulty) {
			continue
		}
		if len(filter.FailureTypes) > 0 && !containsString(filter.FailureTypes, incident.FailureType) {
			continue
		}
		if len(filter.LocationIDs) > 0 && !containsString(filter.LocationIDs, incident.LocationID) {
			continue
		}
		if technician != "" && !strings.Contains(strings.ToLower(incident.Technician), technician) {
			continue
		}
		out = append(out, incident)
	}
	return out
}

func containsDifficulty(set []models.Difficulty, d models.Difficulty) bool {
	for _, v := range set {
		if v == d {
			return true
		}
	}
	return false
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
