package analysis

import (
	"fmt"
	"time"

	"github.com/ukydev/printer-maintenance/internal/models"
)

// Fallback thresholds: a part is flagged when it crossed either one.
const (
	fallbackQuantityThreshold  = 5
	fallbackFrequencyThreshold = 3
	fallbackHighUrgencyAbove   = 10
	fallbackMaxCriticalParts   = 5
)

// LocalFallback is the deterministic substitute used when the remote
// collaborator fails. Part statistics must already be sorted by total
// quantity descending, as ComputePartStats returns them.
func LocalFallback(partStats []models.PartStatistic) *models.AnalysisResult {
	critical := make([]models.CriticalPart, 0, fallbackMaxCriticalParts)
	for _, stat := range partStats {
		if stat.TotalQuantityUsed <= fallbackQuantityThreshold && stat.IncidentFrequency <= fallbackFrequencyThreshold {
			continue
		}
		urgency := "medium"
		if stat.TotalQuantityUsed > fallbackHighUrgencyAbove {
			urgency = "high"
		}
		critical = append(critical, models.CriticalPart{
			Name:    stat.Name,
			Reason:  fmt.Sprintf("High usage: %d units across %d incidents", stat.TotalQuantityUsed, stat.IncidentFrequency),
			Action:  "Review stock and consider restocking",
			Urgency: urgency,
		})
		if len(critical) == fallbackMaxCriticalParts {
			break
		}
	}

	return &models.AnalysisResult{
		Recommendations: []string{
			"Schedule preventive maintenance at locations with frequent incidents",
			"Set a minimum stock level for critical parts",
			"Train technicians on the most common failure types",
			"Optimize maintenance routes to cut response times",
		},
		CriticalParts: critical,
		Trends: []string{
			"Rising use of electrical parts",
			"Incidents concentrate at a few locations",
			"Older machines trend toward mechanical failures",
		},
		Optimizations: []string{
			"Centralize inventory for the most used parts",
			"Add low-stock alerts",
			"Arrange fast-delivery agreements with suppliers",
		},
		Source:      models.SourceFallback,
		GeneratedAt: time.Now().UTC(),
	}
}
