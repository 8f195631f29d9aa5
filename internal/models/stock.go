package models

// Priority ranks a stock recommendation. It is a static property of the part
// role, not derived from quantities.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// PriorityRank returns a sortable weight for a priority, higher is more urgent.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// StockRecommendation is one line of the restock list produced by the
// recommendation engine.
type StockRecommendation struct {
	PartName            string   `json:"partName"`
	Model               string   `json:"model"`
	Category            string   `json:"category"`
	Priority            Priority `json:"priority"`
	RecommendedQuantity int      `json:"recommendedQuantity"`
	Rationale           string   `json:"rationale"`
	UsageFrequency      int      `json:"usageFrequency"`
}
