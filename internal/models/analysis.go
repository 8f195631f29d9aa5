package models

import "time"

// AnalysisSource tags where an analysis result came from, so callers can
// tell a remote answer apart from the local fallback heuristic.
type AnalysisSource string

const (
	SourceRemote   AnalysisSource = "remote"
	SourceFallback AnalysisSource = "fallback"
)

// AnalysisInput is the payload sent to the narrative-analysis collaborator.
// It is built strictly from already-computed aggregates.
type AnalysisInput struct {
	CoverageWeeks int                `json:"coverageWeeks"`
	Parts         []PartSummary      `json:"parts"`
	Locations     []LocationSummary  `json:"locations"`
	Incidents     []IncidentSummary  `json:"incidents"`
}

// PartSummary condenses a PartStatistic for the analysis payload.
type PartSummary struct {
	Name              string `json:"name"`
	TotalQuantityUsed int    `json:"totalQuantityUsed"`
	IncidentFrequency int    `json:"incidentFrequency"`
	LocationCount     int    `json:"locationCount"`
}

// LocationSummary condenses a LocationStatistic for the analysis payload.
type LocationSummary struct {
	Name               string  `json:"name"`
	Company            string  `json:"company"`
	IncidentCount      int     `json:"incidentCount"`
	AverageDifficulty  float64 `json:"averageDifficulty"`
	AverageRepairHours float64 `json:"averageRepairHours"`
	TotalPartsConsumed int     `json:"totalPartsConsumed"`
}

// IncidentSummary condenses a single incident for the analysis payload.
type IncidentSummary struct {
	Date        string     `json:"date"`
	FailureType string     `json:"failureType"`
	Difficulty  Difficulty `json:"difficulty"`
	RepairHours float64    `json:"repairDurationHours"`
	PartsUsed   int        `json:"partsUsed"`
}

// CriticalPart is one part the analysis flags for urgent attention.
type CriticalPart struct {
	Name    string `json:"name"`
	Reason  string `json:"reason"`
	Action  string `json:"action"`
	Urgency string `json:"urgency"` // "high", "medium" or "low"
}

// AnalysisResult is the structured answer expected back from the analysis
// collaborator, or produced by the local fallback.
type AnalysisResult struct {
	Recommendations []string       `json:"recommendations"`
	CriticalParts   []CriticalPart `json:"criticalParts"`
	Trends          []string       `json:"trends"`
	Optimizations   []string       `json:"optimizations"`
	Source          AnalysisSource `json:"source,omitempty"`
	GeneratedAt     time.Time      `json:"generatedAt,omitempty"`
}
