package models

// LocationStatistic is the derived per-location rollup. It is recomputed on
// every query and never stored.
type LocationStatistic struct {
	LocationID         string  `json:"locationId"`
	IncidentCount      int     `json:"incidentCount"`
	MachineCount       int     `json:"machineCount"`
	TotalPartsConsumed int     `json:"totalPartsConsumed"`
	AverageDifficulty  float64 `json:"averageDifficulty"`
	AverageRepairHours float64 `json:"averageRepairHours"`
	LastIncidentDate   string  `json:"lastIncidentDate"` // ISO date, "" when no incidents
}

// PartStatistic is the derived per-part usage rollup. Parts never referenced
// by any incident do not get an entry.
type PartStatistic struct {
	PartID            string   `json:"partId"`
	Name              string   `json:"name"`
	TotalQuantityUsed int      `json:"totalQuantityUsed"`
	LocationIDs       []string `json:"locationIds"`
	IncidentFrequency int      `json:"incidentFrequency"`
}
