package models

// ExportVersion is the document version stamped on exports.
const ExportVersion = "1.0"

// ExportData holds the four persisted collections of an export document.
type ExportData struct {
	Incidents []Incident `json:"incidents"`
	Locations []Location `json:"locations"`
	Parts     []Part     `json:"parts"`
	Machines  []Machine  `json:"machines"`
}

// ExportSummary carries the collection counts of an export document.
type ExportSummary struct {
	TotalIncidents int `json:"totalIncidents"`
	TotalLocations int `json:"totalLocations"`
	TotalParts     int `json:"totalParts"`
	TotalMachines  int `json:"totalMachines"`
}

// ExportDocument is the single-file backup format. Import requires version
// and data to be present and each sub-collection to be array-typed.
type ExportDocument struct {
	Version    string        `json:"version"`
	ExportedAt string        `json:"exportedAt"`
	Data       ExportData    `json:"data"`
	Summary    ExportSummary `json:"summary"`
}
