package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/analysis"
	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/models"
	"github.com/ukydev/printer-maintenance/internal/stats"
)

// AnalysisHandler runs the narrative stock analysis and serves the persisted
// copy of the most recent result.
type AnalysisHandler struct {
	store   *db.Store
	gateway *analysis.Gateway
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(store *db.Store, gateway *analysis.Gateway) *AnalysisHandler {
	return &AnalysisHandler{store: store, gateway: gateway}
}

type analysisRequest struct {
	CoverageWeeks int `json:"coverageWeeks"`
}

// Run takes a snapshot of the current aggregates, sends it through the
// analysis gateway and returns the result. The gateway falls back to the
// local heuristic when the remote collaborator is unavailable, so this
// endpoint always answers with an analysis.
func (h *AnalysisHandler) Run(w http.ResponseWriter, r *http.Request) {
	req := analysisRequest{CoverageWeeks: defaultCoverageWeeks}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
	}
	if req.CoverageWeeks < 1 {
		req.CoverageWeeks = defaultCoverageWeeks
	}

	incidents, err := h.store.Incidents(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load incidents")
		http.Error(w, "Failed to load incidents", http.StatusInternalServerError)
		return
	}
	locations, err := h.store.Locations(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load locations")
		http.Error(w, "Failed to load locations", http.StatusInternalServerError)
		return
	}
	machines, err := h.store.Machines(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load machines")
		http.Error(w, "Failed to load machines", http.StatusInternalServerError)
		return
	}
	parts, err := h.store.Parts(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load parts")
		http.Error(w, "Failed to load parts", http.StatusInternalServerError)
		return
	}

	partStats := stats.ComputePartStats(incidents, parts)
	locationStats := stats.ComputeLocationStats(incidents, locations, machines)
	input := buildAnalysisInput(req.CoverageWeeks, partStats, locationStats, locations, incidents)

	result := h.gateway.Analyze(r.Context(), input, partStats)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Latest returns the persisted analysis from the last successful remote run,
// or 404 when none is stored.
func (h *AnalysisHandler) Latest(w http.ResponseWriter, r *http.Request) {
	result, err := h.store.LoadAnalysis(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load stored analysis")
		http.Error(w, "Failed to load stored analysis", http.StatusInternalServerError)
		return
	}
	if result == nil {
		http.Error(w, "No analysis stored", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// buildAnalysisInput condenses the aggregates into the payload sent to the
// analysis collaborator. Only derived numbers and short labels cross the
// wire, never the raw incident notes.
func buildAnalysisInput(weeks int, partStats []models.PartStatistic, locationStats []models.LocationStatistic, locations []models.Location, incidents []models.Incident) models.AnalysisInput {
	names := make(map[string]models.Location, len(locations))
	for _, l := range locations {
		names[l.ID] = l
	}

	input := models.AnalysisInput{CoverageWeeks: weeks}
	for _, p := range partStats {
		input.Parts = append(input.Parts, models.PartSummary{
			Name:              p.Name,
			TotalQuantityUsed: p.TotalQuantityUsed,
			IncidentFrequency: p.IncidentFrequency,
			LocationCount:     len(p.LocationIDs),
		})
	}
	for _, l := range locationStats {
		loc := names[l.LocationID]
		input.Locations = append(input.Locations, models.LocationSummary{
			Name:               loc.Name,
			Company:            loc.Company,
			IncidentCount:      l.IncidentCount,
			AverageDifficulty:  l.AverageDifficulty,
			AverageRepairHours: l.AverageRepairHours,
			TotalPartsConsumed: l.TotalPartsConsumed,
		})
	}
	for _, in := range incidents {
		input.Incidents = append(input.Incidents, models.IncidentSummary{
			Date:        in.Date,
			FailureType: in.FailureType,
			Difficulty:  in.Difficulty,
			RepairHours: in.RepairHours,
			PartsUsed:   len(in.PartsUsed),
		})
	}
	return input
}
