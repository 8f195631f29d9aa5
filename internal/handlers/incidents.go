package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/models"
	"github.com/ukydev/printer-maintenance/internal/stats"
)

// IncidentHandler serves the append-only incident log.
type IncidentHandler struct {
	store *db.Store
}

// NewIncidentHandler creates a new incident handler.
func NewIncidentHandler(store *db.Store) *IncidentHandler {
	return &IncidentHandler{store: store}
}

// List returns incidents, optionally narrowed by query-param filters. The
// stored order is preserved.
func (h *IncidentHandler) List(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.store.Incidents(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load incidents")
		http.Error(w, "Failed to load incidents", http.StatusInternalServerError)
		return
	}

	filter := filterFromQuery(r)
	filtered := stats.ApplyFilter(incidents, filter)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(filtered)
}

// Create appends one incident. Incidents can never be updated or deleted
// afterwards.
func (h *IncidentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var incident models.Incident
	if err := json.NewDecoder(r.Body).Decode(&incident); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := incident.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.store.AddIncident(r.Context(), incident)
	if err != nil {
		log.WithError(err).Error("Failed to save incident")
		http.Error(w, "Failed to save incident", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

// filterFromQuery builds an incident filter from URL query parameters.
// Repeated parameters form OR-sets within their category.
func filterFromQuery(r *http.Request) models.Filter {
	q := r.URL.Query()
	filter := models.Filter{
		DateFrom:            q.Get("from"),
		DateTo:              q.Get("to"),
		FailureTypes:        q["failureType"],
		LocationIDs:         q["location"],
		TechnicianSubstring: q.Get("technician"),
	}
	for _, d := range q["difficulty"] {
		filter.Difficulties = append(filter.Difficulties, models.Difficulty(d))
	}
	return filter
}
