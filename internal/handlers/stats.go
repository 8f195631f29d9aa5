package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/stats"
)

// StatsHandler serves the derived rollups. Statistics are recomputed from the
// stored incidents on every request, never cached.
type StatsHandler struct {
	store *db.Store
}

// NewStatsHandler creates a new statistics handler.
func NewStatsHandler(store *db.Store) *StatsHandler {
	return &StatsHandler{store: store}
}

// LocationStats returns the per-location rollup, computed over the incidents
// that pass the query-param filter.
func (h *StatsHandler) LocationStats(w http.ResponseWriter, r *http.Request) {
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

	filtered := stats.ApplyFilter(incidents, filterFromQuery(r))
	result := stats.ComputeLocationStats(filtered, locations, machines)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// PartStats returns the per-part usage rollup, computed over the incidents
// that pass the query-param filter.
func (h *StatsHandler) PartStats(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.store.Incidents(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load incidents")
		http.Error(w, "Failed to load incidents", http.StatusInternalServerError)
		return
	}
	parts, err := h.store.Parts(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load parts")
		http.Error(w, "Failed to load parts", http.StatusInternalServerError)
		return
	}

	filtered := stats.ApplyFilter(incidents, filterFromQuery(r))
	result := stats.ComputePartStats(filtered, parts)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
