package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/stats"
	"github.com/ukydev/printer-maintenance/internal/stock"
)

const defaultCoverageWeeks = 2

// StockHandler serves restock recommendations.
type StockHandler struct {
	store  *db.Store
	engine *stock.Engine
}

// NewStockHandler creates a new stock recommendation handler.
func NewStockHandler(store *db.Store, engine *stock.Engine) *StockHandler {
	return &StockHandler{store: store, engine: engine}
}

// Recommendations returns the restock list for the requested coverage window.
// The weeks query parameter defaults to 4 and must be a positive integer.
func (h *StockHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	weeks := defaultCoverageWeeks
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			http.Error(w, errInvalidField("weeks").Error(), http.StatusBadRequest)
			return
		}
		weeks = parsed
	}

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
	machines, err := h.store.Machines(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load machines")
		http.Error(w, "Failed to load machines", http.StatusInternalServerError)
		return
	}

	partStats := stats.ComputePartStats(incidents, parts)
	recommendations := h.engine.Recommend(partStats, machines, incidents, weeks)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recommendations)
}
