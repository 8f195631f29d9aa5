package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/export"
)

// DataHandler serves the backup surface: full export, validated import and
// the admin wipe.
type DataHandler struct {
	store *db.Store
}

// NewDataHandler creates a new data management handler.
func NewDataHandler(store *db.Store) *DataHandler {
	return &DataHandler{store: store}
}

// Export returns the full dataset as a single versioned document.
func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := export.Build(r.Context(), h.store)
	if err != nil {
		log.WithError(err).Error("Failed to build export")
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="maintenance-export.json"`)
	json.NewEncoder(w).Encode(doc)
}

// Import validates an export document and replaces the entire dataset with
// it. A document that fails validation leaves the stored data untouched.
func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	summary, err := export.Import(r.Context(), h.store, raw)
	if err != nil {
		if errors.Is(err, export.ErrInvalidDocument) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to import dataset")
		http.Error(w, "Failed to import dataset", http.StatusInternalServerError)
		return
	}

	log.WithFields(log.Fields{
		"incidents": summary.TotalIncidents,
		"locations": summary.TotalLocations,
		"parts":     summary.TotalParts,
		"machines":  summary.TotalMachines,
	}).Info("Dataset imported")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// Clear wipes every stored collection, including the cached analysis.
func (h *DataHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.ClearAll(r.Context()); err != nil {
		log.WithError(err).Error("Failed to clear data")
		http.Error(w, "Failed to clear data", http.StatusInternalServerError)
		return
	}

	log.Warn("All stored data cleared")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "All data cleared"})
}
