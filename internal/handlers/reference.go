package handlers

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/models"
)

// ReferenceHandler serves the three reference collections: locations,
// machines and the parts catalog.
type ReferenceHandler struct {
	store *db.Store
}

// NewReferenceHandler creates a new reference data handler.
func NewReferenceHandler(store *db.Store) *ReferenceHandler {
	return &ReferenceHandler{store: store}
}

// ListLocations returns all locations.
func (h *ReferenceHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.store.Locations(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load locations")
		http.Error(w, "Failed to load locations", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(locations)
}

// CreateLocation appends one location.
func (h *ReferenceHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var location models.Location
	if err := json.NewDecoder(r.Body).Decode(&location); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if location.Name == "" {
		http.Error(w, errMissingField("name").Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.store.AddLocation(r.Context(), location)
	if err != nil {
		log.WithError(err).Error("Failed to save location")
		http.Error(w, "Failed to save location", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

// ListMachines returns all machines.
func (h *ReferenceHandler) ListMachines(w http.ResponseWriter, r *http.Request) {
	machines, err := h.store.Machines(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load machines")
		http.Error(w, "Failed to load machines", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(machines)
}

// CreateMachine appends one machine. Status defaults to operational.
func (h *ReferenceHandler) CreateMachine(w http.ResponseWriter, r *http.Request) {
	var machine models.Machine
	if err := json.NewDecoder(r.Body).Decode(&machine); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if machine.Name == "" {
		http.Error(w, errMissingField("name").Error(), http.StatusBadRequest)
		return
	}
	if machine.LocationID == "" {
		http.Error(w, errMissingField("locationId").Error(), http.StatusBadRequest)
		return
	}
	if machine.Status == "" {
		machine.Status = models.StatusOperational
	}
	if !models.IsValidMachineStatus(machine.Status) {
		http.Error(w, errInvalidField("status").Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.store.AddMachine(r.Context(), machine)
	if err != nil {
		log.WithError(err).Error("Failed to save machine")
		http.Error(w, "Failed to save machine", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}

// ListParts returns the parts catalog.
func (h *ReferenceHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.store.Parts(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load parts")
		http.Error(w, "Failed to load parts", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parts)
}

// CreatePart appends one part to the catalog.
func (h *ReferenceHandler) CreatePart(w http.ResponseWriter, r *http.Request) {
	var part models.Part
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if part.Name == "" {
		http.Error(w, errMissingField("name").Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.store.AddPart(r.Context(), part)
	if err != nil {
		log.WithError(err).Error("Failed to save part")
		http.Error(w, "Failed to save part", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(saved)
}
