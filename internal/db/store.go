package db

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/models"
)

// Fixed storage keys for the four persisted collections plus the cached
// analysis result.
const (
	KeyIncidents = "incidents_data"
	KeyLocations = "locations_data"
	KeyMachines  = "machines_data"
	KeyParts     = "parts_data"
	KeyAnalysis  = "stock_analysis"
)

// Store is the typed dataset layer over a BlobStore. Each collection is
// persisted as one JSON array under a fixed key. A payload that fails to
// decode is treated as an empty collection and logged, never as a crash.
type Store struct {
	blobs BlobStore
}

// NewStore wraps a BlobStore.
func NewStore(blobs BlobStore) *Store {
	return &Store{blobs: blobs}
}

// readCollection decodes the JSON array stored under key into out, which must
// be a pointer to a slice. Decoding goes through a scratch value so a payload
// that fails partway through leaves out empty rather than half-populated.
func (s *Store) readCollection(ctx context.Context, key string, out interface{}) error {
	data, err := s.blobs.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	decoded := reflect.New(reflect.TypeOf(out).Elem())
	if err := json.Unmarshal(data, decoded.Interface()); err != nil {
		log.WithFields(log.Fields{"key": key}).WithError(err).Error("Corrupt dataset, treating as empty")
		return nil
	}
	reflect.ValueOf(out).Elem().Set(decoded.Elem())
	return nil
}

func (s *Store) writeCollection(ctx context.Context, key string, in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.blobs.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Locations returns all stored locations.
func (s *Store) Locations(ctx context.Context) ([]models.Location, error) {
	out := []models.Location{}
	err := s.readCollection(ctx, KeyLocations, &out)
	return out, err
}

// Machines returns all stored machines.
func (s *Store) Machines(ctx context.Context) ([]models.Machine, error) {
	out := []models.Machine{}
	err := s.readCollection(ctx, KeyMachines, &out)
	return out, err
}

// Parts returns the parts catalog.
func (s *Store) Parts(ctx context.Context) ([]models.Part, error) {
	out := []models.Part{}
	err := s.readCollection(ctx, KeyParts, &out)
	return out, err
}

// Incidents returns the full incident log in append order.
func (s *Store) Incidents(ctx context.Context) ([]models.Incident, error) {
	out := []models.Incident{}
	err := s.readCollection(ctx, KeyIncidents, &out)
	return out, err
}

// AddIncident appends one incident to the log, assigning an ID when empty.
// This is the only writer of the incident log.
func (s *Store) AddIncident(ctx context.Context, incident models.Incident) (models.Incident, error) {
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	incidents, err := s.Incidents(ctx)
	if err != nil {
		return models.Incident{}, err
	}
	incidents = append(incidents, incident)
	if err := s.writeCollection(ctx, KeyIncidents, incidents); err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

// AddLocation appends one location, assigning an ID when empty.
func (s *Store) AddLocation(ctx context.Context, location models.Location) (models.Location, error) {
	if location.ID == "" {
		location.ID = uuid.NewString()
	}
	locations, err := s.Locations(ctx)
	if err != nil {
		return models.Location{}, err
	}
	locations = append(locations, location)
	if err := s.writeCollection(ctx, KeyLocations, locations); err != nil {
		return models.Location{}, err
	}
	return location, nil
}

// AddMachine appends one machine, assigning an ID when empty.
func (s *Store) AddMachine(ctx context.Context, machine models.Machine) (models.Machine, error) {
	if machine.ID == "" {
		machine.ID = uuid.NewString()
	}
	machines, err := s.Machines(ctx)
	if err != nil {
		return models.Machine{}, err
	}
	machines = append(machines, machine)
	if err := s.writeCollection(ctx, KeyMachines, machines); err != nil {
		return models.Machine{}, err
	}
	return machine, nil
}

// AddPart appends one part to the catalog, assigning an ID when empty.
func (s *Store) AddPart(ctx context.Context, part models.Part) (models.Part, error) {
	if part.ID == "" {
		part.ID = uuid.NewString()
	}
	parts, err := s.Parts(ctx)
	if err != nil {
		return models.Part{}, err
	}
	parts = append(parts, part)
	if err := s.writeCollection(ctx, KeyParts, parts); err != nil {
		return models.Part{}, err
	}
	return part, nil
}

// ReplaceAll swaps out the four persisted collections in one operation. Used
// by the import path after the document has been fully validated.
func (s *Store) ReplaceAll(ctx context.Context, data models.ExportData) error {
	if err := s.writeCollection(ctx, KeyIncidents, data.Incidents); err != nil {
		return err
	}
	if err := s.writeCollection(ctx, KeyLocations, data.Locations); err != nil {
		return err
	}
	if err := s.writeCollection(ctx, KeyParts, data.Parts); err != nil {
		return err
	}
	return s.writeCollection(ctx, KeyMachines, data.Machines)
}

// ClearAll removes everything, including the cached analysis.
func (s *Store) ClearAll(ctx context.Context) error {
	return s.blobs.Clear(ctx)
}

// SaveAnalysis persists the latest analysis result for re-display. The copy
// is a convenience cache, never authoritative over a fresh computation.
func (s *Store) SaveAnalysis(ctx context.Context, result models.AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	return s.blobs.Set(ctx, KeyAnalysis, data)
}

// LoadAnalysis returns the persisted analysis, or nil when none is stored.
// A corrupt payload is dropped so it cannot keep failing on every load.
func (s *Store) LoadAnalysis(ctx context.Context) (*models.AnalysisResult, error) {
	data, err := s.blobs.Get(ctx, KeyAnalysis)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyAnalysis, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var result models.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.WithError(err).Error("Corrupt stored analysis, discarding")
		if delErr := s.blobs.Delete(ctx, KeyAnalysis); delErr != nil {
			log.WithError(delErr).Warn("Failed to delete corrupt analysis")
		}
		return nil, nil
	}
	return &result, nil
}

// Seed loads the default reference dataset, but only when the store holds
// none of the four collections yet.
func (s *Store) Seed(ctx context.Context) error {
	for _, key := range []string{KeyIncidents, KeyLocations, KeyMachines, KeyParts} {
		data, err := s.blobs.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("seed check %s: %w", key, err)
		}
		if len(data) > 0 {
			return nil
		}
	}
	seed := seedData()
	log.WithFields(log.Fields{
		"locations": len(seed.Locations),
		"machines":  len(seed.Machines),
		"parts":     len(seed.Parts),
		"incidents": len(seed.Incidents),
	}).Info("Seeding empty store with default dataset")
	return s.ReplaceAll(ctx, seed)
}
