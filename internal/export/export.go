// Package export builds and restores single-file JSON backups of the four
// persisted collections.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/models"
)

// ErrInvalidDocument marks an import rejected by validation. The persisted
// collections are untouched when this is returned.
var ErrInvalidDocument = errors.New("invalid import document")

// Build snapshots the store into an export document.
func Build(ctx context.Context, store *db.Store) (*models.ExportDocument, error) {
	incidents, err := store.Incidents(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := store.Locations(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := store.Parts(ctx)
	if err != nil {
		return nil, err
	}
	machines, err := store.Machines(ctx)
	if err != nil {
		return nil, err
	}

	return &models.ExportDocument{
		Version:    models.ExportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Data: models.ExportData{
			Incidents: incidents,
			Locations: locations,
			Parts:     parts,
			Machines:  machines,
		},
		Summary: models.ExportSummary{
			TotalIncidents: len(incidents),
			TotalLocations: len(locations),
			TotalParts:     len(parts),
			TotalMachines:  len(machines),
		},
	}, nil
}

// importEnvelope keeps the four collections raw so their JSON types can be
// checked before anything is decoded or written.
type importEnvelope struct {
	Version string `json:"version"`
	Data    *struct {
		Incidents json.RawMessage `json:"incidents"`
		Locations json.RawMessage `json:"locations"`
		Parts     json.RawMessage `json:"parts"`
		Machines  json.RawMessage `json:"machines"`
	} `json:"data"`
}

// Import validates the document fully, then replaces the four persisted
// collections. A document that fails any check is rejected without touching
// existing state.
func Import(ctx context.Context, store *db.Store, raw []byte) (*models.ExportSummary, error) {
	var envelope importEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if envelope.Version == "" {
		return nil, fmt.Errorf("%w: missing version", ErrInvalidDocument)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrInvalidDocument)
	}

	var data models.ExportData
	for _, col := range []struct {
		name string
		raw  json.RawMessage
		dst  interface{}
	}{
		{"incidents", envelope.Data.Incidents, &data.Incidents},
		{"locations", envelope.Data.Locations, &data.Locations},
		{"parts", envelope.Data.Parts, &data.Parts},
		{"machines", envelope.Data.Machines, &data.Machines},
	} {
		trimmed := bytes.TrimSpace(col.raw)
		if len(trimmed) == 0 {
			return nil, fmt.Errorf("%w: missing %s collection", ErrInvalidDocument, col.name)
		}
		if trimmed[0] != '[' {
			return nil, fmt.Errorf("%w: %s is not array-typed", ErrInvalidDocument, col.name)
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("%w: %s is not an array of records: %v", ErrInvalidDocument, col.name, err)
		}
	}

	if err := store.ReplaceAll(ctx, data); err != nil {
		return nil, err
	}

	return &models.ExportSummary{
		TotalIncidents: len(data.Incidents),
		TotalLocations: len(data.Locations),
		TotalParts:     len(data.Parts),
		TotalMachines:  len(data.Machines),
	}, nil
}
