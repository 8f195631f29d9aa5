package models

import (
	"fmt"
	"time"
)

// Difficulty is the ordinal difficulty rating of an incident.
type Difficulty string

const (
	DifficultyLow      Difficulty = "low"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHigh     Difficulty = "high"
	DifficultyCritical Difficulty = "critical"
)

// Incident represents a single recorded repair event against one machine at
// one location. Incidents are append-only; there is no update or delete path.
type Incident struct {
	ID               string      `json:"id" bson:"id"`
	Date             string      `json:"date" bson:"date"` // ISO calendar date, no time
	LocationID       string      `json:"locationId" bson:"locationId"`
	MachineID        string      `json:"machineId" bson:"machineId"`
	Description      string      `json:"description" bson:"description"`
	FailureType      string      `json:"failureType" bson:"failureType"`
	Difficulty       Difficulty  `json:"difficulty" bson:"difficulty"`
	RepairHours      float64     `json:"repairDurationHours" bson:"repairDurationHours"`
	PartsUsed        []PartUsage `json:"partsUsed" bson:"partsUsed"`
	Technician       string      `json:"technician" bson:"technician"`
	Notes            string      `json:"notes" bson:"notes"`
	EquipmentSerial  string      `json:"equipmentSerial,omitempty" bson:"equipmentSerial,omitempty"`
}

// Validate checks the fields a new incident must carry before it may enter
// the log. ID is allowed to be empty; the store assigns one.
func (i Incident) Validate() error {
	if i.Date == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", i.Date); err != nil {
		return fmt.Errorf("invalid date")
	}
	if i.LocationID == "" {
		return fmt.Errorf("locationId is required")
	}
	if i.MachineID == "" {
		return fmt.Errorf("machineId is required")
	}
	if !IsValidDifficulty(i.Difficulty) {
		return fmt.Errorf("invalid difficulty")
	}
	if i.RepairHours < 0 {
		return fmt.Errorf("invalid repairDurationHours")
	}
	for _, usage := range i.PartsUsed {
		if usage.PartID == "" || usage.Quantity <= 0 {
			return fmt.Errorf("invalid partsUsed")
		}
	}
	return nil
}

// IsValidDifficulty checks if a difficulty is one of the four known levels.
func IsValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh, DifficultyCritical:
		return true
	default:
		return false
	}
}

// DifficultyScore maps a difficulty to its 1-4 ordinal used for averaging.
// Unknown values score 0.
func DifficultyScore(d Difficulty) int {
	switch d {
	case DifficultyLow:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHigh:
		return 3
	case DifficultyCritical:
		return 4
	default:
		return 0
	}
}
