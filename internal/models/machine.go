package models

// MachineStatus is the operational state of a machine.
type MachineStatus string

const (
	StatusOperational  MachineStatus = "operational"
	StatusInRepair     MachineStatus = "in-repair"
	StatusOutOfService MachineStatus = "out-of-service"
)

// Machine represents a piece of field equipment (a printer) at a location.
// Model is free text and is the grouping key for per-model analysis.
type Machine struct {
	ID         string        `json:"id" bson:"id"`
	Name       string        `json:"name" bson:"name"`
	Type       string        `json:"type" bson:"type"`
	Model      string        `json:"model" bson:"model"`
	LocationID string        `json:"locationId" bson:"locationId"`
	Status     MachineStatus `json:"status" bson:"status"`
}

// IsValidMachineStatus checks if a machine status is one of the known states.
func IsValidMachineStatus(status MachineStatus) bool {
	switch status {
	case StatusOperational, StatusInRepair, StatusOutOfService:
		return true
	default:
		return false
	}
}
