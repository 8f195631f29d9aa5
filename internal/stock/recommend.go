// Package stock turns usage history into a ranked restock list.
package stock

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukydev/printer-maintenance/internal/models"
)

// Role describes one class of wear part. BaseQuantity is the nominal minimum
// to keep on hand per machine model; Priority is a static property of the
// role, never derived from quantities.
type Role struct {
	Name         string
	Keyword      string // lowercase substring matched against part names
	Category     string
	Priority     models.Priority
	BaseQuantity int
	Reason       string
}

// RoleTable is the configurable base-quantity table keyed by part role.
type RoleTable []Role

// DefaultRoleTable returns the built-in wear-part table. Quantities reflect
// how fast each role wears out in the field.
func DefaultRoleTable() RoleTable {
	return RoleTable{
		{Name: "Fuser", Keyword: "fuser", Category: "Components", Priority: models.PriorityCritical, BaseQuantity: 2, Reason: "Most common failure, prone to overheating"},
		{Name: "Pickup", Keyword: "pickup", Category: "Components", Priority: models.PriorityCritical, BaseQuantity: 3, Reason: "Worn pickups cause paper jams"},
		{Name: "Controller", Keyword: "controller", Category: "Components", Priority: models.PriorityCritical, BaseQuantity: 1, Reason: "Main board failure takes the machine down"},
		{Name: "Rubber", Keyword: "rubber", Category: "Components", Priority: models.PriorityHigh, BaseQuantity: 4, Reason: "Rubber rollers wear fastest"},
		{Name: "Retard", Keyword: "retard", Category: "Components", Priority: models.PriorityHigh, BaseQuantity: 2, Reason: "Feed separation wears with volume"},
		{Name: "Sensor", Keyword: "sensor", Category: "Components", Priority: models.PriorityHigh, BaseQuantity: 2, Reason: "Electronic sensor failures"},
		{Name: "Imaging Unit", Keyword: "imaging", Category: "Components", Priority: models.PriorityHigh, BaseQuantity: 1, Reason: "Print quality degrades as the unit ages"},
		{Name: "Feed Rollers", Keyword: "roller", Category: "Components", Priority: models.PriorityHigh, BaseQuantity: 3, Reason: "Tray rollers wear with volume"},
		{Name: "Duplex", Keyword: "duplex", Category: "Components", Priority: models.PriorityMedium, BaseQuantity: 1, Reason: "Duplex unit wear"},
	}
}

// DefaultCap bounds every recommended quantity.
const DefaultCap = 10

// Engine produces restock recommendations from aggregated usage data.
type Engine struct {
	Roles RoleTable
	Cap   int
}

// NewEngine returns an engine with the default role table and cap.
func NewEngine() *Engine {
	return &Engine{Roles: DefaultRoleTable(), Cap: DefaultCap}
}

// Recommend builds the ranked restock list for the given coverage window in
// weeks. Machines are grouped by model; each role in the table yields one
// recommendation per model, scaled by machine count and by how often parts of
// that role were consumed on that model's incidents. A model with no
// incident history falls back to the base quantities.
//
// recommendedQuantity = min(cap, max(base, ceil(base*machineFactor*freqFactor*weeks/4)))
// with machineFactor = ceil(machines/2) and freqFactor = min(frequency, 3).
func (e *Engine) Recommend(partStats []models.PartStatistic, machines []models.Machine, incidents []models.Incident, coverageWeeks int) []models.StockRecommendation {
	if coverageWeeks < 1 {
		coverageWeeks = 1
	}
	cap := e.Cap
	if cap <= 0 {
		cap = DefaultCap
	}

	partNames := make(map[string]string, len(partStats))
	for _, stat := range partStats {
		partNames[stat.PartID] = strings.ToLower(stat.Name)
	}

	groups := groupByModel(machines)
	modelsSorted := make([]string, 0, len(groups))
	for model := range groups {
		modelsSorted = append(modelsSorted, model)
	}
	sort.Strings(modelsSorted)

	out := make([]models.StockRecommendation, 0, len(groups)*len(e.Roles))
	for _, model := range modelsSorted {
		group := groups[model]
		groupIncidents := incidentsForMachines(incidents, group.machineIDs)
		machineFactor := (len(group.machineIDs) + 1) / 2

		for _, role := range e.Roles {
			frequency := 0
			for _, incident := range groupIncidents {
				if incidentUsesRole(incident, role.Keyword, partNames) {
					frequency++
				}
			}

			freqFactor := frequency
			if freqFactor > 3 {
				freqFactor = 3
			}
			scaled := ceilDiv(role.BaseQuantity*machineFactor*freqFactor*coverageWeeks, 4)
			quantity := role.BaseQuantity
			if scaled > quantity {
				quantity = scaled
			}
			if quantity > cap {
				quantity = cap
			}

			out = append(out, models.StockRecommendation{
				PartName:            fmt.Sprintf("%s %s", role.Name, model),
				Model:               model,
				Category:            role.Category,
				Priority:            role.Priority,
				RecommendedQuantity: quantity,
				Rationale: fmt.Sprintf("%s - covers %d machine(s) of model %s for %d week(s)",
					role.Reason, len(group.machineIDs), model, coverageWeeks),
				UsageFrequency: frequency,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := models.PriorityRank(out[i].Priority), models.PriorityRank(out[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return out[i].UsageFrequency > out[j].UsageFrequency
	})
	return out
}

type modelGroup struct {
	machineIDs map[string]struct{}
}

func groupByModel(machines []models.Machine) map[string]*modelGroup {
	groups := make(map[string]*modelGroup)
	for _, machine := range machines {
		group, ok := groups[machine.Model]
		if !ok {
			group = &modelGroup{machineIDs: make(map[string]struct{})}
			groups[machine.Model] = group
		}
		group.machineIDs[machine.ID] = struct{}{}
	}
	return groups
}

func incidentsForMachines(incidents []models.Incident, machineIDs map[string]struct{}) []models.Incident {
	out := make([]models.Incident, 0)
	for _, incident := range incidents {
		if _, ok := machineIDs[incident.MachineID]; ok {
			out = append(out, incident)
		}
	}
	return out
}

func incidentUsesRole(incident models.Incident, keyword string, partNames map[string]string) bool {
	for _, usage := range incident.PartsUsed {
		name, ok := partNames[usage.PartID]
		if !ok {
			continue
		}
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
