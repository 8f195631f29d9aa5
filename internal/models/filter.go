package models

// Filter is an ephemeral set of incident predicates. Every field is optional;
// a zero-value field imposes no constraint from its category.
type Filter struct {
	DateFrom            string       `json:"dateFrom,omitempty"`
	DateTo              string       `json:"dateTo,omitempty"`
	Difficulties        []Difficulty `json:"difficulties,omitempty"`
	FailureTypes        []string     `json:"failureTypes,omitempty"`
	LocationIDs         []string     `json:"locationIds,omitempty"`
	TechnicianSubstring string       `json:"technicianSubstring,omitempty"`
}

// IsEmpty reports whether the filter constrains nothing.
func (f Filter) IsEmpty() bool {
	return f.DateFrom == "" && f.DateTo == "" &&
		len(f.Difficulties) == 0 && len(f.FailureTypes) == 0 &&
		len(f.LocationIDs) == 0 && f.TechnicianSubstring == ""
}
