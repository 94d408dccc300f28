package builtin

import "github.com/fbenke-pik/remindClimateAssessment/pkg/records"

// SetConstant overwrites (or inserts) a fixed set of columns on every record.
// The submission layout forces Model, Region, and Scenario to constants
// regardless of what the mapping stage returned.
type SetConstant struct {
	Values map[string]any
}

func (s SetConstant) Apply(in []records.Record) []records.Record {
	if len(s.Values) == 0 {
		return in
	}
	for _, rec := range in {
		for k, v := range s.Values {
			rec[k] = v
		}
	}
	return in
}
