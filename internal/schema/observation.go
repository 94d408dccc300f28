// Package schema defines the observation-table contract the reshaper accepts:
// long-format rows with one (model, scenario, region, variable, unit, period,
// value) observation each. Validation is structural and runs before any other
// processing, so a malformed table never reaches the mapping stage.
package schema

import (
	"fmt"

	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
)

// Field describes one contract column.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // "text" | "numeric"
	Required bool   `json:"required,omitempty"`
}

// Contract is a named list of column requirements for loose records.
type Contract struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Observation is the contract for long-format emissions input. The column
// set mirrors the quitte layout produced upstream; region is the only column
// the reshaper itself reads, the rest are what the mapping stage consumes.
var Observation = Contract{
	Name: "observation",
	Fields: []Field{
		{Name: "model", Type: "text"},
		{Name: "scenario", Type: "text"},
		{Name: "region", Type: "text", Required: true},
		{Name: "variable", Type: "text", Required: true},
		{Name: "unit", Type: "text", Required: true},
		{Name: "period", Type: "numeric", Required: true},
		{Name: "value", Type: "numeric", Required: true},
	},
}

// Validate checks every record against the contract and returns the first
// violation found, identified by row index (0-based) and field name. A nil
// or empty slice is a valid (empty) table.
func (c Contract) Validate(in []records.Record) error {
	for i, rec := range in {
		for _, f := range c.Fields {
			v, exists := rec[f.Name]
			empty := !exists || v == nil || (isString(v) && v.(string) == "")
			if empty {
				if f.Required {
					return fmt.Errorf("row %d: required column %q missing or empty", i, f.Name)
				}
				continue
			}
			if f.Type == "numeric" {
				if _, ok := records.AsFloat(v); !ok {
					return fmt.Errorf("row %d: column %q: %q is not numeric", i, f.Name, records.AsString(v))
				}
			}
		}
	}
	return nil
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}
