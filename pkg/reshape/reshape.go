// Package reshape turns long-format emissions output into the wide
// submission layout expected by the climate-assessment service.
//
// The pipeline is strictly linear: validate the table and the mapping,
// restrict rows to the global region codes, hand the batch to the
// submission generator, title-case the returned column names, force the
// Model/Region/Scenario metadata columns, and pivot periods into columns.
// There is no retry, no partial result, and no state across calls.
package reshape

import (
	"github.com/fbenke-pik/remindClimateAssessment/internal/iiasa"
	"github.com/fbenke-pik/remindClimateAssessment/internal/pivot"
	"github.com/fbenke-pik/remindClimateAssessment/internal/schema"
	"github.com/fbenke-pik/remindClimateAssessment/internal/transformer"
	"github.com/fbenke-pik/remindClimateAssessment/internal/transformer/builtin"
	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
	"github.com/fbenke-pik/remindClimateAssessment/pkg/submission"
)

// Model is the fixed model label written to every output row.
const Model = "REMIND"

// Region is the fixed region written to every output row. The pre-filter
// also accepts "GLO" rows; the distinction is gone after this constant is
// applied, but the filter keeps both so the generator sees the same rows the
// original workflow fed it.
const Region = "World"

// globalRegions are the region codes that survive the pre-filter.
var globalRegions = []string{"GLO", Region}

// Options configures Transform. The zero value selects the AR6 mapping, the
// packaged default template, no log file, and the bundled generator.
type Options struct {
	// Mapping selects the variable-mapping ruleset.
	Mapping Mapping

	// VariablesFile is an explicit template path; empty resolves to the
	// packaged default for Mapping.
	VariablesFile string

	// LogFile is handed to the generator for unmapped-variable diagnostics.
	// Transform neither reads nor manages it.
	LogFile string

	// Mapper overrides the submission generator; nil selects the bundled
	// template mapper.
	Mapper submission.Generator
}

// Transform validates table, filters it to global-scope rows, delegates to
// the submission generator, and returns the wide (one column per period)
// submission table with Model, Region, and Scenario forced on every row.
//
// Errors: *InvalidInputError for a table violating the observation contract,
// *InvalidArgumentError for a mapping outside the supported set, and any
// generator error returned unchanged. All validation happens before the
// generator is invoked; a failed call produces no output.
func Transform(table []records.Record, scenario string, opts Options) (records.Table, error) {
	if err := schema.Observation.Validate(table); err != nil {
		return records.Table{}, &InvalidInputError{Reason: err.Error()}
	}
	if !opts.Mapping.valid() {
		return records.Table{}, &InvalidArgumentError{Name: "mapping", Value: opts.Mapping.String()}
	}

	// Pre-filter to the global region codes. Copy the slice header first so
	// the in-place filter never reorders caller-owned slices.
	rows := append([]records.Record(nil), table...)
	rows = builtin.RegionFilter{Keep: globalRegions}.Apply(rows)

	gen := opts.Mapper
	if gen == nil {
		gen = iiasa.Mapper{}
	}
	mapped, err := gen.Generate(rows, submission.Request{
		Mapping:      opts.Mapping.String(),
		TemplatePath: opts.VariablesFile,
		LogFile:      opts.LogFile,
		// The generator's summation consistency check stays off here; the
		// climate-assessment service runs its own completeness checks.
		CheckSummation: false,
	})
	if err != nil {
		return records.Table{}, err
	}

	mapped = transformer.Chain{
		builtin.RenameTitle{},
		builtin.SetConstant{Values: map[string]any{
			"Model":    Model,
			"Region":   Region,
			"Scenario": scenario,
		}},
	}.Apply(mapped)

	wide := pivot.Wide{
		NameFrom:  "Period",
		ValueFrom: "Value",
		Lead:      []string{"Model", "Scenario", "Region", "Variable", "Unit"},
	}.Apply(mapped)
	return wide, nil
}
