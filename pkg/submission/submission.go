// Package submission defines the contract between the reshaper and the
// submission-generating mapper: the mapper receives long-format observation
// rows plus a request describing which mapping ruleset to apply, and returns
// long-format rows renamed to the external reporting vocabulary.
//
// The bundled implementation lives in internal/iiasa; callers may inject any
// other Generator (for tests, or to front a remote service).
package submission

import "github.com/fbenke-pik/remindClimateAssessment/pkg/records"

// Request carries the per-call parameters of a submission generation.
type Request struct {
	// Mapping is the canonical name of the mapping ruleset, e.g. "AR6".
	Mapping string

	// TemplatePath points at the variable-template file to apply. Empty
	// selects the packaged default template for Mapping.
	TemplatePath string

	// OutputFilename, when non-empty, makes the generator also write its
	// long-format output to this file.
	OutputFilename string

	// LogFile, when non-empty, receives diagnostics about unmapped or
	// missing variables. The caller does not manage this file's lifecycle.
	LogFile string

	// CheckSummation enables the template's summation-group consistency
	// check on the generated rows.
	CheckSummation bool
}

// Generator produces submission rows from observation rows. Implementations
// must not retain rows beyond the call; returned rows are owned by the
// caller.
type Generator interface {
	Generate(rows []records.Record, req Request) ([]records.Record, error)
}
