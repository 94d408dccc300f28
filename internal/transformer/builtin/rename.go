package builtin

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
)

// RenameTitle re-keys every column to its title-cased form: the first letter
// of each whitespace-delimited word is capitalized, the rest of the word is
// left untouched ("period" -> "Period", "unit type" -> "Unit Type"). The
// mapping stage emits lowercase column names; the submission layout wants
// title case. Idempotent on already-title-cased names.
type RenameTitle struct{}

var titleCaser = cases.Title(language.English, cases.NoLower)

// TitleCase returns the title-cased form of a single column name.
func TitleCase(name string) string {
	return titleCaser.String(name)
}

// Apply replaces each record with a re-keyed copy. Copies are used because
// the same column may be read under its old key while another is written
// under its new one.
func (RenameTitle) Apply(in []records.Record) []records.Record {
	for i, rec := range in {
		out := make(records.Record, len(rec))
		for k, v := range rec {
			out[TitleCase(k)] = v
		}
		in[i] = out
	}
	return in
}
