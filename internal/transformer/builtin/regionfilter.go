// Package builtin contains the reusable transformers of the reshaping
// pipeline: region pre-filtering, column renaming, and constant metadata
// columns.
package builtin

import "github.com/fbenke-pik/remindClimateAssessment/pkg/records"

// RegionFilter keeps only records whose region column matches one of Keep
// exactly (case-sensitive). It is a pre-filter to shrink the batch handed to
// the mapping stage; records without the column are dropped too.
type RegionFilter struct {
	// Column is the region column name; "region" when empty.
	Column string

	// Keep lists the accepted region codes, e.g. ["GLO", "World"].
	Keep []string
}

// Apply filters in place, reusing the backing array. Filtering an
// already-filtered batch is a no-op.
func (f RegionFilter) Apply(in []records.Record) []records.Record {
	col := f.Column
	if col == "" {
		col = "region"
	}

	out := in[:0]
	for _, rec := range in {
		s, ok := rec[col].(string)
		if !ok {
			continue
		}
		for _, k := range f.Keep {
			if s == k {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
