// Package transformer provides the record-transform stages the reshaping
// pipeline is assembled from.
package transformer

import "github.com/fbenke-pik/remindClimateAssessment/pkg/records"

// Transformer rewrites a batch of records and returns the surviving slice.
// Implementations may mutate records in place or filter them out.
type Transformer interface {
	Apply([]records.Record) []records.Record
}

// Chain is an ordered list of transformers.
type Chain []Transformer

func (c Chain) Apply(in []records.Record) []records.Record {
	if len(c) == 0 {
		return in
	}

	out := in
	for _, t := range c {
		if t == nil {
			continue
		}
		out = t.Apply(out)
	}
	return out
}
