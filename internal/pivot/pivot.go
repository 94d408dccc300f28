// Package pivot reshapes long-format records (one observation per row) into
// a wide table (one row per key combination, one column per distinct period).
package pivot

import (
	"sort"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
)

// Wide configures the long-to-wide pivot. Every column other than NameFrom
// and ValueFrom forms the row key.
type Wide struct {
	// NameFrom is the column whose distinct values become new columns
	// (e.g. "Period").
	NameFrom string

	// ValueFrom is the column whose values fill the new columns
	// (e.g. "Value").
	ValueFrom string

	// Lead orders the leading key columns of the output; key columns not
	// listed here follow in sorted order. Columns listed but absent from the
	// data are skipped.
	Lead []string
}

type wideRow struct {
	key   records.Record // key columns only
	cells map[string]any // period column -> value
}

// Apply pivots the batch. Rows sharing the same key collapse into one output
// row; when two input rows land in the same (key, period) cell the later row
// wins. Output rows keep first-appearance order of their key; period columns
// are sorted ascending (numeric when all periods parse as numbers).
func (w Wide) Apply(in []records.Record) records.Table {
	keyCols := w.keyColumns(in)

	// Key rows by a 128-bit hash of the key-column string forms. Cheaper
	// than composite string keys on wide batches.
	index := make(map[xxh3.Uint128]int, len(in))
	rows := make([]wideRow, 0, len(in))
	periodSeen := make(map[string]struct{})

	var b strings.Builder
	for _, rec := range in {
		b.Reset()
		for _, k := range keyCols {
			b.WriteString(records.AsString(rec[k]))
			b.WriteByte('\x1f')
		}
		h := xxh3.Hash128([]byte(b.String()))

		i, ok := index[h]
		if !ok {
			key := make(records.Record, len(keyCols))
			for _, k := range keyCols {
				if v, exists := rec[k]; exists {
					key[k] = v
				}
			}
			rows = append(rows, wideRow{key: key, cells: make(map[string]any)})
			i = len(rows) - 1
			index[h] = i
		}

		period := records.AsString(rec[w.NameFrom])
		rows[i].cells[period] = rec[w.ValueFrom]
		periodSeen[period] = struct{}{}
	}

	periods := sortedPeriods(periodSeen)

	out := records.Table{
		Columns: append(append([]string{}, keyCols...), periods...),
		Rows:    make([]records.Record, 0, len(rows)),
	}
	for _, r := range rows {
		rec := make(records.Record, len(r.key)+len(r.cells))
		for k, v := range r.key {
			rec[k] = v
		}
		for p, v := range r.cells {
			rec[p] = v
		}
		out.Rows = append(out.Rows, rec)
	}
	return out
}

// keyColumns returns the union of key columns across the batch: Lead columns
// that occur in the data first, then the rest sorted by name.
func (w Wide) keyColumns(in []records.Record) []string {
	seen := make(map[string]struct{})
	for _, rec := range in {
		for k := range rec {
			if k == w.NameFrom || k == w.ValueFrom {
				continue
			}
			seen[k] = struct{}{}
		}
	}

	cols := make([]string, 0, len(seen))
	for _, k := range w.Lead {
		if _, ok := seen[k]; ok {
			cols = append(cols, k)
			delete(seen, k)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

// sortedPeriods orders period column names ascending. Year columns are the
// normal case, so a numeric order is used whenever every name parses as a
// number; otherwise the order falls back to lexical.
func sortedPeriods(seen map[string]struct{}) []string {
	periods := make([]string, 0, len(seen))
	for p := range seen {
		periods = append(periods, p)
	}

	numeric := make(map[string]float64, len(periods))
	allNumeric := true
	for _, p := range periods {
		f, ok := records.AsFloat(p)
		if !ok {
			allNumeric = false
			break
		}
		numeric[p] = f
	}

	if allNumeric {
		sort.Slice(periods, func(i, j int) bool { return numeric[periods[i]] < numeric[periods[j]] })
	} else {
		sort.Strings(periods)
	}
	return periods
}
