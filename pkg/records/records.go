// Package records defines the loose tabular row model shared across the
// reshaping pipeline: filter → mapper → rename → pivot. Rows are untyped maps
// so that upstream data with arbitrary extra columns flows through without
// glue code; typed validation is the job of internal/schema.
package records

import (
	"fmt"
	"strconv"
	"time"
)

// Record is a single observation row keyed by column name.
type Record map[string]any

// Clone returns a shallow copy of r. Values are shared; only the map header
// is new, so transforms that re-key columns can work on a copy without
// mutating caller-owned rows.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// CloneAll clones every record in the slice.
func CloneAll(in []Record) []Record {
	out := make([]Record, len(in))
	for i, r := range in {
		out[i] = r.Clone()
	}
	return out
}

// Table is a wide-format result: one row per key combination, with an
// explicit column order. Rows keep the map representation so callers can
// index by column name; Columns fixes the serialization order.
type Table struct {
	Columns []string
	Rows    []Record
}

// AsString converts common cell types to their string form without the
// overhead of fmt.Sprint; falls back to fmt.Sprint for uncommon types.
func AsString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

// AsFloat converts numeric cell types to float64. The second return reports
// whether the conversion succeeded; strings are parsed, everything else is
// rejected.
func AsFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
