package builtin

import (
	"reflect"
	"testing"

	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
)

/*
TestRegionFilterApply verifies the global pre-filter:
  - only exact, case-sensitive matches of the Keep codes survive,
  - rows without the region column (or with a non-string value) are dropped,
  - order of surviving rows is preserved.
*/
func TestRegionFilterApply(t *testing.T) {
	in := []records.Record{
		{"region": "DEU", "value": 10.0},
		{"region": "World", "value": 50.0},
		{"region": "GLO", "value": 51.0},
		{"region": "world", "value": 52.0}, // wrong case
		{"value": 53.0},                    // no region column
		{"region": 7, "value": 54.0},       // non-string region
	}

	f := RegionFilter{Keep: []string{"GLO", "World"}}
	got := f.Apply(in)

	want := []records.Record{
		{"region": "World", "value": 50.0},
		{"region": "GLO", "value": 51.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}

// TestRegionFilterIdempotent checks that filtering an already-filtered batch
// returns it unchanged.
func TestRegionFilterIdempotent(t *testing.T) {
	f := RegionFilter{Keep: []string{"GLO", "World"}}
	once := f.Apply([]records.Record{
		{"region": "GLO", "value": 1.0},
		{"region": "World", "value": 2.0},
	})
	onceCopy := records.CloneAll(once)

	twice := f.Apply(once)
	if !reflect.DeepEqual(twice, onceCopy) {
		t.Fatalf("second filter changed the batch: %v vs %v", twice, onceCopy)
	}
}

// TestRegionFilterDefaultColumn checks the "region" default for Column.
func TestRegionFilterDefaultColumn(t *testing.T) {
	f := RegionFilter{Column: "Region", Keep: []string{"World"}}
	got := f.Apply([]records.Record{{"Region": "World"}, {"region": "World"}})
	if len(got) != 1 {
		t.Fatalf("expected exactly the Region-keyed row, got %v", got)
	}
}
