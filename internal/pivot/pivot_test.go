package pivot

import (
	"reflect"
	"testing"

	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
)

func wide() Wide {
	return Wide{
		NameFrom:  "Period",
		ValueFrom: "Value",
		Lead:      []string{"Model", "Scenario", "Region", "Variable", "Unit"},
	}
}

/*
TestWideApply verifies the long-to-wide reshape:
  - rows sharing a key collapse into one output row with one column per
    distinct period,
  - period columns come after the lead columns and are sorted numerically,
  - row order follows first appearance of each key.
*/
func TestWideApply(t *testing.T) {
	in := []records.Record{
		{"Model": "REMIND", "Scenario": "Test", "Region": "World", "Variable": "Emissions|CO2", "Unit": "Mt CO2/yr", "Period": 2030, "Value": 60.0},
		{"Model": "REMIND", "Scenario": "Test", "Region": "World", "Variable": "Emissions|CO2", "Unit": "Mt CO2/yr", "Period": 2020, "Value": 50.0},
		{"Model": "REMIND", "Scenario": "Test", "Region": "World", "Variable": "Emissions|CH4", "Unit": "Mt CH4/yr", "Period": 2020, "Value": 8.0},
	}

	got := wide().Apply(in)

	wantColumns := []string{"Model", "Scenario", "Region", "Variable", "Unit", "2020", "2030"}
	if !reflect.DeepEqual(got.Columns, wantColumns) {
		t.Fatalf("Columns = %v, want %v", got.Columns, wantColumns)
	}

	wantRows := []records.Record{
		{"Model": "REMIND", "Scenario": "Test", "Region": "World", "Variable": "Emissions|CO2", "Unit": "Mt CO2/yr", "2020": 50.0, "2030": 60.0},
		{"Model": "REMIND", "Scenario": "Test", "Region": "World", "Variable": "Emissions|CH4", "Unit": "Mt CH4/yr", "2020": 8.0},
	}
	if !reflect.DeepEqual(got.Rows, wantRows) {
		t.Fatalf("Rows = %v, want %v", got.Rows, wantRows)
	}
}

// TestWideApply_LastWins checks the conflict policy: when two rows land in
// the same (key, period) cell, the later row's value is kept.
func TestWideApply_LastWins(t *testing.T) {
	in := []records.Record{
		{"Variable": "Emissions|CO2", "Period": 2020, "Value": 1.0},
		{"Variable": "Emissions|CO2", "Period": 2020, "Value": 2.0},
	}
	got := wide().Apply(in)
	if len(got.Rows) != 1 || got.Rows[0]["2020"] != 2.0 {
		t.Fatalf("expected single row with last value 2, got %v", got.Rows)
	}
}

// TestWideApply_NonNumericPeriods checks the lexical fallback order used
// when a period value does not parse as a number.
func TestWideApply_NonNumericPeriods(t *testing.T) {
	in := []records.Record{
		{"Variable": "x", "Period": "b", "Value": 1.0},
		{"Variable": "x", "Period": "a", "Value": 2.0},
	}
	got := wide().Apply(in)
	want := []string{"Variable", "a", "b"}
	if !reflect.DeepEqual(got.Columns, want) {
		t.Fatalf("Columns = %v, want %v", got.Columns, want)
	}
}

// TestWideApply_Empty checks that an empty batch yields an empty table.
func TestWideApply_Empty(t *testing.T) {
	got := wide().Apply(nil)
	if len(got.Columns) != 0 || len(got.Rows) != 0 {
		t.Fatalf("expected empty table, got %v", got)
	}
}

// TestWideApply_ExtraKeyColumns checks that key columns outside the lead
// list are appended in sorted order before the period columns.
func TestWideApply_ExtraKeyColumns(t *testing.T) {
	in := []records.Record{
		{"Variable": "x", "Zeta": 1, "Alpha": 2, "Period": 2020, "Value": 3.0},
	}
	got := wide().Apply(in)
	want := []string{"Variable", "Alpha", "Zeta", "2020"}
	if !reflect.DeepEqual(got.Columns, want) {
		t.Fatalf("Columns = %v, want %v", got.Columns, want)
	}
}
