package builtin

import (
	"reflect"
	"testing"

	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
)

// TestSetConstantApply verifies that configured columns are overwritten when
// present and inserted when absent, on every record.
func TestSetConstantApply(t *testing.T) {
	in := []records.Record{
		{"Model": "REMIND-MAgPIE", "Region": "GLO", "Value": 1.0},
		{"Value": 2.0},
	}

	s := SetConstant{Values: map[string]any{
		"Model":    "REMIND",
		"Region":   "World",
		"Scenario": "Test",
	}}
	got := s.Apply(in)

	want := []records.Record{
		{"Model": "REMIND", "Region": "World", "Scenario": "Test", "Value": 1.0},
		{"Model": "REMIND", "Region": "World", "Scenario": "Test", "Value": 2.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}

func TestSetConstantEmpty(t *testing.T) {
	in := []records.Record{{"Value": 1.0}}
	if got := (SetConstant{}).Apply(in); !reflect.DeepEqual(got, in) {
		t.Fatalf("empty SetConstant should be a no-op, got %v", got)
	}
}
