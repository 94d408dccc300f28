package iiasa

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
	"github.com/fbenke-pik/remindClimateAssessment/pkg/submission"
)

// defaultTolerance is the relative tolerance for summation groups that do
// not declare their own.
const defaultTolerance = 0.005

// submissionColumns is the long-format column order written by
// OutputFilename.
var submissionColumns = []string{"model", "scenario", "region", "variable", "unit", "period", "value"}

// Mapper is the bundled submission generator. It is stateless; the template
// is resolved per call from the request.
type Mapper struct{}

var _ submission.Generator = Mapper{}

// Generate maps observation rows onto the template vocabulary:
//
//   - rows whose variable has a template entry are renamed, their unit set to
//     the template unit and their value scaled by the entry factor;
//   - rows whose variable has no entry are dropped and reported to the
//     request's log file (one line per distinct variable);
//   - a row whose unit disagrees with the entry's expected source unit is an
//     error, returned as-is to the caller.
func (Mapper) Generate(rows []records.Record, req submission.Request) ([]records.Record, error) {
	tpl, err := resolveTemplate(req)
	if err != nil {
		return nil, err
	}
	idx := tpl.index()

	out := make([]records.Record, 0, len(rows))
	unmapped := make(map[string]struct{})

	for i, rec := range rows {
		name := records.AsString(rec["variable"])
		e, ok := idx[name]
		if !ok {
			unmapped[name] = struct{}{}
			continue
		}

		want := e.SourceUnit
		if want == "" {
			want = e.Unit
		}
		if unit := records.AsString(rec["unit"]); unit != want {
			return nil, fmt.Errorf("row %d: variable %q: unit %q does not match template unit %q", i, name, unit, want)
		}

		v, ok := records.AsFloat(rec["value"])
		if !ok {
			return nil, fmt.Errorf("row %d: variable %q: value %q is not numeric", i, name, records.AsString(rec["value"]))
		}
		factor := e.Factor
		if factor == 0 {
			factor = 1
		}

		m := rec.Clone()
		m["variable"] = e.Template
		m["unit"] = e.Unit
		m["value"] = v * factor
		out = append(out, m)
	}

	if req.CheckSummation {
		if err := checkSummation(tpl, out); err != nil {
			return nil, err
		}
	}
	if req.LogFile != "" && len(unmapped) > 0 {
		if err := appendUnmappedLog(req.LogFile, unmapped); err != nil {
			return nil, err
		}
	}
	if req.OutputFilename != "" {
		if err := writeSubmissionCSV(req.OutputFilename, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func resolveTemplate(req submission.Request) (*Template, error) {
	if req.TemplatePath != "" {
		return LoadTemplate(req.TemplatePath)
	}
	return DefaultTemplate(req.Mapping)
}

// checkSummation verifies each declared summation group per
// (model, scenario, region, period) slice of the generated rows. Groups whose
// parent is absent from a slice are skipped there.
func checkSummation(tpl *Template, rows []records.Record) error {
	// variable -> slice key -> summed value
	sums := make(map[string]map[string]float64)
	for _, rec := range rows {
		name := records.AsString(rec["variable"])
		key := sliceKey(rec)
		v, _ := records.AsFloat(rec["value"])
		if sums[name] == nil {
			sums[name] = make(map[string]float64)
		}
		sums[name][key] += v
	}

	for _, g := range tpl.Summations {
		tol := g.Tolerance
		if tol == 0 {
			tol = defaultTolerance
		}
		for key, parent := range sums[g.Parent] {
			var total float64
			for _, c := range g.Components {
				total += sums[c][key]
			}
			scale := math.Max(math.Abs(parent), 1)
			if math.Abs(parent-total) > tol*scale {
				return fmt.Errorf("summation check failed for %q (%s): parent %g vs component sum %g",
					g.Parent, strings.ReplaceAll(key, "\x1f", "/"), parent, total)
			}
		}
	}
	return nil
}

func sliceKey(rec records.Record) string {
	var b strings.Builder
	for _, k := range []string{"model", "scenario", "region", "period"} {
		b.WriteString(records.AsString(rec[k]))
		b.WriteByte('\x1f')
	}
	return b.String()
}

// appendUnmappedLog appends one line per distinct unmapped variable. The file
// is created if needed and never truncated; its lifecycle belongs to the
// caller.
func appendUnmappedLog(path string, unmapped map[string]struct{}) error {
	names := make([]string, 0, len(unmapped))
	for n := range unmapped {
		names = append(names, n)
	}
	sort.Strings(names)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	for _, n := range names {
		if _, err := fmt.Fprintf(f, "variable not in template: %s\n", n); err != nil {
			return fmt.Errorf("write log file: %w", err)
		}
	}
	return nil
}

func writeSubmissionCSV(path string, rows []records.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write submission: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(submissionColumns); err != nil {
		return err
	}
	line := make([]string, len(submissionColumns))
	for _, rec := range rows {
		for i, c := range submissionColumns {
			line[i] = records.AsString(rec[c])
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
