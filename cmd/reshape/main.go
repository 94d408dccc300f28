// Command reshape runs the climate-assessment reshaping on a long-format
// CSV file and writes the wide submission table as CSV.
//
// The input file needs a header row with the observation columns (model,
// scenario, region, variable, unit, period, value); header matching is
// case-insensitive.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fbenke-pik/remindClimateAssessment/pkg/records"
	"github.com/fbenke-pik/remindClimateAssessment/pkg/reshape"
)

var (
	flagIn       = flag.String("in", "", "Path to the long-format observation CSV (required)")
	flagOut      = flag.String("out", "", "Path for the wide submission CSV; stdout when empty")
	flagScenario = flag.String("scenario", "", "Scenario label written to every output row (required)")
	flagMapping  = flag.String("mapping", "AR6", "Mapping ruleset: AR6|NGFS_AR6|AR6_MAgPIE|climateassessment")
	flagTemplate = flag.String("template", "", "Variable-template YAML; packaged default when empty")
	flagLog      = flag.String("logfile", "", "File receiving unmapped-variable diagnostics")
)

func main() {
	flag.Parse()
	if *flagIn == "" || *flagScenario == "" {
		flag.Usage()
		os.Exit(2)
	}

	mapping, err := reshape.ParseMapping(*flagMapping)
	if err != nil {
		log.Fatal(err)
	}

	rows, err := readObservations(*flagIn)
	if err != nil {
		log.Fatalf("read %s: %v", *flagIn, err)
	}

	table, err := reshape.Transform(rows, *flagScenario, reshape.Options{
		Mapping:       mapping,
		VariablesFile: *flagTemplate,
		LogFile:       *flagLog,
	})
	if err != nil {
		log.Fatal(err)
	}

	out := io.Writer(os.Stdout)
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	if err := writeWide(out, table); err != nil {
		log.Fatalf("write output: %v", err)
	}
	log.Printf("reshaped %d observation rows into %d submission rows", len(rows), len(table.Rows))
}

// readObservations loads a headered CSV into loose records. Header names are
// lowercased so files exported with title-cased headers load the same way.
func readObservations(path string) ([]records.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []records.Record
	for {
		line, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(records.Record, len(header))
		for i, h := range header {
			if i < len(line) {
				rec[h] = line[i]
			}
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func writeWide(out io.Writer, table records.Table) error {
	w := csv.NewWriter(out)
	if err := w.Write(table.Columns); err != nil {
		return err
	}
	line := make([]string, len(table.Columns))
	for _, rec := range table.Rows {
		for i, c := range table.Columns {
			line[i] = records.AsString(rec[c])
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
