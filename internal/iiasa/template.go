// Package iiasa implements the bundled submission generator: a template-
// driven mapper that translates internal variable names to the external
// reporting vocabulary and validates units against the template.
package iiasa

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var packaged embed.FS

// packagedFiles maps canonical mapping names to their bundled template.
var packagedFiles = map[string]string{
	"AR6":               "templates/ar6.yaml",
	"NGFS_AR6":          "templates/ngfs_ar6.yaml",
	"AR6_MAgPIE":        "templates/ar6_magpie.yaml",
	"climateassessment": "templates/climateassessment.yaml",
}

// Entry maps one internal variable to its submission form.
type Entry struct {
	// Variable is the internal (model-side) variable name.
	Variable string `yaml:"variable"`

	// Template is the name reported in the submission.
	Template string `yaml:"template"`

	// Unit is the submission unit.
	Unit string `yaml:"unit"`

	// SourceUnit is the unit expected on input rows; defaults to Unit.
	SourceUnit string `yaml:"source_unit,omitempty"`

	// Factor scales the value during mapping; 0 is treated as 1.
	Factor float64 `yaml:"factor,omitempty"`
}

// SummationGroup declares that a parent variable must equal the sum of its
// components, within a relative tolerance.
type SummationGroup struct {
	Parent     string   `yaml:"parent"`
	Components []string `yaml:"components"`

	// Tolerance is relative; 0 selects the default of 0.005.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// Template is a variable-mapping ruleset, loaded from YAML.
type Template struct {
	Name       string           `yaml:"name"`
	Variables  []Entry          `yaml:"variables"`
	Summations []SummationGroup `yaml:"summation_groups,omitempty"`
}

// index returns entries keyed by internal variable name.
func (t *Template) index() map[string]Entry {
	m := make(map[string]Entry, len(t.Variables))
	for _, e := range t.Variables {
		m[e.Variable] = e
	}
	return m
}

func parseTemplate(data []byte, origin string) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse template %s: %w", origin, err)
	}
	if len(t.Variables) == 0 {
		return nil, fmt.Errorf("template %s: no variables defined", origin)
	}
	return &t, nil
}

// LoadTemplate reads a variable-template YAML file from disk.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return parseTemplate(data, path)
}

// DefaultTemplate returns the packaged template for a canonical mapping
// name. The lookup is explicit: callers pass the mapping name through
// submission.Request, there is no hidden installation-layout probing.
func DefaultTemplate(mapping string) (*Template, error) {
	file, ok := packagedFiles[mapping]
	if !ok {
		return nil, fmt.Errorf("no packaged template for mapping %q", mapping)
	}
	data, err := packaged.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read packaged template: %w", err)
	}
	return parseTemplate(data, file)
}
