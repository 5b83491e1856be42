// Package questionnaire loads wheel questionnaires from built-in or user YAML files.
package questionnaire

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/perfwheel/internal/wheel"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Default is the questionnaire used when none is named.
const Default = "commercial"

// Definition is the on-disk form of a questionnaire.
type Definition struct {
	Name      string           `yaml:"name"`
	Version   int              `yaml:"version"`
	Title     string           `yaml:"title"`
	Subtitle  string           `yaml:"subtitle"`
	Footer    string           `yaml:"footer"`
	Questions []wheel.Question `yaml:"questions"`
}

// LoadBuiltin loads a built-in questionnaire by name.
func LoadBuiltin(name string) (*wheel.Questionnaire, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("questionnaire.LoadBuiltin: unknown questionnaire %q: %w", name, err)
	}
	q, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("questionnaire.LoadBuiltin: %q: %w", name, err)
	}
	return q, nil
}

// Load reads a questionnaire from a YAML file.
func Load(path string) (*wheel.Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questionnaire.Load: %w", err)
	}
	q, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("questionnaire.Load: %s: %w", path, err)
	}
	return q, nil
}

// Parse decodes and validates a questionnaire definition.
func Parse(data []byte) (*wheel.Questionnaire, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if errs := Validate(&def); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("invalid definition: %s", strings.Join(msgs, "; "))
	}
	return def.Questionnaire(), nil
}

// Questionnaire converts a validated definition into its fixed-size form.
func (d *Definition) Questionnaire() *wheel.Questionnaire {
	q := &wheel.Questionnaire{
		Name:     d.Name,
		Title:    d.Title,
		Subtitle: d.Subtitle,
		Footer:   d.Footer,
	}
	copy(q.Questions[:], d.Questions)
	return q
}

// Resolve returns the questionnaire at path when set, otherwise the named built-in.
func Resolve(name, path string) (*wheel.Questionnaire, error) {
	if path != "" {
		return Load(path)
	}
	if name == "" {
		name = Default
	}
	return LoadBuiltin(name)
}

// List returns the names of all built-in questionnaires, sorted.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	sort.Strings(names)
	return names, nil
}
