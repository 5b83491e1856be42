// Package answers reads rating files and rating flags and applies them to a score store.
package answers

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/perfwheel/internal/wheel"
)

// File holds a loaded ratings file with its metadata.
// Ratings keep their raw text so malformed values are rejected by the store, not the decoder.
type File struct {
	FilePath      string
	Hash          string
	Questionnaire string
	Ratings       map[string]string
}

type document struct {
	Questionnaire string         `yaml:"questionnaire"`
	Ratings       map[string]any `yaml:"ratings"`
}

// Load reads a YAML or JSON ratings file and computes its SHA-256 hash.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("answers.Load: %w", err)
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("answers.Load: parse %s: %w", path, err)
	}
	h := sha256.Sum256(data)
	return &File{
		FilePath:      path,
		Hash:          fmt.Sprintf("sha256:%x", h),
		Questionnaire: doc.Questionnaire,
		Ratings:       rawRatings(doc.Ratings),
	}, nil
}

func rawRatings(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for id, v := range in {
		switch x := v.(type) {
		case nil:
			out[id] = ""
		case int:
			out[id] = strconv.Itoa(x)
		case string:
			out[id] = x
		default:
			out[id] = fmt.Sprint(x)
		}
	}
	return out
}

// ParsePairs parses "id=value" pairs as given on the command line.
// Later pairs for the same id replace earlier ones.
func ParsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		id, value, ok := strings.Cut(p, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("answers.ParsePairs: %q is not in id=value form", p)
		}
		out[id] = strings.TrimSpace(value)
	}
	return out, nil
}

// Merge returns a new map with the entries of every map, later maps winning.
func Merge(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Apply sets every rating on the store in sorted id order. A rejected entry keeps
// the store's previous value; its error is returned and the remaining entries still apply.
func Apply(store *wheel.Store, ratings map[string]string) []error {
	ids := make([]string, 0, len(ratings))
	for id := range ratings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs []error
	for _, id := range ids {
		if err := store.SetRatingText(id, ratings[id]); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
