// Package render produces text, Markdown, JSON and printable HTML reports from an assessment.
package render

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/dshills/perfwheel/internal/wheel"
)

// Report is the top-level output object.
type Report struct {
	ID            string           `json:"id"`
	Tool          string           `json:"tool"`
	Version       string           `json:"version"`
	GeneratedAt   time.Time        `json:"generated_at"`
	Questionnaire Meta             `json:"questionnaire"`
	Assessment    wheel.Assessment `json:"assessment"`
	Rejected      []string         `json:"rejected,omitempty"`
}

// Meta describes the questionnaire a report was built from.
type Meta struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Footer   string `json:"footer,omitempty"`
}

// NewReport evaluates the score set and wraps it with report metadata.
func NewReport(q *wheel.Questionnaire, s wheel.ScoreSet, now time.Time) *Report {
	return &Report{
		ID:          uuid.NewString(),
		GeneratedAt: now.UTC(),
		Questionnaire: Meta{
			Name:     q.Name,
			Title:    q.Title,
			Subtitle: q.Subtitle,
			Footer:   q.Footer,
		},
		Assessment: wheel.Evaluate(q, s),
	}
}

// Filename derives an export file name from the questionnaire title and report date,
// e.g. "Commercial_Performance_Wheel_2026-10-17.html".
func Filename(r *Report, ext string) string {
	var b strings.Builder
	sep := false
	for _, c := range r.Questionnaire.Title {
		switch {
		case unicode.IsLetter(c) || unicode.IsDigit(c):
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(c)
			sep = false
		case unicode.IsSpace(c) || c == '-' || c == '_' || c == '/':
			sep = true
		}
	}
	base := b.String()
	if base == "" {
		base = "perfwheel"
	}
	if !r.GeneratedAt.IsZero() {
		base += "_" + r.GeneratedAt.Format("2006-01-02")
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}

func labelFor(r *Report, id string) string {
	for _, a := range r.Assessment.Answers {
		if a.ID == id {
			return a.Label
		}
	}
	return id
}
