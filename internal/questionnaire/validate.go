package questionnaire

import (
	"fmt"
	"strings"

	"github.com/dshills/perfwheel/internal/wheel"
)

// ValidationError describes a single problem in a questionnaire definition.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a definition for structural validity.
func Validate(d *Definition) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, ValidationError{"name", "required"})
	}
	if strings.TrimSpace(d.Title) == "" {
		errs = append(errs, ValidationError{"title", "required"})
	}
	if len(d.Questions) != wheel.NumQuestions {
		errs = append(errs, ValidationError{"questions", fmt.Sprintf("expected exactly %d questions, got %d", wheel.NumQuestions, len(d.Questions))})
	}

	ids := make(map[string]bool)
	for i, q := range d.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		if strings.TrimSpace(q.ID) == "" {
			errs = append(errs, ValidationError{prefix + ".id", "required"})
		} else if ids[q.ID] {
			errs = append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", q.ID)})
		} else {
			ids[q.ID] = true
		}
		if strings.TrimSpace(q.Label) == "" {
			errs = append(errs, ValidationError{prefix + ".label", "required"})
		}
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, ValidationError{prefix + ".prompt", "required"})
		}
	}

	return errs
}
