package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/perfwheel/internal/wheel"
)

// Text renders a report for a terminal.
func Text(r *Report) string {
	var b strings.Builder
	a := r.Assessment

	fmt.Fprintf(&b, "%s\n", r.Questionnaire.Title)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", utf8.RuneCountInString(r.Questionnaire.Title)))

	width := 0
	for _, ans := range a.Answers {
		width = max(width, utf8.RuneCountInString(ans.Label))
	}
	for _, ans := range a.Answers {
		pad := width - utf8.RuneCountInString(ans.Label)
		fmt.Fprintf(&b, "  %s%s  %s %2d  %s\n", ans.Label, strings.Repeat(" ", pad), bar(ans.Rating), ans.Rating, ans.Band)
	}

	fmt.Fprintf(&b, "\nMean: %s  Classification: %s\n", a.Summary.MeanText, a.Summary.Label)
	if len(a.Insights.Levers) > 0 {
		labels := make([]string, len(a.Insights.Levers))
		for i, id := range a.Insights.Levers {
			labels[i] = labelFor(r, id)
		}
		fmt.Fprintf(&b, "Growth lever: %s\n", strings.Join(labels, ", "))
	}
	for _, msg := range r.Rejected {
		fmt.Fprintf(&b, "rejected: %s\n", msg)
	}
	return b.String()
}

func bar(rating int) string {
	rating = min(max(rating, wheel.MinRating), wheel.MaxRating)
	return strings.Repeat("#", rating) + strings.Repeat(".", wheel.MaxRating-rating)
}
