package render

import (
	"fmt"
	"strings"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *Report) string {
	var b strings.Builder
	a := r.Assessment

	fmt.Fprintf(&b, "# %s\n\n", r.Questionnaire.Title)
	if r.Questionnaire.Subtitle != "" {
		fmt.Fprintf(&b, "_%s_\n\n", r.Questionnaire.Subtitle)
	}

	fmt.Fprintf(&b, "**Mean:** %s / 10\n", a.Summary.MeanText)
	fmt.Fprintf(&b, "**Classification:** %s\n\n", a.Summary.Label)

	b.WriteString("## Self-Assessment\n\n")
	b.WriteString("| # | Area | Rating | Band |\n")
	b.WriteString("|---|---|---|---|\n")
	for i, ans := range a.Answers {
		fmt.Fprintf(&b, "| %d | %s | %d | %s |\n", i+1, escapeCell(ans.Label), ans.Rating, ans.Band)
	}
	b.WriteString("\n")

	b.WriteString("## Analysis\n\n")
	if a.Insights.Balanced {
		fmt.Fprintf(&b, "- **Wheel shape:** balanced (spread %d)\n", a.Insights.Spread)
	} else {
		fmt.Fprintf(&b, "- **Wheel shape:** uneven (spread %d)\n", a.Insights.Spread)
	}
	if len(a.Insights.Levers) > 0 {
		labels := make([]string, len(a.Insights.Levers))
		for i, id := range a.Insights.Levers {
			labels[i] = labelFor(r, id)
		}
		fmt.Fprintf(&b, "- **Growth lever:** %s\n", strings.Join(labels, ", "))
	}
	b.WriteString("\n")

	if len(r.Rejected) > 0 {
		b.WriteString("## Rejected Ratings\n\n")
		for _, msg := range r.Rejected {
			fmt.Fprintf(&b, "- %s\n", msg)
		}
		b.WriteString("\n")
	}

	if r.Questionnaire.Footer != "" {
		fmt.Fprintf(&b, "---\n\n%s\n", r.Questionnaire.Footer)
	}

	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
