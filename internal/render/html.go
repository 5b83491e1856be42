package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// DefaultChartSize is the pixel size of the radar chart.
const DefaultChartSize = 560

var reportTemplate = template.Must(template.New("report.html.tmpl").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/report.html.tmpl"))

// HTMLOptions controls the HTML page.
type HTMLOptions struct {
	// Interactive renders range inputs and a print button instead of a static list.
	Interactive bool
	// Action is the form target in interactive mode.
	Action    string
	ChartSize int
}

type htmlData struct {
	Report *Report
	Chart  RadarChart
	Opts   HTMLOptions
	Levers string
}

// HTML writes a standalone printable page with an inline SVG radar chart.
func HTML(w io.Writer, r *Report, opts HTMLOptions) error {
	if opts.ChartSize <= 0 {
		opts.ChartSize = DefaultChartSize
	}
	if opts.Action == "" {
		opts.Action = "/"
	}

	labels := make([]string, len(r.Assessment.Insights.Levers))
	for i, id := range r.Assessment.Insights.Levers {
		labels[i] = labelFor(r, id)
	}

	data := htmlData{
		Report: r,
		Chart:  Radar(r.Assessment.Points, opts.ChartSize),
		Opts:   opts,
		Levers: strings.Join(labels, ", "),
	}
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render.HTML: %w", err)
	}
	return nil
}
