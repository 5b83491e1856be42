package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dshills/perfwheel/internal/wheel"
)

func sampleQuestionnaire() *wheel.Questionnaire {
	q := &wheel.Questionnaire{
		Name:     "sample",
		Title:    "Commercial Performance Wheel",
		Subtitle: "Sample subtitle",
		Footer:   "SAMPLE FOOTER",
	}
	for i := range q.Questions {
		q.Questions[i] = wheel.Question{
			ID:     fmt.Sprintf("q%d", i+1),
			Label:  fmt.Sprintf("Area %d", i+1),
			Prompt: fmt.Sprintf("How strong is area %d?", i+1),
		}
	}
	return q
}

func sampleReport(s wheel.ScoreSet) *Report {
	r := NewReport(sampleQuestionnaire(), s, time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))
	r.Tool = "perfwheel"
	r.Version = "test"
	return r
}

func TestNewReport(t *testing.T) {
	r := sampleReport(wheel.Uniform(5))
	if r.ID == "" {
		t.Error("report ID is empty")
	}
	if r.Assessment.Summary.MeanText != "5.0" || r.Assessment.Summary.Tier != wheel.TierDeveloping {
		t.Errorf("unexpected summary %+v", r.Assessment.Summary)
	}
	if other := sampleReport(wheel.Uniform(5)); other.ID == r.ID {
		t.Error("report IDs should be unique")
	}
}

func TestMarkdown(t *testing.T) {
	r := sampleReport(wheel.ScoreSet{2, 9, 9, 9, 9, 9, 9, 9, 9, 9})
	r.Rejected = []string{"q3=11: rating out of range"}
	md := Markdown(r)

	checks := []string{
		"# Commercial Performance Wheel",
		"_Sample subtitle_",
		"**Mean:** 8.3 / 10",
		"**Classification:** High Performance",
		"| 1 | Area 1 | 2 | LOW |",
		"| 10 | Area 10 | 9 | HIGH |",
		"uneven (spread 7)",
		"**Growth lever:** Area 1",
		"## Rejected Ratings",
		"q3=11: rating out of range",
		"SAMPLE FOOTER",
	}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownFlatWheel(t *testing.T) {
	md := Markdown(sampleReport(wheel.Uniform(0)))
	if !strings.Contains(md, "**Classification:** Critical / Beginner") {
		t.Error("expected critical classification")
	}
	if strings.Contains(md, "Growth lever") {
		t.Error("flat wheel should not name a growth lever")
	}
	if strings.Contains(md, "Rejected Ratings") {
		t.Error("no rejected section expected")
	}
}

func TestText(t *testing.T) {
	out := Text(sampleReport(wheel.ScoreSet{0, 10, 0, 10, 0, 10, 0, 10, 0, 10}))
	checks := []string{
		"Commercial Performance Wheel\n============================",
		"Area 1   ..........  0  LOW",
		"Area 2   ########## 10  HIGH",
		"Mean: 5.0  Classification: Developing",
		"Growth lever: Area 1, Area 3, Area 5, Area 7, Area 9",
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("text missing %q\n%s", want, out)
		}
	}
}

func TestJSON(t *testing.T) {
	data, err := JSON(sampleReport(wheel.Uniform(10)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		t.Error("expected trailing newline")
	}
	var got struct {
		Tool       string `json:"tool"`
		Assessment struct {
			Summary struct {
				MeanText string `json:"mean_text"`
				Tier     string `json:"tier"`
				Label    string `json:"label"`
			} `json:"summary"`
			Points []wheel.ChartPoint `json:"points"`
		} `json:"assessment"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Tool != "perfwheel" {
		t.Errorf("tool = %q", got.Tool)
	}
	if got.Assessment.Summary.MeanText != "10.0" || got.Assessment.Summary.Tier != "HIGH_PERFORMANCE" {
		t.Errorf("summary = %+v", got.Assessment.Summary)
	}
	if len(got.Assessment.Points) != wheel.NumQuestions || got.Assessment.Points[0].Max != 10 {
		t.Errorf("points = %+v", got.Assessment.Points)
	}
}

func TestHTMLStatic(t *testing.T) {
	var buf bytes.Buffer
	if err := HTML(&buf, sampleReport(wheel.Uniform(5)), HTMLOptions{}); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	for _, want := range []string{
		"<title>Commercial Performance Wheel</title>",
		`<div class="mean">5.0</div>`,
		"Developing",
		`<svg xmlns="http://www.w3.org/2000/svg" width="560"`,
		`class="shape"`,
		"Area 10",
		"SAMPLE FOOTER",
		"2026",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(page, `type="range"`) || strings.Contains(page, "window.print()") {
		t.Error("static page should not contain inputs or print button")
	}
}

func TestHTMLInteractive(t *testing.T) {
	var buf bytes.Buffer
	opts := HTMLOptions{Interactive: true, Action: "/", ChartSize: 400}
	if err := HTML(&buf, sampleReport(wheel.Uniform(5)), opts); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	for _, want := range []string{
		`<form method="get" action="/" id="ratings">`,
		`name="q1"`,
		`name="q10"`,
		`value="5"`,
		"window.print()",
		`width="400"`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHTMLEscapesLabels(t *testing.T) {
	q := sampleQuestionnaire()
	q.Questions[0].Label = "<script>alert(1)</script>"
	r := NewReport(q, wheel.Uniform(5), time.Now())

	var buf bytes.Buffer
	if err := HTML(&buf, r, HTMLOptions{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<script>alert(1)</script>") {
		t.Error("label was not escaped")
	}
}

func TestRadarGeometry(t *testing.T) {
	points := wheel.Project(sampleQuestionnaire(), wheel.Uniform(10))
	chart := Radar(points, 400)

	if chart.Center != (Point{200, 200}) || chart.Radius != 150 {
		t.Fatalf("center = %+v radius = %v", chart.Center, chart.Radius)
	}
	if len(chart.Rings) != 5 {
		t.Errorf("got %d rings, want 5", len(chart.Rings))
	}
	if len(chart.Axes) != wheel.NumQuestions || len(chart.Vertices) != wheel.NumQuestions {
		t.Fatalf("axes = %d vertices = %d", len(chart.Axes), len(chart.Vertices))
	}
	// first axis at 12 o'clock, full rating reaches the outer ring
	if chart.Vertices[0] != (Point{200, 50}) {
		t.Errorf("first vertex = %+v, want {200 50}", chart.Vertices[0])
	}
	if chart.Axes[0].Anchor != "middle" || chart.Axes[1].Anchor != "start" || chart.Axes[9].Anchor != "end" {
		t.Errorf("anchors = %q %q %q", chart.Axes[0].Anchor, chart.Axes[1].Anchor, chart.Axes[9].Anchor)
	}
	// opposite axis (index 5) points straight down
	if chart.Vertices[5] != (Point{200, 350}) {
		t.Errorf("vertex 5 = %+v, want {200 350}", chart.Vertices[5])
	}
}

func TestRadarScalesValues(t *testing.T) {
	points := wheel.Project(sampleQuestionnaire(), wheel.ScoreSet{0, 10, 0, 10, 0, 10, 0, 10, 0, 10})
	chart := Radar(points, 400)
	for i, v := range chart.Vertices {
		if i%2 == 0 && v != chart.Center {
			t.Errorf("vertex %d = %+v, want center for rating 0", i, v)
		}
		if i%2 == 1 && v != chart.Axes[i].End {
			t.Errorf("vertex %d = %+v, want axis end %+v", i, v, chart.Axes[i].End)
		}
	}
}

func TestRadarEmpty(t *testing.T) {
	chart := Radar(nil, 300)
	if chart.Shape != "" || len(chart.Axes) != 0 {
		t.Errorf("expected empty chart, got %+v", chart)
	}
}

func TestFilename(t *testing.T) {
	r := sampleReport(wheel.Uniform(5))
	if got := Filename(r, "html"); got != "Commercial_Performance_Wheel_2026-10-17.html" {
		t.Errorf("Filename = %q", got)
	}

	r.Questionnaire.Title = "Roda da Performance: Comercial!"
	if got := Filename(r, ".md"); got != "Roda_da_Performance_Comercial_2026-10-17.md" {
		t.Errorf("Filename = %q", got)
	}

	r.Questionnaire.Title = "!!!"
	r.GeneratedAt = time.Time{}
	if got := Filename(r, "json"); got != "perfwheel.json" {
		t.Errorf("Filename = %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"TXT", FormatText, false},
		{"md", FormatMarkdown, false},
		{"markdown", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{"html", FormatHTML, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
	if FormatText.Ext() != "txt" || FormatHTML.Ext() != "html" {
		t.Error("unexpected extensions")
	}
}

func TestWriteAllFormats(t *testing.T) {
	r := sampleReport(wheel.Uniform(5))
	for _, f := range []Format{FormatText, FormatMarkdown, FormatJSON, FormatHTML} {
		var buf bytes.Buffer
		if err := Write(&buf, r, f); err != nil {
			t.Fatalf("Write(%s): %v", f, err)
		}
		if !strings.Contains(buf.String(), "5.0") {
			t.Errorf("Write(%s) output missing mean", f)
		}
	}
	if err := Write(&bytes.Buffer{}, r, Format("pdf")); err == nil {
		t.Error("expected error for unknown format")
	}
}
