package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/perfwheel/internal/render"
	"github.com/dshills/perfwheel/internal/wheel"
)

var fixedNow = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }

func isolateEnv(t *testing.T) {
	t.Helper()
	// Equivalent of t.Chdir (Go 1.24+) for older toolchains.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{"PERFWHEEL_ENV", "PERFWHEEL_LOG_LEVEL", "PERFWHEEL_QUESTIONNAIRE", "PERFWHEEL_ADDR", "PERFWHEEL_OPEN_BROWSER"} {
		t.Setenv(k, "")
	}
	t.Setenv("PERFWHEEL_LOG_LEVEL", "error")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exitCode(err error) int {
	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	if err != nil {
		return 1
	}
	return 0
}

// --- Pure function tests ---

func TestTierMeetsThreshold(t *testing.T) {
	tests := []struct {
		tier      wheel.Tier
		threshold wheel.Tier
		want      bool
	}{
		{wheel.TierCritical, wheel.TierCritical, true},
		{wheel.TierDeveloping, wheel.TierCritical, false},
		{wheel.TierHighPerformance, wheel.TierCritical, false},
		{wheel.TierCritical, wheel.TierDeveloping, true},
		{wheel.TierDeveloping, wheel.TierDeveloping, true},
		{wheel.TierHighPerformance, wheel.TierDeveloping, false},
		{wheel.TierHighPerformance, wheel.TierHighPerformance, true},
		{wheel.Tier("BOGUS"), wheel.TierHighPerformance, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier)+"/"+string(tt.threshold), func(t *testing.T) {
			if got := tierMeetsThreshold(tt.tier, tt.threshold); got != tt.want {
				t.Errorf("tierMeetsThreshold(%s, %s) = %v, want %v", tt.tier, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	err := exitError(3, "failed to load %s", "x.yaml")
	if exitCode(err) != 3 {
		t.Errorf("code = %d, want 3", exitCode(err))
	}
	if err.Error() != "failed to load x.yaml" {
		t.Errorf("msg = %q", err.Error())
	}
}

// --- report command ---

func TestRunReportDefaults(t *testing.T) {
	isolateEnv(t)
	var out bytes.Buffer
	f := &reportFlags{format: "json", now: fixedNow}
	if err := runReport(context.Background(), &out, "", f); err != nil {
		t.Fatalf("runReport: %v", err)
	}

	var rep render.Report
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if rep.Assessment.Summary.MeanText != "5.0" || rep.Assessment.Summary.Tier != wheel.TierDeveloping {
		t.Errorf("summary = %+v, want 5.0 DEVELOPING", rep.Assessment.Summary)
	}
	if rep.Tool != "perfwheel" || rep.Version != version {
		t.Errorf("tool/version = %s/%s", rep.Tool, rep.Version)
	}
	if rep.Questionnaire.Name != "commercial" {
		t.Errorf("questionnaire = %s, want commercial", rep.Questionnaire.Name)
	}
}

func TestRunReportRatingsFileAndPairs(t *testing.T) {
	isolateEnv(t)
	path := writeFile(t, "ratings.yaml", `questionnaire: commercial-en
ratings:
  q1: 10
  q2: 10
  q3: 10
  q4: 10
  q5: 10
  q6: 10
  q7: 10
  q8: 10
  q9: 10
  q10: 0
`)
	var out bytes.Buffer
	f := &reportFlags{format: "md", ratings: []string{"q10=10"}, now: fixedNow}
	if err := runReport(context.Background(), &out, path, f); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	md := out.String()
	if !strings.Contains(md, "# Commercial Performance Wheel") {
		t.Errorf("missing English title:\n%s", md)
	}
	if !strings.Contains(md, "**Mean:** 10.0 / 10") {
		t.Errorf("pair did not override file rating:\n%s", md)
	}
}

func TestRunReportRejectedRatings(t *testing.T) {
	isolateEnv(t)
	f := &reportFlags{format: "json", ratings: []string{"q1=11", "q99=3", "q2=0"}, now: fixedNow}

	var out bytes.Buffer
	if err := runReport(context.Background(), &out, "", f); err != nil {
		t.Fatalf("non-strict run failed: %v", err)
	}
	var rep render.Report
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	if len(rep.Rejected) != 2 {
		t.Fatalf("rejected = %v, want 2 entries", rep.Rejected)
	}
	if rep.Assessment.Points[0].Value != 5 || rep.Assessment.Points[1].Value != 0 {
		t.Errorf("points = %+v", rep.Assessment.Points[:2])
	}

	f.strict = true
	out.Reset()
	if code := exitCode(runReport(context.Background(), &out, "", f)); code != 4 {
		t.Errorf("strict exit code = %d, want 4", code)
	}
}

func TestRunReportFailBelow(t *testing.T) {
	isolateEnv(t)
	tests := []struct {
		name      string
		ratings   []string
		failBelow string
		wantCode  int
	}{
		{"developing at developing", nil, "developing", 2},
		{"developing above critical", nil, "critical", 0},
		{"critical at critical", allRatings(0), "critical", 2},
		{"high above developing", allRatings(10), "developing", 0},
		{"bad threshold", nil, "excellent", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			f := &reportFlags{format: "text", ratings: tt.ratings, failBelow: tt.failBelow, now: fixedNow}
			if code := exitCode(runReport(context.Background(), &out, "", f)); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestRunReportLoadErrors(t *testing.T) {
	isolateEnv(t)
	tests := []struct {
		name string
		path string
		f    *reportFlags
	}{
		{"missing ratings file", filepath.Join(t.TempDir(), "nope.yaml"), &reportFlags{format: "text"}},
		{"unknown questionnaire", "", &reportFlags{format: "text", questionnaireFlags: questionnaireFlags{name: "nope"}}},
		{"unknown format", "", &reportFlags{format: "pdf"}},
		{"malformed pair", "", &reportFlags{format: "text", ratings: []string{"q1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if code := exitCode(runReport(context.Background(), &out, tt.path, tt.f)); code != 3 {
				t.Errorf("exit code = %d, want 3", code)
			}
		})
	}
}

func TestRunReportOutAndOpen(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.html")

	var opened string
	f := &reportFlags{
		format: "html",
		out:    outPath,
		open:   true,
		now:    fixedNow,
		opener: func(_ context.Context, target string) error {
			opened = target
			return nil
		},
	}
	var stdout bytes.Buffer
	if err := runReport(context.Background(), &stdout, "", f); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty when --out is set, got %d bytes", stdout.Len())
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("html output missing radar chart")
	}
	if !strings.HasSuffix(opened, ".html") {
		t.Errorf("opener called with %q", opened)
	}
}

func allRatings(v int) []string {
	var out []string
	for i := 1; i <= wheel.NumQuestions; i++ {
		out = append(out, fmt.Sprintf("q%d=%d", i, v))
	}
	return out
}
