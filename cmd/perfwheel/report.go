package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/perfwheel/internal/answers"
	"github.com/dshills/perfwheel/internal/export"
	"github.com/dshills/perfwheel/internal/render"
	"github.com/dshills/perfwheel/internal/wheel"
)

type reportFlags struct {
	questionnaireFlags
	ratings   []string
	format    string
	out       string
	strict    bool
	failBelow string
	open      bool
	verbose   bool

	// test hooks
	now    func() time.Time
	opener export.Opener
}

func newReportCmd() *cobra.Command {
	f := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report [ratings-file]",
		Short: "Score a set of ratings and render the wheel report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runReport(cmd.Context(), cmd.OutOrStdout(), path, f)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&f.ratings, "rating", nil, "Rating as id=value (may be repeated, overrides the ratings file)")
	flags.StringVar(&f.name, "questionnaire", "", "Built-in questionnaire name")
	flags.StringVar(&f.file, "questionnaire-file", "", "Questionnaire YAML file (overrides --questionnaire)")
	flags.StringVar(&f.format, "format", "text", "Output format: text, md, json or html")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.strict, "strict", false, "Exit 4 if any rating is rejected")
	flags.StringVar(&f.failBelow, "fail-below", "", "Exit 2 if the tier is at or below this level: critical, developing or high")
	flags.BoolVar(&f.open, "open", false, "Open the printable HTML report in the browser")
	flags.BoolVar(&f.verbose, "verbose", false, "Log processing steps to stderr")

	return cmd
}

func runReport(ctx context.Context, stdout io.Writer, ratingsPath string, f *reportFlags) error {
	cfg, logger, err := setup(f.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	format, err := render.ParseFormat(f.format)
	if err != nil {
		return exitError(3, "unknown format: %s", f.format)
	}

	var threshold wheel.Tier
	if f.failBelow != "" {
		threshold, err = wheel.ParseTier(f.failBelow)
		if err != nil {
			return exitError(3, "invalid --fail-below: %v", err)
		}
	}

	// 1. Load ratings
	file := &answers.File{}
	if ratingsPath != "" {
		logger.Debug("loading ratings", zap.String("path", ratingsPath))
		file, err = answers.Load(ratingsPath)
		if err != nil {
			return exitError(3, "failed to load ratings: %v", err)
		}
		logger.Debug("ratings loaded", zap.String("hash", file.Hash), zap.Int("entries", len(file.Ratings)))
	}
	pairs, err := answers.ParsePairs(f.ratings)
	if err != nil {
		return exitError(3, "invalid --rating: %v", err)
	}

	// 2. Resolve questionnaire
	q, err := f.resolve(file.Questionnaire, cfg.Questionnaire)
	if err != nil {
		return err
	}
	logger.Debug("questionnaire resolved", zap.String("name", q.Name))

	// 3. Apply ratings
	store := wheel.NewStore(q)
	rejected := rejectedMessages(answers.Apply(store, answers.Merge(file.Ratings, pairs)))
	for _, msg := range rejected {
		logger.Warn("rating rejected", zap.String("detail", msg))
	}

	// 4. Build report
	now := time.Now
	if f.now != nil {
		now = f.now
	}
	rep := render.NewReport(q, store.Scores(), now())
	rep.Tool = "perfwheel"
	rep.Version = version
	rep.Rejected = rejected
	summary := rep.Assessment.Summary
	logger.Debug("assessment computed", zap.String("mean", summary.MeanText), zap.String("tier", string(summary.Tier)))

	// 5. Output
	var buf bytes.Buffer
	if err := render.Write(&buf, rep, format); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if f.out != "" {
		logger.Debug("writing output", zap.String("path", f.out))
		if err := os.WriteFile(f.out, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if _, err := stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// 6. Browser export
	if f.open {
		exp := &export.BrowserExporter{Open: f.opener, Logger: logger}
		if err := exp.Export(ctx, rep); err != nil {
			return fmt.Errorf("failed to open report: %w", err)
		}
	}

	// 7. Exit codes
	if f.strict && len(rejected) > 0 {
		return exitError(4, "%d rating(s) rejected", len(rejected))
	}
	if threshold != "" && tierMeetsThreshold(summary.Tier, threshold) {
		return exitError(2, "tier %s is at or below %s", summary.Tier, threshold)
	}

	return nil
}

func rejectedMessages(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}

// tierMeetsThreshold reports whether tier is at or below threshold.
func tierMeetsThreshold(tier, threshold wheel.Tier) bool {
	tr, hr := tier.Rank(), threshold.Rank()
	if tr < 0 || hr < 0 {
		return false
	}
	return tr <= hr
}
