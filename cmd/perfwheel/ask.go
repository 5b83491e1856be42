package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/perfwheel/internal/render"
	"github.com/dshills/perfwheel/internal/wheel"
)

type askFlags struct {
	questionnaireFlags
	format  string
	out     string
	verbose bool

	now func() time.Time
}

func newAskCmd() *cobra.Command {
	f := &askFlags{}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Rate each question interactively, then render the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.name, "questionnaire", "", "Built-in questionnaire name")
	flags.StringVar(&f.file, "questionnaire-file", "", "Questionnaire YAML file (overrides --questionnaire)")
	flags.StringVar(&f.format, "format", "text", "Output format: text, md, json or html")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.verbose, "verbose", false, "Log processing steps to stderr")

	return cmd
}

func runAsk(ctx context.Context, in io.Reader, out io.Writer, f *askFlags) error {
	cfg, logger, err := setup(f.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	format, err := render.ParseFormat(f.format)
	if err != nil {
		return exitError(3, "unknown format: %s", f.format)
	}
	q, err := f.resolve("", cfg.Questionnaire)
	if err != nil {
		return err
	}

	store := wheel.NewStore(q)
	if err := prompt(ctx, bufio.NewScanner(in), out, store); err != nil {
		return err
	}

	now := time.Now
	if f.now != nil {
		now = f.now
	}
	rep := render.NewReport(q, store.Scores(), now())
	rep.Tool = "perfwheel"
	rep.Version = version
	logger.Debug("assessment computed", zap.String("mean", rep.Assessment.Summary.MeanText))

	if f.out != "" {
		fh, err := os.Create(f.out)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		defer fh.Close()
		out = fh
	} else {
		fmt.Fprintln(out)
	}
	if err := render.Write(out, rep, format); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// prompt asks every question in order. An empty answer keeps the current rating,
// a rejected one is asked again. End of input keeps the remaining defaults.
func prompt(ctx context.Context, sc *bufio.Scanner, out io.Writer, store *wheel.Store) error {
	q := store.Questionnaire()
	for i, question := range q.Questions {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			current, _ := store.Rating(question.ID)
			fmt.Fprintf(out, "[%d/%d] %s\n  %s\n  rating %d-%d [%d]: ",
				i+1, wheel.NumQuestions, question.Label, question.Prompt, wheel.MinRating, wheel.MaxRating, current)

			if !sc.Scan() {
				fmt.Fprintln(out)
				if err := sc.Err(); err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				return nil
			}
			answer := strings.TrimSpace(sc.Text())
			if answer == "" {
				break
			}
			if err := store.SetRatingText(question.ID, answer); err != nil {
				fmt.Fprintf(out, "  rejected: %v\n", err)
				continue
			}
			break
		}
	}
	return nil
}
