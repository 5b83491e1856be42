package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/perfwheel/internal/questionnaire"
)

type questionsFlags struct {
	questionnaireFlags
	json bool
}

func newQuestionsCmd() *cobra.Command {
	f := &questionsFlags{}

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the questions of a questionnaire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestions(cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.name, "questionnaire", "", "Built-in questionnaire name")
	flags.StringVar(&f.file, "questionnaire-file", "", "Questionnaire YAML file (overrides --questionnaire)")
	flags.BoolVar(&f.json, "json", false, "Print the questionnaire as JSON")

	return cmd
}

func runQuestions(out io.Writer, f *questionsFlags) error {
	cfg, _, err := setup(false)
	if err != nil {
		return err
	}
	q, err := f.resolve("", cfg.Questionnaire)
	if err != nil {
		return err
	}

	if f.json {
		data, err := json.MarshalIndent(q, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal questionnaire: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	fmt.Fprintf(out, "%s\n\n", q.Title)
	for i, question := range q.Questions {
		fmt.Fprintf(out, "%2d. %s [%s]\n    %s\n", i+1, question.Label, question.ID, question.Prompt)
	}
	return nil
}

func newQuestionnairesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questionnaires",
		Short: "List the built-in questionnaires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuestionnaires(cmd.OutOrStdout())
		},
	}
}

func runQuestionnaires(out io.Writer) error {
	names, err := questionnaire.List()
	if err != nil {
		return fmt.Errorf("failed to list questionnaires: %w", err)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		q, err := questionnaire.LoadBuiltin(name)
		if err != nil {
			return exitError(3, "failed to load questionnaire %s: %v", name, err)
		}
		marker := ""
		if name == questionnaire.Default {
			marker = " (default)"
		}
		fmt.Fprintf(tw, "%s%s\t%s\n", name, marker, q.Title)
	}
	return tw.Flush()
}
