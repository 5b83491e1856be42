package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/perfwheel/internal/export"
	"github.com/dshills/perfwheel/internal/server"
)

type serveFlags struct {
	questionnaireFlags
	addr    string
	open    bool
	verbose bool
}

func newServeCmd() *cobra.Command {
	f := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive wheel page on a local address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.name, "questionnaire", "", "Built-in questionnaire name")
	flags.StringVar(&f.file, "questionnaire-file", "", "Questionnaire YAML file (overrides --questionnaire)")
	flags.StringVar(&f.addr, "addr", "", "Listen address (default from PERFWHEEL_ADDR)")
	flags.BoolVar(&f.open, "open", true, "Open the page in the browser once listening")
	flags.BoolVar(&f.verbose, "verbose", false, "Log every request to stderr")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, f *serveFlags) error {
	cfg, logger, err := setup(f.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	q, err := f.resolve("", cfg.Questionnaire)
	if err != nil {
		return err
	}
	addr := f.addr
	if addr == "" {
		addr = cfg.Addr
	}
	open := cfg.OpenBrowser
	if cmd.Flags().Changed("open") {
		open = f.open
	}

	srv, err := server.New(
		server.WithAddr(addr),
		server.WithLogger(logger),
		server.WithQuestionnaire(q),
		server.WithVersion("perfwheel", version),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, func(url string) {
		cmd.Printf("Serving %s at %s (Ctrl+C to stop)\n", q.Title, url)
		if !open {
			return
		}
		if err := export.SystemOpener(ctx, url); err != nil {
			logger.Warn("failed to open browser", zap.String("url", url), zap.Error(err))
		}
	})
}
