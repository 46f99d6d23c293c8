package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"pharosnotify/internal/logging"
	"pharosnotify/internal/notifications"
)

// runNotify resolves the invocation and triggers each option in order. Bad
// options or missing credentials are rejected before any request is sent.
func runNotify(cmd *cobra.Command, ctx *commandContext, dryRun bool) error {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return invocationError(cmd, err)
	}
	opts, err := notifications.ParseOptions(cfg.Notify.Options)
	if err != nil {
		return invocationError(cmd, err)
	}

	logger, err := newRunLogger(cmd, cfg)
	if err != nil {
		return invocationError(cmd, err)
	}
	svc, err := notifications.NewService(cfg, logging.NewComponentLogger(logger, "notify"))
	if err != nil {
		return invocationError(cmd, err)
	}

	if dryRun {
		out := cmd.OutOrStdout()
		for _, p := range svc.Plan(opts) {
			fmt.Fprintf(out, "GET %s\n", p.URL)
		}
		return nil
	}

	logger.Debug("starting notification run",
		slog.String("host", cfg.API.Host),
		slog.Int("requests", len(opts)),
		slog.String("config", ctx.configPath),
	)
	results, err := svc.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	logger.Debug("notification run complete", slog.Int("responses", len(results)))
	return nil
}
