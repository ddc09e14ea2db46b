package main

import (
	"context"
	"os/signal"
	"syscall"

	"prai/internal/app"
	"prai/internal/config"
	"prai/internal/observability"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook server and review worker",
		RunE: func(cmd *cobra.Command, args []string) error {

			cfg := config.Load()
			logger := observability.NewLogger(cfg.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(),
				syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server, err := app.NewServer(cfg, logger)
			if err != nil {
				return err
			}

			return server.Start(ctx)
		},
	}
}
