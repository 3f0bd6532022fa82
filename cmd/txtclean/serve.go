package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"txtcleaner/internal/customdict"
	"txtcleaner/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the cleaning HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			p, err := buildPipeline(cfg)
			if err != nil {
				return err
			}

			var dict server.Dictionary
			if cfg.Redis.Enabled {
				client := newRedisClient(cfg.Redis)
				defer client.Close()
				dict = customdict.New(client, cfg.Redis.Key)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			h, err := server.NewHandler(ctx, p, dict,
				server.WithMaxTextBytes(cfg.Server.MaxTextBytes),
				server.WithLogger(slog.Default()),
			)
			if err != nil {
				return err
			}

			return server.New(cfg.Server, h).Start(ctx)
		},
	}
}
