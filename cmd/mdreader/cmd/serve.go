package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdreader/internal/api"
)

func newServeCmd() *cobra.Command {
	var port, root string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of markdown files over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if root != "" {
				cfg.DocRoot = root
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return api.Run(ctx, cfg, newLogger(slog.LevelInfo))
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Directory to serve (overrides DOC_ROOT)")
	return cmd
}
