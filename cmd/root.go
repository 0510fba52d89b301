package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/topicast/internal/config"
	"github.com/shaharia-lab/topicast/internal/logger"
)

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "topicast",
		Short: "Broadcast push notifications to the all-devices FCM topic",
		Long: `topicast forwards broadcast requests to Firebase Cloud Messaging.
Every message is sent to the "all-devices" topic with high delivery priority.`,
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newBroadcastCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRuntime reads configuration and builds the logger shared by all commands.
func loadRuntime() (*config.AppConfig, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log, closer, err := logger.New(logger.Options{
		Level:  cfg.SlogLevel(),
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("initializing logger: %w", err)
	}
	return cfg, log, closer, nil
}
