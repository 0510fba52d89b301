package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shaharia-lab/topicast/internal/api"
	"github.com/shaharia-lab/topicast/internal/build"
	"github.com/shaharia-lab/topicast/internal/metrics"
	"github.com/shaharia-lab/topicast/internal/server"
	"github.com/shaharia-lab/topicast/internal/service"
	"github.com/shaharia-lab/topicast/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP API server. The Firebase service account configured by
FIREBASE_SERVICE_ACCOUNT_PATH is loaded before any request is accepted;
the command exits if it cannot be loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, closer, err := loadRuntime()
			if err != nil {
				return err
			}
			defer closer.Close()

			// CLI flags override env config.
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			ctx, cancel := signal.NotifyContext(runContext(cmd.Context()), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			log.Info("topicast starting",
				slog.Int("port", cfg.Port),
				slog.String("version", build.Version),
				slog.String("commit", build.CommitSHA),
				slog.Bool("tracing", cfg.OTELEnabled),
			)

			shutdownTracing, err := telemetry.Setup(ctx, telemetry.Options{
				Enabled:        cfg.OTELEnabled,
				ServiceName:    "topicast",
				ServiceVersion: build.Version,
			})
			if err != nil {
				return fmt.Errorf("initializing telemetry: %w", err)
			}
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
				defer cancel()
				if err := shutdownTracing(flushCtx); err != nil {
					log.Warn("flushing traces failed", slog.Any("error", err))
				}
			}()

			provider, err := newProvider(ctx, cfg.FirebaseServiceAccountPath)
			if err != nil {
				log.Error("push provider bootstrap failed", slog.Any("error", err))
				return fmt.Errorf("bootstrapping push provider: %w", err)
			}

			m := metrics.New()
			broadcastSvc := service.NewBroadcastService(provider, m, log)
			srv := server.New(api.New(broadcastSvc, log), m, server.Options{
				Port:            cfg.Port,
				AllowedOrigins:  cfg.CORSAllowedOrigins,
				ShutdownTimeout: cfg.ShutdownTimeout,
			}, log)

			fmt.Fprintf(cmd.ErrOrStderr(), "topicast HTTP server running on http://localhost:%d\n", cfg.Port)
			fmt.Fprintf(cmd.ErrOrStderr(), "  POST /notifications/broadcast       → broadcast to all-devices\n")
			fmt.Fprintf(cmd.ErrOrStderr(), "  GET  /notifications/broadcast/test  → send the test broadcast\n")
			fmt.Fprintf(cmd.ErrOrStderr(), "  GET  /health                        → health check\n")

			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 3000, "HTTP server port (overrides PORT env var)")
	return cmd
}

// runContext returns ctx, or a background context when cobra was not given one.
func runContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
