package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"contractscan/internal/config"
	"contractscan/internal/ingest"
	"contractscan/internal/ops"
	"contractscan/internal/worker"
	"contractscan/pkg/controller"
	"contractscan/pkg/logger"
	"contractscan/pkg/scanengine/docscanio"

	"github.com/spf13/cobra"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// setupOpsServer starts the operational HTTP server (metrics, health, pprof)
// and returns the meter provider for worker instrumentation plus a stop
// function.
func setupOpsServer(ctx context.Context,
	cfg *config.Config,
	pinger controller.Pinger) (*sdkmetric.MeterProvider, func(ctx context.Context)) {
	server, mp, err := ops.NewServer(pinger, ops.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create ops server", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting ops server...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start ops server", zap.Error(err))
			}
		}
	}()

	return mp, func(ctx context.Context) {
		logger.Info(ctx, "stopping ops server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop ops server", zap.Error(err))
		}
	}
}

// runCommand constructs the 'run' subcommand that starts the operational HTTP
// server and the background attachment workers.
func runCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Starts the ops server and background attachment workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, stopOpsServer := setupOpsServer(ctx, cfg, strg.Pool)

			engine := docscanio.New(&http.Client{
				Timeout: cfg.ScanEngine.RequestTimeout,
			}, cfg.ScanEngine.BaseURL, cfg.ScanEngine.Token)
			service := ingest.New(strg, engine, ingest.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, service,
				mp.Meter("contractscan/worker"),
				worker.Options{
					MaxWorkers:   cfg.Worker.MaxWorkers,
					PollInterval: cfg.Worker.PollInterval,
				})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}

			stopOpsServer(shutdownCtx)
		},
	}

	return cmd
}
