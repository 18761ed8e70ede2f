package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"contractscan/internal/ingest"
	"contractscan/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background job runtime.
type Options struct {
	// MaxWorkers caps how many attachment jobs may run concurrently. The
	// cooperative rate limiter inside ScanWorker further constrains actual
	// engine traffic.
	MaxWorkers int
	// PollInterval is how long a job sleeps before re-checking an engine
	// result that is not ready yet.
	PollInterval time.Duration
}

// Start registers the attachment scan worker and starts the River client on
// the given connection pool. The returned client must be stopped by the
// caller during shutdown.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	service ingest.Service,
	meter metric.Meter,
	opts Options) (*river.Client[pgx.Tx], error) {
	scanWorker, err := NewScanWorker(service, meter, opts.PollInterval)
	if err != nil {
		return nil, fmt.Errorf("could not create scan worker: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, scanWorker)

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
