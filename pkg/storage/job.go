package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend and
// should be atomic with respect to any surrounding transaction when the
// backend supports it. The returned bool reports whether a job was actually
// inserted; false means an equivalent unique job already existed.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. opts can customize
	// insertion behavior (queue name, delay, priority).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
