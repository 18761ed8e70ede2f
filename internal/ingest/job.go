package ingest

import (
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs contains the arguments for an attachment scan job submitted to
// River. The attachment ID is the unique key, so re-ingesting a message can
// never produce duplicate work for the same attachment.
type JobArgs struct {
	// AttachmentID identifies the attachment to run through the scan engine.
	AttachmentID uuid.UUID `json:"attachment_id" river:"unique"`

	// maxAttempts configures how many times River should retry the job.
	maxAttempts int
	// uniqueJobPeriod is the lookback window during which a job with the same
	// arguments counts as a duplicate across the listed states.
	uniqueJobPeriod time.Duration
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (args JobArgs) Kind() string { return "ScanAttachmentJob" }

// InsertOpts returns the River options controlling how the job is enqueued:
// retry budget plus uniqueness across every job state, so one attachment maps
// to at most one live job.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
