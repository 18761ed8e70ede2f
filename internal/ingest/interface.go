package ingest

import (
	"context"

	"contractscan/pkg/domain"
	"contractscan/pkg/scanengine"
)

// Service is the ingestion and processing surface of the pipeline. Intake is
// idempotent per email; processing is driven by the background worker, one
// attachment per job.
//
//go:generate mockgen -package mockingest -source=interface.go -destination=mock/mockingest.go *
type Service interface {
	// UploadEmailAttachments ingests an email and its attachments and
	// enqueues one scan job per attachment. A message whose external ID has
	// been seen before is skipped entirely; the returned bool reports whether
	// the message was newly ingested.
	UploadEmailAttachments(ctx context.Context,
		email domain.Email,
		attachments []domain.Attachment) (bool, error)
	// ProcessAttachment advances one attachment through the scan engine:
	// submit on first call, fetch and extract once the result is ready. It
	// returns the engine's last reported rate-limit status alongside any
	// error so the caller can budget subsequent requests.
	ProcessAttachment(ctx context.Context,
		id domain.AttachmentID) (scanengine.RateLimitStatus, error)
}
