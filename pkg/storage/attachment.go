package storage

import (
	"context"

	"contractscan/pkg/domain"
)

// AttachmentUpdates describes the optional fields that can be applied to an
// attachment during an update. Only non-nil fields are changed.
type AttachmentUpdates struct {
	// Status is the new scan status to set.
	Status domain.ScanStatus
	// EngineScanID, when provided, records the engine's job identifier
	// returned on submission.
	EngineScanID *string
	// RawResult, when provided, stores the raw scan result payload.
	RawResult *string
	// LastError, when provided, sets the last error text. An empty string
	// clears the column (sets NULL).
	LastError *string
	// MaxAttempts, when > 0 and Status is Failed, only flips the status to
	// Failed if the attempts counter after increment exceeds this threshold;
	// otherwise the status is left unchanged for another retry.
	MaxAttempts int
}

// AttachmentStorage defines persistence operations for attachment scan
// records. Attempts is incremented and updated_at refreshed on every update.
type AttachmentStorage interface {
	// StoreAttachments inserts one or more attachments and returns the stored
	// rows as they exist in the database, including generated fields.
	StoreAttachments(ctx context.Context, attachments ...domain.Attachment) ([]domain.Attachment, error)
	// AttachmentByID fetches an attachment by its ID. Returns nil when not found.
	AttachmentByID(ctx context.Context, id domain.AttachmentID) (*domain.Attachment, error)
	// UpdateAttachmentByID applies updates to a single attachment and returns
	// the updated row, or nil when the attachment does not exist.
	UpdateAttachmentByID(ctx context.Context,
		id domain.AttachmentID,
		updates AttachmentUpdates) (*domain.Attachment, error)
}
