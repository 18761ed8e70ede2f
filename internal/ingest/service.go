package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contractscan/internal/config"
	"contractscan/pkg/domain"
	"contractscan/pkg/extraction"
	"contractscan/pkg/logger"
	"contractscan/pkg/scanengine"
	"contractscan/pkg/serrors"
	"contractscan/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure how scan jobs are enqueued and how failures are retried.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// should make when processing an attachment before marking it failed.
	MaxAttempts int
	// DedupeWindow is the duration during which re-enqueueing the same
	// attachment is a no-op because an equivalent job already exists.
	DedupeWindow time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:  cfg.Worker.MaxAttempts,
		DedupeWindow: cfg.Worker.DedupeWindow,
	}
}

// service is the concrete implementation of the Service interface. It
// coordinates persistence with the storage layer, job enqueueing, and the
// external scan engine.
type service struct {
	// options holds runtime configuration that affects enqueueing and retries.
	options Options
	// storage is the persistence layer for emails, attachments and contracts.
	storage storage.Storage
	// engine is the external document scanning API.
	engine scanengine.Client
}

// UploadEmailAttachments ingests one email with its attachments. The email's
// external ID makes the operation idempotent: a message that was already
// ingested is skipped without touching the attachments. For a new message the
// email, its attachments, and one scan job per attachment are stored in a
// single transaction, so a crash can never leave an attachment without a job.
func (s service) UploadEmailAttachments(ctx context.Context,
	email domain.Email,
	attachments []domain.Attachment) (bool, error) {
	exists, err := s.storage.EmailExistsByExternalID(ctx, email.ExternalID)
	if err != nil {
		return false, fmt.Errorf("could not check email existence: %w", err)
	}
	if exists {
		logger.Info(ctx, "email already ingested, skipping",
			zap.String("externalID", email.ExternalID))

		return false, nil
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreEmails(ctx, email)
		if err != nil {
			return fmt.Errorf("could not store email: %w", err)
		}

		for i := range attachments {
			attachments[i].EmailID = stored[0].ID
			attachments[i].Status = domain.ScanStatusPending
		}

		storedAtts, err := tx.StoreAttachments(ctx, attachments...)
		if err != nil {
			return fmt.Errorf("could not store attachments: %w", err)
		}

		for _, att := range storedAtts {
			if _, err := tx.AddJob(ctx, JobArgs{
				AttachmentID:    uuid.UUID(att.ID),
				maxAttempts:     s.options.MaxAttempts,
				uniqueJobPeriod: s.options.DedupeWindow,
			}, nil); err != nil {
				return fmt.Errorf("could not add job: %w", err)
			}
		}

		return nil
	}); err != nil {
		return false, fmt.Errorf("could not ingest email: %w", err)
	}

	return true, nil
}

// ProcessAttachment advances one attachment through the scan engine. It is
// called repeatedly by the background worker and makes at most one engine
// request per call:
//
//  1. No engine scan ID yet: submit the document and persist the assigned ID,
//     then report serrors.ErrUnavailable so the caller polls for the result.
//  2. Scan ID present but the result is not ready: report
//     serrors.ErrUnavailable again.
//  3. Result ready: run the extraction, mark the attachment completed, and
//     store the derived contract in the same transaction. A payload the
//     extraction cannot decode marks the attachment failed immediately and
//     reports serrors.ErrMalformed; retrying cannot fix a bad payload.
func (s service) ProcessAttachment(ctx context.Context,
	id domain.AttachmentID) (scanengine.RateLimitStatus, error) {
	att, err := s.storage.AttachmentByID(ctx, id)
	if err != nil {
		return scanengine.RateLimitStatus{}, fmt.Errorf("could not fetch attachment: %w", err)
	}
	if att == nil {
		return scanengine.RateLimitStatus{}, serrors.With(serrors.ErrNotFound, "attachment not found")
	}
	if att.Status == domain.ScanStatusCompleted {
		return scanengine.RateLimitStatus{}, serrors.With(serrors.ErrConflict, "attachment already processed")
	}

	if att.EngineScanID == "" {
		return s.submit(ctx, att)
	}

	raw, rl, err := s.engine.Result(ctx, att.EngineScanID)
	if err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return rl, serrors.Wrap(serrors.ErrUnavailable, err, "scan result not ready")
		}
		// Same rule as submit: a rate-limited request consumed no budget on
		// our side, so it does not count against the attachment.
		if !errors.Is(err, serrors.ErrRateLimited) {
			s.recordFailure(ctx, att.ID, err)
		}

		return rl, fmt.Errorf("could not fetch scan result: %w", err)
	}

	return rl, s.finish(ctx, att.ID, raw)
}

// submit sends the attachment content to the engine and persists the assigned
// scan ID so the next attempt fetches the result instead of re-submitting.
func (s service) submit(ctx context.Context,
	att *domain.Attachment) (scanengine.RateLimitStatus, error) {
	res, rl, err := s.engine.SubmitDocument(ctx, scanengine.Document{
		Filename:    att.Filename,
		ContentType: att.ContentType,
		Content:     att.Content,
	})
	if err != nil {
		// A rate-limited attempt consumed no budget on our side; only real
		// failures count against the attachment.
		if !errors.Is(err, serrors.ErrRateLimited) {
			s.recordFailure(ctx, att.ID, err)
		}

		return rl, fmt.Errorf("could not submit document: %w", err)
	}

	if _, err := s.storage.UpdateAttachmentByID(ctx, att.ID, storage.AttachmentUpdates{
		EngineScanID: &res.ID,
	}); err != nil {
		return rl, fmt.Errorf("could not store engine scan id: %w", err)
	}

	logger.Info(ctx, "document submitted to scan engine",
		zap.String("engineScanID", res.ID))

	return rl, serrors.With(serrors.ErrUnavailable, "scan submitted, result pending")
}

// finish runs the extraction over the raw result and persists the outcome.
// The attachment update and the contract insert share one transaction so a
// completed attachment always has its contract.
func (s service) finish(ctx context.Context, id domain.AttachmentID, raw string) error {
	record := extraction.NewRecord(raw)

	contractType, err := record.Type()
	if err != nil {
		// Malformed payloads are permanent failures, no retry budget applies.
		s.markMalformed(ctx, id, raw, err)

		return fmt.Errorf("could not extract contract: %w", err)
	}
	parties, err := record.Parties()
	if err != nil {
		s.markMalformed(ctx, id, raw, err)

		return fmt.Errorf("could not extract contract: %w", err)
	}
	complete, err := record.Complete()
	if err != nil {
		s.markMalformed(ctx, id, raw, err)

		return fmt.Errorf("could not extract contract: %w", err)
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		noError := ""
		if _, err := tx.UpdateAttachmentByID(ctx, id, storage.AttachmentUpdates{
			Status:    domain.ScanStatusCompleted,
			RawResult: &raw,
			LastError: &noError,
		}); err != nil {
			return fmt.Errorf("could not mark attachment completed: %w", err)
		}

		if _, err := tx.StoreContracts(ctx, domain.Contract{
			AttachmentID: id,
			Type:         contractType,
			Parties:      parties,
			Complete:     complete,
		}); err != nil {
			return fmt.Errorf("could not store contract: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not persist extraction: %w", err)
	}

	if !complete {
		logger.Warn(ctx, "no parties extracted, contract flagged for review",
			zap.String("type", contractType))
	}

	return nil
}

// recordFailure bumps the attempt counter and stores the error message. The
// status only flips to failed once the retry budget is exhausted.
func (s service) recordFailure(ctx context.Context, id domain.AttachmentID, cause error) {
	msg := cause.Error()
	if _, err := s.storage.UpdateAttachmentByID(ctx, id, storage.AttachmentUpdates{
		Status:      domain.ScanStatusFailed,
		LastError:   &msg,
		MaxAttempts: s.options.MaxAttempts,
	}); err != nil {
		logger.Error(ctx, "could not record attachment failure", zap.Error(err))
	}
}

// markMalformed stores the raw payload for later inspection and marks the
// attachment failed unconditionally.
func (s service) markMalformed(ctx context.Context, id domain.AttachmentID, raw string, cause error) {
	msg := cause.Error()
	if _, err := s.storage.UpdateAttachmentByID(ctx, id, storage.AttachmentUpdates{
		Status:    domain.ScanStatusFailed,
		RawResult: &raw,
		LastError: &msg,
	}); err != nil {
		logger.Error(ctx, "could not mark attachment malformed", zap.Error(err))
	}
}

// New creates a new Service instance backed by the provided storage and scan
// engine client, configured with the given options.
func New(storage storage.Storage, engine scanengine.Client, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		engine:  engine,
	}
}
