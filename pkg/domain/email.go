package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmailID uniquely identifies an ingested email message.
// It wraps uuid.UUID to provide type safety at the domain layer.
type EmailID uuid.UUID

// AttachmentID uniquely identifies an email attachment.
type AttachmentID uuid.UUID

// Email represents an ingested email message. ExternalID is the identifier
// assigned by the mail provider and is unique across the table, which is what
// makes ingestion idempotent: a redelivered message is recognized and skipped.
type Email struct {
	// ID is the unique identifier of the email record.
	ID EmailID `json:"id"`
	// ExternalID is the provider-assigned message identifier.
	ExternalID string `json:"externalId"`
	// Subject is the message subject line, kept for operator context.
	Subject string `json:"subject"`

	// CreatedAt is the time the email was ingested.
	CreatedAt time.Time `json:"createdAt"`
}

// ScanStatus represents the lifecycle state of an attachment scan.
type ScanStatus string

const (
	// ScanStatusPending indicates the attachment is enqueued or being processed.
	ScanStatusPending ScanStatus = "PENDING"
	// ScanStatusCompleted indicates the scan finished and results were processed.
	ScanStatusCompleted ScanStatus = "COMPLETED"
	// ScanStatusFailed indicates processing ended with an error; see LastError.
	ScanStatusFailed ScanStatus = "FAILED"
)

// Attachment represents a single email attachment and the state of its trip
// through the external scan engine.
type Attachment struct {
	// ID is the unique identifier of the attachment.
	ID AttachmentID `json:"id"`
	// EmailID references the email this attachment arrived with.
	EmailID EmailID `json:"emailId"`

	// Filename is the original attachment file name.
	Filename string `json:"filename"`
	// ContentType is the MIME type reported by the mail provider.
	ContentType string `json:"contentType"`
	// Content is the raw attachment bytes submitted to the scan engine.
	Content []byte `json:"-"`

	// Status is the current lifecycle state of the scan.
	Status ScanStatus `json:"status"`
	// EngineScanID is the identifier the scan engine assigned on submission.
	// Empty until the attachment has been submitted.
	EngineScanID string `json:"-"`
	// RawResult is the raw JSON payload returned by the scan engine, stored
	// verbatim so extractions can be re-run without re-scanning.
	RawResult string `json:"-"`

	// Attempts is the number of processing attempts so far.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent processing error message, if any.
	LastError string `json:"-"`

	// CreatedAt is the time the attachment was ingested.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the attachment record last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
