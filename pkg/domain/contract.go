package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContractID uniquely identifies a derived contract record.
type ContractID uuid.UUID

// Contract is the record derived from a scan result payload. Type is never
// empty: when no title candidate clears the score thresholds it holds the
// default literal so a contract is still created when parties were detected.
// Complete is false when no parties survived filtering; such records are kept
// for manual review instead of being silently dropped.
type Contract struct {
	// ID is the unique identifier of the contract record.
	ID ContractID `json:"id"`
	// AttachmentID references the scanned attachment this contract came from.
	AttachmentID AttachmentID `json:"attachmentId"`

	// Type is the resolved contract title.
	Type string `json:"type"`
	// Parties is the de-duplicated, filtered list of contracting party names,
	// in first-occurrence order. May be empty.
	Parties []string `json:"parties"`
	// Complete reports whether both a title and at least one party are present.
	Complete bool `json:"isComplete"`

	// CreatedAt is the time the contract record was derived.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the contract record last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}
