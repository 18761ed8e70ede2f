package storage

import (
	"context"

	"contractscan/pkg/domain"
)

// EmailStorage defines persistence operations for ingested emails. The
// unique external ID is what lets the ingestion service recognize and skip
// messages it has already processed.
type EmailStorage interface {
	// StoreEmails inserts one or more emails and returns the stored rows as
	// they exist in the database, including generated fields.
	StoreEmails(ctx context.Context, emails ...domain.Email) ([]domain.Email, error)
	// EmailExistsByExternalID reports whether an email with the given
	// provider-assigned identifier has already been ingested.
	EmailExistsByExternalID(ctx context.Context, externalID string) (bool, error)
}
