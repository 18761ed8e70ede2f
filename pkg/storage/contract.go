package storage

import (
	"context"

	"contractscan/pkg/domain"
)

// ContractStorage defines persistence operations for contract records
// derived from scan results.
type ContractStorage interface {
	// StoreContracts inserts one or more contracts and returns the stored
	// rows as they exist in the database, including generated fields.
	StoreContracts(ctx context.Context, contracts ...domain.Contract) ([]domain.Contract, error)
	// ContractByAttachmentID fetches the contract derived from the given
	// attachment. Returns nil when no contract exists yet.
	ContractByAttachmentID(ctx context.Context, id domain.AttachmentID) (*domain.Contract, error)
	// IncompleteContracts returns up to limit contracts whose extraction did
	// not yield full contract info, oldest first, for manual review.
	IncompleteContracts(ctx context.Context, limit uint) ([]domain.Contract, error)
}
