package postgres

import (
	"context"
	"fmt"

	"contractscan/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const contractsTable = "contracts"

func (p *PgSQL) StoreContracts(ctx context.Context,
	contracts ...domain.Contract) ([]domain.Contract, error) {
	if len(contracts) == 0 {
		return nil, nil
	}

	rows := make([]PgContract, len(contracts))
	for i := range rows {
		if err := rows[i].FromDomain(contracts[i]); err != nil {
			return nil, err
		}
	}

	var result []PgContract
	if err := p.Builder.Insert(contractsTable).
		Rows(rows).
		Returning(&PgContract{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store contracts into pg: %w", err)
	}

	return pgContractsToDomain(result)
}

func (p *PgSQL) ContractByAttachmentID(ctx context.Context,
	id domain.AttachmentID) (*domain.Contract, error) {
	var row PgContract
	found, err := p.Builder.From(contractsTable).
		Where(goqu.I("attachment_id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch contract by attachment id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// IncompleteContracts returns contracts flagged for manual review because the
// extraction did not find any parties, oldest first.
func (p *PgSQL) IncompleteContracts(ctx context.Context, limit uint) ([]domain.Contract, error) {
	var rows []PgContract
	if err := p.Builder.From(contractsTable).
		Where(goqu.I("complete").IsFalse()).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch incomplete contracts from pg: %w", err)
	}

	return pgContractsToDomain(rows)
}
