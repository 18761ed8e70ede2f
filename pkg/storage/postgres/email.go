package postgres

import (
	"context"
	"fmt"

	"contractscan/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const emailsTable = "emails"

func (p *PgSQL) StoreEmails(ctx context.Context, emails ...domain.Email) ([]domain.Email, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	rows := make([]PgEmail, len(emails))
	for i := range rows {
		rows[i].FromDomain(emails[i])
	}

	var result []PgEmail
	if err := p.Builder.Insert(emailsTable).
		Rows(rows).
		Returning(&PgEmail{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store emails into pg: %w", err)
	}

	out := make([]domain.Email, 0, len(result))
	for _, r := range result {
		out = append(out, *r.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) EmailExistsByExternalID(ctx context.Context, externalID string) (bool, error) {
	count, err := p.Builder.From(emailsTable).
		Where(goqu.I("external_id").Eq(externalID)).
		Limit(1).
		CountContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not check email existence in pg: %w", err)
	}

	return count > 0, nil
}
