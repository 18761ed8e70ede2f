package postgres

import (
	"context"
	"fmt"

	"contractscan/pkg/domain"
	"contractscan/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const attachmentsTable = "attachments"

func (p *PgSQL) StoreAttachments(ctx context.Context,
	attachments ...domain.Attachment) ([]domain.Attachment, error) {
	if len(attachments) == 0 {
		return nil, nil
	}

	rows := make([]PgAttachment, len(attachments))
	for i := range rows {
		rows[i].FromDomain(attachments[i])
	}

	var result []PgAttachment
	if err := p.Builder.Insert(attachmentsTable).
		Rows(rows).
		Returning(&PgAttachment{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store attachments into pg: %w", err)
	}

	out := make([]domain.Attachment, 0, len(result))
	for _, r := range result {
		out = append(out, *r.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) AttachmentByID(ctx context.Context,
	id domain.AttachmentID) (*domain.Attachment, error) {
	var row PgAttachment
	found, err := p.Builder.From(attachmentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch attachment by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateAttachmentByID applies updates to a single attachment. Attempts is
// incremented by 1 and updated_at is refreshed on every call. When Status is
// Failed and MaxAttempts > 0, the status only flips to Failed once the
// incremented attempts counter exceeds MaxAttempts; until then it stays as it
// was so the job can be retried.
func (p *PgSQL) UpdateAttachmentByID(ctx context.Context,
	id domain.AttachmentID,
	updates storage.AttachmentUpdates) (*domain.Attachment, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}

	if updates.Status == domain.ScanStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.ScanStatusFailed))
	} else if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}

	if updates.EngineScanID != nil {
		rec["engine_scan_id"] = *updates.EngineScanID
	}
	if updates.RawResult != nil {
		rec["raw_result"] = *updates.RawResult
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// empty string clears the column
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgAttachment
	found, err := p.Builder.Update(attachmentsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAttachment{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update attachment in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
