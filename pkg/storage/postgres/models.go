package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"contractscan/pkg/domain"

	"github.com/google/uuid"
)

type PgEmail struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	ExternalID string    `db:"external_id"`
	Subject    string    `db:"subject"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgEmail) ToDomain() *domain.Email {
	return &domain.Email{
		ID:         domain.EmailID(p.ID),
		ExternalID: p.ExternalID,
		Subject:    p.Subject,
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgEmail) FromDomain(email domain.Email) {
	*p = PgEmail{
		ID:         uuid.UUID(email.ID),
		ExternalID: email.ExternalID,
		Subject:    email.Subject,
		CreatedAt:  email.CreatedAt,
	}
}

type PgAttachment struct {
	ID      uuid.UUID `db:"id"       goqu:"skipinsert"`
	EmailID uuid.UUID `db:"email_id"`

	Filename    string `db:"filename"`
	ContentType string `db:"content_type"`
	Content     []byte `db:"content"`

	Status       string         `db:"status"`
	EngineScanID sql.NullString `db:"engine_scan_id" goqu:"skipinsert"`
	RawResult    sql.NullString `db:"raw_result"     goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAttachment) ToDomain() *domain.Attachment {
	return &domain.Attachment{
		ID:           domain.AttachmentID(p.ID),
		EmailID:      domain.EmailID(p.EmailID),
		Filename:     p.Filename,
		ContentType:  p.ContentType,
		Content:      p.Content,
		Status:       domain.ScanStatus(p.Status),
		EngineScanID: p.EngineScanID.String,
		RawResult:    p.RawResult.String,
		Attempts:     p.Attempts,
		LastError:    p.LastError.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgAttachment) FromDomain(att domain.Attachment) {
	*p = PgAttachment{
		ID:          uuid.UUID(att.ID),
		EmailID:     uuid.UUID(att.EmailID),
		Filename:    att.Filename,
		ContentType: att.ContentType,
		Content:     att.Content,
		Status:      string(att.Status),
		EngineScanID: sql.NullString{
			String: att.EngineScanID,
			Valid:  att.EngineScanID != "",
		},
		RawResult: sql.NullString{
			String: att.RawResult,
			Valid:  att.RawResult != "",
		},
		Attempts: att.Attempts,
		LastError: sql.NullString{
			String: att.LastError,
			Valid:  att.LastError != "",
		},
		CreatedAt: att.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  att.UpdatedAt,
			Valid: !att.UpdatedAt.IsZero(),
		},
	}
}

type PgContract struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	AttachmentID uuid.UUID `db:"attachment_id"`

	Type     string          `db:"type"`
	Parties  json.RawMessage `db:"parties"`
	Complete bool            `db:"complete"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgContract) ToDomain() (*domain.Contract, error) {
	var parties []string
	if len(p.Parties) > 0 {
		if err := json.Unmarshal(p.Parties, &parties); err != nil {
			return nil, fmt.Errorf("could not unmarshal contract parties: %w", err)
		}
	}

	return &domain.Contract{
		ID:           domain.ContractID(p.ID),
		AttachmentID: domain.AttachmentID(p.AttachmentID),
		Type:         p.Type,
		Parties:      parties,
		Complete:     p.Complete,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}, nil
}

func (p *PgContract) FromDomain(contract domain.Contract) error {
	parties := contract.Parties
	if parties == nil {
		// store an empty array rather than NULL so round-trips are stable
		parties = []string{}
	}
	b, err := json.Marshal(parties)
	if err != nil {
		return fmt.Errorf("could not marshal contract parties: %w", err)
	}

	*p = PgContract{
		ID:           uuid.UUID(contract.ID),
		AttachmentID: uuid.UUID(contract.AttachmentID),
		Type:         contract.Type,
		Parties:      b,
		Complete:     contract.Complete,
		CreatedAt:    contract.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  contract.UpdatedAt,
			Valid: !contract.UpdatedAt.IsZero(),
		},
	}

	return nil
}

func pgContractsToDomain(contracts []PgContract) ([]domain.Contract, error) {
	out := make([]domain.Contract, 0, len(contracts))
	for _, c := range contracts {
		d, err := c.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
