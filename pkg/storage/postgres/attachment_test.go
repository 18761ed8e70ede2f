package postgres_test

import (
	"context"
	"testing"

	"contractscan/pkg/domain"
	"contractscan/pkg/storage"
	"contractscan/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// storeTestEmail inserts an email to attach records to.
func storeTestEmail(t *testing.T, pgSQL *postgres.PgSQL) domain.EmailID {
	t.Helper()

	emails, err := pgSQL.StoreEmails(context.Background(), domain.Email{
		ExternalID: "att-" + uuid.NewString(),
	})
	require.NoError(t, err)
	require.Len(t, emails, 1)

	return emails[0].ID
}

func storeTestAttachment(t *testing.T, pgSQL *postgres.PgSQL, emailID domain.EmailID) domain.Attachment {
	t.Helper()

	atts, err := pgSQL.StoreAttachments(context.Background(), domain.Attachment{
		EmailID:     emailID,
		Filename:    "nda.pdf",
		ContentType: "application/pdf",
		Content:     []byte("pdf bytes"),
		Status:      domain.ScanStatusPending,
	})
	require.NoError(t, err)
	require.Len(t, atts, 1)

	return atts[0]
}

func TestPgSQL_StoreAttachments(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	emailID := storeTestEmail(t, pgSQL)

	t.Run("store single attachment", func(t *testing.T) {
		att := storeTestAttachment(t, pgSQL, emailID)
		require.Equal(t, emailID, att.EmailID)
		require.Equal(t, domain.ScanStatusPending, att.Status)
		require.Equal(t, []byte("pdf bytes"), att.Content)
		require.Empty(t, att.EngineScanID)
		require.Zero(t, att.Attempts)
	})

	t.Run("store empty attachments", func(t *testing.T) {
		res, err := pgSQL.StoreAttachments(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_AttachmentByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	emailID := storeTestEmail(t, pgSQL)
	att := storeTestAttachment(t, pgSQL, emailID)

	got, err := pgSQL.AttachmentByID(ctx, att.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, att.ID, got.ID)
	require.Equal(t, "nda.pdf", got.Filename)

	// unknown id returns nil without error
	missing, err := pgSQL.AttachmentByID(ctx, domain.AttachmentID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpdateAttachmentByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()
	emailID := storeTestEmail(t, pgSQL)

	t.Run("stores engine scan id and bumps attempts", func(t *testing.T) {
		att := storeTestAttachment(t, pgSQL, emailID)

		scanID := "scan-42"
		updated, err := pgSQL.UpdateAttachmentByID(ctx, att.ID, storage.AttachmentUpdates{
			EngineScanID: &scanID,
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, "scan-42", updated.EngineScanID)
		require.EqualValues(t, 1, updated.Attempts)
		require.Equal(t, domain.ScanStatusPending, updated.Status)
		require.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("failed status honors retry budget", func(t *testing.T) {
		att := storeTestAttachment(t, pgSQL, emailID)

		errMsg := "engine down"
		// first failure: attempts become 1, below MaxAttempts 2, status unchanged
		updated, err := pgSQL.UpdateAttachmentByID(ctx, att.ID, storage.AttachmentUpdates{
			Status:      domain.ScanStatusFailed,
			LastError:   &errMsg,
			MaxAttempts: 2,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusPending, updated.Status)
		require.EqualValues(t, 1, updated.Attempts)
		require.Equal(t, errMsg, updated.LastError)

		// second failure exhausts the budget and flips the status
		updated, err = pgSQL.UpdateAttachmentByID(ctx, att.ID, storage.AttachmentUpdates{
			Status:      domain.ScanStatusFailed,
			LastError:   &errMsg,
			MaxAttempts: 2,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusFailed, updated.Status)
		require.EqualValues(t, 2, updated.Attempts)
	})

	t.Run("failed status without budget is unconditional", func(t *testing.T) {
		att := storeTestAttachment(t, pgSQL, emailID)

		errMsg := "malformed payload"
		updated, err := pgSQL.UpdateAttachmentByID(ctx, att.ID, storage.AttachmentUpdates{
			Status:    domain.ScanStatusFailed,
			LastError: &errMsg,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusFailed, updated.Status)
	})

	t.Run("completion stores raw result and clears last error", func(t *testing.T) {
		att := storeTestAttachment(t, pgSQL, emailID)

		errMsg := "transient"
		_, err := pgSQL.UpdateAttachmentByID(ctx, att.ID, storage.AttachmentUpdates{
			LastError: &errMsg,
		})
		require.NoError(t, err)

		raw := `{"results":[]}`
		empty := ""
		updated, err := pgSQL.UpdateAttachmentByID(ctx, att.ID, storage.AttachmentUpdates{
			Status:    domain.ScanStatusCompleted,
			RawResult: &raw,
			LastError: &empty,
		})
		require.NoError(t, err)
		require.Equal(t, domain.ScanStatusCompleted, updated.Status)
		require.Equal(t, raw, updated.RawResult)
		require.Empty(t, updated.LastError)
	})

	t.Run("unknown attachment returns nil", func(t *testing.T) {
		updated, err := pgSQL.UpdateAttachmentByID(ctx, domain.AttachmentID(uuid.New()),
			storage.AttachmentUpdates{Status: domain.ScanStatusCompleted})
		require.NoError(t, err)
		require.Nil(t, updated)
	})
}
