package ingest_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"contractscan/internal/ingest"
	"contractscan/pkg/domain"
	"contractscan/pkg/logger"
	"contractscan/pkg/scanengine"
	"contractscan/pkg/serrors"
	"contractscan/pkg/storage"

	mockscanengine "contractscan/pkg/scanengine/mock"
	mockstorage "contractscan/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const externalID = "msg-0001@provider"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// fullResultPayload carries one qualifying title and two qualifying parties.
const fullResultPayload = `{"results":[` +
	`{"scan-key":"ContractTitle","score":0.9,"extracted-values":[` +
	`{"score":0.8,"normalized-value":"Master Services Agreement"}]},` +
	`{"scan-key":"PartyName","score":0.95,"extracted-values":[` +
	`{"score":0.9,"normalized-value":"NEWCO, INC."},` +
	`{"score":0.4,"normalized-value":"Second Co."}]}]}`

func newTestService(t *testing.T) (*gomock.Controller,
	*mockstorage.MockStorage,
	*mockscanengine.MockClient,
	ingest.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	engine := mockscanengine.NewMockClient(ctrl)
	s := ingest.New(st, engine, ingest.Options{MaxAttempts: 3, DedupeWindow: time.Hour})

	return ctrl, st, engine, s
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestService_Upload_NewEmail(t *testing.T) {
	ctrl, st, _, s := newTestService(t)

	email := domain.Email{ExternalID: externalID, Subject: "contracts"}
	attachments := []domain.Attachment{
		{Filename: "nda.pdf", ContentType: "application/pdf", Content: []byte("pdf")},
		{Filename: "msa.pdf", ContentType: "application/pdf", Content: []byte("pdf2")},
	}

	st.EXPECT().EmailExistsByExternalID(gomock.Any(), externalID).Return(false, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEmails(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, emails ...domain.Email) ([]domain.Email, error) {
				if len(emails) != 1 {
					t.Fatalf("expected one email input")
				}
				ret := emails
				ret[0].ID = domain.EmailID(uuid.New())

				return ret, nil
			},
		)
		tx.EXPECT().StoreAttachments(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, atts ...domain.Attachment) ([]domain.Attachment, error) {
				for i := range atts {
					if atts[i].Status != domain.ScanStatusPending {
						t.Fatalf("expected status PENDING, got %s", atts[i].Status)
					}
					if uuid.UUID(atts[i].EmailID) == uuid.Nil {
						t.Fatalf("expected email ID to be set on attachment")
					}
					atts[i].ID = domain.AttachmentID(uuid.New())
				}

				return atts, nil
			},
		)
		// one job per attachment
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil).Times(2)
	})

	ingested, err := s.UploadEmailAttachments(context.Background(), email, attachments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ingested {
		t.Fatalf("expected email to be ingested")
	}
}

func TestService_Upload_DuplicateSkipped(t *testing.T) {
	_, st, _, s := newTestService(t)

	st.EXPECT().EmailExistsByExternalID(gomock.Any(), externalID).Return(true, nil)
	// No transaction expected: nothing else is stored for a duplicate.
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	ingested, err := s.UploadEmailAttachments(context.Background(),
		domain.Email{ExternalID: externalID}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ingested {
		t.Fatalf("expected duplicate email to be skipped")
	}
}

func TestService_Upload_PropagatesErrors(t *testing.T) {
	ctrl, st, _, s := newTestService(t)
	email := domain.Email{ExternalID: externalID}

	// error from existence check
	st.EXPECT().EmailExistsByExternalID(gomock.Any(), externalID).Return(false, errors.New("boom"))
	if _, err := s.UploadEmailAttachments(context.Background(), email, nil); err == nil {
		t.Fatalf("expected error from EmailExistsByExternalID")
	}

	// error from StoreEmails
	st.EXPECT().EmailExistsByExternalID(gomock.Any(), externalID).Return(false, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEmails(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	if _, err := s.UploadEmailAttachments(context.Background(), email, nil); err == nil {
		t.Fatalf("expected error from StoreEmails")
	}

	// error from AddJob
	st.EXPECT().EmailExistsByExternalID(gomock.Any(), externalID).Return(false, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreEmails(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, emails ...domain.Email) ([]domain.Email, error) { return emails, nil },
		)
		tx.EXPECT().StoreAttachments(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, atts ...domain.Attachment) ([]domain.Attachment, error) { return atts, nil },
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	if _, err := s.UploadEmailAttachments(context.Background(), email,
		[]domain.Attachment{{Filename: "a.pdf"}}); err == nil {
		t.Fatalf("expected error from AddJob")
	}
}

func TestService_Process_NotFound(t *testing.T) {
	_, st, _, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(nil, nil)

	_, err := s.ProcessAttachment(context.Background(), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Process_AlreadyCompleted(t *testing.T) {
	_, st, _, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:     id,
		Status: domain.ScanStatusCompleted,
	}, nil)

	_, err := s.ProcessAttachment(context.Background(), id)
	if !errors.Is(err, serrors.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestService_Process_SubmitsWhenNoScanID(t *testing.T) {
	_, st, engine, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())
	rl := scanengine.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: time.Now().Add(time.Minute)}

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:          id,
		Filename:    "nda.pdf",
		ContentType: "application/pdf",
		Content:     []byte("pdf"),
		Status:      domain.ScanStatusPending,
	}, nil)
	engine.EXPECT().SubmitDocument(gomock.Any(), scanengine.Document{
		Filename:    "nda.pdf",
		ContentType: "application/pdf",
		Content:     []byte("pdf"),
	}).Return(scanengine.SubmitRes{ID: "scan-42"}, rl, nil)
	st.EXPECT().UpdateAttachmentByID(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.AttachmentID, updates storage.AttachmentUpdates) (*domain.Attachment, error) {
			if updates.EngineScanID == nil || *updates.EngineScanID != "scan-42" {
				t.Fatalf("expected engine scan id to be stored, got %+v", updates)
			}

			return &domain.Attachment{ID: id, EngineScanID: "scan-42"}, nil
		},
	)

	gotRL, err := s.ProcessAttachment(context.Background(), id)
	if !errors.Is(err, serrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable after submission, got %v", err)
	}
	if gotRL != rl {
		t.Fatalf("expected rate limit status passthrough, got %+v", gotRL)
	}
}

func TestService_Process_SubmitRateLimited(t *testing.T) {
	_, st, engine, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())
	rl := scanengine.RateLimitStatus{Limit: 10, Remaining: 0, ResetAt: time.Now().Add(time.Minute)}

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:     id,
		Status: domain.ScanStatusPending,
	}, nil)
	engine.EXPECT().SubmitDocument(gomock.Any(), gomock.Any()).
		Return(scanengine.SubmitRes{}, rl, serrors.With(serrors.ErrRateLimited, "rate limited"))
	// Rate limiting must not burn a retry attempt.
	st.EXPECT().UpdateAttachmentByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	gotRL, err := s.ProcessAttachment(context.Background(), id)
	if !errors.Is(err, serrors.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if gotRL != rl {
		t.Fatalf("expected rate limit status passthrough, got %+v", gotRL)
	}
}

func TestService_Process_SubmitFailureRecorded(t *testing.T) {
	_, st, engine, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:     id,
		Status: domain.ScanStatusPending,
	}, nil)
	engine.EXPECT().SubmitDocument(gomock.Any(), gomock.Any()).
		Return(scanengine.SubmitRes{}, scanengine.RateLimitStatus{}, errors.New("engine down"))
	st.EXPECT().UpdateAttachmentByID(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.AttachmentID, updates storage.AttachmentUpdates) (*domain.Attachment, error) {
			if updates.Status != domain.ScanStatusFailed || updates.MaxAttempts != 3 {
				t.Fatalf("expected guarded failure update, got %+v", updates)
			}
			if updates.LastError == nil || *updates.LastError == "" {
				t.Fatalf("expected last error to be recorded")
			}

			return &domain.Attachment{ID: id}, nil
		},
	)

	if _, err := s.ProcessAttachment(context.Background(), id); err == nil {
		t.Fatalf("expected error from submission")
	}
}

func TestService_Process_ResultNotReady(t *testing.T) {
	_, st, engine, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:           id,
		Status:       domain.ScanStatusPending,
		EngineScanID: "scan-42",
	}, nil)
	engine.EXPECT().Result(gomock.Any(), "scan-42").
		Return("", scanengine.RateLimitStatus{}, serrors.With(serrors.ErrNotFound, "result not ready"))

	_, err := s.ProcessAttachment(context.Background(), id)
	if !errors.Is(err, serrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable while result pending, got %v", err)
	}
}

func TestService_Process_ResultRateLimited(t *testing.T) {
	_, st, engine, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())
	rl := scanengine.RateLimitStatus{Limit: 10, Remaining: 0, ResetAt: time.Now().Add(time.Minute)}

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:           id,
		Status:       domain.ScanStatusPending,
		EngineScanID: "scan-42",
	}, nil)
	engine.EXPECT().Result(gomock.Any(), "scan-42").
		Return("", rl, serrors.With(serrors.ErrRateLimited, "rate limited"))
	// A rate-limited fetch must not burn a retry attempt, same as a
	// rate-limited submission.
	st.EXPECT().UpdateAttachmentByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	gotRL, err := s.ProcessAttachment(context.Background(), id)
	if !errors.Is(err, serrors.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	if gotRL != rl {
		t.Fatalf("expected rate limit status passthrough, got %+v", gotRL)
	}
}

func TestService_Process_ResultReadyStoresContract(t *testing.T) {
	ctrl, st, engine, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:           id,
		Status:       domain.ScanStatusPending,
		EngineScanID: "scan-42",
	}, nil)
	engine.EXPECT().Result(gomock.Any(), "scan-42").
		Return(fullResultPayload, scanengine.RateLimitStatus{}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateAttachmentByID(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.AttachmentID, updates storage.AttachmentUpdates) (*domain.Attachment, error) {
				if updates.Status != domain.ScanStatusCompleted {
					t.Fatalf("expected status COMPLETED, got %s", updates.Status)
				}
				if updates.RawResult == nil || *updates.RawResult != fullResultPayload {
					t.Fatalf("expected raw result to be persisted")
				}

				return &domain.Attachment{ID: id, Status: domain.ScanStatusCompleted}, nil
			},
		)
		tx.EXPECT().StoreContracts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, contracts ...domain.Contract) ([]domain.Contract, error) {
				if len(contracts) != 1 {
					t.Fatalf("expected one contract")
				}
				c := contracts[0]
				if c.AttachmentID != id {
					t.Fatalf("unexpected attachment id on contract")
				}
				if c.Type != "Master Services Agreement" {
					t.Fatalf("unexpected contract type %q", c.Type)
				}
				if len(c.Parties) != 2 || c.Parties[0] != "NEWCO, INC." || c.Parties[1] != "Second Co." {
					t.Fatalf("unexpected parties %v", c.Parties)
				}
				if !c.Complete {
					t.Fatalf("expected complete contract")
				}

				return contracts, nil
			},
		)
	})

	if _, err := s.ProcessAttachment(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Process_IncompleteContractStored(t *testing.T) {
	ctrl, st, engine, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())

	// A payload with a title but no qualifying parties still yields a
	// contract, flagged incomplete for review.
	payload := `{"results":[{"scan-key":"ContractTitle","score":0.9,` +
		`"extracted-values":[{"score":0.8,"normalized-value":"Lease Agreement"}]}]}`

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:           id,
		Status:       domain.ScanStatusPending,
		EngineScanID: "scan-43",
	}, nil)
	engine.EXPECT().Result(gomock.Any(), "scan-43").
		Return(payload, scanengine.RateLimitStatus{}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateAttachmentByID(gomock.Any(), id, gomock.Any()).
			Return(&domain.Attachment{ID: id}, nil)
		tx.EXPECT().StoreContracts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, contracts ...domain.Contract) ([]domain.Contract, error) {
				if contracts[0].Complete {
					t.Fatalf("expected incomplete contract")
				}
				if contracts[0].Type != "Lease Agreement" {
					t.Fatalf("unexpected contract type %q", contracts[0].Type)
				}
				if len(contracts[0].Parties) != 0 {
					t.Fatalf("expected no parties, got %v", contracts[0].Parties)
				}

				return contracts, nil
			},
		)
	})

	if _, err := s.ProcessAttachment(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Process_MalformedPayload(t *testing.T) {
	_, st, engine, s := newTestService(t)
	id := domain.AttachmentID(uuid.New())

	st.EXPECT().AttachmentByID(gomock.Any(), id).Return(&domain.Attachment{
		ID:           id,
		Status:       domain.ScanStatusPending,
		EngineScanID: "scan-44",
	}, nil)
	engine.EXPECT().Result(gomock.Any(), "scan-44").
		Return("not json at all", scanengine.RateLimitStatus{}, nil)
	st.EXPECT().UpdateAttachmentByID(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.AttachmentID, updates storage.AttachmentUpdates) (*domain.Attachment, error) {
			// unconditional failure: no retry budget for malformed payloads
			if updates.Status != domain.ScanStatusFailed || updates.MaxAttempts != 0 {
				t.Fatalf("expected unconditional failure update, got %+v", updates)
			}
			if updates.RawResult == nil || *updates.RawResult != "not json at all" {
				t.Fatalf("expected raw payload to be kept for inspection")
			}

			return &domain.Attachment{ID: id, Status: domain.ScanStatusFailed}, nil
		},
	)

	_, err := s.ProcessAttachment(context.Background(), id)
	if !errors.Is(err, serrors.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}
