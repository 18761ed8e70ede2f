package main

import (
	"context"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"contractscan/internal/config"
	"contractscan/internal/ingest"
	"contractscan/pkg/domain"
	"contractscan/pkg/logger"
	"contractscan/pkg/scanengine/docscanio"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// uploadCommand constructs the 'upload' subcommand that ingests one email
// and its attachment files, enqueueing a scan job per attachment. Re-running
// it with the same external ID is a no-op.
func uploadCommand(cfg *config.Config) *cobra.Command {
	var externalID, subject string

	cmd := &cobra.Command{
		Use:   "upload [files...]",
		Short: "Ingests an email with attachment files and enqueues scan jobs",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			attachments := make([]domain.Attachment, 0, len(args))
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					logger.Fatal(ctx, "could not read attachment file",
						zap.String("path", path), zap.Error(err))
				}

				contentType := mime.TypeByExtension(filepath.Ext(path))
				if contentType == "" {
					contentType = http.DetectContentType(content)
				}

				attachments = append(attachments, domain.Attachment{
					Filename:    filepath.Base(path),
					ContentType: contentType,
					Content:     content,
				})
			}

			engine := docscanio.New(&http.Client{
				Timeout: cfg.ScanEngine.RequestTimeout,
			}, cfg.ScanEngine.BaseURL, cfg.ScanEngine.Token)
			service := ingest.New(strg, engine, ingest.NewOptions(cfg))

			ingested, err := service.UploadEmailAttachments(ctx, domain.Email{
				ExternalID: externalID,
				Subject:    subject,
			}, attachments)
			if err != nil {
				logger.Fatal(ctx, "could not ingest email", zap.Error(err))
			}

			if ingested {
				logger.Info(ctx, "email ingested",
					zap.String("externalID", externalID),
					zap.Int("attachments", len(attachments)))
			} else {
				logger.Info(ctx, "email already ingested, nothing to do",
					zap.String("externalID", externalID))
			}
		},
	}

	cmd.Flags().StringVar(&externalID, "external-id", "", "Provider-assigned message identifier")
	cmd.Flags().StringVar(&subject, "subject", "", "Message subject line")
	_ = cmd.MarkFlagRequired("external-id")

	return cmd
}
