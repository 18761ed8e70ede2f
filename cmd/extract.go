package main

import (
	"context"
	"encoding/json"
	"os"

	"contractscan/pkg/extraction"
	"contractscan/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// extractCommand constructs the 'extract' subcommand: a one-shot run of the
// extraction over a raw scan result payload file, printing the resolved
// contract fields as JSON. Useful for replaying stored payloads without
// touching the database.
func extractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [payload file]",
		Short: "Resolves contract type and parties from a raw scan result payload",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			raw, err := os.ReadFile(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not read payload file", zap.Error(err))
			}

			record := extraction.NewRecord(string(raw))
			contractType, err := record.Type()
			if err != nil {
				logger.Fatal(ctx, "could not extract contract", zap.Error(err))
			}
			parties, err := record.Parties()
			if err != nil {
				logger.Fatal(ctx, "could not extract contract", zap.Error(err))
			}
			complete, err := record.Complete()
			if err != nil {
				logger.Fatal(ctx, "could not extract contract", zap.Error(err))
			}
			if parties == nil {
				parties = []string{}
			}

			out, err := json.MarshalIndent(struct {
				Type       string   `json:"type"`
				Parties    []string `json:"parties"`
				IsComplete bool     `json:"isComplete"`
			}{
				Type:       contractType,
				Parties:    parties,
				IsComplete: complete,
			}, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not marshal output", zap.Error(err))
			}

			_, _ = os.Stdout.Write(append(out, '\n'))
		},
	}

	return cmd
}
