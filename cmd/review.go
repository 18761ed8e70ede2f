package main

import (
	"context"
	"encoding/json"
	"os"

	"contractscan/internal/config"
	"contractscan/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reviewCommand constructs the 'review' subcommand that lists contracts whose
// extraction did not yield full info, oldest first, so an operator can follow
// up on them.
func reviewCommand(cfg *config.Config) *cobra.Command {
	var limit uint

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Lists incomplete contracts awaiting manual review",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			contracts, err := strg.IncompleteContracts(ctx, limit)
			if err != nil {
				logger.Fatal(ctx, "could not list incomplete contracts", zap.Error(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(contracts); err != nil {
				logger.Fatal(ctx, "could not marshal contracts", zap.Error(err))
			}
		},
	}

	cmd.Flags().UintVar(&limit, "limit", 50, "Maximum number of contracts to list")

	return cmd
}
