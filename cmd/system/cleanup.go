package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/ortholab/depisto_backend/config"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
	"github.com/ortholab/depisto_backend/internal/service/passation"
	"github.com/ortholab/depisto_backend/internal/service/patientaccount"
	"github.com/ortholab/depisto_backend/pkg/database"
)

// NewCleanupCommand removes stale rows: abandoned passations past their
// retention window and expired activation tokens. Meant to run from cron.
func NewCleanupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove abandoned passations and expired activation tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			clock := clockwork.NewRealClock()

			retention := time.Duration(cfg.Tests.AbandonedRetentionDays) * 24 * time.Hour
			if retention <= 0 {
				retention = 90 * 24 * time.Hour
			}

			passations := passation.New(client, catalog.New(client, nil), clock, cfg)
			removed, err := passations.CleanupAbandoned(ctx, retention)
			if err != nil {
				return fmt.Errorf("failed to clean up abandoned passations: %w", err)
			}
			fmt.Printf("Removed %d abandoned passations.\n", removed)

			accounts := patientaccount.New(client, nil, nil, nil, nil, clock, nil, cfg)
			purged, err := accounts.PurgeExpiredTokens(ctx)
			if err != nil {
				return fmt.Errorf("failed to purge activation tokens: %w", err)
			}
			fmt.Printf("Purged %d expired activation tokens.\n", purged)

			return nil
		},
	}

	return cmd
}
