package main

import (
	"context"
	"time"

	"pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand aplica las migraciones goose y, con --seed, carga los datos de demo.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if cfg.Database.DSN == "" {
				logger.Get(ctx).Fatal("DB_DSN is required to migrate")
			}

			db, closeDB := openPostgres(ctx, cfg)
			defer closeDB()

			if err := postgres.Migrate(ctx, db); err != nil {
				logger.Get(ctx).Fatal("could not migrate pgsql", zap.Error(err))
			}

			if seed, _ := cmd.Flags().GetBool("seed"); seed {
				if err := postgres.Seed(ctx, db, time.Now().UTC()); err != nil {
					logger.Get(ctx).Fatal("could not seed pgsql", zap.Error(err))
				}
				logger.Get(ctx).Info("demo data loaded")
			}
		},
	}

	cmd.Flags().Bool("seed", false, "Load demo users, pets and applications")

	return cmd
}
