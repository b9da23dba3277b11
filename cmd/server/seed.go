package main

import (
	"context"

	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/database/seeder"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the admin account from SEED_ADMIN_* and optional demo data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
			defer cancel()

			db, err := dbpostgres.Connect(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			runner := seeder.Runner{Seeders: seeder.Defaults(cfg.Seed, demo), Logger: log.Named("seeder")}
			return runner.Run(ctx, db)
		},
	}
	cmd.Flags().BoolVar(&demo, "demo", false, "also create a demo recruiter with sample jobs")
	return cmd
}
