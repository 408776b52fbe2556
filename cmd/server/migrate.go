package main

import (
	"github.com/rajkrish0608/WorkProof/internal/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd syncs the schema and exits.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		db, err := database.Open(cfg.DB)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("migrations applied", zap.String("driver", cfg.DB.Driver))
		return nil
	},
}
