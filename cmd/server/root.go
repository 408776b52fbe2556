package main

import (
	"github.com/rajkrish0608/WorkProof/internal/config"
	"github.com/rajkrish0608/WorkProof/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd runs the API server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:          "workproof",
	Short:        "WorkProof daily-wage worker management API",
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	return cfg, log, nil
}
