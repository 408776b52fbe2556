package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rajkrish0608/WorkProof/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the WorkProof HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to start server", zap.Error(err))
		return err
	}
	if err := srv.Run(ctx); err != nil {
		log.Error("server error", zap.Error(err))
		return err
	}
	return nil
}
