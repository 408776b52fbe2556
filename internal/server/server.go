package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rajkrish0608/WorkProof/internal/cache"
	"github.com/rajkrish0608/WorkProof/internal/config"
	"github.com/rajkrish0608/WorkProof/internal/database"
	"github.com/rajkrish0608/WorkProof/internal/notify"
	"github.com/rajkrish0608/WorkProof/internal/receipt"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"github.com/rajkrish0608/WorkProof/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and the resources it owns.
type Server struct {
	httpServer *http.Server
	db         *gorm.DB
	redis      *redis.Client
	tracing    telemetry.ShutdownFunc
	logger     *zap.Logger
}

// New connects every backing service and builds the HTTP server.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	gin.SetMode(cfg.Gin.Mode)

	if cfg.JWTFallback {
		logger.Warn("JWT_SECRET not set, using the development secret")
	}

	db, err := database.Open(cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	tokens, err := services.NewTokenService(cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	deps := Deps{
		DB:       db,
		Tokens:   tokens,
		Logger:   logger,
		SMS:      notify.SMS{Provider: notify.NewProvider(cfg.Notify.SMSProvider, notify.ChannelSMS, cfg.Notify.SMSWebhookURL, logger)},
		Email:    notify.Email{Provider: notify.NewProvider(cfg.Notify.EmailProvider, notify.ChannelEmail, cfg.Notify.EmailWebhookURL, logger)},
		Renderer: receipt.NewPDFRenderer(),
	}

	s := &Server{db: db, logger: logger}

	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("redis unavailable, idempotency keys disabled", zap.Error(err))
		} else {
			s.redis = rdb
			deps.Idempotency = cache.NewRedisCache(rdb, "workproof:idempotency:")
		}
	}

	if cfg.Minio.Endpoint != "" {
		archive, err := receipt.NewMinioArchive(cfg.Minio)
		if err != nil {
			return nil, fmt.Errorf("invalid receipt archive config: %w", err)
		}
		if err := archive.EnsureBucket(ctx); err != nil {
			logger.Warn("receipt archive unavailable", zap.Error(err))
		} else {
			deps.Archive = archive
		}
	}

	router, err := NewRouter(deps)
	if err != nil {
		return nil, err
	}

	s.tracing = telemetry.Setup(ctx, telemetry.Options{
		ServiceName: "workproof",
		Endpoint:    cfg.OTel.Endpoint,
		Insecure:    cfg.OTel.Insecure,
	}, logger)

	s.httpServer = &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           WrapHandler(router, cfg.CORS.AllowedOrigins),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.close()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	if tracingErr := s.tracing(shutdownCtx); tracingErr != nil {
		s.logger.Warn("tracing shutdown failed", zap.Error(tracingErr))
	}
	s.close()
	return err
}

func (s *Server) close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
