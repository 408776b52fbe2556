package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajkrish0608/WorkProof/internal/handlers"
	"github.com/rajkrish0608/WorkProof/internal/middleware"
	"github.com/rajkrish0608/WorkProof/internal/notify"
	"github.com/rajkrish0608/WorkProof/internal/receipt"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the collaborators the router is built from. Optional ones may be nil.
type Deps struct {
	DB     *gorm.DB
	Tokens *services.TokenService
	Logger *zap.Logger

	Idempotency middleware.IdempotencyStore
	SMS         notify.SMSSender
	Email       notify.EmailSender
	Renderer    receipt.Renderer
	Archive     receipt.Archive

	// Now overrides the clock used for payments and the dashboard.
	Now func() time.Time
}

// NewRouter wires repositories, services and handlers into a gin engine.
// Every route is served both at the root and under /api.
func NewRouter(deps Deps) (*gin.Engine, error) {
	if deps.DB == nil || deps.Tokens == nil {
		return nil, errors.New("router requires a database and a token service")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = receipt.NewPDFRenderer()
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		return nil, err
	}

	handlers.RegisterValidators()

	accountRepo := repository.NewAccountRepository(deps.DB)
	workerRepo := repository.NewWorkerRepository(deps.DB)
	attendanceRepo := repository.NewAttendanceRepository(deps.DB)
	paymentRepo := repository.NewPaymentRepository(deps.DB)

	authService := services.NewAuthService(accountRepo, deps.Tokens)
	workerService := services.NewWorkerService(workerRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, workerRepo)
	paymentService := services.NewPaymentService(paymentRepo, workerRepo, deps.SMS, logger)
	staffService := services.NewStaffService(accountRepo, deps.Email, logger)
	dashboardService := services.NewDashboardService(workerRepo, attendanceRepo, paymentRepo)
	receiptService := services.NewReceiptService(paymentService, renderer, deps.Archive, logger)
	if deps.Now != nil {
		paymentService.SetClock(deps.Now)
		dashboardService.SetClock(deps.Now)
	}

	authHandler := handlers.NewAuthHandler(authService, logger)
	workerHandler := handlers.NewWorkerHandler(workerService, logger)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	staffHandler := handlers.NewStaffHandler(staffService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	receiptHandler := handlers.NewReceiptHandler(receiptService, logger)
	healthHandler := handlers.NewHealthHandler(sqlDB, logger)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.RequestLogger(logger),
	)

	r.GET("/healthz", healthHandler.Healthz)
	r.GET("/readyz", healthHandler.Readyz)

	requireAuth := middleware.RequireAuth(deps.Tokens)
	paymentCreate := []gin.HandlerFunc{requireAuth}
	if deps.Idempotency != nil {
		paymentCreate = append(paymentCreate, middleware.Idempotency(deps.Idempotency, logger))
	}
	paymentCreate = append(paymentCreate, paymentHandler.CreatePayment)

	for _, base := range []*gin.RouterGroup{&r.RouterGroup, r.Group("/api")} {
		// Auth routes
		auth := base.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// Worker routes
		workers := base.Group("/workers")
		workers.Use(requireAuth)
		{
			workers.GET("", workerHandler.ListWorkers)
			workers.POST("", workerHandler.CreateWorker)
			workers.PUT("/:id", workerHandler.UpdateWorker)
			workers.DELETE("/:id", workerHandler.DeleteWorker)
		}

		// Attendance routes
		attendance := base.Group("/attendance")
		attendance.Use(requireAuth)
		{
			attendance.GET("", attendanceHandler.GetAttendance)
			attendance.POST("", attendanceHandler.RecordAttendance)
		}

		// Payment routes
		payments := base.Group("/payments")
		{
			payments.GET("", requireAuth, paymentHandler.ListPayments)
			payments.POST("", paymentCreate...)
		}

		base.GET("/reports/:paymentId", requireAuth, receiptHandler.GetReceipt)
		base.GET("/dashboard", requireAuth, dashboardHandler.GetDashboard)

		// Staff routes (owners only)
		staff := base.Group("/staff")
		staff.Use(requireAuth, middleware.RequireOwner())
		{
			staff.GET("", staffHandler.ListStaff)
			staff.POST("", staffHandler.CreateStaff)
			staff.PATCH("/:id", staffHandler.UpdateStaff)
			staff.DELETE("/:id", staffHandler.DeleteStaff)
		}
	}

	return r, nil
}

// WrapHandler adds CORS and tracing around the engine.
func WrapHandler(h http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Idempotency-Key", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
	})
	return otelhttp.NewHandler(c.Handler(h), "workproof")
}
