package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajkrish0608/WorkProof/internal/database"
	"github.com/rajkrish0608/WorkProof/internal/dto"
	"github.com/rajkrish0608/WorkProof/internal/middleware"
	"github.com/rajkrish0608/WorkProof/internal/receipt"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

type sentMessage struct {
	To      string
	Subject string
	Body    string
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeSMS) SendSMS(ctx context.Context, to, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{To: to, Body: message})
	return f.err
}

type fakeEmail struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (f *fakeEmail) SendEmail(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMessage{To: to, Subject: subject, Body: body})
	return f.err
}

type fakeArchive struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeArchive) Put(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = data
	return nil
}

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
	sms         *fakeSMS
	email       *fakeEmail
	archive     *fakeArchive
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Each connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db))
	return db
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterValidators()

	db := newTestDB(t)
	log := zap.NewNop()

	tokens, err := services.NewTokenService(testSecret)
	require.NoError(t, err)

	accountRepo := repository.NewAccountRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	sms := &fakeSMS{}
	email := &fakeEmail{}
	archive := &fakeArchive{}

	authService := services.NewAuthService(accountRepo, tokens)
	paymentService := services.NewPaymentService(paymentRepo, workerRepo, sms, log)
	dashboardService := services.NewDashboardService(workerRepo, attendanceRepo, paymentRepo)
	dashboardService.SetClock(func() time.Time {
		return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	})

	authHandler := NewAuthHandler(authService, log)
	workerHandler := NewWorkerHandler(services.NewWorkerService(workerRepo), log)
	attendanceHandler := NewAttendanceHandler(services.NewAttendanceService(attendanceRepo, workerRepo), log)
	paymentHandler := NewPaymentHandler(paymentService, log)
	staffHandler := NewStaffHandler(services.NewStaffService(accountRepo, email, log), log)
	dashboardHandler := NewDashboardHandler(dashboardService, log)
	receiptHandler := NewReceiptHandler(services.NewReceiptService(paymentService, receipt.NewPDFRenderer(), archive, log), log)

	r := gin.New()
	requireAuth := middleware.RequireAuth(tokens)

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.GET("/auth/me", requireAuth, authHandler.Me)

	r.GET("/workers", requireAuth, workerHandler.ListWorkers)
	r.POST("/workers", requireAuth, workerHandler.CreateWorker)
	r.PUT("/workers/:id", requireAuth, workerHandler.UpdateWorker)
	r.DELETE("/workers/:id", requireAuth, workerHandler.DeleteWorker)

	r.GET("/attendance", requireAuth, attendanceHandler.GetAttendance)
	r.POST("/attendance", requireAuth, attendanceHandler.RecordAttendance)

	r.GET("/payments", requireAuth, paymentHandler.ListPayments)
	r.POST("/payments", requireAuth, paymentHandler.CreatePayment)
	r.GET("/reports/:paymentId", requireAuth, receiptHandler.GetReceipt)
	r.GET("/dashboard", requireAuth, dashboardHandler.GetDashboard)

	staff := r.Group("/staff", requireAuth, middleware.RequireOwner())
	staff.GET("", staffHandler.ListStaff)
	staff.POST("", staffHandler.CreateStaff)
	staff.PATCH("/:id", staffHandler.UpdateStaff)
	staff.DELETE("/:id", staffHandler.DeleteStaff)

	return testEnv{
		db:          db,
		router:      r,
		authService: authService,
		sms:         sms,
		email:       email,
		archive:     archive,
	}
}

// do sends a JSON request, authenticated when token is non-empty.
func (e testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerOwner creates an owner account and returns its token and id.
func (e testEnv) registerOwner(t *testing.T, email string) (string, string) {
	t.Helper()

	result, err := e.authService.Register(context.Background(), services.RegisterInput{
		Email:    email,
		Password: "secret123",
		Name:     "Owner " + email,
	})
	require.NoError(t, err)
	return result.Token, result.Account.ID
}

// createWorker adds a worker through the API and returns it.
func (e testEnv) createWorker(t *testing.T, token, name, phone string) dto.WorkerDTO {
	t.Helper()

	w := e.do(t, http.MethodPost, "/workers", token, map[string]any{
		"name":     name,
		"phone":    phone,
		"wageRate": 500,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var worker dto.WorkerDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &worker))
	return worker
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}
