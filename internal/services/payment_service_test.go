package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/receipt"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSMS struct {
	to, message string
	err         error
}

func (r *recordingSMS) SendSMS(ctx context.Context, to, message string) error {
	r.to, r.message = to, message
	return r.err
}

type stubRenderer struct{ got receipt.Receipt }

func (s *stubRenderer) Render(ctx context.Context, r receipt.Receipt) ([]byte, error) {
	s.got = r
	return []byte("%PDF-stub"), nil
}

type brokenArchive struct{}

func (brokenArchive) Put(ctx context.Context, key string, data []byte) error {
	return errors.New("bucket unavailable")
}

func newPaymentFixture(t *testing.T, sms *recordingSMS, log *zap.Logger) (*PaymentService, *models.Worker) {
	t.Helper()
	db := newTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	svc := NewPaymentService(repository.NewPaymentRepository(db), workerRepo, sms, log)
	svc.SetClock(func() time.Time {
		return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	})

	worker := &models.Worker{Name: "Ravi", Phone: "9000000001", WageRate: 500, ContractorID: "org-1"}
	require.NoError(t, workerRepo.Create(context.Background(), worker))
	return svc, worker
}

func TestPaymentService_Create(t *testing.T) {
	sms := &recordingSMS{}
	svc, worker := newPaymentFixture(t, sms, zap.NewNop())
	ctx := context.Background()

	notes := "  advance  "
	payment, err := svc.Create(ctx, "org-1", CreatePaymentInput{WorkerID: worker.ID, Amount: 750, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, payment.Status)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), payment.CreatedAt)
	require.NotNil(t, payment.Notes)
	assert.Equal(t, "advance", *payment.Notes)

	assert.Equal(t, "9000000001", sms.to)
	assert.Contains(t, sms.message, "750.00")
	assert.Contains(t, sms.message, "15 Jan 2024")

	_, err = svc.Create(ctx, "org-1", CreatePaymentInput{WorkerID: worker.ID, Amount: 0.5})
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = svc.Create(ctx, "org-2", CreatePaymentInput{WorkerID: worker.ID, Amount: 100})
	assert.ErrorIs(t, err, ErrWorkerNotFound)
	_, err = svc.Create(ctx, "org-1", CreatePaymentInput{WorkerID: "missing", Amount: 100})
	assert.ErrorIs(t, err, ErrWorkerNotFound)

	got, err := svc.Get(ctx, payment.ID, "org-1")
	require.NoError(t, err)
	require.NotNil(t, got.Worker)
	assert.Equal(t, "Ravi", got.Worker.Name)

	_, err = svc.Get(ctx, payment.ID, "org-2")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestPaymentService_SMSFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	sms := &recordingSMS{err: errors.New("gateway timeout")}
	svc, worker := newPaymentFixture(t, sms, zap.New(core))

	payment, err := svc.Create(context.Background(), "org-1", CreatePaymentInput{WorkerID: worker.ID, Amount: 100})
	require.NoError(t, err)
	assert.NotEmpty(t, payment.ID)
	assert.Equal(t, 1, logs.FilterMessage("failed to send payment sms").Len())
}

func TestReceiptService_Render(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)
	svc, worker := newPaymentFixture(t, &recordingSMS{}, log)
	ctx := context.Background()

	payment, err := svc.Create(ctx, "org-1", CreatePaymentInput{WorkerID: worker.ID, Amount: 300})
	require.NoError(t, err)

	renderer := &stubRenderer{}
	receipts := NewReceiptService(svc, renderer, brokenArchive{}, log)

	rendered, err := receipts.Render(ctx, payment.ID, "org-1")
	require.NoError(t, err)
	assert.Equal(t, receipt.Filename(payment.ID), rendered.Filename)
	assert.Equal(t, []byte("%PDF-stub"), rendered.Content)
	assert.Equal(t, "Ravi", renderer.got.WorkerName)
	assert.Equal(t, 300.0, renderer.got.Amount)
	assert.Equal(t, 1, logs.FilterMessage("failed to archive receipt").Len())

	_, err = receipts.Render(ctx, payment.ID, "org-2")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
