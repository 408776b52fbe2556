package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/notify"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidAmount   = errors.New("amount must be at least 1")
)

const minPaymentAmount = 1

// PaymentService records cash payouts and sends SMS receipts.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	workerRepo  repository.WorkerRepository
	sms         notify.SMSSender
	logger      *zap.Logger
	now         func() time.Time
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo repository.PaymentRepository, workerRepo repository.WorkerRepository, sms notify.SMSSender, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		workerRepo:  workerRepo,
		sms:         sms,
		logger:      logger,
		now:         time.Now,
	}
}

// SetClock replaces the clock used to stamp new payments.
func (s *PaymentService) SetClock(now func() time.Time) {
	s.now = now
}

// CreatePaymentInput represents input for recording a payment
type CreatePaymentInput struct {
	WorkerID string
	Amount   float64
	Notes    *string
}

// Create records a completed payment to a worker of the organization.
func (s *PaymentService) Create(ctx context.Context, orgID string, input CreatePaymentInput) (*models.Payment, error) {
	if input.Amount < minPaymentAmount {
		return nil, ErrInvalidAmount
	}

	worker, err := s.workerRepo.FindByID(ctx, input.WorkerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}
	if worker.ContractorID != orgID {
		return nil, ErrWorkerNotFound
	}

	var notes *string
	if input.Notes != nil {
		if trimmed := strings.TrimSpace(*input.Notes); trimmed != "" {
			notes = &trimmed
		}
	}

	payment := &models.Payment{
		Amount:       input.Amount,
		Notes:        notes,
		WorkerID:     worker.ID,
		ContractorID: orgID,
		Status:       models.PaymentCompleted,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	payment.Worker = worker

	s.sendReceiptSMS(ctx, payment)
	return payment, nil
}

// List returns the organization's payments newest first.
func (s *PaymentService) List(ctx context.Context, orgID string) ([]models.Payment, error) {
	payments, err := s.paymentRepo.ListByContractor(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// Get returns a payment of the organization with its worker.
func (s *PaymentService) Get(ctx context.Context, id, orgID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	if payment.ContractorID != orgID {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

func (s *PaymentService) sendReceiptSMS(ctx context.Context, payment *models.Payment) {
	if s.sms == nil || payment.Worker == nil {
		return
	}

	message := fmt.Sprintf("WorkProof: payment of Rs. %.2f recorded for %s on %s. Ref %s",
		payment.Amount,
		payment.Worker.Name,
		payment.CreatedAt.Format("02 Jan 2006"),
		payment.ID[:min(8, len(payment.ID))],
	)
	if err := s.sms.SendSMS(ctx, payment.Worker.Phone, message); err != nil {
		s.logger.Warn("failed to send payment sms",
			zap.String("payment_id", payment.ID),
			zap.Error(err),
		)
	}
}

