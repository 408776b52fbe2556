package services

import (
	"context"
	"fmt"

	"github.com/rajkrish0608/WorkProof/internal/receipt"
	"go.uber.org/zap"
)

// ReceiptService renders payment receipts and optionally archives them.
type ReceiptService struct {
	payments *PaymentService
	renderer receipt.Renderer
	archive  receipt.Archive
	logger   *zap.Logger
}

// NewReceiptService creates a new ReceiptService. archive may be nil.
func NewReceiptService(payments *PaymentService, renderer receipt.Renderer, archive receipt.Archive, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		payments: payments,
		renderer: renderer,
		archive:  archive,
		logger:   logger,
	}
}

// RenderedReceipt is a receipt document ready to send.
type RenderedReceipt struct {
	Filename string
	Content  []byte
}

// Render builds the receipt of a payment of the organization.
func (s *ReceiptService) Render(ctx context.Context, paymentID, orgID string) (*RenderedReceipt, error) {
	payment, err := s.payments.Get(ctx, paymentID, orgID)
	if err != nil {
		return nil, err
	}

	data := receipt.Receipt{
		PaymentID: payment.ID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
		PaidAt:    payment.CreatedAt,
	}
	if payment.Notes != nil {
		data.Notes = *payment.Notes
	}
	if payment.Worker != nil {
		data.WorkerName = payment.Worker.Name
		data.WorkerPhone = payment.Worker.Phone
	}

	content, err := s.renderer.Render(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	if s.archive != nil {
		key := receipt.Key(orgID, payment.ID)
		if err := s.archive.Put(ctx, key, content); err != nil {
			s.logger.Warn("failed to archive receipt",
				zap.String("key", key),
				zap.Error(err),
			)
		}
	}

	return &RenderedReceipt{
		Filename: receipt.Filename(payment.ID),
		Content:  content,
	}, nil
}
