package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajkrish0608/WorkProof/internal/dto"
	apierrors "github.com/rajkrish0608/WorkProof/internal/errors"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment ledger.
type PaymentHandler struct {
	paymentService *services.PaymentService
	logger         *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *services.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// ListPayments returns the organization's payments newest first
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.List(c.Request.Context(), identity.OrgID)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentDTOs(payments))
}

// CreatePayment records a payment
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type CreatePaymentRequest struct {
		WorkerID string  `json:"workerId" binding:"required"`
		Amount   float64 `json:"amount" binding:"required,min=1"`
		Notes    *string `json:"notes"`
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), identity.OrgID, services.CreatePaymentInput{
		WorkerID: req.WorkerID,
		Amount:   req.Amount,
		Notes:    req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWorkerNotFound):
			apierrors.NotFound(c, "Worker not found")
		case errors.Is(err, services.ErrInvalidAmount):
			apierrors.BadRequest(c, "")
		default:
			internalError(c, h.logger, err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentDTO(*payment))
}
