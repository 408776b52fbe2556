package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/rajkrish0608/WorkProof/internal/errors"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"go.uber.org/zap"
)

// ReceiptHandler serves PDF payment receipts.
type ReceiptHandler struct {
	receiptService *services.ReceiptService
	logger         *zap.Logger
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *services.ReceiptService, logger *zap.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// GetReceipt renders the receipt of :paymentId inline
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	rendered, err := h.receiptService.Render(c.Request.Context(), c.Param("paymentId"), identity.OrgID)
	if err != nil {
		if errors.Is(err, services.ErrPaymentNotFound) {
			apierrors.NotFound(c, "Payment not found")
			return
		}
		h.logger.Error("receipt generation failed", zap.Error(err))
		apierrors.InternalError(c, "Failed to generate PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", rendered.Filename))
	c.Data(http.StatusOK, "application/pdf", rendered.Content)
}
