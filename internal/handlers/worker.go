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

// WorkerHandler serves the worker roster.
type WorkerHandler struct {
	workerService *services.WorkerService
	logger        *zap.Logger
}

// NewWorkerHandler creates a new WorkerHandler
func NewWorkerHandler(workerService *services.WorkerService, logger *zap.Logger) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
		logger:        logger,
	}
}

// ListWorkers returns the organization's workers
func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	workers, err := h.workerService.List(c.Request.Context(), identity.OrgID)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerDTOs(workers))
}

// CreateWorker adds a worker
func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type CreateWorkerRequest struct {
		Name     string   `json:"name" binding:"required,min=1"`
		Phone    string   `json:"phone" binding:"required,min=10"`
		WageRate *float64 `json:"wageRate" binding:"required,min=0"`
	}

	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	worker, err := h.workerService.Create(c.Request.Context(), identity.OrgID, services.CreateWorkerInput{
		Name:     req.Name,
		Phone:    req.Phone,
		WageRate: *req.WageRate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkerDTO(*worker))
}

// UpdateWorker applies a partial update
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type UpdateWorkerRequest struct {
		Name     *string  `json:"name" binding:"omitempty,min=1"`
		Phone    *string  `json:"phone" binding:"omitempty,min=10"`
		WageRate *float64 `json:"wageRate" binding:"omitempty,min=0"`
	}

	var req UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	worker, err := h.workerService.Update(c.Request.Context(), c.Param("id"), identity.OrgID, services.UpdateWorkerInput{
		Name:     req.Name,
		Phone:    req.Phone,
		WageRate: req.WageRate,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkerDTO(*worker))
}

// DeleteWorker removes a worker
func (h *WorkerHandler) DeleteWorker(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.workerService.Delete(c.Request.Context(), c.Param("id"), identity.OrgID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WorkerHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkerNotFound):
		apierrors.NotFound(c, "Worker not found")
	case errors.Is(err, services.ErrWorkerPhoneTaken):
		apierrors.Conflict(c, "Worker with this phone already exists")
	case errors.Is(err, services.ErrWorkerNameRequired),
		errors.Is(err, services.ErrWorkerPhoneInvalid),
		errors.Is(err, services.ErrNegativeWageRate):
		apierrors.BadRequest(c, "")
	default:
		internalError(c, h.logger, err)
	}
}
