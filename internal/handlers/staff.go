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

// StaffHandler lets owners manage their team. Routes sit behind RequireOwner.
type StaffHandler struct {
	staffService *services.StaffService
	logger       *zap.Logger
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffService *services.StaffService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		logger:       logger,
	}
}

// ListStaff returns the owner's staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	staff, err := h.staffService.List(c.Request.Context(), identity.ID)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountDTOs(staff))
}

// CreateStaff adds a staff account
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type CreateStaffRequest struct {
		Name     string  `json:"name" binding:"required,min=2"`
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required,min=6"`
		Phone    *string `json:"phone"`
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	account, err := h.staffService.Create(c.Request.Context(), identity.ID, services.CreateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountDTO(*account))
}

// UpdateStaff applies a partial update to a staff account
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type UpdateStaffRequest struct {
		Name     *string `json:"name" binding:"omitempty,min=2"`
		Email    *string `json:"email" binding:"omitempty,email"`
		Password *string `json:"password" binding:"omitempty,min=6"`
		Phone    *string `json:"phone"`
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	account, err := h.staffService.Update(c.Request.Context(), c.Param("id"), identity.ID, services.UpdateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountDTO(*account))
}

// DeleteStaff removes a staff account
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	if err := h.staffService.Delete(c.Request.Context(), c.Param("id"), identity.ID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}

func (h *StaffHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrStaffNotFound):
		apierrors.NotFound(c, "Staff member not found")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, "Email already in use")
	case errors.Is(err, services.ErrStaffNameTooShort),
		errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, "")
	default:
		internalError(c, h.logger, err)
	}
}
