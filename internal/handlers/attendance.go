package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajkrish0608/WorkProof/internal/dto"
	apierrors "github.com/rajkrish0608/WorkProof/internal/errors"
	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"go.uber.org/zap"
)

// AttendanceHandler serves daily attendance.
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
	logger            *zap.Logger
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(attendanceService *services.AttendanceService, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// GetAttendance lists the records of ?date=YYYY-MM-DD
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	records, err := h.attendanceService.Get(c.Request.Context(), identity.OrgID, c.Query("date"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceDTOs(records))
}

// RecordAttendance upserts a batch of records for one date
func (h *AttendanceHandler) RecordAttendance(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	type RecordRequest struct {
		WorkerID    string                  `json:"workerId" binding:"required"`
		Status      models.AttendanceStatus `json:"status" binding:"required,oneof=PRESENT ABSENT HALF_DAY"`
		HoursWorked *float64                `json:"hoursWorked" binding:"omitempty,min=0,max=24"`
	}
	type BulkAttendanceRequest struct {
		Date    string          `json:"date" binding:"required,yyyymmdd"`
		Records []RecordRequest `json:"records" binding:"required,dive"`
	}

	var req BulkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	entries := make([]services.AttendanceEntry, len(req.Records))
	for i, record := range req.Records {
		entries[i] = services.AttendanceEntry{
			WorkerID:    record.WorkerID,
			Status:      record.Status,
			HoursWorked: record.HoursWorked,
		}
	}

	if err := h.attendanceService.BulkUpsert(c.Request.Context(), identity.OrgID, req.Date, entries); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AttendanceHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDateRequired):
		apierrors.BadRequest(c, "Date is required")
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrWorkerIDRequired),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidHours):
		apierrors.BadRequest(c, "")
	case errors.Is(err, services.ErrUnknownBatchWorker):
		apierrors.NotFound(c, "Worker not found")
	default:
		internalError(c, h.logger, err)
	}
}
