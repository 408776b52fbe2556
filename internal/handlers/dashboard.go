package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rajkrish0608/WorkProof/internal/dto"
	"github.com/rajkrish0608/WorkProof/internal/services"
	"go.uber.org/zap"
)

// DashboardHandler serves the summary counters.
type DashboardHandler struct {
	dashboardService *services.DashboardService
	logger           *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *services.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard returns totalWorkers, activeToday and totalPaidMonth
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), identity.OrgID)
	if err != nil {
		internalError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardDTO(*stats))
}
