package delivery

import (
	"net/http"

	"genesis-backend/internal/dashboard/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard and report endpoints
type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// Metrics returns the dashboard snapshot
func (h *DashboardHandler) Metrics(c *gin.Context) {
	metrics, err := h.dashboardUsecase.Metrics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute metrics"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// Funnel returns the per-stage sales funnel report
func (h *DashboardHandler) Funnel(c *gin.Context) {
	report, err := h.dashboardUsecase.Funnel()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute funnel report"})
		return
	}
	c.JSON(http.StatusOK, report)
}
