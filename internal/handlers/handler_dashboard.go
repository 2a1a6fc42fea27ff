package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/fintrackr/finance_tracker_app/internal/middleware"
)

// dashboardHandler handles HTTP requests for the derived dashboard views.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		reportingService: rs,
	}
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.getSummary)
		dashboard.GET("/monthly", h.getMonthlySeries)
		dashboard.GET("/categories", h.getCategoryBreakdown)
		dashboard.GET("/insights", h.getInsights)
	}
}

// bindDateRange binds the optional from/to query parameters shared by the
// dashboard endpoints. On failure it writes the error response.
func bindDateRange(c *gin.Context) (from, to time.Time, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind date range params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}

	from, to, err := params.Bounds()
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to parse date range", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse date range"})
		}
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

// getSummary godoc
// @Summary Dashboard headline totals
// @Description Returns total income, expenses, balance and the month-over-month comparison, optionally narrowed to an inclusive date range.
// @Tags dashboard
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindDateRange(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getMonthlySeries godoc
// @Summary Trailing six-month chart series
// @Description Returns six chronological month buckets of income and expense totals ending at the current month.
// @Tags dashboard
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} domain.MonthlyPoint
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute series"
// @Router /dashboard/monthly [get]
func (h *dashboardHandler) getMonthlySeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindDateRange(c)
	if !ok {
		return
	}

	series, err := h.reportingService.MonthlySeries(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute monthly series", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute series"})
		return
	}

	c.JSON(http.StatusOK, series)
}

// getCategoryBreakdown godoc
// @Summary Expense totals by category
// @Description Returns per-category expense totals in display order. Income and zero-total categories are omitted.
// @Tags dashboard
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} domain.CategoryTotal
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute breakdown"
// @Router /dashboard/categories [get]
func (h *dashboardHandler) getCategoryBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindDateRange(c)
	if !ok {
		return
	}

	breakdown, err := h.reportingService.CategoryBreakdown(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute category breakdown", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute breakdown"})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// getInsights godoc
// @Summary Dashboard highlights
// @Description Returns the top spending category, over-budget categories and upcoming bill reminders.
// @Tags dashboard
// @Produce  json
// @Param   from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} domain.Insights
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to compute insights"
// @Router /dashboard/insights [get]
func (h *dashboardHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindDateRange(c)
	if !ok {
		return
	}

	insights, err := h.reportingService.DashboardInsights(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to compute insights", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute insights"})
		return
	}

	c.JSON(http.StatusOK, insights)
}
