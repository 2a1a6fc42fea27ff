package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/fintrackr/finance_tracker_app/internal/middleware"
)

// budgetHandler handles HTTP requests related to category budgets.
type budgetHandler struct {
	budgetService    portssvc.BudgetSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade, rs portssvc.ReportingSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService:    bs,
		reportingService: rs,
	}
}

// registerBudgetRoutes registers routes related to budgets.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newBudgetHandler(budgetService, reportingService)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.PUT("", h.setBudget)
	}
}

// listBudgets godoc
// @Summary List category budgets
// @Description Retrieves every category budget together with the utilization overview against actual spending.
// @Tags budgets
// @Produce  json
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 500 {object} map[string]string "Failed to list budgets"
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	budgets, source, err := h.budgetService.ListBudgets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list budgets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}

	total, err := h.budgetService.TotalBudget(c.Request.Context())
	if err != nil {
		logger.Error("Failed to total budgets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}

	overview, err := h.reportingService.BudgetOverview(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute budget overview", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list budgets"})
		return
	}

	resp := dto.ListBudgetsResponse{
		Budgets:     make([]dto.BudgetResponse, len(budgets)),
		TotalBudget: total,
		Overview:    *overview,
		Source:      source,
	}
	for i := range budgets {
		resp.Budgets[i] = dto.ToBudgetResponse(&budgets[i])
	}

	c.JSON(http.StatusOK, resp)
}

// setBudget godoc
// @Summary Set a category budget
// @Description Creates or replaces the monthly spending ceiling for a category. The response's durability field reports whether the write reached the database.
// @Tags budgets
// @Accept  json
// @Produce  json
// @Param   budget body dto.SetBudgetRequest true "Budget details"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to set budget"
// @Router /budgets [put]
func (h *budgetHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, durability, err := h.budgetService.SetBudget(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error setting budget", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to set budget", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set budget"})
		}
		return
	}

	resp := dto.ToBudgetResponse(budget)
	resp.Durability = durability
	c.JSON(http.StatusOK, resp)
}
