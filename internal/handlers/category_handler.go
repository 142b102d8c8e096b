package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finsight/internal/analysis"
	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/services"
)

// CategoryHandler handles category analysis, insights and budget limits.
type CategoryHandler struct {
	categoryService    services.CategoryServicer
	budgetLimitService services.BudgetLimitServicer
	now                func() time.Time
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, budgetLimitService services.BudgetLimitServicer) *CategoryHandler {
	return &CategoryHandler{
		categoryService:    categoryService,
		budgetLimitService: budgetLimitService,
		now:                time.Now,
	}
}

// SetBudgetLimitRequest represents the request payload for setting a budget limit
type SetBudgetLimitRequest struct {
	ExpenseType     models.ExpenseType      `json:"expenseType" binding:"required,expense_type"`
	MonthlyLimit    float64                 `json:"monthlyLimit" binding:"required,gt=0"`
	AlertThresholds *AlertThresholdsRequest `json:"alertThresholds"`
	Notes           string                  `json:"notes" binding:"max=1000"`
}

// AlertThresholdsRequest holds the alert percentages of a budget limit.
// Omitted values take the 60/80/100 defaults.
type AlertThresholdsRequest struct {
	Caution  *float64 `json:"caution" binding:"omitempty,gt=0,lte=1000"`
	Warning  *float64 `json:"warning" binding:"omitempty,gt=0,lte=1000"`
	Critical *float64 `json:"critical" binding:"omitempty,gt=0,lte=1000"`
}

func (r *AlertThresholdsRequest) thresholds() *models.AlertThresholds {
	if r == nil {
		return nil
	}
	t := models.DefaultThresholds()
	if r.Caution != nil {
		t.Caution = *r.Caution
	}
	if r.Warning != nil {
		t.Warning = *r.Warning
	}
	if r.Critical != nil {
		t.Critical = *r.Critical
	}
	return &t
}

// DateRange echoes the requested analysis window.
type DateRange struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// CategoryAnalysisResponse is the response of GET /categories/analysis.
type CategoryAnalysisResponse struct {
	Success       bool                          `json:"success"`
	Analysis      []analysis.CategoryStats      `json:"analysis"`
	BudgetLimits  map[string]services.LimitView `json:"budget_limits"`
	Alerts        []analysis.Alert              `json:"alerts"`
	TotalExpenses int                           `json:"total_expenses"`
	TotalSpending float64                       `json:"total_spending"`
	DateRange     DateRange                     `json:"date_range"`
}

// CategoryInsightsResponse is the response of GET /categories/insights.
// Partial is set when alerts could not be evaluated.
type CategoryInsightsResponse struct {
	Success bool `json:"success"`
	*services.CategoryInsights
	Partial     bool   `json:"partial,omitempty"`
	AlertsError string `json:"alertsError,omitempty"`
}

// GetCategoryAnalysis handles the per-category analysis of a date range
// @Summary     Category analysis
// @Description Per-category statistics and budget alerts over an optional date range
// @Tags        categories
// @Produce     json
// @Param       startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param       endDate   query string false "End date, inclusive (YYYY-MM-DD or RFC3339)"
// @Success     200 {object} CategoryAnalysisResponse "Analysis"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Analysis failed"
// @Router      /categories/analysis [get]
func (h *CategoryHandler) GetCategoryAnalysis(c *gin.Context) {
	start, end, err := parseDateRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.categoryService.Analysis(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryAnalysisResponse{
		Success:       true,
		Analysis:      result.Analysis,
		BudgetLimits:  result.BudgetLimits,
		Alerts:        result.Alerts,
		TotalExpenses: result.TotalExpenses,
		TotalSpending: result.TotalSpending,
		DateRange:     DateRange{StartDate: c.Query("startDate"), EndDate: c.Query("endDate")},
	})
}

// GetCategoryInsights handles the insights pipeline
// @Summary     Category insights
// @Description Analysis of all expenses followed by budget alerts for the current month.
// @Description If alerting fails the analysis is returned with partial=true.
// @Tags        categories
// @Produce     json
// @Success     200 {object} CategoryInsightsResponse "Insights"
// @Failure     500 {object} ErrorResponse "Analysis failed"
// @Router      /categories/insights [get]
func (h *CategoryHandler) GetCategoryInsights(c *gin.Context) {
	insights, err := h.categoryService.Insights(h.now())
	if err != nil {
		var pipeErr *services.PipelineError
		if errors.As(err, &pipeErr) && pipeErr.Stage == services.StageAlerting && insights != nil {
			c.JSON(http.StatusOK, CategoryInsightsResponse{
				Success:          true,
				CategoryInsights: insights,
				Partial:          true,
				AlertsError:      apperrors.ErrAlertingFailed.Message,
			})
			return
		}
		respondWithError(c, apperrors.Wrap(apperrors.ErrAnalysisFailed, err))
		return
	}

	c.JSON(http.StatusOK, CategoryInsightsResponse{Success: true, CategoryInsights: insights})
}

// GetBudgetLimits handles listing active budget limits
// @Summary     List budget limits
// @Tags        categories
// @Produce     json
// @Success     200 {object} map[string]interface{} "Active budget limits"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/budget [get]
func (h *CategoryHandler) GetBudgetLimits(c *gin.Context) {
	limits, err := h.budgetLimitService.ListActiveBudgetLimits()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "budgetLimits": limits})
}

// SetBudgetLimit handles creating or replacing the limit of a category
// @Summary     Set a budget limit
// @Description Create or replace the monthly limit of a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body SetBudgetLimitRequest true "Budget limit"
// @Success     200 {object} map[string]interface{} "Budget limit set"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/budget [post]
func (h *CategoryHandler) SetBudgetLimit(c *gin.Context) {
	var req SetBudgetLimitRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	limit, err := h.budgetLimitService.UpsertBudgetLimit(services.BudgetLimitInput{
		ExpenseType:     req.ExpenseType,
		MonthlyLimit:    req.MonthlyLimit,
		AlertThresholds: req.AlertThresholds.thresholds(),
		Notes:           req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Budget limit set successfully",
		"budgetLimit": limit,
	})
}

// DeleteBudgetLimit handles deleting a budget limit
// @Summary     Delete a budget limit
// @Tags        categories
// @Produce     json
// @Param       id path string true "Budget limit ID"
// @Success     200 {object} MessageResponse "Budget limit deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Budget limit not found"
// @Router      /categories/budget/{id} [delete]
func (h *CategoryHandler) DeleteBudgetLimit(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetLimitService.DeleteBudgetLimit(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Budget limit deleted successfully"})
}
