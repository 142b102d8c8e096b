package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"finsight/internal/analysis"
	apperrors "finsight/internal/errors"
	"finsight/internal/logger"
	"finsight/internal/models"
)

// topCategoryCount is how many categories insights highlight.
const topCategoryCount = 5

// InsightStage names a step of the insights pipeline.
type InsightStage string

const (
	StageAnalysis InsightStage = "analysis"
	StageAlerting InsightStage = "alerting"
)

// PipelineError reports which insights stage failed. When Stage is
// StageAlerting the analysis result is still valid.
type PipelineError struct {
	Stage InsightStage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("insights %s stage failed: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// LimitView is the budget configuration of one category.
type LimitView struct {
	ID              string                 `json:"id"`
	MonthlyLimit    float64                `json:"monthlyLimit"`
	AlertThresholds models.AlertThresholds `json:"alertThresholds"`
}

// CategoryAnalysis is the category breakdown of a date range along with the
// alerts its totals raise.
type CategoryAnalysis struct {
	Analysis      []analysis.CategoryStats `json:"analysis"`
	BudgetLimits  map[string]LimitView     `json:"budgetLimits"`
	Alerts        []analysis.Alert         `json:"alerts"`
	TotalExpenses int                      `json:"totalExpenses"`
	TotalSpending float64                  `json:"totalSpending"`
}

// InsightAlert is an alert for the current month with a month-end projection.
type InsightAlert struct {
	analysis.Alert
	ProjectedSpending float64 `json:"projectedSpending"`
	DaysRemaining     int     `json:"daysRemaining"`
}

// InsightSummary counts the headline numbers of an insights run.
type InsightSummary struct {
	TotalCategories      int     `json:"totalCategories"`
	TotalAlerts          int     `json:"totalAlerts"`
	HighPriorityAlerts   int     `json:"highPriorityAlerts"`
	TotalSpending        float64 `json:"totalSpending"`
	CurrentMonthSpending float64 `json:"currentMonthSpending"`
}

// CategoryInsights is the result of the two-stage insights pipeline.
type CategoryInsights struct {
	Summary       InsightSummary           `json:"summary"`
	Categories    []analysis.CategoryStats `json:"categories"`
	TopCategories []analysis.CategoryStats `json:"topCategories"`
	Alerts        []InsightAlert           `json:"alerts"`
	BudgetLimits  map[string]LimitView     `json:"budgetLimits"`
	Period        string                   `json:"period"`
	GeneratedAt   time.Time                `json:"generatedAt"`
}

// categoryService handles category analysis and insights.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// Analysis aggregates expenses in [start, end] by category and evaluates
// active budget limits against the range totals.
func (s *categoryService) Analysis(start, end *time.Time) (*CategoryAnalysis, error) {
	records, err := loadRecords(s.db, start, end)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAnalysisFailed, err)
	}
	report := analysis.Analyze(records, time.Now())

	limits, err := activeLimits(s.db)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrAlertingFailed, err)
	}

	return &CategoryAnalysis{
		Analysis:      report.Categories,
		BudgetLimits:  limitViews(limits),
		Alerts:        analysis.EvaluateAlerts(report.Totals(), toLimits(limits)),
		TotalExpenses: report.TotalExpenses,
		TotalSpending: report.GrandTotal,
	}, nil
}

// Insights runs the analysis stage over all expenses and then the alerting
// stage over the current calendar month. If alerting fails the returned
// insights hold the analysis and the error is a *PipelineError for
// StageAlerting.
func (s *categoryService) Insights(now time.Time) (*CategoryInsights, error) {
	now = now.UTC()

	records, err := loadRecords(s.db, nil, nil)
	if err != nil {
		return nil, &PipelineError{Stage: StageAnalysis, Err: err}
	}
	report := analysis.Analyze(records, now)

	top := report.Categories
	if len(top) > topCategoryCount {
		top = top[:topCategoryCount]
	}

	insights := &CategoryInsights{
		Summary: InsightSummary{
			TotalCategories: len(report.Categories),
			TotalSpending:   report.GrandTotal,
		},
		Categories:    report.Categories,
		TopCategories: top,
		Alerts:        []InsightAlert{},
		BudgetLimits:  map[string]LimitView{},
		Period:        analysis.MonthKey(now),
		GeneratedAt:   now,
	}

	if err := s.alert(insights, report, records, now); err != nil {
		logger.Get().Warnw("insights alerting stage failed", "error", err)
		return insights, &PipelineError{Stage: StageAlerting, Err: err}
	}
	return insights, nil
}

func (s *categoryService) alert(insights *CategoryInsights, report analysis.Report, records []analysis.Record, now time.Time) error {
	limits, err := activeLimits(s.db)
	if err != nil {
		return err
	}

	from, to := analysis.MonthBounds(now)
	current := make(map[string]float64)
	var monthTotal float64
	for _, r := range records {
		d := r.Date.UTC()
		if d.Before(from) || !d.Before(to) {
			continue
		}
		current[r.Category] += r.Amount
		monthTotal += r.Amount
	}

	days := analysis.DaysRemaining(now)
	for _, a := range analysis.EvaluateAlerts(current, toLimits(limits)) {
		var avg float64
		if stats, ok := report.Lookup(a.Category); ok {
			avg = stats.MonthlyAverage
		}
		insights.Alerts = append(insights.Alerts, InsightAlert{
			Alert:             a,
			ProjectedSpending: analysis.ProjectMonthEnd(current[a.Category], avg, now),
			DaysRemaining:     days,
		})
		if a.Severity == analysis.SeverityHigh {
			insights.Summary.HighPriorityAlerts++
		}
	}

	insights.BudgetLimits = limitViews(limits)
	insights.Summary.TotalAlerts = len(insights.Alerts)
	insights.Summary.CurrentMonthSpending = analysis.Round2(monthTotal)
	return nil
}

func toLimits(limits []models.BudgetLimit) []analysis.Limit {
	out := make([]analysis.Limit, len(limits))
	for i, l := range limits {
		out[i] = analysis.Limit{
			Category:     string(l.ExpenseType),
			MonthlyLimit: l.MonthlyLimit,
			Thresholds: analysis.Thresholds{
				Caution:  l.AlertThresholds.Caution,
				Warning:  l.AlertThresholds.Warning,
				Critical: l.AlertThresholds.Critical,
			},
		}
	}
	return out
}

func limitViews(limits []models.BudgetLimit) map[string]LimitView {
	out := make(map[string]LimitView, len(limits))
	for _, l := range limits {
		out[string(l.ExpenseType)] = LimitView{
			ID:              l.ID,
			MonthlyLimit:    l.MonthlyLimit,
			AlertThresholds: l.AlertThresholds,
		}
	}
	return out
}
