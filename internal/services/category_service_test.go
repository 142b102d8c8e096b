package services

import (
	"errors"
	"testing"
	"time"

	"finsight/internal/analysis"
	"finsight/internal/models"
	"finsight/internal/testutil"
)

func TestCategoryAnalysis(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCategoryService(db)
	testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 850, testutil.Date(2025, 1, 10))
	testutil.CreateTestExpense(t, db, models.ExpenseTypeShopping, 100, testutil.Date(2025, 1, 12))
	testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 5000, testutil.Date(2025, 2, 12))
	testutil.CreateTestBudgetLimit(t, db, models.ExpenseTypeFood, 1000)
	testutil.CreateTestBudgetLimit(t, db, models.ExpenseTypePets, 500)

	start := testutil.Date(2025, 1, 1)
	end := testutil.Date(2025, 1, 31)
	result, err := svc.Analysis(&start, &end)
	testutil.AssertNoError(t, err)

	if result.TotalExpenses != 2 {
		t.Errorf("expected 2 expenses in range, got %d", result.TotalExpenses)
	}
	if len(result.Analysis) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(result.Analysis))
	}
	if len(result.BudgetLimits) != 2 {
		t.Errorf("expected 2 limits, got %d", len(result.BudgetLimits))
	}
	if len(result.Alerts) != 1 {
		t.Fatalf("expected 1 alert, got %+v", result.Alerts)
	}
	if result.Alerts[0].Severity != analysis.SeverityMedium || result.Alerts[0].PercentageUsed != 85 {
		t.Errorf("unexpected alert %+v", result.Alerts[0])
	}
}

func TestCategoryInsights(t *testing.T) {
	now := time.Date(2025, time.April, 20, 9, 0, 0, 0, time.UTC)

	t.Run("full_pipeline", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 900, testutil.Date(2025, 3, 5))
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 1000, testutil.Date(2025, 4, 5))
		testutil.CreateTestExpense(t, db, models.ExpenseTypeShopping, 200, testutil.Date(2025, 4, 6))
		testutil.CreateTestBudgetLimit(t, db, models.ExpenseTypeFood, 1000)
		testutil.CreateTestBudgetLimit(t, db, models.ExpenseTypeShopping, 1000)

		insights, err := svc.Insights(now)
		testutil.AssertNoError(t, err)

		if insights.Summary.TotalCategories != 2 || insights.Summary.TotalAlerts != 1 || insights.Summary.HighPriorityAlerts != 1 {
			t.Errorf("unexpected summary %+v", insights.Summary)
		}
		testutil.AssertFloat(t, "current month spending", 1200, insights.Summary.CurrentMonthSpending)

		alert := insights.Alerts[0]
		if alert.Category != string(models.ExpenseTypeFood) || alert.Severity != analysis.SeverityHigh {
			t.Errorf("unexpected alert %+v", alert)
		}
		// 1000 so far plus a 950 monthly average over the 10 remaining days.
		testutil.AssertFloat(t, "projection", 1316.67, alert.ProjectedSpending)
		if alert.DaysRemaining != 10 {
			t.Errorf("expected 10 days remaining, got %d", alert.DaysRemaining)
		}

		food, _ := findStats(insights.Categories, models.ExpenseTypeFood)
		if food.Trend != analysis.TrendIncreasing {
			t.Errorf("expected increasing trend, got %s", food.Trend)
		}
		if insights.Period != "2025-04" {
			t.Errorf("expected period 2025-04, got %s", insights.Period)
		}
	})

	t.Run("alerting_failure_keeps_analysis", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 900, testutil.Date(2025, 4, 5))
		if err := db.Migrator().DropTable(&models.BudgetLimit{}); err != nil {
			t.Fatalf("failed to drop table: %v", err)
		}

		insights, err := svc.Insights(now)
		var pipeErr *PipelineError
		if !errors.As(err, &pipeErr) || pipeErr.Stage != StageAlerting {
			t.Fatalf("expected alerting stage error, got %v", err)
		}
		if insights == nil || len(insights.Categories) != 1 {
			t.Fatalf("expected analysis to survive, got %+v", insights)
		}
		if len(insights.Alerts) != 0 {
			t.Errorf("expected no alerts, got %+v", insights.Alerts)
		}
	})

	t.Run("analysis_failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewCategoryService(db)
		if err := db.Migrator().DropTable(&models.Expense{}); err != nil {
			t.Fatalf("failed to drop table: %v", err)
		}

		insights, err := svc.Insights(now)
		var pipeErr *PipelineError
		if !errors.As(err, &pipeErr) || pipeErr.Stage != StageAnalysis {
			t.Fatalf("expected analysis stage error, got %v", err)
		}
		if insights != nil {
			t.Error("expected no insights")
		}
	})
}

func findStats(stats []analysis.CategoryStats, category models.ExpenseType) (analysis.CategoryStats, bool) {
	for _, s := range stats {
		if s.Category == string(category) {
			return s, true
		}
	}
	return analysis.CategoryStats{}, false
}
