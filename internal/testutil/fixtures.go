package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finsight/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Date returns midnight UTC of the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestExpense creates an expense in category with the given amount and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, category models.ExpenseType, amount float64, date time.Time) *models.Expense {
	t.Helper()

	n := nextID()
	expense := &models.Expense{
		ExpenseType:   category,
		To:            fmt.Sprintf("Payee %d", n),
		Description:   fmt.Sprintf("Test expense %d", n),
		Date:          date,
		Amount:        amount,
		PaymentMethod: models.PaymentMethodUPI,
		Tags:          []string{},
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestTrip creates a five day trip starting at start.
func CreateTestTrip(t *testing.T, db *gorm.DB, destination string, start time.Time) *models.Trip {
	t.Helper()

	trip := &models.Trip{
		Destination: destination,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 5),
		Budget:      15000,
		Notes:       "test trip",
	}
	if err := db.Create(trip).Error; err != nil {
		t.Fatalf("failed to create test trip: %v", err)
	}
	return trip
}

// CreateTestApproval creates a pending approval.
func CreateTestApproval(t *testing.T, db *gorm.DB, person string, direction models.Direction, amount float64, date time.Time) *models.Approval {
	t.Helper()

	approval := &models.Approval{
		Person:          person,
		TransactionType: direction,
		Amount:          amount,
		Date:            date,
	}
	if err := db.Create(approval).Error; err != nil {
		t.Fatalf("failed to create test approval: %v", err)
	}
	return approval
}

// CreateTestBudgetLimit creates an active limit with the default thresholds.
func CreateTestBudgetLimit(t *testing.T, db *gorm.DB, category models.ExpenseType, monthlyLimit float64) *models.BudgetLimit {
	t.Helper()

	limit := &models.BudgetLimit{
		ExpenseType:     category,
		MonthlyLimit:    monthlyLimit,
		AlertThresholds: models.DefaultThresholds(),
		IsActive:        true,
	}
	if err := db.Create(limit).Error; err != nil {
		t.Fatalf("failed to create test budget limit: %v", err)
	}
	return limit
}

// CreateTestPrediction creates an unvalidated prediction.
func CreateTestPrediction(t *testing.T, db *gorm.DB, category string, predicted, confidence float64) *models.Prediction {
	t.Helper()

	prediction := &models.Prediction{
		PredictedAmount: predicted,
		Category:        category,
		Subject:         "lunch",
		To:              "cafe",
		PredictionDate:  time.Now().UTC(),
		Confidence:      confidence,
		Method:          models.PredictionMethodAuto,
		MethodUsed:      "auto_linear",
		Factors:         models.Factors{"category": models.StringFactor(category)},
		SpendingLevel:   models.SpendingLevelMedium,
		Recommendations: []string{"Track dining out"},
	}
	if err := db.Create(prediction).Error; err != nil {
		t.Fatalf("failed to create test prediction: %v", err)
	}
	return prediction
}
