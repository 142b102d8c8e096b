package testutil_test

import (
	"errors"
	"testing"
	"time"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	for _, table := range []string{"expenses", "trips", "approvals", "budget_limits", "predictions"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestDatabasesAreIsolated(t *testing.T) {
	a := testutil.SetupTestDB(t)
	b := testutil.SetupTestDB(t)

	testutil.CreateTestExpense(t, a, models.ExpenseTypeFood, 10, time.Now())

	var count int64
	b.Model(&models.Expense{}).Count(&count)
	if count != 0 {
		t.Errorf("expected empty second database, got %d rows", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)

	expense := testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 250, testutil.Date(2025, 1, 15))
	if expense.ID == "" {
		t.Fatal("expense should have an ID")
	}

	var loaded models.Expense
	if err := db.First(&loaded, "id = ?", expense.ID).Error; err != nil {
		t.Fatalf("failed to reload expense: %v", err)
	}
	if loaded.Tags == nil || loaded.Amount != 250 {
		t.Errorf("unexpected reloaded expense %+v", loaded)
	}

	limit := testutil.CreateTestBudgetLimit(t, db, models.ExpenseTypeFood, 1000)
	if limit.AlertThresholds.Warning != 80 {
		t.Errorf("expected default warning threshold, got %v", limit.AlertThresholds.Warning)
	}

	prediction := testutil.CreateTestPrediction(t, db, "food", 200, 0.8)
	var reloaded models.Prediction
	if err := db.First(&reloaded, "id = ?", prediction.ID).Error; err != nil {
		t.Fatalf("failed to reload prediction: %v", err)
	}
	if reloaded.Factors.Text("category") != "food" {
		t.Errorf("expected factors to round trip, got %+v", reloaded.Factors)
	}

	trip := testutil.CreateTestTrip(t, db, "Goa", testutil.Date(2025, 3, 1))
	if !trip.EndDate.After(trip.StartDate) {
		t.Error("trip should end after it starts")
	}

	approval := testutil.CreateTestApproval(t, db, "Ravi", models.DirectionGiven, 500, time.Now())
	if approval.Approved {
		t.Error("approvals should start unapproved")
	}
}

func TestAssertAppError(t *testing.T) {
	err := apperrors.Wrap(apperrors.ErrExpenseNotFound, errors.New("record not found"))
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	testutil.AssertNoError(t, nil)
	testutil.AssertFloat(t, "amount", 1.0, 1.001)
}
