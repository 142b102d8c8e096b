package services

import (
	"testing"

	"finsight/internal/models"
	"finsight/internal/testutil"
)

func TestUpsertBudgetLimit(t *testing.T) {
	t.Run("defaults_thresholds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetLimitService(db)

		limit, err := svc.UpsertBudgetLimit(BudgetLimitInput{ExpenseType: models.ExpenseTypeFood, MonthlyLimit: 5000})
		testutil.AssertNoError(t, err)

		if limit.AlertThresholds != models.DefaultThresholds() {
			t.Errorf("expected default thresholds, got %+v", limit.AlertThresholds)
		}
		if !limit.IsActive {
			t.Error("expected active limit")
		}
	})

	t.Run("second_upsert_replaces", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetLimitService(db)

		first, err := svc.UpsertBudgetLimit(BudgetLimitInput{ExpenseType: models.ExpenseTypeFood, MonthlyLimit: 5000})
		testutil.AssertNoError(t, err)

		second, err := svc.UpsertBudgetLimit(BudgetLimitInput{
			ExpenseType:     models.ExpenseTypeFood,
			MonthlyLimit:    8000,
			AlertThresholds: &models.AlertThresholds{Caution: 50, Warning: 75, Critical: 90},
			Notes:           " tighter ",
		})
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected same record, got %s and %s", first.ID, second.ID)
		}
		if second.MonthlyLimit != 8000 || second.AlertThresholds.Critical != 90 || second.Notes != "tighter" {
			t.Errorf("unexpected upserted limit %+v", second)
		}

		var count int64
		db.Model(&models.BudgetLimit{}).Count(&count)
		if count != 1 {
			t.Errorf("expected one limit per category, got %d", count)
		}
	})

	t.Run("invalid_thresholds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetLimitService(db)

		_, err := svc.UpsertBudgetLimit(BudgetLimitInput{
			ExpenseType:     models.ExpenseTypeFood,
			MonthlyLimit:    100,
			AlertThresholds: &models.AlertThresholds{Caution: 90, Warning: 80, Critical: 100},
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("zero_thresholds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetLimitService(db)

		_, err := svc.UpsertBudgetLimit(BudgetLimitInput{
			ExpenseType:     models.ExpenseTypePets,
			MonthlyLimit:    500,
			AlertThresholds: &models.AlertThresholds{},
		})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		var count int64
		db.Model(&models.BudgetLimit{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no stored limit, got %d", count)
		}
	})

	t.Run("invalid_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewBudgetLimitService(db)

		_, err := svc.UpsertBudgetLimit(BudgetLimitInput{ExpenseType: "Groceries", MonthlyLimit: 100})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestListAndDeleteBudgetLimits(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewBudgetLimitService(db)
	testutil.CreateTestBudgetLimit(t, db, models.ExpenseTypeShopping, 3000)
	food := testutil.CreateTestBudgetLimit(t, db, models.ExpenseTypeFood, 5000)
	inactive := testutil.CreateTestBudgetLimit(t, db, models.ExpenseTypePets, 100)
	db.Model(inactive).UpdateColumn("is_active", false)

	limits, err := svc.ListActiveBudgetLimits()
	testutil.AssertNoError(t, err)
	if len(limits) != 2 {
		t.Fatalf("expected 2 active limits, got %d", len(limits))
	}
	if limits[0].ExpenseType != models.ExpenseTypeFood {
		t.Errorf("expected alphabetical order, got %s first", limits[0].ExpenseType)
	}

	testutil.AssertNoError(t, svc.DeleteBudgetLimit(food.ID))
	testutil.AssertAppError(t, svc.DeleteBudgetLimit(food.ID), "BUDGET_LIMIT_NOT_FOUND")
}
