package services

import (
	"testing"
	"time"

	"finsight/internal/models"
	"finsight/internal/pagination"
	"finsight/internal/testutil"
)

func validExpenseInput() ExpenseInput {
	return ExpenseInput{
		ExpenseType: models.ExpenseTypeFood,
		To:          "  Cafe  ",
		Description: " Lunch ",
		Date:        testutil.Date(2025, 1, 15),
		Amount:      250,
		Tags:        []string{"work", "  ", " team "},
		Notes:       "  ",
	}
}

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)

		expense, err := svc.CreateExpense(validExpenseInput())
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected expense ID")
		}
		if expense.To != "Cafe" || expense.Description != "Lunch" {
			t.Errorf("expected trimmed text, got %q / %q", expense.To, expense.Description)
		}
		if expense.PaymentMethod != models.PaymentMethodOther {
			t.Errorf("expected default payment method Other, got %s", expense.PaymentMethod)
		}
		if len(expense.Tags) != 2 || expense.Tags[1] != "team" {
			t.Errorf("expected blank tags dropped, got %v", expense.Tags)
		}
	})

	t.Run("invalid_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)

		in := validExpenseInput()
		in.ExpenseType = "Groceries"
		_, err := svc.CreateExpense(in)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("invalid_payment_method", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)

		in := validExpenseInput()
		in.PaymentMethod = "Barter"
		_, err := svc.CreateExpense(in)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestListExpenses(t *testing.T) {
	t.Run("pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)
		for i := 1; i <= 25; i++ {
			testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, float64(i), testutil.Date(2025, 1, i))
		}

		page, err := svc.ListExpenses(ExpenseFilter{}, ExpenseSort{By: "date", Desc: true}, pagination.PageRequest{Page: 2, Limit: 10})
		testutil.AssertNoError(t, err)

		if len(page.Expenses) != 10 {
			t.Fatalf("expected 10 expenses, got %d", len(page.Expenses))
		}
		// Newest first: page 2 holds the 11th to 20th newest, days 15 down to 6.
		if page.Expenses[0].Date.Day() != 15 || page.Expenses[9].Date.Day() != 6 {
			t.Errorf("unexpected page bounds %v .. %v", page.Expenses[0].Date, page.Expenses[9].Date)
		}
		if page.Meta.TotalPages != 3 || page.Meta.TotalItems != 25 {
			t.Errorf("unexpected meta %+v", page.Meta)
		}
		if !page.Meta.HasNextPage || !page.Meta.HasPrevPage {
			t.Errorf("expected both page flags, got %+v", page.Meta)
		}
	})

	t.Run("filters_combine", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 100, testutil.Date(2025, 1, 10))
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 500, testutil.Date(2025, 1, 20))
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 300, testutil.Date(2025, 2, 5))
		testutil.CreateTestExpense(t, db, models.ExpenseTypeTransport, 300, testutil.Date(2025, 1, 15))

		food := models.ExpenseTypeFood
		start := testutil.Date(2025, 1, 1)
		end := testutil.Date(2025, 1, 31)
		minAmount := 200.0
		page, err := svc.ListExpenses(ExpenseFilter{
			Category:  &food,
			StartDate: &start,
			EndDate:   &end,
			MinAmount: &minAmount,
		}, ExpenseSort{By: "amount"}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		if len(page.Expenses) != 1 || page.Expenses[0].Amount != 500 {
			t.Fatalf("expected only the 500 food expense, got %+v", page.Expenses)
		}
	})

	t.Run("sort_by_amount_ascending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 30, testutil.Date(2025, 1, 1))
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 5, testutil.Date(2025, 1, 2))
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 200, testutil.Date(2025, 1, 3))

		page, err := svc.ListExpenses(ExpenseFilter{}, ExpenseSort{By: "amount"}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)

		got := []float64{page.Expenses[0].Amount, page.Expenses[1].Amount, page.Expenses[2].Amount}
		if got[0] != 5 || got[1] != 30 || got[2] != 200 {
			t.Errorf("expected numeric ascending order, got %v", got)
		}
	})

	t.Run("unknown_sort_falls_back_to_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 1, testutil.Date(2025, 1, 1))
		testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 2, testutil.Date(2025, 3, 1))

		page, err := svc.ListExpenses(ExpenseFilter{}, ExpenseSort{By: "amount; DROP TABLE expenses", Desc: true}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.Expenses[0].Amount != 2 {
			t.Errorf("expected newest first, got %+v", page.Expenses)
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)

		page, err := svc.ListExpenses(ExpenseFilter{}, ExpenseSort{}, pagination.PageRequest{})
		testutil.AssertNoError(t, err)
		if page.Expenses == nil || len(page.Expenses) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", page.Expenses)
		}
		if page.Meta.Limit != 2000 {
			t.Errorf("expected default limit 2000, got %d", page.Meta.Limit)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("partial", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)
		existing := testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 100, testutil.Date(2025, 1, 1))

		amount := 180.5
		notes := " paid by card "
		updated, err := svc.UpdateExpense(existing.ID, ExpenseUpdate{Amount: &amount, Notes: &notes})
		testutil.AssertNoError(t, err)

		if updated.Amount != 180.5 || updated.Notes != "paid by card" {
			t.Errorf("unexpected update result %+v", updated)
		}
		if updated.Description != existing.Description {
			t.Error("expected untouched description")
		}
	})

	t.Run("invalid_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)
		existing := testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 100, testutil.Date(2025, 1, 1))

		bad := models.ExpenseType("Groceries")
		_, err := svc.UpdateExpense(existing.ID, ExpenseUpdate{ExpenseType: &bad})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewExpenseService(db)

		_, err := svc.UpdateExpense("0190f3a2-7b1c-7d4e-8f00-112233445566", ExpenseUpdate{})
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestDeleteExpense(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewExpenseService(db)
	existing := testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 100, testutil.Date(2025, 1, 1))

	deleted, err := svc.DeleteExpense(existing.ID)
	testutil.AssertNoError(t, err)
	if deleted.ID != existing.ID {
		t.Errorf("expected deleted record returned, got %s", deleted.ID)
	}

	_, err = svc.GetExpense(existing.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")

	_, err = svc.DeleteExpense(existing.ID)
	testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
}

func TestCategoryStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewExpenseService(db)
	testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 250, testutil.Date(2025, 1, 15))
	testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 150, testutil.Date(2025, 1, 20))
	testutil.CreateTestExpense(t, db, models.ExpenseTypeShopping, 600, testutil.Date(2025, 1, 25))
	testutil.CreateTestExpense(t, db, models.ExpenseTypeShopping, 999, testutil.Date(2025, 3, 1))

	start := testutil.Date(2025, 1, 1)
	end := testutil.Date(2025, 1, 31)
	report, err := svc.CategoryStats(&start, &end)
	testutil.AssertNoError(t, err)

	if len(report.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(report.Categories))
	}
	if report.Categories[0].Category != string(models.ExpenseTypeShopping) {
		t.Errorf("expected Shopping first, got %s", report.Categories[0].Category)
	}
	food, _ := report.Lookup(string(models.ExpenseTypeFood))
	testutil.AssertFloat(t, "food total", 400, food.TotalAmount)
	testutil.AssertFloat(t, "food percentage", 40, food.Percentage)
	if food.Count != 2 {
		t.Errorf("expected count 2, got %d", food.Count)
	}
	testutil.AssertFloat(t, "grand total", 1000, report.GrandTotal)
}

func TestMonthlySummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewExpenseService(db)
	testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 100, testutil.Date(2025, 1, 1))
	testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 300, testutil.Date(2025, 1, 31))
	testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 50, testutil.Date(2025, 12, 31))
	testutil.CreateTestExpense(t, db, models.ExpenseTypeFood, 75, testutil.Date(2026, 1, 1))

	summary, err := svc.MonthlySummary(2025)
	testutil.AssertNoError(t, err)

	if len(summary) != 12 {
		t.Fatalf("expected 12 months, got %d", len(summary))
	}
	if summary[0].Count != 2 || summary[0].AverageAmount != 200 {
		t.Errorf("unexpected January %+v", summary[0])
	}
	if summary[5].Count != 0 || summary[5].Month != 6 {
		t.Errorf("expected zero-filled June, got %+v", summary[5])
	}
	if summary[11].TotalAmount != 50 {
		t.Errorf("expected December 50, got %+v", summary[11])
	}
}

func TestSearchExpenses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewExpenseService(db)
	svcIn := validExpenseInput()
	svcIn.Description = "Team lunch at 50% off"
	_, err := svc.CreateExpense(svcIn)
	testutil.AssertNoError(t, err)
	testutil.CreateTestExpense(t, db, models.ExpenseTypeTransport, 40, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC))

	t.Run("too_short", func(t *testing.T) {
		_, err := svc.SearchExpenses(" a ", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("two_characters", func(t *testing.T) {
		results, err := svc.SearchExpenses("ca", 0)
		testutil.AssertNoError(t, err)
		if len(results) != 1 || results[0].To != "Cafe" {
			t.Errorf("expected the cafe expense, got %+v", results)
		}
	})

	t.Run("case_insensitive_category", func(t *testing.T) {
		results, err := svc.SearchExpenses("TRANSPORT", 0)
		testutil.AssertNoError(t, err)
		if len(results) != 1 {
			t.Errorf("expected 1 result, got %d", len(results))
		}
	})

	t.Run("wildcards_are_literal", func(t *testing.T) {
		results, err := svc.SearchExpenses("0%", 0)
		testutil.AssertNoError(t, err)
		if len(results) != 1 {
			t.Errorf("expected literal percent match, got %d", len(results))
		}
		results, err = svc.SearchExpenses("%%", 0)
		testutil.AssertNoError(t, err)
		if len(results) != 0 {
			t.Errorf("expected no match for literal %%%%, got %d", len(results))
		}
	})

	t.Run("limit", func(t *testing.T) {
		results, err := svc.SearchExpenses("e", 0)
		if err == nil {
			t.Fatalf("expected error for one character, got %d results", len(results))
		}
		results, err = svc.SearchExpenses("te", 1)
		testutil.AssertNoError(t, err)
		if len(results) != 1 {
			t.Errorf("expected limit 1, got %d", len(results))
		}
	})
}
