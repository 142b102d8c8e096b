package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	ExpenseType   string `validate:"expense_type"`
	PaymentMethod string `validate:"omitempty,payment_method"`
	Direction     string `validate:"direction"`
	Method        string `validate:"omitempty,prediction_method"`
	Level         string `validate:"omitempty,spending_level"`
	Date          string `validate:"ymd_date"`
}

func TestCustomTags(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	valid := sample{
		ExpenseType:   "Food & Dining",
		PaymentMethod: "UPI",
		Direction:     "given",
		Method:        "ensemble",
		Level:         "very_high",
		Date:          "2025-01-15",
	}
	if err := v.Struct(valid); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*sample)
	}{
		{"expense type", func(s *sample) { s.ExpenseType = "Groceries" }},
		{"payment method", func(s *sample) { s.PaymentMethod = "Barter" }},
		{"direction", func(s *sample) { s.Direction = "lent" }},
		{"prediction method", func(s *sample) { s.Method = "neural" }},
		{"spending level", func(s *sample) { s.Level = "extreme" }},
		{"date", func(s *sample) { s.Date = "15/01/2025" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			if err := v.Struct(s); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Day() != 15 || d.Month() != 1 || d.Year() != 2025 {
		t.Errorf("unexpected date %v", d)
	}

	d, err = ParseDate("2025-01-15T23:30:00+05:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Hour() != 18 {
		t.Errorf("expected UTC conversion, got %v", d)
	}

	if !IsDateOnly("2025-01-15") || IsDateOnly("2025-01-15T00:00:00Z") {
		t.Error("unexpected IsDateOnly result")
	}
}

func TestFieldNames(t *testing.T) {
	type payload struct {
		ExpenseType string `json:"expenseType" validate:"required"`
		Limit       int    `form:"limit" validate:"min=1"`
	}
	v := validator.New()
	RegisterOn(v)

	err := v.Struct(payload{})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) != 2 {
		t.Fatalf("expected two field errors, got %v", err)
	}
	if verrs[0].Field() != "expenseType" || verrs[1].Field() != "limit" {
		t.Errorf("unexpected field names %s, %s", verrs[0].Field(), verrs[1].Field())
	}
}
