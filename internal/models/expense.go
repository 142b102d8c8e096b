package models

import (
	"time"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
)

// Expense represents a single spending event.
type Expense struct {
	Base
	ExpenseType   ExpenseType   `gorm:"not null;index:idx_expenses_type_date,priority:1" json:"expenseType"`
	To            string        `gorm:"column:payee;not null" json:"to"`
	Description   string        `gorm:"size:500;not null" json:"description"`
	Date          time.Time     `gorm:"not null;index;index:idx_expenses_type_date,priority:2" json:"date"`
	Amount        float64       `gorm:"not null;index" json:"amount"`
	PaymentMethod PaymentMethod `gorm:"not null;default:Other" json:"paymentMethod"`
	Tags          []string      `gorm:"type:text;serializer:json" json:"tags"`
	IsRecurring   bool          `gorm:"not null;default:false" json:"isRecurring"`
	Notes         string        `gorm:"size:1000" json:"notes"`
}

// BeforeSave enforces the category and payment method enumerations and the
// non-negative amount at the persistence boundary.
func (e *Expense) BeforeSave(tx *gorm.DB) error {
	if !e.ExpenseType.Valid() {
		return apperrors.Validation("expenseType", "invalid expense type", e.ExpenseType)
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = PaymentMethodOther
	}
	if !e.PaymentMethod.Valid() {
		return apperrors.Validation("paymentMethod", "invalid payment method", e.PaymentMethod)
	}
	if e.Amount < 0 {
		return apperrors.Validation("amount", "amount must not be negative", e.Amount)
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return nil
}
