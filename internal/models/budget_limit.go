package models

import (
	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
)

// Default alert thresholds, as percentages of the monthly limit.
const (
	DefaultCautionThreshold  = 60
	DefaultWarningThreshold  = 80
	DefaultCriticalThreshold = 100
)

// AlertThresholds are the caution/warning/critical percentages of a limit.
type AlertThresholds struct {
	Caution  float64 `gorm:"not null" json:"caution"`
	Warning  float64 `gorm:"not null" json:"warning"`
	Critical float64 `gorm:"not null" json:"critical"`
}

// DefaultThresholds returns the 60/80/100 thresholds.
func DefaultThresholds() AlertThresholds {
	return AlertThresholds{
		Caution:  DefaultCautionThreshold,
		Warning:  DefaultWarningThreshold,
		Critical: DefaultCriticalThreshold,
	}
}

// BudgetLimit is the monthly spending ceiling of one category. There is at
// most one limit per category.
type BudgetLimit struct {
	Base
	ExpenseType     ExpenseType     `gorm:"not null;uniqueIndex" json:"expenseType"`
	MonthlyLimit    float64         `gorm:"not null" json:"monthlyLimit"`
	AlertThresholds AlertThresholds `gorm:"embedded;embeddedPrefix:threshold_" json:"alertThresholds"`
	IsActive        bool            `gorm:"not null" json:"isActive"`
	Notes           string          `json:"notes"`
}

// BeforeSave enforces the category enumeration and a non-negative limit.
func (b *BudgetLimit) BeforeSave(tx *gorm.DB) error {
	if !b.ExpenseType.Valid() {
		return apperrors.Validation("expenseType", "invalid expense type", b.ExpenseType)
	}
	if b.MonthlyLimit < 0 {
		return apperrors.Validation("monthlyLimit", "monthly limit must not be negative", b.MonthlyLimit)
	}
	return nil
}
