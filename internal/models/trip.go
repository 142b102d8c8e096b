package models

import (
	"time"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
)

// Trip represents a planned trip with a budget.
type Trip struct {
	Base
	Destination string    `gorm:"not null" json:"destination"`
	StartDate   time.Time `gorm:"not null;index" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Budget      float64   `gorm:"not null" json:"budget"`
	Notes       string    `json:"notes"`
}

// BeforeSave rejects negative budgets.
func (t *Trip) BeforeSave(tx *gorm.DB) error {
	if t.Budget < 0 {
		return apperrors.Validation("budget", "budget must not be negative", t.Budget)
	}
	return nil
}
