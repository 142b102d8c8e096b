package models

import (
	"time"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
)

// Approval is a person-to-person loan-like transaction awaiting clearance.
type Approval struct {
	Base
	Person          string    `gorm:"not null" json:"person"`
	TransactionType Direction `gorm:"not null" json:"transactionType"`
	Amount          float64   `gorm:"not null" json:"amount"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	Approved        bool      `gorm:"not null;default:false" json:"approved"`
}

// BeforeSave enforces the direction enumeration and non-negative amounts.
func (a *Approval) BeforeSave(tx *gorm.DB) error {
	if !a.TransactionType.Valid() {
		return apperrors.Validation("transactionType", "transaction type must be given or taken", a.TransactionType)
	}
	if a.Amount < 0 {
		return apperrors.Validation("amount", "amount must not be negative", a.Amount)
	}
	return nil
}
