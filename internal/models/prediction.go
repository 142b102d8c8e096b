package models

import (
	"time"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
)

// Prediction is a persisted result of the external AI predictor, optionally
// validated later against the amount actually spent.
type Prediction struct {
	Base
	PredictedAmount float64          `gorm:"not null" json:"predictedAmount"`
	ActualAmount    *float64         `json:"actualAmount"`
	Category        string           `gorm:"not null;index" json:"category"`
	Subject         string           `gorm:"not null" json:"subject"`
	To              string           `gorm:"column:payee;not null" json:"to"`
	PredictionDate  time.Time        `gorm:"not null;index" json:"predictionDate"`
	Confidence      float64          `gorm:"not null" json:"confidence"`
	Method          PredictionMethod `gorm:"not null;default:auto" json:"method"`
	MethodUsed      string           `json:"methodUsed,omitempty"`
	Factors         Factors          `gorm:"type:text;serializer:json" json:"factors"`
	SpendingLevel   SpendingLevel    `gorm:"not null" json:"spendingLevel"`
	Recommendations []string         `gorm:"type:text;serializer:json" json:"recommendations"`
	IsValidated     bool             `gorm:"not null;default:false;index" json:"isValidated"`
	Accuracy        *float64         `json:"accuracy"`
	ValidatedAt     *time.Time       `json:"validatedAt,omitempty"`
}

// BeforeSave enforces the method and spending level enumerations and the
// [0,1] range of confidence and accuracy.
func (p *Prediction) BeforeSave(tx *gorm.DB) error {
	if p.Method == "" {
		p.Method = PredictionMethodAuto
	}
	if !p.Method.Valid() {
		return apperrors.Validation("method", "invalid prediction method", p.Method)
	}
	if !p.SpendingLevel.Valid() {
		return apperrors.Validation("spendingLevel", "invalid spending level", p.SpendingLevel)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return apperrors.Validation("confidence", "confidence must be between 0 and 1", p.Confidence)
	}
	if p.Accuracy != nil && (*p.Accuracy < 0 || *p.Accuracy > 1) {
		return apperrors.Validation("accuracy", "accuracy must be between 0 and 1", *p.Accuracy)
	}
	if p.Factors == nil {
		p.Factors = Factors{}
	}
	if p.Recommendations == nil {
		p.Recommendations = []string{}
	}
	return nil
}
