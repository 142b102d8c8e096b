package services

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// budgetLimitService handles budget limit business logic.
type budgetLimitService struct {
	db *gorm.DB
}

// NewBudgetLimitService creates a new BudgetLimitServicer.
func NewBudgetLimitService(db *gorm.DB) BudgetLimitServicer {
	return &budgetLimitService{db: db}
}

// UpsertBudgetLimit creates or replaces the limit of a category and marks it
// active. Concurrent upserts for one category resolve last-write-wins on the
// unique expense_type index.
func (s *budgetLimitService) UpsertBudgetLimit(in BudgetLimitInput) (*models.BudgetLimit, error) {
	thresholds := models.DefaultThresholds()
	if in.AlertThresholds != nil {
		thresholds = *in.AlertThresholds
	}
	if thresholds.Caution <= 0 || thresholds.Warning <= 0 || thresholds.Critical <= 0 {
		return nil, apperrors.Validation("alertThresholds", "thresholds must be greater than 0", thresholds)
	}
	if !(thresholds.Caution <= thresholds.Warning && thresholds.Warning <= thresholds.Critical) {
		return nil, apperrors.Validation("alertThresholds", "thresholds must satisfy caution <= warning <= critical", thresholds)
	}

	limit := &models.BudgetLimit{
		ExpenseType:     in.ExpenseType,
		MonthlyLimit:    in.MonthlyLimit,
		AlertThresholds: thresholds,
		IsActive:        true,
		Notes:           strings.TrimSpace(in.Notes),
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "expense_type"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"monthly_limit",
			"threshold_caution",
			"threshold_warning",
			"threshold_critical",
			"is_active",
			"notes",
			"updated_at",
		}),
	}).Create(limit).Error
	if err != nil {
		return nil, persistenceError(err)
	}

	var stored models.BudgetLimit
	if err := s.db.Where("expense_type = ?", in.ExpenseType).First(&stored).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &stored, nil
}

// ListActiveBudgetLimits returns active limits ordered by category.
func (s *budgetLimitService) ListActiveBudgetLimits() ([]models.BudgetLimit, error) {
	limits, err := activeLimits(s.db)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return limits, nil
}

// DeleteBudgetLimit removes a limit.
func (s *budgetLimitService) DeleteBudgetLimit(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.BudgetLimit{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBudgetLimitNotFound
	}
	return nil
}

func activeLimits(db *gorm.DB) ([]models.BudgetLimit, error) {
	var limits []models.BudgetLimit
	if err := db.Where("is_active = ?", true).Order("expense_type ASC").Find(&limits).Error; err != nil {
		return nil, err
	}
	if limits == nil {
		limits = []models.BudgetLimit{}
	}
	return limits, nil
}
