package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
)

// approvalService handles approval-related business logic.
type approvalService struct {
	db *gorm.DB
}

// NewApprovalService creates a new ApprovalServicer.
func NewApprovalService(db *gorm.DB) ApprovalServicer {
	return &approvalService{db: db}
}

// ListApprovals returns approvals newest first, optionally filtered by status.
func (s *approvalService) ListApprovals(approved *bool) ([]models.Approval, error) {
	q := s.db.Order("date DESC, id DESC")
	if approved != nil {
		q = q.Where("approved = ?", *approved)
	}

	var approvals []models.Approval
	if err := q.Find(&approvals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if approvals == nil {
		approvals = []models.Approval{}
	}
	return approvals, nil
}

// CreateApproval stores a new approval.
func (s *approvalService) CreateApproval(in ApprovalInput) (*models.Approval, error) {
	approval := &models.Approval{
		Person:          strings.TrimSpace(in.Person),
		TransactionType: in.TransactionType,
		Amount:          in.Amount,
		Date:            in.Date.UTC(),
		Approved:        in.Approved,
	}
	if err := s.db.Create(approval).Error; err != nil {
		return nil, persistenceError(err)
	}
	return approval, nil
}

// GetApproval returns an approval by ID.
func (s *approvalService) GetApproval(id string) (*models.Approval, error) {
	var approval models.Approval
	if err := s.db.Where("id = ?", id).First(&approval).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApprovalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &approval, nil
}

// UpdateApproval applies the non-nil fields of in.
func (s *approvalService) UpdateApproval(id string, in ApprovalUpdate) (*models.Approval, error) {
	approval, err := s.GetApproval(id)
	if err != nil {
		return nil, err
	}

	if in.Person != nil {
		approval.Person = strings.TrimSpace(*in.Person)
	}
	if in.TransactionType != nil {
		approval.TransactionType = *in.TransactionType
	}
	if in.Amount != nil {
		approval.Amount = *in.Amount
	}
	if in.Date != nil {
		approval.Date = in.Date.UTC()
	}
	if in.Approved != nil {
		approval.Approved = *in.Approved
	}

	if err := s.db.Save(approval).Error; err != nil {
		return nil, persistenceError(err)
	}
	return approval, nil
}

// DeleteApproval removes an approval.
func (s *approvalService) DeleteApproval(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Approval{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrApprovalNotFound
	}
	return nil
}
