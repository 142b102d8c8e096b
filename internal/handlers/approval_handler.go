package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/services"
)

// ApprovalHandler handles approval-related requests.
type ApprovalHandler struct {
	approvalService services.ApprovalServicer
}

// NewApprovalHandler creates a new ApprovalHandler.
func NewApprovalHandler(approvalService services.ApprovalServicer) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// CreateApprovalRequest represents the request payload for creating an approval
type CreateApprovalRequest struct {
	Person          string           `json:"person" binding:"required,max=200"`
	TransactionType models.Direction `json:"transactionType" binding:"required,direction"`
	Amount          float64          `json:"amount" binding:"required,gt=0"`
	Date            *string          `json:"date" binding:"omitempty,ymd_date"`
	Approved        bool             `json:"approved"`
}

// UpdateApprovalRequest represents the request payload for updating an approval
type UpdateApprovalRequest struct {
	Person          *string           `json:"person" binding:"omitempty,min=1,max=200"`
	TransactionType *models.Direction `json:"transactionType" binding:"omitempty,direction"`
	Amount          *float64          `json:"amount" binding:"omitempty,gt=0"`
	Date            *string           `json:"date" binding:"omitempty,ymd_date"`
	Approved        *bool             `json:"approved"`
}

// GetApprovals handles listing approvals
// @Summary     List approvals
// @Description Get approvals, latest first, optionally filtered by approved state
// @Tags        approvals
// @Produce     json
// @Param       approved query bool false "Filter by approved flag"
// @Success     200 {array}  models.Approval "Approvals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /approvals [get]
func (h *ApprovalHandler) GetApprovals(c *gin.Context) {
	var approved *bool
	if v := c.Query("approved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondWithError(c, apperrors.Validation("approved", "approved must be true or false", v))
			return
		}
		approved = &b
	}

	approvals, err := h.approvalService.ListApprovals(approved)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, approvals)
}

// CreateApproval handles the creation of a new approval
// @Summary     Create an approval
// @Tags        approvals
// @Accept      json
// @Produce     json
// @Param       request body CreateApprovalRequest true "Approval details"
// @Success     201 {object} models.Approval "Approval created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /approvals [post]
func (h *ApprovalHandler) CreateApproval(c *gin.Context) {
	var req CreateApprovalRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	if strings.TrimSpace(req.Person) == "" {
		respondWithError(c, apperrors.Validation("person", "person is required", req.Person))
		return
	}

	date := time.Now().UTC()
	if req.Date != nil {
		parsed, err := parseDate("date", *req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		date = parsed
	}

	approval, err := h.approvalService.CreateApproval(services.ApprovalInput{
		Person:          req.Person,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Date:            date,
		Approved:        req.Approved,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, approval)
}

// GetApproval handles fetching a single approval
// @Summary     Get an approval
// @Tags        approvals
// @Produce     json
// @Param       id path string true "Approval ID"
// @Success     200 {object} models.Approval "Approval"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Approval not found"
// @Router      /approvals/{id} [get]
func (h *ApprovalHandler) GetApproval(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	approval, err := h.approvalService.GetApproval(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

// UpdateApproval handles partial updates of an approval
// @Summary     Update an approval
// @Tags        approvals
// @Accept      json
// @Produce     json
// @Param       id      path string                true "Approval ID"
// @Param       request body UpdateApprovalRequest true "Fields to update"
// @Success     200 {object} models.Approval "Approval updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Approval not found"
// @Router      /approvals/{id} [put]
func (h *ApprovalHandler) UpdateApproval(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateApprovalRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}
	if req.Person != nil && strings.TrimSpace(*req.Person) == "" {
		respondWithError(c, apperrors.Validation("person", "person cannot be empty", *req.Person))
		return
	}

	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	approval, err := h.approvalService.UpdateApproval(id, services.ApprovalUpdate{
		Person:          req.Person,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Date:            date,
		Approved:        req.Approved,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, approval)
}

// DeleteApproval handles deleting an approval
// @Summary     Delete an approval
// @Tags        approvals
// @Produce     json
// @Param       id path string true "Approval ID"
// @Success     200 {object} MessageResponse "Approval deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Approval not found"
// @Router      /approvals/{id} [delete]
func (h *ApprovalHandler) DeleteApproval(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.approvalService.DeleteApproval(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Deleted successfully"})
}
