// Package errors defines the error taxonomy of the finsight API.
// Services return *AppError values so handlers can render consistent
// responses without leaking storage or network details to clients.
package errors

import "net/http"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional field details and an
// optional internal cause.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Details    []FieldError `json:"details,omitempty"`
	StatusCode int          `json:"-"`
	Internal   error        `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so that
// wrapped copies of a sentinel still match it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a copy of sentinel that carries an internal cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a copy of sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Details:    sentinel.Details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithDetails creates a copy of sentinel carrying field-level details.
func WithDetails(sentinel *AppError, message string, details ...FieldError) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Details:    details,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation returns a VALIDATION_ERROR for a single field.
func Validation(field, message string, value any) *AppError {
	return WithDetails(ErrValidation, message, FieldError{Field: field, Message: message, Value: value})
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Validation error", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrSearchTooShort  = &AppError{Code: "INVALID_INPUT", Message: "Search query must be at least 2 characters long", StatusCode: http.StatusBadRequest}
)

// Trip errors.
var (
	ErrTripNotFound = &AppError{Code: "TRIP_NOT_FOUND", Message: "Trip not found", StatusCode: http.StatusNotFound}
)

// Approval errors.
var (
	ErrApprovalNotFound = &AppError{Code: "APPROVAL_NOT_FOUND", Message: "Approval not found", StatusCode: http.StatusNotFound}
)

// Budget limit and category analysis errors.
var (
	ErrBudgetLimitNotFound = &AppError{Code: "BUDGET_LIMIT_NOT_FOUND", Message: "Budget limit not found", StatusCode: http.StatusNotFound}
	ErrAnalysisFailed      = &AppError{Code: "ANALYSIS_FAILED", Message: "Category analysis failed", StatusCode: http.StatusInternalServerError}
	ErrAlertingFailed      = &AppError{Code: "ALERTING_FAILED", Message: "Budget alert evaluation failed", StatusCode: http.StatusInternalServerError}
)

// Prediction and AI service errors.
var (
	ErrPredictionNotFound         = &AppError{Code: "PREDICTION_NOT_FOUND", Message: "Prediction not found", StatusCode: http.StatusNotFound}
	ErrPredictionAlreadyValidated = &AppError{Code: "PREDICTION_ALREADY_VALIDATED", Message: "Prediction has already been validated", StatusCode: http.StatusConflict}
	ErrInsufficientTrainingData   = &AppError{Code: "INSUFFICIENT_TRAINING_DATA", Message: "Insufficient valid expense data for training (minimum 3 required)", StatusCode: http.StatusBadRequest}
	ErrAIServiceUnavailable       = &AppError{Code: "AI_SERVICE_UNAVAILABLE", Message: "AI service is not running", StatusCode: http.StatusInternalServerError}
	ErrAIServiceFailed            = &AppError{Code: "AI_SERVICE_ERROR", Message: "AI service request failed", StatusCode: http.StatusInternalServerError}
	ErrAITrainingFailed           = &AppError{Code: "AI_TRAINING_FAILED", Message: "Failed to train AI model", StatusCode: http.StatusInternalServerError}
	ErrPredictionFailed           = &AppError{Code: "PREDICTION_FAILED", Message: "Failed to get prediction", StatusCode: http.StatusInternalServerError}
	ErrComparisonFailed           = &AppError{Code: "COMPARISON_FAILED", Message: "Failed to compare models", StatusCode: http.StatusInternalServerError}
)
