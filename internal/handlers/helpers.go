package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "finsight/internal/errors"
	"finsight/internal/middleware"
	"finsight/internal/uuid"
	appvalidator "finsight/internal/validator"
)

// ErrorResponse represents an error response.
type ErrorResponse = middleware.ErrorBody

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// parsePathID validates a UUID path parameter.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// bindJSON binds the request body into dst, translating validation failures
// into field-level VALIDATION_ERROR details.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return bindingError(err)
	}
	return nil
}

// bindQuery binds query parameters into dst.
func bindQuery(c *gin.Context, dst any) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return bindingError(err)
	}
	return nil
}

func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, apperrors.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
				Value:   fe.Value(),
			})
		}
		msg := "Validation failed"
		if len(details) == 1 {
			msg = details[0].Message
		}
		return apperrors.WithDetails(apperrors.ErrValidation, msg, details...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperrors.Validation(typeErr.Field, fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.Kind()), nil)
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "expense_type":
		return "Invalid expense type"
	case "payment_method":
		return "Invalid payment method"
	case "direction":
		return "transactionType must be given or taken"
	case "prediction_method":
		return "Invalid prediction method"
	case "ymd_date":
		return fe.Field() + " must be a valid date (YYYY-MM-DD or RFC3339)"
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}

// parseDate parses a date already checked by the ymd_date tag.
func parseDate(field, s string) (time.Time, error) {
	t, err := appvalidator.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperrors.Validation(field, field+" must be a valid date (YYYY-MM-DD or RFC3339)", s)
	}
	return t, nil
}

// parseOptionalDate parses *s when set.
func parseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDateRange reads the startDate/endDate query parameters. A date-only
// endDate covers the whole day.
func parseDateRange(c *gin.Context) (start, end *time.Time, err error) {
	if v := c.Query("startDate"); v != "" {
		t, err := parseDate("startDate", v)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate("endDate", v)
		if err != nil {
			return nil, nil, err
		}
		if appvalidator.IsDateOnly(strings.TrimSpace(v)) {
			t = endOfDay(t)
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, apperrors.Validation("endDate", "endDate must not be before startDate", c.Query("endDate"))
	}
	return start, end, nil
}

func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// parseFloatQuery parses an optional numeric query parameter.
func parseFloatQuery(c *gin.Context, key string) (*float64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, apperrors.Validation(key, "invalid "+key, v)
	}
	return &f, nil
}

// parseIntQuery parses an optional integer query parameter, returning def
// when absent.
func parseIntQuery(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, apperrors.Validation(key, "invalid "+key, v)
	}
	return n, nil
}
