// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finsight/internal/models"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom tags on v. Field errors report the JSON
// (or form) name of the field.
func RegisterOn(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("expense_type", validateExpenseType)
	_ = v.RegisterValidation("payment_method", validatePaymentMethod)
	_ = v.RegisterValidation("direction", validateDirection)
	_ = v.RegisterValidation("prediction_method", validatePredictionMethod)
	_ = v.RegisterValidation("spending_level", validateSpendingLevel)
	_ = v.RegisterValidation("ymd_date", validateDate)
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func validateExpenseType(fl validator.FieldLevel) bool {
	return models.ExpenseType(fl.Field().String()).Valid()
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return models.PaymentMethod(fl.Field().String()).Valid()
}

func validateDirection(fl validator.FieldLevel) bool {
	return models.Direction(fl.Field().String()).Valid()
}

func validatePredictionMethod(fl validator.FieldLevel) bool {
	return models.PredictionMethod(fl.Field().String()).Valid()
}

func validateSpendingLevel(fl validator.FieldLevel) bool {
	return models.SpendingLevel(fl.Field().String()).Valid()
}

// validateDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func validateDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// ParseDate parses a date-only or RFC 3339 value into UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// IsDateOnly reports whether s is in the YYYY-MM-DD form.
func IsDateOnly(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
