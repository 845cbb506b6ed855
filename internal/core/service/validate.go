package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kusinadelights/recipe-platform/internal/metrics"
)

// ValidationError carries a human-readable rejection message for a create
// or update input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = validator.New()

// validateInput runs struct-tag validation and converts failures into a
// single ValidationError. The entity label feeds the rejection metric.
func validateInput(entity string, input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	metrics.ValidationFailuresTotal.WithLabelValues(entity).Inc()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return &ValidationError{Message: strings.Join(msgs, "; ")}
	}
	return &ValidationError{Message: err.Error()}
}

// fieldError converts a single validation failure into a readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Listing defaults shared by the services.
const (
	fallbackPageSize = 10
	maxPageSize      = 100
)

// normalizePaging applies the default and cap to a caller-supplied page
// request.
func normalizePaging(page, pageSize, defaultPageSize int) (int, int) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	return page, pageSize
}
