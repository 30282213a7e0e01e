package response

import (
	"errors"
	"net/http"

	"github.com/attendhq/rules-engine-go/internal/domain/attendance"
	"github.com/attendhq/rules-engine-go/internal/domain/employee"
	"github.com/attendhq/rules-engine-go/internal/domain/payperiod"
	"github.com/attendhq/rules-engine-go/internal/domain/rules"
	"github.com/attendhq/rules-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "Employee id already registered")

	// Rules domain errors
	case errors.Is(err, rules.ErrUnknownRuleID):
		BadRequest(w, "Unknown rule id", nil)
	case errors.Is(err, rules.ErrUnknownLeaveCategory):
		BadRequest(w, "Unknown leave category", nil)
	case errors.Is(err, rules.ErrEmptyDirective):
		BadRequest(w, "Request contains nothing to update", nil)

	// Pay-period domain errors
	case errors.Is(err, payperiod.ErrPayPeriodNotConfigured):
		NotFound(w, "Pay period not configured")
	case errors.Is(err, payperiod.ErrInvalidEmployeeID):
		BadRequest(w, "Pay period employee id must be numeric", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Invalid month, expected YYYY-MM", nil)
	case errors.Is(err, attendance.ErrNoRulesConfigured):
		NotFound(w, "Employee has no salary rules configured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
