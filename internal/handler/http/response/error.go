package response

import (
	"errors"
	"net/http"

	"github.com/tokosakti/backoffice-go/internal/domain/advance"
	"github.com/tokosakti/backoffice-go/internal/domain/employee"
	"github.com/tokosakti/backoffice-go/internal/domain/kpi"
	"github.com/tokosakti/backoffice-go/internal/domain/payroll"
	"github.com/tokosakti/backoffice-go/internal/domain/salary"
	"github.com/tokosakti/backoffice-go/internal/pkg/validator"
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
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Salary domain errors
	case errors.Is(err, salary.ErrConfigurationNotFound):
		NotFound(w, "Salary configuration not found")
	case errors.Is(err, salary.ErrNoCurrentConfiguration):
		NotFound(w, "Employee has no active salary configuration")
	case errors.Is(err, salary.ErrOverlappingConfiguration):
		Conflict(w, "Salary configuration overlaps an existing one")

	// KPI domain errors
	case errors.Is(err, kpi.ErrDefinitionNotFound):
		NotFound(w, "KPI definition not found")
	case errors.Is(err, kpi.ErrDefinitionCodeExists):
		Conflict(w, "KPI definition code already exists")
	case errors.Is(err, kpi.ErrDefinitionInactive):
		BadRequest(w, "KPI definition is inactive", nil)
	case errors.Is(err, kpi.ErrRoleNotApplicable):
		Conflict(w, "KPI definition does not apply to the employee's role")
	case errors.Is(err, kpi.ErrAssignmentNotFound):
		NotFound(w, "KPI assignment not found")
	case errors.Is(err, kpi.ErrAssignmentExists):
		Conflict(w, "An active assignment already exists for this employee and definition")
	case errors.Is(err, kpi.ErrResultNotFound):
		NotFound(w, "KPI result not found")

	// Advance payment domain errors
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance payment not found")
	case errors.Is(err, advance.ErrInvalidStatusTransition):
		Conflict(w, "Advance payment is not in a state that allows this action")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Payroll record is not in a state that allows this action")
	case errors.Is(err, payroll.ErrNoSalaryConfiguration):
		BadRequest(w, "Employee has no salary configuration for this period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
