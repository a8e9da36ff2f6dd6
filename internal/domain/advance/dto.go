package advance

import (
	"github.com/shopspring/decimal"
	"github.com/tokosakti/backoffice-go/internal/pkg/period"
	"github.com/tokosakti/backoffice-go/internal/pkg/validator"
)

type RequestAdvanceRequest struct {
	EmployeeID       string          `json:"employee_id"`
	Amount           decimal.Decimal `json:"amount"`
	Reason           string          `json:"reason"`
	DeductFromSalary bool            `json:"deduct_from_salary"`
}

func (r *RequestAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ApproveAdvanceRequest struct {
	DeductionPeriod string `json:"deduction_period"`
}

func (r *ApproveAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeductionPeriod) {
		errs = append(errs, validator.ValidationError{Field: "deduction_period", Message: "is required"})
	} else if _, err := period.Parse(r.DeductionPeriod); err != nil {
		errs = append(errs, validator.ValidationError{Field: "deduction_period", Message: "must be a valid YYYY-MM period"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectAdvanceRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdvanceResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	Amount           decimal.Decimal `json:"amount"`
	Reason           string          `json:"reason"`
	DeductFromSalary bool            `json:"deduct_from_salary"`
	DeductionPeriod  *string         `json:"deduction_period,omitempty"`
	Status           string          `json:"status"`
	RequestedAt      string          `json:"requested_at"`
	ApprovedBy       *string         `json:"approved_by,omitempty"`
	RejectionReason  *string         `json:"rejection_reason,omitempty"`
	PayrollRecordID  *string         `json:"payroll_record_id,omitempty"`
}

type PeriodTotalResponse struct {
	EmployeeID string          `json:"employee_id"`
	Period     string          `json:"period"`
	Total      decimal.Decimal `json:"total"`
}
