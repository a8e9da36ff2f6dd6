package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/tokosakti/backoffice-go/internal/pkg/period"
	"github.com/tokosakti/backoffice-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	PeriodMonth int      `json:"period_month"`
	PeriodYear  int      `json:"period_year"`
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all active employees
}

func (r *GeneratePayrollRequest) Validate() error {
	// Period bounds have a single source of truth.
	if _, err := period.New(r.PeriodYear, r.PeriodMonth); err != nil {
		return validator.ValidationErrors{{Field: "period", Message: err.Error()}}
	}
	return nil
}

type MarkAsPaidRequest struct {
	PaymentMethod string `json:"payment_method"`
}

func (r *MarkAsPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID              string             `json:"id"`
	EmployeeID      string             `json:"employee_id"`
	Period          string             `json:"period"`
	BaseSalary      decimal.Decimal    `json:"base_salary"`
	TotalBonus      decimal.Decimal    `json:"total_bonus"`
	TotalAllowances decimal.Decimal    `json:"total_allowances"`
	TotalDeductions decimal.Decimal    `json:"total_deductions"`
	AdvancePayments decimal.Decimal    `json:"advance_payments"`
	GrossSalary     decimal.Decimal    `json:"gross_salary"`
	NetSalary       decimal.Decimal    `json:"net_salary"`
	KPIBreakdown    []KPIBreakdownItem `json:"kpi_breakdown"`
	Status          string             `json:"status"`
	PaymentDate     *string            `json:"payment_date,omitempty"`
	PaymentMethod   *string            `json:"payment_method,omitempty"`
	ApprovedBy      *string            `json:"approved_by,omitempty"`
}

// GenerateOutcome reports one employee's result within a batch generation.
type GenerateOutcome struct {
	EmployeeID string          `json:"employee_id"`
	RecordID   string          `json:"record_id,omitempty"`
	NetSalary  decimal.Decimal `json:"net_salary"`
	Error      string          `json:"error,omitempty"`
}

type Filter struct {
	PeriodYear  *int    `json:"period_year,omitempty"`
	PeriodMonth *int    `json:"period_month,omitempty"`
	Status      *string `json:"status,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
}

type SummaryResponse struct {
	Period         string          `json:"period"`
	TotalEmployees int             `json:"total_employees"`
	TotalGross     decimal.Decimal `json:"total_gross"`
	TotalNet       decimal.Decimal `json:"total_net"`
	TotalBonus     decimal.Decimal `json:"total_bonus"`
	TotalAdvances  decimal.Decimal `json:"total_advances"`
	PendingCount   int             `json:"pending_count"`
	ApprovedCount  int             `json:"approved_count"`
	PaidCount      int             `json:"paid_count"`
	CancelledCount int             `json:"cancelled_count"`
}
