package salary

import (
	"github.com/shopspring/decimal"
	"github.com/tokosakti/backoffice-go/internal/pkg/validator"
)

var allowanceTypes = []string{
	string(AllowanceTransport), string(AllowanceMeal), string(AllowanceHousing),
	string(AllowanceCommunication), string(AllowanceOther),
}

var deductionTypes = []string{
	string(DeductionTax), string(DeductionInsurance), string(DeductionLoan),
	string(DeductionAdvance), string(DeductionOther),
}

type AllowanceInput struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

type DeductionInput struct {
	Type       string           `json:"type"`
	Amount     decimal.Decimal  `json:"amount"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

type SetConfigurationRequest struct {
	EmployeeID    string           `json:"employee_id"`
	BaseSalary    decimal.Decimal  `json:"base_salary"`
	MaxBonus      decimal.Decimal  `json:"max_bonus"`
	Allowances    []AllowanceInput `json:"allowances,omitempty"`
	Deductions    []DeductionInput `json:"deductions,omitempty"`
	EffectiveFrom string           `json:"effective_from"`
}

func (r *SetConfigurationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.MaxBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "max_bonus", Message: "must be non-negative"})
	}
	if validator.IsEmpty(r.EffectiveFrom) {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid YYYY-MM-DD date"})
	}

	for _, a := range r.Allowances {
		if !validator.IsInSlice(a.Type, allowanceTypes) {
			errs = append(errs, validator.ValidationError{Field: "allowances.type", Message: "invalid allowance type '" + a.Type + "'"})
		}
		if a.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "allowances.amount", Message: "must be non-negative"})
		}
	}

	hundred := decimal.NewFromInt(100)
	for _, d := range r.Deductions {
		if !validator.IsInSlice(d.Type, deductionTypes) {
			errs = append(errs, validator.ValidationError{Field: "deductions.type", Message: "invalid deduction type '" + d.Type + "'"})
		}
		if d.Percentage != nil {
			if !d.Percentage.IsPositive() || d.Percentage.GreaterThan(hundred) {
				errs = append(errs, validator.ValidationError{Field: "deductions.percentage", Message: "must be between 0 and 100"})
			}
		} else if d.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "deductions.amount", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfigurationResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	MaxBonus      decimal.Decimal `json:"max_bonus"`
	Allowances    []Allowance     `json:"allowances"`
	Deductions    []Deduction     `json:"deductions"`
	EffectiveFrom string          `json:"effective_from"`
	EffectiveTo   *string         `json:"effective_to,omitempty"`
	IsActive      bool            `json:"is_active"`
}
