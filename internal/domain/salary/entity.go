package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllowanceType enum
type AllowanceType string

const (
	AllowanceTransport     AllowanceType = "transport"
	AllowanceMeal          AllowanceType = "meal"
	AllowanceHousing       AllowanceType = "housing"
	AllowanceCommunication AllowanceType = "communication"
	AllowanceOther         AllowanceType = "other"
)

// DeductionType enum
type DeductionType string

const (
	DeductionTax       DeductionType = "tax"
	DeductionInsurance DeductionType = "insurance"
	DeductionLoan      DeductionType = "loan"
	DeductionAdvance   DeductionType = "advance"
	DeductionOther     DeductionType = "other"
)

// Allowance is a fixed monthly amount paid on top of base salary.
type Allowance struct {
	Type   AllowanceType   `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// Deduction is either a fixed amount or, when Percentage is set, a share of
// base salary resolved at payroll generation time.
type Deduction struct {
	Type       DeductionType    `json:"type"`
	Amount     decimal.Decimal  `json:"amount"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

// SalaryConfiguration is one effective-dated pay setup for an employee.
// A new configuration supersedes the previous one by closing its
// effective_to; configurations are never deleted.
type SalaryConfiguration struct {
	ID            string
	EmployeeID    string
	BaseSalary    decimal.Decimal
	MaxBonus      decimal.Decimal
	Allowances    []Allowance
	Deductions    []Deduction
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ActiveAt reports whether the configuration window covers t.
// The window is [EffectiveFrom, EffectiveTo); a nil EffectiveTo is open-ended.
func (c SalaryConfiguration) ActiveAt(t time.Time) bool {
	if !c.IsActive {
		return false
	}
	if t.Before(c.EffectiveFrom) {
		return false
	}
	if c.EffectiveTo != nil && !t.Before(*c.EffectiveTo) {
		return false
	}
	return true
}

// TotalAllowances sums the allowance line items.
func (c SalaryConfiguration) TotalAllowances() decimal.Decimal {
	total := decimal.Zero
	for _, a := range c.Allowances {
		total = total.Add(a.Amount)
	}
	return total
}

// TotalDeductions sums the deduction line items. Percentage deductions are
// resolved against the base salary.
func (c SalaryConfiguration) TotalDeductions() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	total := decimal.Zero
	for _, d := range c.Deductions {
		if d.Percentage != nil {
			total = total.Add(c.BaseSalary.Mul(*d.Percentage).Div(hundred))
			continue
		}
		total = total.Add(d.Amount)
	}
	return total
}
