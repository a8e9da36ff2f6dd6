package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestActiveAt(t *testing.T) {
	from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	open := SalaryConfiguration{EffectiveFrom: from, IsActive: true}
	assert.True(t, open.ActiveAt(from))
	assert.True(t, open.ActiveAt(from.AddDate(10, 0, 0)))
	assert.False(t, open.ActiveAt(from.AddDate(0, 0, -1)))

	closed := SalaryConfiguration{EffectiveFrom: from, EffectiveTo: &to, IsActive: true}
	assert.True(t, closed.ActiveAt(to.AddDate(0, 0, -1)))
	// effective_to is an exclusive bound.
	assert.False(t, closed.ActiveAt(to))

	inactive := SalaryConfiguration{EffectiveFrom: from, IsActive: false}
	assert.False(t, inactive.ActiveAt(from))
}

func TestTotalAllowances(t *testing.T) {
	cfg := SalaryConfiguration{
		Allowances: []Allowance{
			{Type: AllowanceTransport, Amount: d("300000")},
			{Type: AllowanceMeal, Amount: d("450000")},
		},
	}
	assert.True(t, d("750000").Equal(cfg.TotalAllowances()))

	empty := SalaryConfiguration{}
	assert.True(t, empty.TotalAllowances().IsZero())
}

func TestTotalDeductions(t *testing.T) {
	pct := d("5")
	cfg := SalaryConfiguration{
		BaseSalary: d("5000000"),
		Deductions: []Deduction{
			{Type: DeductionInsurance, Amount: d("100000")},
			{Type: DeductionTax, Percentage: &pct},
		},
	}

	// 100,000 fixed + 5% of 5,000,000.
	assert.True(t, d("350000").Equal(cfg.TotalDeductions()), "got %s", cfg.TotalDeductions())
}

func TestSetConfigurationRequestValidate(t *testing.T) {
	valid := SetConfigurationRequest{
		EmployeeID:    "emp-1",
		BaseSalary:    d("5000000"),
		MaxBonus:      d("300000"),
		EffectiveFrom: "2026-09-01",
		Allowances: []AllowanceInput{
			{Type: "transport", Amount: d("300000")},
		},
		Deductions: []DeductionInput{
			{Type: "tax", Amount: d("100000")},
		},
	}
	assert.NoError(t, valid.Validate())

	t.Run("negative base salary", func(t *testing.T) {
		req := valid
		req.BaseSalary = d("-1")
		assert.Error(t, req.Validate())
	})

	t.Run("bad effective date", func(t *testing.T) {
		req := valid
		req.EffectiveFrom = "01/09/2026"
		assert.Error(t, req.Validate())
	})

	t.Run("unknown allowance type", func(t *testing.T) {
		req := valid
		req.Allowances = []AllowanceInput{{Type: "bonus", Amount: d("100")}}
		assert.Error(t, req.Validate())
	})

	t.Run("missing employee", func(t *testing.T) {
		req := valid
		req.EmployeeID = ""
		assert.Error(t, req.Validate())
	})
}
