package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokosakti/backoffice-go/internal/domain/advance"
	"github.com/tokosakti/backoffice-go/internal/domain/kpi"
	"github.com/tokosakti/backoffice-go/internal/domain/payroll"
	"github.com/tokosakti/backoffice-go/internal/domain/salary"
	"github.com/tokosakti/backoffice-go/internal/pkg/period"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func mustPeriod(t *testing.T, year, month int) period.Period {
	p, err := period.New(year, month)
	require.NoError(t, err)
	return p
}

func result(defID, code string, bonus string) kpi.Result {
	return kpi.Result{
		DefinitionID:    defID,
		TargetValue:     d("100"),
		ActualValue:     d("80"),
		AchievementRate: d("80"),
		BonusEarned:     d(bonus),
		Snapshot:        kpi.ResultSnapshot{Code: code, Name: code, Weight: 50},
	}
}

func TestAssembleRecordBonusCappedByConfiguration(t *testing.T) {
	p := mustPeriod(t, 2026, 8)
	cfg := salary.SalaryConfiguration{
		BaseSalary: d("5000000"),
		MaxBonus:   d("300000"),
	}
	results := []kpi.Result{
		result("def-1", "SALES", "250000"),
		result("def-2", "ATTENDANCE", "200000"),
	}

	rec := assembleRecord("emp-1", p, cfg, results, nil, "admin-1")

	// 450,000 earned across KPIs, but the configuration caps it.
	assert.True(t, d("300000").Equal(rec.TotalBonus), "bonus %s", rec.TotalBonus)
	assert.True(t, d("5300000").Equal(rec.GrossSalary), "gross %s", rec.GrossSalary)
	assert.True(t, d("5300000").Equal(rec.NetSalary))
	assert.Len(t, rec.KPIBreakdown, 2)
	assert.Equal(t, payroll.StatusPending, rec.Status)
	assert.Equal(t, "2026-08", rec.Period)
	assert.Equal(t, "admin-1", rec.GeneratedBy)
}

func TestAssembleRecordBonusUnderCap(t *testing.T) {
	p := mustPeriod(t, 2026, 8)
	cfg := salary.SalaryConfiguration{
		BaseSalary: d("5000000"),
		MaxBonus:   d("300000"),
	}
	results := []kpi.Result{result("def-1", "SALES", "150000")}

	rec := assembleRecord("emp-1", p, cfg, results, nil, "admin-1")
	assert.True(t, d("150000").Equal(rec.TotalBonus))
}

func TestAssembleRecordDeductsAdvances(t *testing.T) {
	p := mustPeriod(t, 2026, 8)
	pct := d("5")
	cfg := salary.SalaryConfiguration{
		BaseSalary: d("4000000"),
		MaxBonus:   d("200000"),
		Allowances: []salary.Allowance{
			{Type: salary.AllowanceTransport, Amount: d("300000")},
		},
		Deductions: []salary.Deduction{
			{Type: salary.DeductionTax, Percentage: &pct},
		},
	}
	advances := []advance.AdvancePayment{
		{ID: "adv-1", Amount: d("500000")},
		{ID: "adv-2", Amount: d("250000")},
	}

	rec := assembleRecord("emp-1", p, cfg, nil, advances, "admin-1")

	// gross = 4,000,000 + 0 + 300,000
	assert.True(t, d("4300000").Equal(rec.GrossSalary), "gross %s", rec.GrossSalary)
	// deductions = 5% of base = 200,000; advances = 750,000
	assert.True(t, d("200000").Equal(rec.TotalDeductions))
	assert.True(t, d("750000").Equal(rec.AdvancePayments))
	// net = 4,300,000 - 200,000 - 750,000
	assert.True(t, d("3350000").Equal(rec.NetSalary), "net %s", rec.NetSalary)
}

func TestAssembleRecordEmptyInputs(t *testing.T) {
	p := mustPeriod(t, 2026, 8)
	cfg := salary.SalaryConfiguration{BaseSalary: d("3500000")}

	rec := assembleRecord("emp-1", p, cfg, nil, nil, "admin-1")

	assert.True(t, rec.TotalBonus.IsZero())
	assert.True(t, rec.AdvancePayments.IsZero())
	assert.True(t, d("3500000").Equal(rec.GrossSalary))
	assert.True(t, d("3500000").Equal(rec.NetSalary))
	assert.Empty(t, rec.KPIBreakdown)
	assert.Equal(t, 2026, rec.PeriodYear)
	assert.Equal(t, 8, rec.PeriodMonth)
}

func TestAssembleRecordZeroCapLeavesBonusUncapped(t *testing.T) {
	p := mustPeriod(t, 2026, 8)
	cfg := salary.SalaryConfiguration{BaseSalary: d("3000000")}
	results := []kpi.Result{result("def-1", "SALES", "400000")}

	rec := assembleRecord("emp-1", p, cfg, results, nil, "admin-1")
	assert.True(t, d("400000").Equal(rec.TotalBonus))
}
