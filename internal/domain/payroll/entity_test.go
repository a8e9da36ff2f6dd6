package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRecalculate(t *testing.T) {
	rec := Record{
		BaseSalary:      d("5000000"),
		TotalBonus:      d("300000"),
		TotalAllowances: d("750000"),
		TotalDeductions: d("250000"),
		AdvancePayments: d("500000"),
	}

	rec.Recalculate()

	assert.True(t, d("6050000").Equal(rec.GrossSalary), "gross %s", rec.GrossSalary)
	assert.True(t, d("5300000").Equal(rec.NetSalary), "net %s", rec.NetSalary)
}

func TestRecalculateNetCanGoNegative(t *testing.T) {
	// Deductions and advances are not clipped; a negative net surfaces a
	// configuration problem rather than hiding it.
	rec := Record{
		BaseSalary:      d("1000000"),
		AdvancePayments: d("1500000"),
	}

	rec.Recalculate()
	assert.True(t, rec.NetSalary.IsNegative())
}

func TestApprove(t *testing.T) {
	rec := Record{Status: StatusPending}
	now := time.Now()

	require.NoError(t, rec.Approve("admin-1", now))
	assert.Equal(t, StatusApproved, rec.Status)
	require.NotNil(t, rec.ApprovedBy)
	assert.Equal(t, "admin-1", *rec.ApprovedBy)
}

func TestMarkAsPaid(t *testing.T) {
	rec := Record{Status: StatusPending}
	now := time.Now()

	require.NoError(t, rec.Approve("admin-1", now))
	require.NoError(t, rec.MarkAsPaid("bank_transfer", now))

	assert.Equal(t, StatusPaid, rec.Status)
	require.NotNil(t, rec.PaymentMethod)
	assert.Equal(t, "bank_transfer", *rec.PaymentMethod)
	require.NotNil(t, rec.PaymentDate)
}

func TestCancel(t *testing.T) {
	now := time.Now()

	pending := Record{Status: StatusPending}
	require.NoError(t, pending.Cancel(now))
	assert.Equal(t, StatusCancelled, pending.Status)

	approved := Record{Status: StatusApproved}
	require.NoError(t, approved.Cancel(now))
	assert.Equal(t, StatusCancelled, approved.Status)
}

func TestInvalidTransitions(t *testing.T) {
	now := time.Now()

	t.Run("pay before approval", func(t *testing.T) {
		rec := Record{Status: StatusPending}
		assert.ErrorIs(t, rec.MarkAsPaid("cash", now), ErrInvalidStatusTransition)
	})

	t.Run("approve twice", func(t *testing.T) {
		rec := Record{Status: StatusApproved}
		assert.ErrorIs(t, rec.Approve("admin-1", now), ErrInvalidStatusTransition)
	})

	t.Run("cancel after payment", func(t *testing.T) {
		rec := Record{Status: StatusPaid}
		assert.ErrorIs(t, rec.Cancel(now), ErrInvalidStatusTransition)
	})

	t.Run("approve cancelled record", func(t *testing.T) {
		rec := Record{Status: StatusCancelled}
		assert.ErrorIs(t, rec.Approve("admin-1", now), ErrInvalidStatusTransition)
	})

	t.Run("pay twice", func(t *testing.T) {
		rec := Record{Status: StatusPaid}
		assert.ErrorIs(t, rec.MarkAsPaid("cash", now), ErrInvalidStatusTransition)
	})
}

func TestGeneratePayrollRequestValidate(t *testing.T) {
	valid := GeneratePayrollRequest{PeriodYear: 2026, PeriodMonth: 8}
	assert.NoError(t, valid.Validate())

	// Same bounds as the period package everywhere a period is accepted.
	assert.NoError(t, (&GeneratePayrollRequest{PeriodYear: 2005, PeriodMonth: 6}).Validate())

	assert.Error(t, (&GeneratePayrollRequest{PeriodYear: 2026, PeriodMonth: 0}).Validate())
	assert.Error(t, (&GeneratePayrollRequest{PeriodYear: 2026, PeriodMonth: 13}).Validate())
	assert.Error(t, (&GeneratePayrollRequest{PeriodYear: 1995, PeriodMonth: 6}).Validate())
	assert.Error(t, (&GeneratePayrollRequest{PeriodYear: 2101, PeriodMonth: 6}).Validate())
}

func TestMarkAsPaidRequestValidate(t *testing.T) {
	valid := MarkAsPaidRequest{PaymentMethod: "bank_transfer"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&MarkAsPaidRequest{}).Validate())
}
