package advance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingAdvance() AdvancePayment {
	return AdvancePayment{
		ID:               "adv-1",
		EmployeeID:       "emp-1",
		Amount:           decimal.NewFromInt(500000),
		Reason:           "medical",
		DeductFromSalary: true,
		Status:           StatusPending,
		RequestedAt:      time.Now(),
	}
}

func TestApprove(t *testing.T) {
	adv := pendingAdvance()
	now := time.Now()

	err := adv.Approve("admin-1", "2026-09", now)
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, adv.Status)
	require.NotNil(t, adv.ApprovedBy)
	assert.Equal(t, "admin-1", *adv.ApprovedBy)
	require.NotNil(t, adv.DeductionPeriod)
	assert.Equal(t, "2026-09", *adv.DeductionPeriod)
	require.NotNil(t, adv.ApprovedAt)
}

func TestReject(t *testing.T) {
	adv := pendingAdvance()

	err := adv.Reject("admin-1", "amount too high", time.Now())
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, adv.Status)
	require.NotNil(t, adv.RejectionReason)
	assert.Equal(t, "amount too high", *adv.RejectionReason)
	require.NotNil(t, adv.RejectedAt)
}

func TestMarkDeducted(t *testing.T) {
	adv := pendingAdvance()
	require.NoError(t, adv.Approve("admin-1", "2026-09", time.Now()))

	err := adv.MarkDeducted("rec-1", time.Now())
	require.NoError(t, err)

	assert.Equal(t, StatusDeducted, adv.Status)
	require.NotNil(t, adv.PayrollRecordID)
	assert.Equal(t, "rec-1", *adv.PayrollRecordID)
	require.NotNil(t, adv.DeductedAt)
}

func TestInvalidTransitions(t *testing.T) {
	now := time.Now()

	t.Run("approve twice", func(t *testing.T) {
		adv := pendingAdvance()
		require.NoError(t, adv.Approve("admin-1", "2026-09", now))
		assert.ErrorIs(t, adv.Approve("admin-2", "2026-10", now), ErrInvalidStatusTransition)
	})

	t.Run("reject after approve", func(t *testing.T) {
		adv := pendingAdvance()
		require.NoError(t, adv.Approve("admin-1", "2026-09", now))
		assert.ErrorIs(t, adv.Reject("admin-1", "changed mind", now), ErrInvalidStatusTransition)
	})

	t.Run("deduct without approval", func(t *testing.T) {
		adv := pendingAdvance()
		assert.ErrorIs(t, adv.MarkDeducted("rec-1", now), ErrInvalidStatusTransition)
	})

	t.Run("deduct twice", func(t *testing.T) {
		adv := pendingAdvance()
		require.NoError(t, adv.Approve("admin-1", "2026-09", now))
		require.NoError(t, adv.MarkDeducted("rec-1", now))
		assert.ErrorIs(t, adv.MarkDeducted("rec-2", now), ErrInvalidStatusTransition)
	})

	t.Run("approve after reject", func(t *testing.T) {
		adv := pendingAdvance()
		require.NoError(t, adv.Reject("admin-1", "no", now))
		assert.ErrorIs(t, adv.Approve("admin-1", "2026-09", now), ErrInvalidStatusTransition)
	})
}

func TestRequestAdvanceRequestValidate(t *testing.T) {
	valid := RequestAdvanceRequest{
		EmployeeID:       "emp-1",
		Amount:           decimal.NewFromInt(100000),
		Reason:           "school fees",
		DeductFromSalary: true,
	}
	assert.NoError(t, valid.Validate())

	missing := RequestAdvanceRequest{Amount: decimal.NewFromInt(-5)}
	err := missing.Validate()
	require.Error(t, err)
}

func TestApproveAdvanceRequestValidate(t *testing.T) {
	valid := ApproveAdvanceRequest{DeductionPeriod: "2026-09"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&ApproveAdvanceRequest{}).Validate())
	assert.Error(t, (&ApproveAdvanceRequest{DeductionPeriod: "september"}).Validate())
}
