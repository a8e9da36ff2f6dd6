package advance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, adv AdvancePayment) (AdvancePayment, error)
	GetByID(ctx context.Context, id string) (AdvancePayment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]AdvancePayment, error)
	ListByStatus(ctx context.Context, status Status) ([]AdvancePayment, error)

	// Guarded single-step transitions: the stored status is part of the
	// UPDATE predicate, so a stale caller gets ErrInvalidStatusTransition.
	Approve(ctx context.Context, id, approverID, deductionPeriod string, at time.Time) (AdvancePayment, error)
	Reject(ctx context.Context, id, approverID, reason string, at time.Time) (AdvancePayment, error)
	MarkDeducted(ctx context.Context, id, payrollRecordID string, at time.Time) error

	// ListApprovedForPeriod returns approved-but-undeducted advances
	// earmarked for the period.
	ListApprovedForPeriod(ctx context.Context, employeeID, periodKey string) ([]AdvancePayment, error)
	// SumForPeriod totals approved and deducted advances earmarked for the
	// period (reporting view of what the period absorbs).
	SumForPeriod(ctx context.Context, employeeID, periodKey string) (decimal.Decimal, error)
}
