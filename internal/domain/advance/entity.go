package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. pending is the only entry state; approved and rejected are
// reachable only from pending; deducted only from approved, and only by
// payroll generation. No transition is reversible.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusDeducted Status = "deducted"
)

// AdvancePayment is a cash advance requested by an employee, later offset
// against a specific period's net pay.
type AdvancePayment struct {
	ID               string
	EmployeeID       string
	Amount           decimal.Decimal
	Reason           string
	DeductFromSalary bool
	DeductionPeriod  *string
	Status           Status
	RequestedAt      time.Time
	ApprovedAt       *time.Time
	RejectedAt       *time.Time
	DeductedAt       *time.Time
	ApprovedBy       *string
	RejectionReason  *string
	PayrollRecordID  *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Approve moves the advance from pending to approved and earmarks it against
// a deduction period.
func (a *AdvancePayment) Approve(approverID, deductionPeriod string, at time.Time) error {
	if a.Status != StatusPending {
		return ErrInvalidStatusTransition
	}
	a.Status = StatusApproved
	a.ApprovedBy = &approverID
	a.ApprovedAt = &at
	a.DeductionPeriod = &deductionPeriod
	return nil
}

// Reject moves the advance from pending to rejected.
func (a *AdvancePayment) Reject(approverID, reason string, at time.Time) error {
	if a.Status != StatusPending {
		return ErrInvalidStatusTransition
	}
	a.Status = StatusRejected
	a.ApprovedBy = &approverID
	a.RejectedAt = &at
	a.RejectionReason = &reason
	return nil
}

// MarkDeducted consumes an approved advance into a payroll record. Calling
// it twice, or from any state other than approved, fails.
func (a *AdvancePayment) MarkDeducted(payrollRecordID string, at time.Time) error {
	if a.Status != StatusApproved {
		return ErrInvalidStatusTransition
	}
	a.Status = StatusDeducted
	a.PayrollRecordID = &payrollRecordID
	a.DeductedAt = &at
	return nil
}
