package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. pending -> approved -> paid; pending|approved -> cancelled.
// No transition out of paid or cancelled.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// KPIBreakdownItem captures one KPI result as it was folded into the record.
type KPIBreakdownItem struct {
	DefinitionID    string          `json:"definition_id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Weight          int             `json:"weight"`
	TargetValue     decimal.Decimal `json:"target_value"`
	ActualValue     decimal.Decimal `json:"actual_value"`
	AchievementRate decimal.Decimal `json:"achievement_rate"`
	BonusEarned     decimal.Decimal `json:"bonus_earned"`
}

// Record is the per-employee, per-period payroll aggregate. All monetary
// fields are snapshots taken at generation time, not live references.
type Record struct {
	ID              string
	EmployeeID      string
	Period          string
	PeriodYear      int
	PeriodMonth     int
	BaseSalary      decimal.Decimal
	TotalBonus      decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	AdvancePayments decimal.Decimal
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal
	KPIBreakdown    []KPIBreakdownItem
	Status          Status
	PaymentDate     *time.Time
	PaymentMethod   *string
	ApprovedBy      *string
	GeneratedBy     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Recalculate derives gross and net from the snapshot fields. It runs before
// every persistence; gross/net are never accepted as inputs.
func (r *Record) Recalculate() {
	r.GrossSalary = r.BaseSalary.Add(r.TotalBonus).Add(r.TotalAllowances)
	r.NetSalary = r.GrossSalary.Sub(r.TotalDeductions).Sub(r.AdvancePayments)
}

// Approve moves the record from pending to approved.
func (r *Record) Approve(adminID string, at time.Time) error {
	if r.Status != StatusPending {
		return ErrInvalidStatusTransition
	}
	r.Status = StatusApproved
	r.ApprovedBy = &adminID
	r.UpdatedAt = at
	return nil
}

// MarkAsPaid moves the record from approved to paid.
func (r *Record) MarkAsPaid(method string, at time.Time) error {
	if r.Status != StatusApproved {
		return ErrInvalidStatusTransition
	}
	r.Status = StatusPaid
	r.PaymentMethod = &method
	r.PaymentDate = &at
	r.UpdatedAt = at
	return nil
}

// Cancel voids a record that has not been paid.
func (r *Record) Cancel(at time.Time) error {
	if r.Status != StatusPending && r.Status != StatusApproved {
		return ErrInvalidStatusTransition
	}
	r.Status = StatusCancelled
	r.UpdatedAt = at
	return nil
}
