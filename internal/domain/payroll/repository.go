package payroll

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts a record; a (employee, period) unique violation is
	// surfaced as ErrRecordAlreadyExists.
	Create(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployeePeriod(ctx context.Context, employeeID, periodKey string) (Record, error)
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// Guarded single-step transitions; the stored status is part of the
	// UPDATE predicate.
	Approve(ctx context.Context, id, approverID string, at time.Time) (Record, error)
	MarkAsPaid(ctx context.Context, id, method string, at time.Time) (Record, error)
	Cancel(ctx context.Context, id string, at time.Time) (Record, error)

	Summary(ctx context.Context, year, month int) (SummaryResponse, error)
}
