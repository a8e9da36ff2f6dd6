package payroll

import "context"

type Service interface {
	// CreateMonthlyPayroll aggregates salary configuration, KPI results and
	// approved advances into one record for (employee, period). Generation
	// is not an upsert: an existing record fails with ErrRecordAlreadyExists.
	CreateMonthlyPayroll(ctx context.Context, employeeID string, year, month int, requestedBy string) (RecordResponse, error)
	// Generate runs CreateMonthlyPayroll for the requested employees, or all
	// active employees when none are named, reporting per-employee outcomes.
	Generate(ctx context.Context, req GeneratePayrollRequest, requestedBy string) ([]GenerateOutcome, error)

	Get(ctx context.Context, id string) (RecordResponse, error)
	// List returns one page of records plus the unpaged total for the filter.
	List(ctx context.Context, filter Filter) ([]RecordResponse, int64, error)
	Approve(ctx context.Context, id, adminID string) (RecordResponse, error)
	MarkAsPaid(ctx context.Context, id string, req MarkAsPaidRequest) (RecordResponse, error)
	Cancel(ctx context.Context, id string) (RecordResponse, error)
	Summary(ctx context.Context, year, month int) (SummaryResponse, error)
}
