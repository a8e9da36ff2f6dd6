package salary

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, cfg SalaryConfiguration) (SalaryConfiguration, error)
	GetByID(ctx context.Context, id string) (SalaryConfiguration, error)
	// GetCurrentByEmployee resolves the active configuration whose
	// [effective_from, effective_to) window contains asOf.
	GetCurrentByEmployee(ctx context.Context, employeeID string, asOf time.Time) (SalaryConfiguration, error)
	// GetOpenByEmployee returns the employee's active configuration with no
	// effective_to, which by construction carries the latest effective_from.
	GetOpenByEmployee(ctx context.Context, employeeID string) (SalaryConfiguration, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryConfiguration, error)
	// CloseCurrent sets effective_to on the employee's open configuration.
	// Returns the number of configurations closed.
	CloseCurrent(ctx context.Context, employeeID string, closeAt time.Time) (int64, error)
	Deactivate(ctx context.Context, id string) error
}
