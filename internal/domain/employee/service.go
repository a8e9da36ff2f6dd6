package employee

import "context"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	// ListActive returns active employees, optionally narrowed to one role.
	ListActive(ctx context.Context, role string) ([]EmployeeResponse, error)
}
