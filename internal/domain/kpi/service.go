package kpi

import (
	"context"
	"time"
)

type Service interface {
	// Definitions
	CreateDefinition(ctx context.Context, req CreateDefinitionRequest) (DefinitionResponse, error)
	GetDefinition(ctx context.Context, id string) (DefinitionResponse, error)
	ListDefinitions(ctx context.Context, activeOnly bool) ([]DefinitionResponse, error)
	SetDefinitionActive(ctx context.Context, id string, active bool) error

	// Assignments
	AssignToEmployee(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetActiveAssignments(ctx context.Context, employeeID string, asOf time.Time) ([]AssignmentResponse, error)
	DeactivateAssignment(ctx context.Context, id string) error

	// Results
	// RecordResult computes and stores the unique (employee, definition,
	// period) outcome; re-invoking with a corrected actual overwrites it.
	RecordResult(ctx context.Context, req RecordResultRequest) (ResultResponse, error)
	GetMonthlyResults(ctx context.Context, employeeID string, year, month int) ([]ResultResponse, error)
	CalculateMonthlyBonus(ctx context.Context, employeeID string, year, month int) (MonthlyBonusResponse, error)
}
