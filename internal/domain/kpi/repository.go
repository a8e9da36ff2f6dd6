package kpi

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Definitions
	CreateDefinition(ctx context.Context, def Definition) (Definition, error)
	GetDefinitionByID(ctx context.Context, id string) (Definition, error)
	GetDefinitionByCode(ctx context.Context, code string) (Definition, error)
	ListDefinitions(ctx context.Context, activeOnly bool) ([]Definition, error)
	SetDefinitionActive(ctx context.Context, id string, active bool) error

	// Assignments
	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	GetAssignmentByID(ctx context.Context, id string) (Assignment, error)
	// GetActiveAssignments returns active assignments whose window covers asOf.
	GetActiveAssignments(ctx context.Context, employeeID string, asOf time.Time) ([]Assignment, error)
	GetActiveAssignment(ctx context.Context, employeeID, definitionID string, asOf time.Time) (Assignment, error)
	DeactivateAssignment(ctx context.Context, id string) error

	// Results
	// UpsertResult creates or overwrites the unique
	// (employee, definition, period) record.
	UpsertResult(ctx context.Context, res Result) (Result, error)
	GetResult(ctx context.Context, employeeID, definitionID, periodKey string) (Result, error)
	ListResultsByPeriod(ctx context.Context, employeeID string, year, month int) ([]Result, error)
	SumBonusByPeriod(ctx context.Context, employeeID string, year, month int) (decimal.Decimal, error)
}
