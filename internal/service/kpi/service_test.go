package kpi

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tokosakti/backoffice-go/internal/domain/employee"
	"github.com/tokosakti/backoffice-go/internal/domain/kpi"
)

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *stubEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *stubEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *stubEmployeeRepo) GetActiveByRole(_ context.Context, _ employee.Role) ([]employee.Employee, error) {
	return nil, nil
}

type stubKPIRepo struct {
	definitions map[string]kpi.Definition
	assignments []kpi.Assignment
}

func (r *stubKPIRepo) CreateDefinition(_ context.Context, def kpi.Definition) (kpi.Definition, error) {
	return def, nil
}

func (r *stubKPIRepo) GetDefinitionByID(_ context.Context, id string) (kpi.Definition, error) {
	def, ok := r.definitions[id]
	if !ok {
		return kpi.Definition{}, kpi.ErrDefinitionNotFound
	}
	return def, nil
}

func (r *stubKPIRepo) GetDefinitionByCode(_ context.Context, _ string) (kpi.Definition, error) {
	return kpi.Definition{}, kpi.ErrDefinitionNotFound
}

func (r *stubKPIRepo) ListDefinitions(_ context.Context, _ bool) ([]kpi.Definition, error) {
	return nil, nil
}

func (r *stubKPIRepo) SetDefinitionActive(_ context.Context, _ string, _ bool) error {
	return nil
}

func (r *stubKPIRepo) CreateAssignment(_ context.Context, a kpi.Assignment) (kpi.Assignment, error) {
	r.assignments = append(r.assignments, a)
	return a, nil
}

func (r *stubKPIRepo) GetAssignmentByID(_ context.Context, _ string) (kpi.Assignment, error) {
	return kpi.Assignment{}, kpi.ErrAssignmentNotFound
}

func (r *stubKPIRepo) GetActiveAssignments(_ context.Context, _ string, _ time.Time) ([]kpi.Assignment, error) {
	return nil, nil
}

func (r *stubKPIRepo) GetActiveAssignment(_ context.Context, _, _ string, _ time.Time) (kpi.Assignment, error) {
	return kpi.Assignment{}, kpi.ErrAssignmentNotFound
}

func (r *stubKPIRepo) DeactivateAssignment(_ context.Context, _ string) error {
	return nil
}

func (r *stubKPIRepo) UpsertResult(_ context.Context, res kpi.Result) (kpi.Result, error) {
	return res, nil
}

func (r *stubKPIRepo) GetResult(_ context.Context, _, _, _ string) (kpi.Result, error) {
	return kpi.Result{}, kpi.ErrResultNotFound
}

func (r *stubKPIRepo) ListResultsByPeriod(_ context.Context, _ string, _, _ int) ([]kpi.Result, error) {
	return nil, nil
}

func (r *stubKPIRepo) SumBonusByPeriod(_ context.Context, _ string, _, _ int) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func newAssignmentFixture() (*stubKPIRepo, *stubEmployeeRepo) {
	kpiRepo := &stubKPIRepo{
		definitions: map[string]kpi.Definition{
			"def-sales": {
				ID:              "def-sales",
				Code:            "MONTHLY_SALES",
				Method:          kpi.MethodPercentage,
				TargetValue:     decimal.NewFromInt(50000000),
				ApplicableRoles: []string{"sales", "manager"},
				IsActive:        true,
			},
			"def-any": {
				ID:          "def-any",
				Code:        "ATTENDANCE",
				Method:      kpi.MethodPercentage,
				TargetValue: decimal.NewFromInt(100),
				IsActive:    true,
			},
		},
	}
	employeeRepo := &stubEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-cashier": {ID: "emp-cashier", Code: "EMP-001", Role: employee.RoleCashier, IsActive: true},
			"emp-sales":   {ID: "emp-sales", Code: "EMP-002", Role: employee.RoleSales, IsActive: true},
		},
	}
	return kpiRepo, employeeRepo
}

func TestAssignToEmployeeRoleScope(t *testing.T) {
	kpiRepo, employeeRepo := newAssignmentFixture()
	svc := NewKPIService(nil, kpiRepo, employeeRepo)

	t.Run("role outside definition scope is rejected", func(t *testing.T) {
		_, err := svc.AssignToEmployee(context.Background(), kpi.CreateAssignmentRequest{
			EmployeeID:   "emp-cashier",
			DefinitionID: "def-sales",
			StartDate:    "2026-08-01",
		})
		assert.ErrorIs(t, err, kpi.ErrRoleNotApplicable)
		assert.Empty(t, kpiRepo.assignments)
	})

	t.Run("role inside definition scope is accepted", func(t *testing.T) {
		created, err := svc.AssignToEmployee(context.Background(), kpi.CreateAssignmentRequest{
			EmployeeID:   "emp-sales",
			DefinitionID: "def-sales",
			StartDate:    "2026-08-01",
		})
		require.NoError(t, err)
		assert.Equal(t, "emp-sales", created.EmployeeID)
		assert.True(t, created.IsActive)
	})

	t.Run("unscoped definition accepts any role", func(t *testing.T) {
		_, err := svc.AssignToEmployee(context.Background(), kpi.CreateAssignmentRequest{
			EmployeeID:   "emp-cashier",
			DefinitionID: "def-any",
			StartDate:    "2026-08-01",
		})
		assert.NoError(t, err)
	})
}

func TestAssignToEmployeeInactiveDefinition(t *testing.T) {
	kpiRepo, employeeRepo := newAssignmentFixture()
	def := kpiRepo.definitions["def-any"]
	def.IsActive = false
	kpiRepo.definitions["def-any"] = def
	svc := NewKPIService(nil, kpiRepo, employeeRepo)

	_, err := svc.AssignToEmployee(context.Background(), kpi.CreateAssignmentRequest{
		EmployeeID:   "emp-sales",
		DefinitionID: "def-any",
		StartDate:    "2026-08-01",
	})
	assert.ErrorIs(t, err, kpi.ErrDefinitionInactive)
}
