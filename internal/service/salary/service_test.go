package salary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tokosakti/backoffice-go/internal/domain/employee"
	"github.com/tokosakti/backoffice-go/internal/domain/salary"
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

type stubSalaryRepo struct {
	open       *salary.SalaryConfiguration
	closeCalls int
}

func (r *stubSalaryRepo) Create(_ context.Context, cfg salary.SalaryConfiguration) (salary.SalaryConfiguration, error) {
	return cfg, nil
}

func (r *stubSalaryRepo) GetByID(_ context.Context, _ string) (salary.SalaryConfiguration, error) {
	return salary.SalaryConfiguration{}, salary.ErrConfigurationNotFound
}

func (r *stubSalaryRepo) GetCurrentByEmployee(_ context.Context, _ string, asOf time.Time) (salary.SalaryConfiguration, error) {
	if r.open != nil && r.open.ActiveAt(asOf) {
		return *r.open, nil
	}
	return salary.SalaryConfiguration{}, salary.ErrNoCurrentConfiguration
}

func (r *stubSalaryRepo) GetOpenByEmployee(_ context.Context, _ string) (salary.SalaryConfiguration, error) {
	if r.open != nil {
		return *r.open, nil
	}
	return salary.SalaryConfiguration{}, salary.ErrNoCurrentConfiguration
}

func (r *stubSalaryRepo) ListByEmployee(_ context.Context, _ string) ([]salary.SalaryConfiguration, error) {
	return nil, nil
}

func (r *stubSalaryRepo) CloseCurrent(_ context.Context, _ string, _ time.Time) (int64, error) {
	r.closeCalls++
	return 1, nil
}

func (r *stubSalaryRepo) Deactivate(_ context.Context, _ string) error {
	return nil
}

// Superseding must move strictly forward: closing the open configuration at a
// date on or before its own effective_from would invert its window and leave
// two configurations active over the same days.
func TestSetConfigurationRejectsNonForwardStart(t *testing.T) {
	openFrom := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	salaryRepo := &stubSalaryRepo{
		open: &salary.SalaryConfiguration{
			ID:            "cfg-b",
			EmployeeID:    "emp-1",
			BaseSalary:    decimal.NewFromInt(5000000),
			EffectiveFrom: openFrom,
			IsActive:      true,
		},
	}
	employeeRepo := &stubEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", Code: "EMP-001", Role: employee.RoleCashier, IsActive: true},
		},
	}
	svc := NewSalaryService(nil, salaryRepo, employeeRepo)

	for name, from := range map[string]string{
		"backdated start": "2026-02-01",
		"same-day start":  "2026-03-01",
	} {
		t.Run(name, func(t *testing.T) {
			req := salary.SetConfigurationRequest{
				EmployeeID:    "emp-1",
				BaseSalary:    decimal.NewFromInt(6000000),
				EffectiveFrom: from,
			}

			_, err := svc.SetConfiguration(context.Background(), req)
			assert.ErrorIs(t, err, salary.ErrOverlappingConfiguration)
		})
	}

	assert.Zero(t, salaryRepo.closeCalls, "rejected requests must not close the open configuration")
}

func TestSetConfigurationUnknownEmployee(t *testing.T) {
	svc := NewSalaryService(nil, &stubSalaryRepo{}, &stubEmployeeRepo{})

	req := salary.SetConfigurationRequest{
		EmployeeID:    "emp-missing",
		BaseSalary:    decimal.NewFromInt(5000000),
		EffectiveFrom: "2026-03-01",
	}

	_, err := svc.SetConfiguration(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
