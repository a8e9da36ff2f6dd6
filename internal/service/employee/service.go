package employee

import (
	"context"

	"github.com/tokosakti/backoffice-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		Code:     req.Code,
		FullName: req.FullName,
		Role:     employee.Role(req.Role),
		IsActive: true,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context, role string) ([]employee.EmployeeResponse, error) {
	var (
		employees []employee.Employee
		err       error
	)
	if role != "" {
		employees, err = s.employeeRepo.GetActiveByRole(ctx, employee.Role(role))
	} else {
		employees, err = s.employeeRepo.GetActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapToResponse(emp))
	}
	return responses, nil
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:       emp.ID,
		Code:     emp.Code,
		FullName: emp.FullName,
		Role:     string(emp.Role),
		IsActive: emp.IsActive,
	}
}
