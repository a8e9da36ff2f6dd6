package salary

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tokosakti/backoffice-go/internal/domain/employee"
	"github.com/tokosakti/backoffice-go/internal/domain/salary"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
	"github.com/tokosakti/backoffice-go/internal/pkg/validator"
	"github.com/tokosakti/backoffice-go/internal/repository/postgresql"
)

type SalaryServiceImpl struct {
	db           *database.DB
	salaryRepo   salary.Repository
	employeeRepo employee.Repository
}

func NewSalaryService(
	db *database.DB,
	salaryRepo salary.Repository,
	employeeRepo employee.Repository,
) salary.Service {
	return &SalaryServiceImpl{
		db:           db,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *SalaryServiceImpl) SetConfiguration(ctx context.Context, req salary.SetConfigurationRequest) (salary.ConfigurationResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.ConfigurationResponse{}, err
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.ConfigurationResponse{}, err
	}

	// The open configuration carries the latest effective_from. A start date
	// at or before it would invert the open window on close and overlap the
	// closed history, so the supersede must move strictly forward.
	open, err := s.salaryRepo.GetOpenByEmployee(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, salary.ErrNoCurrentConfiguration) {
		return salary.ConfigurationResponse{}, err
	}
	if err == nil && !effectiveFrom.After(open.EffectiveFrom) {
		return salary.ConfigurationResponse{}, salary.ErrOverlappingConfiguration
	}

	cfg := salary.SalaryConfiguration{
		EmployeeID:    req.EmployeeID,
		BaseSalary:    req.BaseSalary,
		MaxBonus:      req.MaxBonus,
		Allowances:    mapAllowances(req.Allowances),
		Deductions:    mapDeductions(req.Deductions),
		EffectiveFrom: effectiveFrom,
		IsActive:      true,
	}

	var created salary.SalaryConfiguration
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Supersede, never delete: the previous configuration keeps its row
		// with a closed window.
		if _, err := s.salaryRepo.CloseCurrent(txCtx, req.EmployeeID, effectiveFrom); err != nil {
			return err
		}

		var err error
		created, err = s.salaryRepo.Create(txCtx, cfg)
		return err
	})
	if err != nil {
		return salary.ConfigurationResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *SalaryServiceImpl) GetCurrent(ctx context.Context, employeeID string) (salary.ConfigurationResponse, error) {
	cfg, err := s.salaryRepo.GetCurrentByEmployee(ctx, employeeID, time.Now())
	if err != nil {
		return salary.ConfigurationResponse{}, err
	}
	return mapToResponse(cfg), nil
}

func (s *SalaryServiceImpl) History(ctx context.Context, employeeID string) ([]salary.ConfigurationResponse, error) {
	configs, err := s.salaryRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.ConfigurationResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, mapToResponse(cfg))
	}
	return responses, nil
}

func (s *SalaryServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.salaryRepo.Deactivate(ctx, id)
}

func mapAllowances(inputs []salary.AllowanceInput) []salary.Allowance {
	allowances := make([]salary.Allowance, 0, len(inputs))
	for _, in := range inputs {
		allowances = append(allowances, salary.Allowance{
			Type:   salary.AllowanceType(in.Type),
			Amount: in.Amount,
		})
	}
	return allowances
}

func mapDeductions(inputs []salary.DeductionInput) []salary.Deduction {
	deductions := make([]salary.Deduction, 0, len(inputs))
	for _, in := range inputs {
		deductions = append(deductions, salary.Deduction{
			Type:       salary.DeductionType(in.Type),
			Amount:     in.Amount,
			Percentage: in.Percentage,
		})
	}
	return deductions
}

func mapToResponse(cfg salary.SalaryConfiguration) salary.ConfigurationResponse {
	resp := salary.ConfigurationResponse{
		ID:            cfg.ID,
		EmployeeID:    cfg.EmployeeID,
		BaseSalary:    cfg.BaseSalary,
		MaxBonus:      cfg.MaxBonus,
		Allowances:    cfg.Allowances,
		Deductions:    cfg.Deductions,
		EffectiveFrom: cfg.EffectiveFrom.Format("2006-01-02"),
		IsActive:      cfg.IsActive,
	}
	if cfg.EffectiveTo != nil {
		to := cfg.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &to
	}
	return resp
}
