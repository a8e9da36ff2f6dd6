package kpi

import (
	"context"
	"errors"
	"time"

	"github.com/tokosakti/backoffice-go/internal/domain/employee"
	"github.com/tokosakti/backoffice-go/internal/domain/kpi"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
	"github.com/tokosakti/backoffice-go/internal/pkg/period"
	"github.com/tokosakti/backoffice-go/internal/pkg/validator"
)

type KPIServiceImpl struct {
	db           *database.DB
	kpiRepo      kpi.Repository
	employeeRepo employee.Repository
}

func NewKPIService(
	db *database.DB,
	kpiRepo kpi.Repository,
	employeeRepo employee.Repository,
) kpi.Service {
	return &KPIServiceImpl{
		db:           db,
		kpiRepo:      kpiRepo,
		employeeRepo: employeeRepo,
	}
}

// ========== DEFINITIONS ==========

func (s *KPIServiceImpl) CreateDefinition(ctx context.Context, req kpi.CreateDefinitionRequest) (kpi.DefinitionResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.DefinitionResponse{}, err
	}

	// Friendly pre-check; the unique index on code catches the race.
	if _, err := s.kpiRepo.GetDefinitionByCode(ctx, req.Code); err == nil {
		return kpi.DefinitionResponse{}, kpi.ErrDefinitionCodeExists
	} else if !errors.Is(err, kpi.ErrDefinitionNotFound) {
		return kpi.DefinitionResponse{}, err
	}

	def := kpi.Definition{
		Code:            req.Code,
		Name:            req.Name,
		MetricType:      kpi.MetricType(req.MetricType),
		Method:          kpi.CalculationMethod(req.Method),
		TargetValue:     req.TargetValue,
		MinValue:        req.MinValue,
		MaxValue:        req.MaxValue,
		Weight:          req.Weight,
		BonusPerPoint:   req.BonusPerPoint,
		MaxBonus:        req.MaxBonus,
		ApplicableRoles: req.ApplicableRoles,
		IsActive:        true,
	}

	created, err := s.kpiRepo.CreateDefinition(ctx, def)
	if err != nil {
		return kpi.DefinitionResponse{}, err
	}

	return mapDefinitionToResponse(created), nil
}

func (s *KPIServiceImpl) GetDefinition(ctx context.Context, id string) (kpi.DefinitionResponse, error) {
	def, err := s.kpiRepo.GetDefinitionByID(ctx, id)
	if err != nil {
		return kpi.DefinitionResponse{}, err
	}
	return mapDefinitionToResponse(def), nil
}

func (s *KPIServiceImpl) ListDefinitions(ctx context.Context, activeOnly bool) ([]kpi.DefinitionResponse, error) {
	defs, err := s.kpiRepo.ListDefinitions(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]kpi.DefinitionResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, mapDefinitionToResponse(def))
	}
	return responses, nil
}

func (s *KPIServiceImpl) SetDefinitionActive(ctx context.Context, id string, active bool) error {
	return s.kpiRepo.SetDefinitionActive(ctx, id, active)
}

// ========== ASSIGNMENTS ==========

func (s *KPIServiceImpl) AssignToEmployee(ctx context.Context, req kpi.CreateAssignmentRequest) (kpi.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.AssignmentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}

	def, err := s.kpiRepo.GetDefinitionByID(ctx, req.DefinitionID)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}
	if !def.IsActive {
		return kpi.AssignmentResponse{}, kpi.ErrDefinitionInactive
	}
	if !def.AppliesToRole(string(emp.Role)) {
		return kpi.AssignmentResponse{}, kpi.ErrRoleNotApplicable
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	a := kpi.Assignment{
		EmployeeID:       req.EmployeeID,
		DefinitionID:     req.DefinitionID,
		TargetOverride:   req.TargetOverride,
		WeightOverride:   req.WeightOverride,
		MaxBonusOverride: req.MaxBonusOverride,
		StartDate:        startDate,
		IsActive:         true,
	}
	if req.EndDate != nil {
		endDate, _ := validator.IsValidDate(*req.EndDate)
		a.EndDate = &endDate
	}

	created, err := s.kpiRepo.CreateAssignment(ctx, a)
	if err != nil {
		return kpi.AssignmentResponse{}, err
	}

	return mapAssignmentToResponse(created), nil
}

func (s *KPIServiceImpl) GetActiveAssignments(ctx context.Context, employeeID string, asOf time.Time) ([]kpi.AssignmentResponse, error) {
	assignments, err := s.kpiRepo.GetActiveAssignments(ctx, employeeID, asOf)
	if err != nil {
		return nil, err
	}

	responses := make([]kpi.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, mapAssignmentToResponse(a))
	}
	return responses, nil
}

func (s *KPIServiceImpl) DeactivateAssignment(ctx context.Context, id string) error {
	return s.kpiRepo.DeactivateAssignment(ctx, id)
}

// ========== RESULTS ==========

func (s *KPIServiceImpl) RecordResult(ctx context.Context, req kpi.RecordResultRequest) (kpi.ResultResponse, error) {
	if err := req.Validate(); err != nil {
		return kpi.ResultResponse{}, err
	}

	p, err := period.Parse(req.Period)
	if err != nil {
		return kpi.ResultResponse{}, validator.ValidationErrors{
			{Field: "period", Message: "must be a valid YYYY-MM period"},
		}
	}

	def, err := s.kpiRepo.GetDefinitionByID(ctx, req.DefinitionID)
	if err != nil {
		return kpi.ResultResponse{}, err
	}
	if !def.IsActive {
		return kpi.ResultResponse{}, kpi.ErrDefinitionInactive
	}

	// Assignment overrides take precedence over the definition's own
	// parameters when resolving the effective target and cap.
	assignment, err := s.kpiRepo.GetActiveAssignment(ctx, req.EmployeeID, req.DefinitionID, p.Last())
	if err != nil && !errors.Is(err, kpi.ErrAssignmentNotFound) {
		return kpi.ResultResponse{}, err
	}
	if err == nil {
		def = assignment.Apply(def)
	}

	res := kpi.Result{
		EmployeeID:      req.EmployeeID,
		DefinitionID:    req.DefinitionID,
		Period:          p.Key(),
		PeriodYear:      p.Year,
		PeriodMonth:     int(p.Month),
		TargetValue:     def.TargetValue,
		ActualValue:     req.ActualValue,
		AchievementRate: def.CalculateAchievement(req.ActualValue),
		BonusEarned:     def.CalculateBonus(req.ActualValue),
		Snapshot: kpi.ResultSnapshot{
			Code:       def.Code,
			Name:       def.Name,
			MetricType: def.MetricType,
			Weight:     def.Weight,
		},
	}

	upserted, err := s.kpiRepo.UpsertResult(ctx, res)
	if err != nil {
		return kpi.ResultResponse{}, err
	}

	return mapResultToResponse(upserted), nil
}

func (s *KPIServiceImpl) GetMonthlyResults(ctx context.Context, employeeID string, year, month int) ([]kpi.ResultResponse, error) {
	if _, err := period.New(year, month); err != nil {
		return nil, validator.ValidationErrors{{Field: "period", Message: err.Error()}}
	}

	results, err := s.kpiRepo.ListResultsByPeriod(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	responses := make([]kpi.ResultResponse, 0, len(results))
	for _, res := range results {
		responses = append(responses, mapResultToResponse(res))
	}
	return responses, nil
}

func (s *KPIServiceImpl) CalculateMonthlyBonus(ctx context.Context, employeeID string, year, month int) (kpi.MonthlyBonusResponse, error) {
	p, err := period.New(year, month)
	if err != nil {
		return kpi.MonthlyBonusResponse{}, validator.ValidationErrors{{Field: "period", Message: err.Error()}}
	}

	total, err := s.kpiRepo.SumBonusByPeriod(ctx, employeeID, year, month)
	if err != nil {
		return kpi.MonthlyBonusResponse{}, err
	}

	return kpi.MonthlyBonusResponse{
		EmployeeID: employeeID,
		Period:     p.Key(),
		TotalBonus: total,
	}, nil
}

func mapDefinitionToResponse(def kpi.Definition) kpi.DefinitionResponse {
	return kpi.DefinitionResponse{
		ID:              def.ID,
		Code:            def.Code,
		Name:            def.Name,
		MetricType:      string(def.MetricType),
		Method:          string(def.Method),
		TargetValue:     def.TargetValue,
		MinValue:        def.MinValue,
		MaxValue:        def.MaxValue,
		Weight:          def.Weight,
		BonusPerPoint:   def.BonusPerPoint,
		MaxBonus:        def.MaxBonus,
		ApplicableRoles: def.ApplicableRoles,
		IsActive:        def.IsActive,
	}
}

func mapAssignmentToResponse(a kpi.Assignment) kpi.AssignmentResponse {
	resp := kpi.AssignmentResponse{
		ID:               a.ID,
		EmployeeID:       a.EmployeeID,
		DefinitionID:     a.DefinitionID,
		TargetOverride:   a.TargetOverride,
		WeightOverride:   a.WeightOverride,
		MaxBonusOverride: a.MaxBonusOverride,
		StartDate:        a.StartDate.Format("2006-01-02"),
		IsActive:         a.IsActive,
	}
	if a.EndDate != nil {
		end := a.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

func mapResultToResponse(res kpi.Result) kpi.ResultResponse {
	return kpi.ResultResponse{
		ID:              res.ID,
		EmployeeID:      res.EmployeeID,
		DefinitionID:    res.DefinitionID,
		Period:          res.Period,
		KPICode:         res.Snapshot.Code,
		KPIName:         res.Snapshot.Name,
		MetricType:      string(res.Snapshot.MetricType),
		Weight:          res.Snapshot.Weight,
		TargetValue:     res.TargetValue,
		ActualValue:     res.ActualValue,
		AchievementRate: res.AchievementRate,
		BonusEarned:     res.BonusEarned,
	}
}
