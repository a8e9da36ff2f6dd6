package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tokosakti/backoffice-go/internal/domain/advance"
	"github.com/tokosakti/backoffice-go/internal/domain/employee"
	"github.com/tokosakti/backoffice-go/internal/domain/kpi"
	"github.com/tokosakti/backoffice-go/internal/domain/payroll"
	"github.com/tokosakti/backoffice-go/internal/domain/salary"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
	"github.com/tokosakti/backoffice-go/internal/pkg/period"
	"github.com/tokosakti/backoffice-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.Repository
	salaryRepo   salary.Repository
	kpiRepo      kpi.Repository
	advanceRepo  advance.Repository
	employeeRepo employee.Repository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.Repository,
	salaryRepo salary.Repository,
	kpiRepo kpi.Repository,
	advanceRepo advance.Repository,
	employeeRepo employee.Repository,
) payroll.Service {
	return &PayrollServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		salaryRepo:   salaryRepo,
		kpiRepo:      kpiRepo,
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *PayrollServiceImpl) CreateMonthlyPayroll(ctx context.Context, employeeID string, year, month int, requestedBy string) (payroll.RecordResponse, error) {
	p, err := period.New(year, month)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.RecordResponse{}, err
	}

	// Generation is not an upsert. The early check keeps the common
	// duplicate case cheap; the unique key catches the race.
	_, err = s.payrollRepo.GetByEmployeePeriod(ctx, employeeID, p.Key())
	if err == nil {
		return payroll.RecordResponse{}, payroll.ErrRecordAlreadyExists
	}
	if !errors.Is(err, payroll.ErrRecordNotFound) {
		return payroll.RecordResponse{}, err
	}

	cfg, err := s.salaryRepo.GetCurrentByEmployee(ctx, employeeID, p.Last())
	if err != nil {
		if errors.Is(err, salary.ErrNoCurrentConfiguration) {
			return payroll.RecordResponse{}, payroll.ErrNoSalaryConfiguration
		}
		return payroll.RecordResponse{}, err
	}

	results, err := s.kpiRepo.ListResultsByPeriod(ctx, employeeID, year, month)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	advances, err := s.advanceRepo.ListApprovedForPeriod(ctx, employeeID, p.Key())
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	rec := assembleRecord(employeeID, p, cfg, results, advances, requestedBy)

	// The record insert and the approved -> deducted transitions of the
	// consumed advances are one atomic unit: either the record exists and
	// every advance references it, or nothing changed.
	var created payroll.Record
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.payrollRepo.Create(txCtx, rec)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, adv := range advances {
			if err := s.advanceRepo.MarkDeducted(txCtx, adv.ID, created.ID, now); err != nil {
				return fmt.Errorf("failed to deduct advance %s: %w", adv.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapToResponse(created), nil
}

// assembleRecord folds the period's inputs into an unsaved payroll record.
// Pure: every monetary field is a snapshot of its input.
func assembleRecord(
	employeeID string,
	p period.Period,
	cfg salary.SalaryConfiguration,
	results []kpi.Result,
	advances []advance.AdvancePayment,
	requestedBy string,
) payroll.Record {
	breakdown := make([]payroll.KPIBreakdownItem, 0, len(results))
	totalBonus := decimal.Zero
	for _, res := range results {
		breakdown = append(breakdown, payroll.KPIBreakdownItem{
			DefinitionID:    res.DefinitionID,
			Code:            res.Snapshot.Code,
			Name:            res.Snapshot.Name,
			Weight:          res.Snapshot.Weight,
			TargetValue:     res.TargetValue,
			ActualValue:     res.ActualValue,
			AchievementRate: res.AchievementRate,
			BonusEarned:     res.BonusEarned,
		})
		totalBonus = totalBonus.Add(res.BonusEarned)
	}

	// The configuration's monthly cap bounds the summed KPI bonuses.
	if cfg.MaxBonus.IsPositive() && totalBonus.GreaterThan(cfg.MaxBonus) {
		totalBonus = cfg.MaxBonus
	}

	advanceTotal := decimal.Zero
	for _, adv := range advances {
		advanceTotal = advanceTotal.Add(adv.Amount)
	}

	rec := payroll.Record{
		EmployeeID:      employeeID,
		Period:          p.Key(),
		PeriodYear:      p.Year,
		PeriodMonth:     int(p.Month),
		BaseSalary:      cfg.BaseSalary,
		TotalBonus:      totalBonus,
		TotalAllowances: cfg.TotalAllowances(),
		TotalDeductions: cfg.TotalDeductions(),
		AdvancePayments: advanceTotal,
		KPIBreakdown:    breakdown,
		Status:          payroll.StatusPending,
		GeneratedBy:     requestedBy,
	}
	rec.Recalculate()
	return rec
}

func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest, requestedBy string) ([]payroll.GenerateOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var employeeIDs []string
	if len(req.EmployeeIDs) > 0 {
		employeeIDs = req.EmployeeIDs
	} else {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get employees: %w", err)
		}
		for _, emp := range employees {
			employeeIDs = append(employeeIDs, emp.ID)
		}
	}

	outcomes := make([]payroll.GenerateOutcome, 0, len(employeeIDs))
	for _, id := range employeeIDs {
		outcome := payroll.GenerateOutcome{EmployeeID: id}

		created, err := s.CreateMonthlyPayroll(ctx, id, req.PeriodYear, req.PeriodMonth, requestedBy)
		if err != nil {
			outcome.Error = err.Error()
		} else {
			outcome.RecordID = created.ID
			outcome.NetSalary = created.NetSalary
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return mapToResponse(rec), nil
}

func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.Filter) ([]payroll.RecordResponse, int64, error) {
	records, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	data := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, mapToResponse(rec))
	}

	return data, total, nil
}

func (s *PayrollServiceImpl) Approve(ctx context.Context, id, adminID string) (payroll.RecordResponse, error) {
	rec, err := s.payrollRepo.Approve(ctx, id, adminID, time.Now())
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return mapToResponse(rec), nil
}

func (s *PayrollServiceImpl) MarkAsPaid(ctx context.Context, id string, req payroll.MarkAsPaidRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	rec, err := s.payrollRepo.MarkAsPaid(ctx, id, req.PaymentMethod, time.Now())
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return mapToResponse(rec), nil
}

func (s *PayrollServiceImpl) Cancel(ctx context.Context, id string) (payroll.RecordResponse, error) {
	rec, err := s.payrollRepo.Cancel(ctx, id, time.Now())
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return mapToResponse(rec), nil
}

func (s *PayrollServiceImpl) Summary(ctx context.Context, year, month int) (payroll.SummaryResponse, error) {
	p, err := period.New(year, month)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary, err := s.payrollRepo.Summary(ctx, year, month)
	if err != nil {
		return payroll.SummaryResponse{}, err
	}

	summary.Period = p.Key()
	return summary, nil
}

func mapToResponse(rec payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		Period:          rec.Period,
		BaseSalary:      rec.BaseSalary,
		TotalBonus:      rec.TotalBonus,
		TotalAllowances: rec.TotalAllowances,
		TotalDeductions: rec.TotalDeductions,
		AdvancePayments: rec.AdvancePayments,
		GrossSalary:     rec.GrossSalary,
		NetSalary:       rec.NetSalary,
		KPIBreakdown:    rec.KPIBreakdown,
		Status:          string(rec.Status),
		PaymentMethod:   rec.PaymentMethod,
		ApprovedBy:      rec.ApprovedBy,
	}
	if rec.PaymentDate != nil {
		paid := rec.PaymentDate.Format(time.RFC3339)
		resp.PaymentDate = &paid
	}
	return resp
}
