package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tokosakti/backoffice-go/internal/domain/payroll"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

const payrollColumns = `id, employee_id, period, period_year, period_month,
		base_salary, total_bonus, total_allowances, total_deductions, advance_payments,
		gross_salary, net_salary, kpi_breakdown, status,
		payment_date, payment_method, approved_by, generated_by, created_at, updated_at`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	var breakdownJSON []byte

	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Period, &rec.PeriodYear, &rec.PeriodMonth,
		&rec.BaseSalary, &rec.TotalBonus, &rec.TotalAllowances, &rec.TotalDeductions, &rec.AdvancePayments,
		&rec.GrossSalary, &rec.NetSalary, &breakdownJSON, &rec.Status,
		&rec.PaymentDate, &rec.PaymentMethod, &rec.ApprovedBy, &rec.GeneratedBy, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return payroll.Record{}, err
	}

	if err := json.Unmarshal(breakdownJSON, &rec.KPIBreakdown); err != nil {
		return payroll.Record{}, fmt.Errorf("failed to decode kpi breakdown: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) Create(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	breakdownJSON, err := json.Marshal(rec.KPIBreakdown)
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to encode kpi breakdown: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			employee_id, period, period_year, period_month,
			base_salary, total_bonus, total_allowances, total_deductions, advance_payments,
			gross_salary, net_salary, kpi_breakdown, status, generated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + payrollColumns

	created, err := scanPayrollRecord(q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Period, rec.PeriodYear, rec.PeriodMonth,
		rec.BaseSalary, rec.TotalBonus, rec.TotalAllowances, rec.TotalDeductions, rec.AdvancePayments,
		rec.GrossSalary, rec.NetSalary, breakdownJSON, rec.Status, rec.GeneratedBy,
	))
	if err != nil {
		// The (employee_id, period) unique key is the concurrency safeguard:
		// a lost race surfaces as the domain's duplicate-period error.
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.Record{}, payroll.ErrRecordAlreadyExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE id = $1`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID, periodKey string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE employee_id = $1 AND period = $2`

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, periodKey))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conds []string
	var args []interface{}

	addCond := func(cond string, value interface{}) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.PeriodYear != nil {
		addCond("period_year = $%d", *filter.PeriodYear)
	}
	if filter.PeriodMonth != nil {
		addCond("period_month = $%d", *filter.PeriodMonth)
	}
	if filter.Status != nil {
		addCond("status = $%d", *filter.Status)
	}
	if filter.EmployeeID != nil {
		addCond("employee_id = $%d", *filter.EmployeeID)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM payroll_records` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`SELECT `+payrollColumns+` FROM payroll_records`+where+`
		ORDER BY period DESC, employee_id
		LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

func (r *payrollRepository) Approve(ctx context.Context, id, approverID string, at time.Time) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, approved_by = $3, updated_at = $4
		WHERE id = $1 AND status = $5
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		id, payroll.StatusApproved, approverID, at, payroll.StatusPending,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, r.transitionError(ctx, id)
		}
		return payroll.Record{}, fmt.Errorf("failed to approve payroll record: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) MarkAsPaid(ctx context.Context, id, method string, at time.Time) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, payment_method = $3, payment_date = $4, updated_at = $4
		WHERE id = $1 AND status = $5
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		id, payroll.StatusPaid, method, at, payroll.StatusApproved,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, r.transitionError(ctx, id)
		}
		return payroll.Record{}, fmt.Errorf("failed to mark payroll record paid: %w", err)
	}

	return rec, nil
}

func (r *payrollRepository) Cancel(ctx context.Context, id string, at time.Time) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status IN ($4, $5)
		RETURNING ` + payrollColumns

	rec, err := scanPayrollRecord(q.QueryRow(ctx, query,
		id, payroll.StatusCancelled, at, payroll.StatusPending, payroll.StatusApproved,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, r.transitionError(ctx, id)
		}
		return payroll.Record{}, fmt.Errorf("failed to cancel payroll record: %w", err)
	}

	return rec, nil
}

// transitionError distinguishes a missing row from a guarded-update miss.
func (r *payrollRepository) transitionError(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return payroll.ErrInvalidStatusTransition
}

func (r *payrollRepository) Summary(ctx context.Context, year, month int) (payroll.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(gross_salary), 0),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(total_bonus), 0),
			COALESCE(SUM(advance_payments), 0),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM payroll_records
		WHERE period_year = $1 AND period_month = $2
	`

	var s payroll.SummaryResponse
	err := q.QueryRow(ctx, query, year, month).Scan(
		&s.TotalEmployees, &s.TotalGross, &s.TotalNet, &s.TotalBonus, &s.TotalAdvances,
		&s.PendingCount, &s.ApprovedCount, &s.PaidCount, &s.CancelledCount,
	)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return s, nil
}
