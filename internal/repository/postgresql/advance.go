package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tokosakti/backoffice-go/internal/domain/advance"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.Repository {
	return &advanceRepository{db: db}
}

const advanceColumns = `id, employee_id, amount, reason, deduct_from_salary, deduction_period,
		status, requested_at, approved_at, rejected_at, deducted_at,
		approved_by, rejection_reason, payroll_record_id, created_at, updated_at`

func scanAdvance(row pgx.Row) (advance.AdvancePayment, error) {
	var a advance.AdvancePayment
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Amount, &a.Reason, &a.DeductFromSalary, &a.DeductionPeriod,
		&a.Status, &a.RequestedAt, &a.ApprovedAt, &a.RejectedAt, &a.DeductedAt,
		&a.ApprovedBy, &a.RejectionReason, &a.PayrollRecordID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return advance.AdvancePayment{}, err
	}
	return a, nil
}

func (r *advanceRepository) Create(ctx context.Context, adv advance.AdvancePayment) (advance.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_payments (
			id, employee_id, amount, reason, deduct_from_salary, status, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + advanceColumns

	created, err := scanAdvance(q.QueryRow(ctx, query,
		adv.ID, adv.EmployeeID, adv.Amount, adv.Reason, adv.DeductFromSalary, adv.Status, adv.RequestedAt,
	))
	if err != nil {
		return advance.AdvancePayment{}, fmt.Errorf("failed to create advance payment: %w", err)
	}

	return created, nil
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM advance_payments WHERE id = $1`

	a, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.AdvancePayment{}, advance.ErrAdvanceNotFound
		}
		return advance.AdvancePayment{}, fmt.Errorf("failed to get advance payment: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]advance.AdvancePayment, error) {
	return r.list(ctx, ` WHERE employee_id = $1`, []interface{}{employeeID})
}

func (r *advanceRepository) ListByStatus(ctx context.Context, status advance.Status) ([]advance.AdvancePayment, error) {
	return r.list(ctx, ` WHERE status = $1`, []interface{}{status})
}

func (r *advanceRepository) list(ctx context.Context, cond string, args []interface{}) ([]advance.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM advance_payments` + cond + ` ORDER BY requested_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advance payments: %w", err)
	}
	defer rows.Close()

	var advances []advance.AdvancePayment
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance payment: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (r *advanceRepository) Approve(ctx context.Context, id, approverID, deductionPeriod string, at time.Time) (advance.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	// Status is part of the predicate: approving anything but a pending
	// advance is an invalid transition, not an overwrite.
	query := `
		UPDATE advance_payments
		SET status = $2, approved_by = $3, approved_at = $4, deduction_period = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6
		RETURNING ` + advanceColumns

	a, err := scanAdvance(q.QueryRow(ctx, query,
		id, advance.StatusApproved, approverID, at, deductionPeriod, advance.StatusPending,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.AdvancePayment{}, r.transitionError(ctx, id)
		}
		return advance.AdvancePayment{}, fmt.Errorf("failed to approve advance payment: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) Reject(ctx context.Context, id, approverID, reason string, at time.Time) (advance.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_payments
		SET status = $2, approved_by = $3, rejected_at = $4, rejection_reason = $5, updated_at = NOW()
		WHERE id = $1 AND status = $6
		RETURNING ` + advanceColumns

	a, err := scanAdvance(q.QueryRow(ctx, query,
		id, advance.StatusRejected, approverID, at, reason, advance.StatusPending,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.AdvancePayment{}, r.transitionError(ctx, id)
		}
		return advance.AdvancePayment{}, fmt.Errorf("failed to reject advance payment: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) MarkDeducted(ctx context.Context, id, payrollRecordID string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE advance_payments
		SET status = $2, payroll_record_id = $3, deducted_at = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	tag, err := q.Exec(ctx, query, id, advance.StatusDeducted, payrollRecordID, at, advance.StatusApproved)
	if err != nil {
		return fmt.Errorf("failed to mark advance payment deducted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.transitionError(ctx, id)
	}

	return nil
}

// transitionError distinguishes a missing row from a guarded-update miss.
func (r *advanceRepository) transitionError(ctx context.Context, id string) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return advance.ErrInvalidStatusTransition
}

func (r *advanceRepository) ListApprovedForPeriod(ctx context.Context, employeeID, periodKey string) ([]advance.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + advanceColumns + `
		FROM advance_payments
		WHERE employee_id = $1
		  AND status = $2
		  AND deduction_period = $3
		  AND deduct_from_salary = true
		ORDER BY requested_at
	`

	rows, err := q.Query(ctx, query, employeeID, advance.StatusApproved, periodKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.AdvancePayment
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance payment: %w", err)
		}
		advances = append(advances, a)
	}

	return advances, rows.Err()
}

func (r *advanceRepository) SumForPeriod(ctx context.Context, employeeID, periodKey string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	// Same population ListApprovedForPeriod deducts from, plus rows a payroll
	// run already consumed; the reported total always matches what payroll
	// withholds for the period.
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM advance_payments
		WHERE employee_id = $1
		  AND status IN ($2, $3)
		  AND deduction_period = $4
		  AND deduct_from_salary = true
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, employeeID, advance.StatusApproved, advance.StatusDeducted, periodKey).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum advances for period: %w", err)
	}

	return total, nil
}
