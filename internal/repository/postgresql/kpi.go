package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tokosakti/backoffice-go/internal/domain/kpi"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
)

type kpiRepository struct {
	db *database.DB
}

func NewKPIRepository(db *database.DB) kpi.Repository {
	return &kpiRepository{db: db}
}

// ========== DEFINITIONS ==========

const definitionColumns = `id, code, name, metric_type, calculation_method,
		target_value, min_value, max_value, weight, bonus_per_point, max_bonus,
		applicable_roles, is_active, created_at, updated_at`

func scanDefinition(row pgx.Row) (kpi.Definition, error) {
	var d kpi.Definition
	var rolesJSON []byte

	err := row.Scan(
		&d.ID, &d.Code, &d.Name, &d.MetricType, &d.Method,
		&d.TargetValue, &d.MinValue, &d.MaxValue, &d.Weight, &d.BonusPerPoint, &d.MaxBonus,
		&rolesJSON, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return kpi.Definition{}, err
	}

	if err := json.Unmarshal(rolesJSON, &d.ApplicableRoles); err != nil {
		return kpi.Definition{}, fmt.Errorf("failed to decode applicable roles: %w", err)
	}

	return d, nil
}

func (r *kpiRepository) CreateDefinition(ctx context.Context, def kpi.Definition) (kpi.Definition, error) {
	q := GetQuerier(ctx, r.db)

	rolesJSON, err := json.Marshal(def.ApplicableRoles)
	if err != nil {
		return kpi.Definition{}, fmt.Errorf("failed to encode applicable roles: %w", err)
	}

	query := `
		INSERT INTO kpi_definitions (
			code, name, metric_type, calculation_method,
			target_value, min_value, max_value, weight, bonus_per_point, max_bonus,
			applicable_roles, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + definitionColumns

	created, err := scanDefinition(q.QueryRow(ctx, query,
		def.Code, def.Name, def.MetricType, def.Method,
		def.TargetValue, def.MinValue, def.MaxValue, def.Weight, def.BonusPerPoint, def.MaxBonus,
		rolesJSON, def.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uk_kpi_definition_code") {
			return kpi.Definition{}, kpi.ErrDefinitionCodeExists
		}
		return kpi.Definition{}, fmt.Errorf("failed to create kpi definition: %w", err)
	}

	return created, nil
}

func (r *kpiRepository) GetDefinitionByID(ctx context.Context, id string) (kpi.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + definitionColumns + ` FROM kpi_definitions WHERE id = $1`

	def, err := scanDefinition(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Definition{}, kpi.ErrDefinitionNotFound
		}
		return kpi.Definition{}, fmt.Errorf("failed to get kpi definition: %w", err)
	}

	return def, nil
}

func (r *kpiRepository) GetDefinitionByCode(ctx context.Context, code string) (kpi.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + definitionColumns + ` FROM kpi_definitions WHERE code = $1`

	def, err := scanDefinition(q.QueryRow(ctx, query, code))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Definition{}, kpi.ErrDefinitionNotFound
		}
		return kpi.Definition{}, fmt.Errorf("failed to get kpi definition: %w", err)
	}

	return def, nil
}

func (r *kpiRepository) ListDefinitions(ctx context.Context, activeOnly bool) ([]kpi.Definition, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + definitionColumns + ` FROM kpi_definitions`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi definitions: %w", err)
	}
	defer rows.Close()

	var defs []kpi.Definition
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kpi definition: %w", err)
		}
		defs = append(defs, def)
	}

	return defs, rows.Err()
}

func (r *kpiRepository) SetDefinitionActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE kpi_definitions SET is_active = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("failed to update kpi definition: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrDefinitionNotFound
	}

	return nil
}

// ========== ASSIGNMENTS ==========

const assignmentColumns = `id, employee_id, definition_id, target_override, weight_override,
		max_bonus_override, start_date, end_date, is_active, created_at, updated_at`

func scanAssignment(row pgx.Row) (kpi.Assignment, error) {
	var a kpi.Assignment
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.DefinitionID, &a.TargetOverride, &a.WeightOverride,
		&a.MaxBonusOverride, &a.StartDate, &a.EndDate, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return kpi.Assignment{}, err
	}
	return a, nil
}

func (r *kpiRepository) CreateAssignment(ctx context.Context, a kpi.Assignment) (kpi.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO kpi_assignments (
			employee_id, definition_id, target_override, weight_override,
			max_bonus_override, start_date, end_date, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + assignmentColumns

	created, err := scanAssignment(q.QueryRow(ctx, query,
		a.EmployeeID, a.DefinitionID, a.TargetOverride, a.WeightOverride,
		a.MaxBonusOverride, a.StartDate, a.EndDate, a.IsActive,
	))
	if err != nil {
		// Partial unique index scoped to is_active = true.
		if strings.Contains(err.Error(), "uk_kpi_assignment_active") {
			return kpi.Assignment{}, kpi.ErrAssignmentExists
		}
		return kpi.Assignment{}, fmt.Errorf("failed to create kpi assignment: %w", err)
	}

	return created, nil
}

func (r *kpiRepository) GetAssignmentByID(ctx context.Context, id string) (kpi.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM kpi_assignments WHERE id = $1`

	a, err := scanAssignment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Assignment{}, kpi.ErrAssignmentNotFound
		}
		return kpi.Assignment{}, fmt.Errorf("failed to get kpi assignment: %w", err)
	}

	return a, nil
}

func (r *kpiRepository) GetActiveAssignments(ctx context.Context, employeeID string, asOf time.Time) ([]kpi.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM kpi_assignments
		WHERE employee_id = $1
		  AND is_active = true
		  AND start_date <= $2
		  AND (end_date IS NULL OR end_date >= $2)
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list active kpi assignments: %w", err)
	}
	defer rows.Close()

	var assignments []kpi.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kpi assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

func (r *kpiRepository) GetActiveAssignment(ctx context.Context, employeeID, definitionID string, asOf time.Time) (kpi.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM kpi_assignments
		WHERE employee_id = $1
		  AND definition_id = $2
		  AND is_active = true
		  AND start_date <= $3
		  AND (end_date IS NULL OR end_date >= $3)
		LIMIT 1
	`

	a, err := scanAssignment(q.QueryRow(ctx, query, employeeID, definitionID, asOf))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Assignment{}, kpi.ErrAssignmentNotFound
		}
		return kpi.Assignment{}, fmt.Errorf("failed to get active kpi assignment: %w", err)
	}

	return a, nil
}

func (r *kpiRepository) DeactivateAssignment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE kpi_assignments SET is_active = false, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate kpi assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return kpi.ErrAssignmentNotFound
	}

	return nil
}

// ========== RESULTS ==========

const resultColumns = `id, employee_id, definition_id, period, period_year, period_month,
		target_value, actual_value, achievement_rate, bonus_earned, snapshot,
		created_at, updated_at`

func scanResult(row pgx.Row) (kpi.Result, error) {
	var res kpi.Result
	var snapshotJSON []byte

	err := row.Scan(
		&res.ID, &res.EmployeeID, &res.DefinitionID, &res.Period, &res.PeriodYear, &res.PeriodMonth,
		&res.TargetValue, &res.ActualValue, &res.AchievementRate, &res.BonusEarned, &snapshotJSON,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return kpi.Result{}, err
	}

	if err := json.Unmarshal(snapshotJSON, &res.Snapshot); err != nil {
		return kpi.Result{}, fmt.Errorf("failed to decode result snapshot: %w", err)
	}

	return res, nil
}

func (r *kpiRepository) UpsertResult(ctx context.Context, res kpi.Result) (kpi.Result, error) {
	q := GetQuerier(ctx, r.db)

	snapshotJSON, err := json.Marshal(res.Snapshot)
	if err != nil {
		return kpi.Result{}, fmt.Errorf("failed to encode result snapshot: %w", err)
	}

	// Re-recording a corrected actual overwrites the derived fields in place;
	// the (employee, definition, period) row stays unique.
	query := `
		INSERT INTO kpi_results (
			employee_id, definition_id, period, period_year, period_month,
			target_value, actual_value, achievement_rate, bonus_earned, snapshot
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT ON CONSTRAINT uk_kpi_result_period DO UPDATE SET
			target_value = EXCLUDED.target_value,
			actual_value = EXCLUDED.actual_value,
			achievement_rate = EXCLUDED.achievement_rate,
			bonus_earned = EXCLUDED.bonus_earned,
			snapshot = EXCLUDED.snapshot,
			updated_at = NOW()
		RETURNING ` + resultColumns

	upserted, err := scanResult(q.QueryRow(ctx, query,
		res.EmployeeID, res.DefinitionID, res.Period, res.PeriodYear, res.PeriodMonth,
		res.TargetValue, res.ActualValue, res.AchievementRate, res.BonusEarned, snapshotJSON,
	))
	if err != nil {
		return kpi.Result{}, fmt.Errorf("failed to upsert kpi result: %w", err)
	}

	return upserted, nil
}

func (r *kpiRepository) GetResult(ctx context.Context, employeeID, definitionID, periodKey string) (kpi.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + resultColumns + `
		FROM kpi_results
		WHERE employee_id = $1 AND definition_id = $2 AND period = $3
	`

	res, err := scanResult(q.QueryRow(ctx, query, employeeID, definitionID, periodKey))
	if err != nil {
		if err == pgx.ErrNoRows {
			return kpi.Result{}, kpi.ErrResultNotFound
		}
		return kpi.Result{}, fmt.Errorf("failed to get kpi result: %w", err)
	}

	return res, nil
}

func (r *kpiRepository) ListResultsByPeriod(ctx context.Context, employeeID string, year, month int) ([]kpi.Result, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + resultColumns + `
		FROM kpi_results
		WHERE employee_id = $1 AND period_year = $2 AND period_month = $3
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list kpi results: %w", err)
	}
	defer rows.Close()

	var results []kpi.Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kpi result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

func (r *kpiRepository) SumBonusByPeriod(ctx context.Context, employeeID string, year, month int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(bonus_earned), 0)
		FROM kpi_results
		WHERE employee_id = $1 AND period_year = $2 AND period_month = $3
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, year, month).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum kpi bonuses: %w", err)
	}

	return total, nil
}
