package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tokosakti/backoffice-go/internal/domain/salary"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.Repository {
	return &salaryRepository{db: db}
}

const salaryColumns = `id, employee_id, base_salary, max_bonus, allowances, deductions,
		effective_from, effective_to, is_active, created_at, updated_at`

func scanSalaryConfiguration(row pgx.Row) (salary.SalaryConfiguration, error) {
	var c salary.SalaryConfiguration
	var allowancesJSON, deductionsJSON []byte

	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.BaseSalary, &c.MaxBonus, &allowancesJSON, &deductionsJSON,
		&c.EffectiveFrom, &c.EffectiveTo, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return salary.SalaryConfiguration{}, err
	}

	if err := json.Unmarshal(allowancesJSON, &c.Allowances); err != nil {
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to decode allowances: %w", err)
	}
	if err := json.Unmarshal(deductionsJSON, &c.Deductions); err != nil {
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to decode deductions: %w", err)
	}

	return c, nil
}

func (r *salaryRepository) Create(ctx context.Context, cfg salary.SalaryConfiguration) (salary.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	allowancesJSON, err := json.Marshal(cfg.Allowances)
	if err != nil {
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to encode allowances: %w", err)
	}
	deductionsJSON, err := json.Marshal(cfg.Deductions)
	if err != nil {
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to encode deductions: %w", err)
	}

	query := `
		INSERT INTO salary_configurations (
			employee_id, base_salary, max_bonus, allowances, deductions,
			effective_from, effective_to, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + salaryColumns

	created, err := scanSalaryConfiguration(q.QueryRow(ctx, query,
		cfg.EmployeeID, cfg.BaseSalary, cfg.MaxBonus, allowancesJSON, deductionsJSON,
		cfg.EffectiveFrom, cfg.EffectiveTo, cfg.IsActive,
	))
	if err != nil {
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to create salary configuration: %w", err)
	}

	return created, nil
}

func (r *salaryRepository) GetByID(ctx context.Context, id string) (salary.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salary_configurations WHERE id = $1`

	cfg, err := scanSalaryConfiguration(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryConfiguration{}, salary.ErrConfigurationNotFound
		}
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to get salary configuration: %w", err)
	}

	return cfg, nil
}

func (r *salaryRepository) GetCurrentByEmployee(ctx context.Context, employeeID string, asOf time.Time) (salary.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	// Interval-overlap query: the window is [effective_from, effective_to),
	// effective_to NULL meaning still open.
	query := `
		SELECT ` + salaryColumns + `
		FROM salary_configurations
		WHERE employee_id = $1
		  AND is_active = true
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to > $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	cfg, err := scanSalaryConfiguration(q.QueryRow(ctx, query, employeeID, asOf))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryConfiguration{}, salary.ErrNoCurrentConfiguration
		}
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to get current salary configuration: %w", err)
	}

	return cfg, nil
}

func (r *salaryRepository) GetOpenByEmployee(ctx context.Context, employeeID string) (salary.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_configurations
		WHERE employee_id = $1
		  AND is_active = true
		  AND effective_to IS NULL
		LIMIT 1
	`

	cfg, err := scanSalaryConfiguration(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryConfiguration{}, salary.ErrNoCurrentConfiguration
		}
		return salary.SalaryConfiguration{}, fmt.Errorf("failed to get open salary configuration: %w", err)
	}

	return cfg, nil
}

func (r *salaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]salary.SalaryConfiguration, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_configurations
		WHERE employee_id = $1
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary configurations: %w", err)
	}
	defer rows.Close()

	var configs []salary.SalaryConfiguration
	for rows.Next() {
		cfg, err := scanSalaryConfiguration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary configuration: %w", err)
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

func (r *salaryRepository) CloseCurrent(ctx context.Context, employeeID string, closeAt time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_configurations
		SET effective_to = $2, updated_at = NOW()
		WHERE employee_id = $1
		  AND is_active = true
		  AND effective_to IS NULL
	`

	tag, err := q.Exec(ctx, query, employeeID, closeAt)
	if err != nil {
		return 0, fmt.Errorf("failed to close current salary configuration: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *salaryRepository) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_configurations
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate salary configuration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrConfigurationNotFound
	}

	return nil
}
