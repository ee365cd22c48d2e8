package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/payroll"
)

const adjustmentColumns = `a.id, a.employee_id, a.period_year, a.period_month, a.kind,
		a.amount, a.description, a.created_at, a.updated_at, e.full_name, e.employee_number`

func scanAdjustment(row pgx.Row) (payroll.Adjustment, error) {
	var adj payroll.Adjustment
	err := row.Scan(
		&adj.ID, &adj.EmployeeID, &adj.PeriodYear, &adj.PeriodMonth, &adj.Kind,
		&adj.Amount, &adj.Description, &adj.CreatedAt, &adj.UpdatedAt,
		&adj.EmployeeName, &adj.EmployeeNumber,
	)
	return adj, err
}

// CreateAdjustment implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) CreateAdjustment(ctx context.Context, adj payroll.Adjustment) (payroll.Adjustment, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		WITH inserted AS (
			INSERT INTO payroll_adjustments (
				id, employee_id, period_year, period_month, kind, amount, description
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, employee_id, period_year, period_month, kind, amount, description,
				created_at, updated_at
		)
		SELECT i.*, e.full_name, e.employee_number
		FROM inserted i
		JOIN employees e ON e.id = i.employee_id
	`

	created, err := scanAdjustment(q.QueryRow(ctx, query,
		uuid.New().String(), adj.EmployeeID, adj.PeriodYear, adj.PeriodMonth,
		adj.Kind, adj.Amount, adj.Description,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return payroll.Adjustment{}, payroll.ErrEmployeeNotFound
		}
		return payroll.Adjustment{}, fmt.Errorf("failed to create adjustment for employee %s: %w", adj.EmployeeID, err)
	}
	return created, nil
}

// GetAdjustmentByID implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetAdjustmentByID(ctx context.Context, id string) (payroll.Adjustment, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM payroll_adjustments a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	found, err := scanAdjustment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Adjustment{}, payroll.ErrAdjustmentNotFound
		}
		return payroll.Adjustment{}, fmt.Errorf("failed to get adjustment %s: %w", id, err)
	}
	return found, nil
}

// ListAdjustments implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListAdjustments(ctx context.Context, filter payroll.AdjustmentFilter) ([]payroll.Adjustment, int64, error) {
	q := GetQuerier(ctx, p.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Period != nil {
		conditions = append(conditions, fmt.Sprintf("a.period_year = $%d AND a.period_month = $%d", argIdx, argIdx+1))
		args = append(args, filter.Period.Year, int(filter.Period.Month))
		argIdx += 2
	}
	if filter.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("a.kind = $%d", argIdx))
		args = append(args, *filter.Kind)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM payroll_adjustments a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count adjustments: %w", err)
	}

	query := `
		SELECT ` + adjustmentColumns + `
		FROM payroll_adjustments a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + where +
		fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []payroll.Adjustment
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, 0, err
		}
		adjustments = append(adjustments, adj)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return adjustments, total, nil
}

// GetAdjustmentsByPeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetAdjustmentsByPeriod(ctx context.Context, period payroll.Period) ([]payroll.Adjustment, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + adjustmentColumns + `
		FROM payroll_adjustments a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.period_year = $1 AND a.period_month = $2
		ORDER BY a.employee_id, a.created_at
	`

	rows, err := q.Query(ctx, query, period.Year, int(period.Month))
	if err != nil {
		return nil, fmt.Errorf("failed to load adjustments for %s: %w", period, err)
	}
	defer rows.Close()

	var adjustments []payroll.Adjustment
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return adjustments, nil
}

// DeleteAdjustment implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) DeleteAdjustment(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_adjustments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete adjustment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrAdjustmentNotFound
	}
	return nil
}
