package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/payroll"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/database"
)

const payrollRecordColumns = `pr.id, pr.employee_id, pr.period_year, pr.period_month,
		pr.present_days, pr.absent_with_notice_days, pr.absent_without_notice_days,
		pr.leave_days, pr.holiday_days, pr.days_due,
		pr.overtime_hours, pr.time_delay_minutes, pr.non_time_delay_minutes,
		pr.overtime_pay, pr.time_delay_deduction, pr.non_time_delay_deduction,
		pr.base_salary, pr.absence_deduction, pr.total_deductions, pr.total_bonuses,
		pr.total_advances, pr.net_salary, pr.last_working_day,
		pr.created_at, pr.updated_at, e.full_name, e.employee_number`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayrollRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.PeriodYear, &rec.PeriodMonth,
		&rec.PresentDays, &rec.AbsentWithNoticeDays, &rec.AbsentWithoutNoticeDays,
		&rec.LeaveDays, &rec.HolidayDays, &rec.DaysDue,
		&rec.OvertimeHours, &rec.TimeDelayMinutes, &rec.NonTimeDelayMinutes,
		&rec.OvertimePay, &rec.TimeDelayDeduction, &rec.NonTimeDelayDeduction,
		&rec.BaseSalary, &rec.AbsenceDeduction, &rec.TotalDeductions, &rec.TotalBonuses,
		&rec.TotalAdvances, &rec.NetSalary, &rec.LastWorkingDay,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.EmployeeNumber,
	)
	return rec, err
}

// UpsertRecord implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) UpsertRecord(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	// Records are a derived projection of attendance and adjustments, so a
	// second run for the same (employee, period) overwrites the first.
	query := `
		WITH upserted AS (
			INSERT INTO payroll_records (
				id, employee_id, period_year, period_month,
				present_days, absent_with_notice_days, absent_without_notice_days,
				leave_days, holiday_days, days_due,
				overtime_hours, time_delay_minutes, non_time_delay_minutes,
				overtime_pay, time_delay_deduction, non_time_delay_deduction,
				base_salary, absence_deduction, total_deductions, total_bonuses,
				total_advances, net_salary, last_working_day
			) VALUES (
				$1, $2, $3, $4,
				$5, $6, $7,
				$8, $9, $10,
				$11, $12, $13,
				$14, $15, $16,
				$17, $18, $19, $20,
				$21, $22, $23
			)
			ON CONFLICT (employee_id, period_year, period_month) DO UPDATE
			SET present_days = EXCLUDED.present_days,
				absent_with_notice_days = EXCLUDED.absent_with_notice_days,
				absent_without_notice_days = EXCLUDED.absent_without_notice_days,
				leave_days = EXCLUDED.leave_days,
				holiday_days = EXCLUDED.holiday_days,
				days_due = EXCLUDED.days_due,
				overtime_hours = EXCLUDED.overtime_hours,
				time_delay_minutes = EXCLUDED.time_delay_minutes,
				non_time_delay_minutes = EXCLUDED.non_time_delay_minutes,
				overtime_pay = EXCLUDED.overtime_pay,
				time_delay_deduction = EXCLUDED.time_delay_deduction,
				non_time_delay_deduction = EXCLUDED.non_time_delay_deduction,
				base_salary = EXCLUDED.base_salary,
				absence_deduction = EXCLUDED.absence_deduction,
				total_deductions = EXCLUDED.total_deductions,
				total_bonuses = EXCLUDED.total_bonuses,
				total_advances = EXCLUDED.total_advances,
				net_salary = EXCLUDED.net_salary,
				last_working_day = EXCLUDED.last_working_day,
				updated_at = NOW()
			RETURNING id, employee_id, period_year, period_month,
				present_days, absent_with_notice_days, absent_without_notice_days,
				leave_days, holiday_days, days_due,
				overtime_hours, time_delay_minutes, non_time_delay_minutes,
				overtime_pay, time_delay_deduction, non_time_delay_deduction,
				base_salary, absence_deduction, total_deductions, total_bonuses,
				total_advances, net_salary, last_working_day, created_at, updated_at
		)
		SELECT u.*, e.full_name, e.employee_number
		FROM upserted u
		JOIN employees e ON e.id = u.employee_id
	`

	saved, err := scanPayrollRecord(q.QueryRow(ctx, query,
		uuid.New().String(), rec.EmployeeID, rec.PeriodYear, rec.PeriodMonth,
		rec.PresentDays, rec.AbsentWithNoticeDays, rec.AbsentWithoutNoticeDays,
		rec.LeaveDays, rec.HolidayDays, rec.DaysDue,
		rec.OvertimeHours, rec.TimeDelayMinutes, rec.NonTimeDelayMinutes,
		rec.OvertimePay, rec.TimeDelayDeduction, rec.NonTimeDelayDeduction,
		rec.BaseSalary, rec.AbsenceDeduction, rec.TotalDeductions, rec.TotalBonuses,
		rec.TotalAdvances, rec.NetSalary, rec.LastWorkingDay,
	))
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to upsert payroll record for employee %s period %s: %w",
			rec.EmployeeID, rec.Period(), err)
	}
	return saved, nil
}

// GetRecordByID implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetRecordByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.id = $1
	`

	found, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record %s: %w", id, err)
	}
	return found, nil
}

// GetRecordByEmployeePeriod implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, period payroll.Period) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE pr.employee_id = $1 AND pr.period_year = $2 AND pr.period_month = $3
	`

	found, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, period.Year, int(period.Month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record for employee %s period %s: %w",
			employeeID, period, err)
	}
	return found, nil
}

// ListRecords implements payroll.PayrollRepository. Rows for employees
// terminated before the queried period are hidden from listings; their
// historical records stay in the table.
func (p *payrollRepositoryImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, p.db)

	conditions := []string{
		`(e.status <> 'terminated' OR e.termination_date IS NULL
			OR e.termination_date >= make_date(pr.period_year, pr.period_month, 1))`,
	}
	args := []interface{}{}
	argIdx := 1

	if filter.Period != nil {
		conditions = append(conditions, fmt.Sprintf("pr.period_year = $%d AND pr.period_month = $%d", argIdx, argIdx+1))
		args = append(args, filter.Period.Year, int(filter.Period.Month))
		argIdx += 2
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("pr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `
		SELECT COUNT(*)
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := `
		SELECT ` + payrollRecordColumns + `
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		WHERE ` + where +
		fmt.Sprintf(` ORDER BY pr.period_year DESC, pr.period_month DESC, e.employee_number ASC
		LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// DeleteRecord implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, p.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}

// GetSummary implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetSummary(ctx context.Context, period payroll.Period) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(base_salary), 0),
			COALESCE(SUM(absence_deduction), 0),
			COALESCE(SUM(overtime_pay), 0),
			COALESCE(SUM(total_deductions), 0),
			COALESCE(SUM(total_bonuses), 0),
			COALESCE(SUM(total_advances), 0),
			COALESCE(SUM(net_salary), 0)
		FROM payroll_records
		WHERE period_year = $1 AND period_month = $2
	`

	summary := payroll.PayrollSummaryResponse{Period: period.String()}
	err := q.QueryRow(ctx, query, period.Year, int(period.Month)).Scan(
		&summary.TotalEmployees, &summary.TotalBaseSalary, &summary.TotalAbsenceDeduction,
		&summary.TotalOvertimePay, &summary.TotalDeductions, &summary.TotalBonuses,
		&summary.TotalAdvances, &summary.TotalNetSalary,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to summarize payroll for %s: %w", period, err)
	}
	return summary, nil
}
