package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/attendance"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.DayStatus, &att.AbsenceReason,
		&att.OvertimeHours, &att.TimeDelayMinutes, &att.NonTimeDelayMinutes, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName, &att.EmployeeNumber,
	)
	return att, err
}

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// One row per employee-day: re-marking a day replaces it wholesale.
	query := `
		WITH upserted AS (
			INSERT INTO attendance_records (
				id, employee_id, date, day_status, absence_reason,
				overtime_hours, time_delay_minutes, non_time_delay_minutes, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (employee_id, date) DO UPDATE
			SET day_status = EXCLUDED.day_status,
				absence_reason = EXCLUDED.absence_reason,
				overtime_hours = EXCLUDED.overtime_hours,
				time_delay_minutes = EXCLUDED.time_delay_minutes,
				non_time_delay_minutes = EXCLUDED.non_time_delay_minutes,
				notes = EXCLUDED.notes,
				updated_at = NOW()
			RETURNING id, employee_id, date, day_status, absence_reason,
				overtime_hours, time_delay_minutes, non_time_delay_minutes, notes,
				created_at, updated_at
		)
		SELECT u.id, u.employee_id, u.date, u.day_status, u.absence_reason,
			u.overtime_hours, u.time_delay_minutes, u.non_time_delay_minutes, u.notes,
			u.created_at, u.updated_at, e.full_name, e.employee_number
		FROM upserted u
		JOIN employees e ON e.id = u.employee_id
	`

	saved, err := scanAttendance(q.QueryRow(ctx, query,
		uuid.New().String(), att.EmployeeID, att.Date, att.DayStatus, att.AbsenceReason,
		att.OvertimeHours, att.TimeDelayMinutes, att.NonTimeDelayMinutes, att.Notes,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance for employee %s on %s: %w",
			att.EmployeeID, att.Date.Format("2006-01-02"), err)
	}
	return saved, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.day_status, ar.absence_reason,
			ar.overtime_hours, ar.time_delay_minutes, ar.non_time_delay_minutes, ar.notes,
			ar.created_at, ar.updated_at, e.full_name, e.employee_number
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.id = $1
	`

	found, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance %s: %w", id, err)
	}
	return found, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("ar.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		monthStart, err := time.Parse("2006-01", *filter.Month)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid month filter %q: %w", *filter.Month, err)
		}
		conditions = append(conditions, fmt.Sprintf("ar.date >= $%d AND ar.date < $%d", argIdx, argIdx+1))
		args = append(args, monthStart, monthStart.AddDate(0, 1, 0))
		argIdx += 2
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_records ar WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.day_status, ar.absence_reason,
			ar.overtime_hours, ar.time_delay_minutes, ar.non_time_delay_minutes, ar.notes,
			ar.created_at, ar.updated_at, e.full_name, e.employee_number
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ` + where +
		fmt.Sprintf(" ORDER BY ar.date DESC, e.employee_number ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, att)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByMonth(ctx context.Context, monthStart, monthEnd time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.day_status, ar.absence_reason,
			ar.overtime_hours, ar.time_delay_minutes, ar.non_time_delay_minutes, ar.notes,
			ar.created_at, ar.updated_at, e.full_name, e.employee_number
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.date >= $1 AND ar.date <= $2
		ORDER BY ar.employee_id, ar.date
	`

	rows, err := q.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance for month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, att)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
