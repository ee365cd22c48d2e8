package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts the record or, when one already exists for the same
	// (employee_id, date), updates it in place.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	// GetByMonth returns every record dated within [monthStart, monthEnd],
	// for all employees, ordered by employee then date.
	GetByMonth(ctx context.Context, monthStart, monthEnd time.Time) ([]Attendance, error)
	Delete(ctx context.Context, id string) error
}
