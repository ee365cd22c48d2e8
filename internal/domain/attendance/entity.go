package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one employee-day. The store enforces uniqueness on
// (employee_id, date); a day with no row at all counts as present for
// payroll purposes.
type Attendance struct {
	ID                  string
	EmployeeID          string
	Date                time.Time
	DayStatus           DayStatus
	AbsenceReason       *AbsenceReason // set only when DayStatus is absent
	OvertimeHours       decimal.Decimal
	TimeDelayMinutes    int
	NonTimeDelayMinutes int
	Notes               *string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNumber *string
}

type DayStatus string

const (
	DayStatusPresent DayStatus = "present"
	DayStatusAbsent  DayStatus = "absent"
	DayStatusLeave   DayStatus = "leave"
	DayStatusHoliday DayStatus = "holiday"
)

type AbsenceReason string

const (
	AbsenceWithNotice    AbsenceReason = "with_notice"
	AbsenceWithoutNotice AbsenceReason = "without_notice"
)
