package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentKind enum
type AdjustmentKind string

const (
	AdjustmentDeduction AdjustmentKind = "deduction"
	AdjustmentBonus     AdjustmentKind = "bonus"
	AdjustmentAdvance   AdjustmentKind = "advance"
)

// Adjustment - an ad hoc financial entry against one employee and month
type Adjustment struct {
	ID          string
	EmployeeID  string
	PeriodYear  int
	PeriodMonth int
	Kind        AdjustmentKind
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNumber *string
}

func (a Adjustment) Period() Period {
	return Period{Year: a.PeriodYear, Month: time.Month(a.PeriodMonth)}
}

// Result is the calculator's output for one employee and month. It is a
// derived projection: recomputing with the same inputs yields the same
// values, and persisted rows are always overwritten, never hand-edited.
type Result struct {
	// Attendance tallies
	PresentDays             int
	AbsentWithNoticeDays    int
	AbsentWithoutNoticeDays int
	LeaveDays               int
	HolidayDays             int
	DaysDue                 int

	// Time adjustments
	OvertimeHours       decimal.Decimal
	TimeDelayMinutes    int
	NonTimeDelayMinutes int

	// Monetary
	OvertimePay           decimal.Decimal
	TimeDelayDeduction    decimal.Decimal
	NonTimeDelayDeduction decimal.Decimal
	BaseSalary            decimal.Decimal
	AbsenceDeduction      decimal.Decimal
	TotalDeductions       decimal.Decimal
	TotalBonuses          decimal.Decimal
	TotalAdvances         decimal.Decimal
	NetSalary             decimal.Decimal

	// Set when the employee's status changed during the month
	LastWorkingDay *time.Time
}

// PayrollRecord - one persisted Result, keyed uniquely by (employee, period)
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	PeriodYear  int
	PeriodMonth int
	Result
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName   *string
	EmployeeNumber *string
}

func (r PayrollRecord) Period() Period {
	return Period{Year: r.PeriodYear, Month: time.Month(r.PeriodMonth)}
}
