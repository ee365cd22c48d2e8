package payroll

import (
	"time"

	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/attendance"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// StandardMonthDays is the fixed divisor for all salary rate math. Day
// counting for partial months uses real calendar days while every rate
// divides by 30; the asymmetry is a product rule, not an accident.
const StandardMonthDays = 30

var (
	standardMonth  = decimal.NewFromInt(StandardMonthDays)
	minutesPerHour = decimal.NewFromInt(60)
	two            = decimal.NewFromInt(2)
)

// Rates are the per-day/hour/minute monetary rates derived from a
// monthly salary.
type Rates struct {
	Daily  decimal.Decimal
	Hourly decimal.Decimal
	Minute decimal.Decimal
}

func DeriveRates(monthlySalary, dailyWorkHours decimal.Decimal) Rates {
	if !dailyWorkHours.IsPositive() {
		dailyWorkHours = employee.DefaultDailyWorkHours
	}
	hourly := monthlySalary.Div(standardMonth.Mul(dailyWorkHours))
	return Rates{
		Daily:  monthlySalary.Div(standardMonth),
		Hourly: hourly,
		Minute: hourly.Div(minutesPerHour),
	}
}

// Calculate derives one employee's payslip for the given month from the
// employee profile, the month's attendance records and the month's
// adjustment entries. It is pure: no I/O, no clock, and identical inputs
// always produce an identical Result.
//
// A nil return means the employee was not on payroll that month and no
// record should be produced: hired after the month ended, terminated
// before it started, or suspended without salary before it started.
//
// Days with no attendance record count as present; only recorded
// absences reduce pay.
func Calculate(emp employee.Employee, records []attendance.Attendance, adjustments []Adjustment, period Period) *Result {
	monthStart := period.Start()
	monthEnd := period.End()

	hire := datePtr(emp.HireDate)
	termination := datePtr(emp.TerminationDate)
	suspension := datePtr(emp.SuspensionDate)

	if hire != nil && hire.After(monthEnd) {
		return nil
	}
	if emp.Status == employee.StatusTerminated && termination != nil && termination.Before(monthStart) {
		return nil
	}
	if emp.Status == employee.StatusSuspended &&
		emp.SuspensionType != nil && *emp.SuspensionType == employee.SuspensionWithoutSalary &&
		suspension != nil && suspension.Before(monthStart) {
		return nil
	}

	// Effective range: the days of the month this employee is on payroll.
	effectiveStart := monthStart
	if hire != nil && hire.After(effectiveStart) {
		effectiveStart = *hire
	}

	effectiveEnd := monthEnd
	var lastWorkingDay *time.Time
	switch {
	case emp.Status == employee.StatusTerminated && termination != nil && within(*termination, monthStart, monthEnd):
		effectiveEnd = *termination
		lastWorkingDay = termination
	case emp.Status == employee.StatusSuspended && suspension != nil && within(*suspension, monthStart, monthEnd):
		effectiveEnd = *suspension
		lastWorkingDay = suspension
	}

	var (
		absentWithNotice    int
		absentWithoutNotice int
		leaveDays           int
		holidayDays         int
		timeDelayMinutes    int
		nonTimeDelayMinutes int
		overtimeHours       = decimal.Zero
	)

	for _, rec := range records {
		d := dateOf(rec.Date)
		if d.Before(effectiveStart) || d.After(effectiveEnd) {
			continue
		}
		if hire != nil && d.Before(*hire) {
			continue
		}

		switch rec.DayStatus {
		case attendance.DayStatusAbsent:
			// No reason recorded counts as with-notice.
			if rec.AbsenceReason != nil && *rec.AbsenceReason == attendance.AbsenceWithoutNotice {
				absentWithoutNotice++
			} else {
				absentWithNotice++
			}
		case attendance.DayStatusLeave:
			leaveDays++
		case attendance.DayStatusHoliday:
			holidayDays++
		case attendance.DayStatusPresent:
			overtimeHours = overtimeHours.Add(rec.OvertimeHours)
			timeDelayMinutes += rec.TimeDelayMinutes
			nonTimeDelayMinutes += rec.NonTimeDelayMinutes
		}
	}

	// A without-notice absence costs two penalty-days, with-notice one.
	penaltyDays := absentWithNotice + 2*absentWithoutNotice

	daysDue := StandardMonthDays
	if effectiveEnd.Before(monthEnd) {
		daysDue = inclusiveDays(monthStart, effectiveEnd)
	} else if hire != nil && hire.After(monthStart) {
		daysDue = inclusiveDays(*hire, monthEnd)
	}

	rates := DeriveRates(emp.MonthlySalary, emp.DailyWorkHours)

	baseSalary := emp.MonthlySalary
	if hire != nil && hire.After(monthStart) && !hire.After(monthEnd) {
		workableDays := inclusiveDays(*hire, monthEnd)
		if workableDays > 0 && workableDays <= StandardMonthDays {
			baseSalary = rates.Daily.Mul(decimal.NewFromInt(int64(workableDays)))
		}
	}

	absenceDeduction := rates.Daily.Mul(decimal.NewFromInt(int64(penaltyDays)))
	overtimePay := overtimeHours.Mul(rates.Hourly)
	timeDelayDeduction := decimal.NewFromInt(int64(timeDelayMinutes)).Mul(rates.Minute)
	// Non-clock lateness is penalized at double the per-minute rate.
	nonTimeDelayDeduction := decimal.NewFromInt(int64(nonTimeDelayMinutes)).Mul(two).Mul(rates.Minute)

	totalDeductions := decimal.Zero
	totalBonuses := decimal.Zero
	totalAdvances := decimal.Zero
	for _, adj := range adjustments {
		switch adj.Kind {
		case AdjustmentDeduction:
			totalDeductions = totalDeductions.Add(adj.Amount)
		case AdjustmentBonus:
			totalBonuses = totalBonuses.Add(adj.Amount)
		case AdjustmentAdvance:
			totalAdvances = totalAdvances.Add(adj.Amount)
		}
	}

	netSalary := baseSalary.Sub(absenceDeduction).
		Add(overtimePay).
		Add(totalBonuses).
		Sub(timeDelayDeduction).
		Sub(nonTimeDelayDeduction).
		Sub(totalDeductions).
		Sub(totalAdvances)
	if netSalary.IsNegative() {
		netSalary = decimal.Zero
	}

	// Unrecorded days count as present, so presence is derived from what
	// is left of the due days rather than counted directly.
	presentDays := daysDue - penaltyDays - leaveDays - holidayDays

	return &Result{
		PresentDays:             presentDays,
		AbsentWithNoticeDays:    absentWithNotice,
		AbsentWithoutNoticeDays: absentWithoutNotice,
		LeaveDays:               leaveDays,
		HolidayDays:             holidayDays,
		DaysDue:                 daysDue,
		OvertimeHours:           overtimeHours,
		TimeDelayMinutes:        timeDelayMinutes,
		NonTimeDelayMinutes:     nonTimeDelayMinutes,
		OvertimePay:             overtimePay,
		TimeDelayDeduction:      timeDelayDeduction,
		NonTimeDelayDeduction:   nonTimeDelayDeduction,
		BaseSalary:              baseSalary,
		AbsenceDeduction:        absenceDeduction,
		TotalDeductions:         totalDeductions,
		TotalBonuses:            totalBonuses,
		TotalAdvances:           totalAdvances,
		NetSalary:               netSalary,
		LastWorkingDay:          lastWorkingDay,
	}
}

// dateOf truncates to a UTC calendar day so comparisons ignore the time
// component and zone of stored values.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func datePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := dateOf(*t)
	return &d
}

func within(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// inclusiveDays counts calendar days from start to end, both included.
// Arguments must already be day-truncated.
func inclusiveDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
