package payroll

import (
	"testing"
	"time"

	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/attendance"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// April 2024: a 30-day month, so calendar day counts line up with the
// fixed 30-day rate divisor in the simple cases.
var april = Period{Year: 2024, Month: time.April}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtrOf(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func activeEmployee(salary int64) employee.Employee {
	return employee.Employee{
		ID:             "emp-1",
		EmployeeNumber: "1001",
		FullName:       "سالم الراشد",
		MonthlySalary:  decimal.NewFromInt(salary),
		DailyWorkHours: decimal.NewFromInt(8),
		HireDate:       datePtrOf(2020, time.January, 1),
		Status:         employee.StatusActive,
	}
}

func absentDay(d int, reason *attendance.AbsenceReason) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID:    "emp-1",
		Date:          date(2024, time.April, d),
		DayStatus:     attendance.DayStatusAbsent,
		AbsenceReason: reason,
	}
}

func presentDay(d int) attendance.Attendance {
	return attendance.Attendance{
		EmployeeID: "emp-1",
		Date:       date(2024, time.April, d),
		DayStatus:  attendance.DayStatusPresent,
	}
}

func reasonPtr(r attendance.AbsenceReason) *attendance.AbsenceReason { return &r }

func TestCalculate_FullMonthNoRecords(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	result := Calculate(emp, nil, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 30, result.DaysDue)
	assert.Equal(t, 30, result.PresentDays)
	assert.Equal(t, 0, result.AbsentWithNoticeDays)
	assert.Equal(t, 0, result.AbsentWithoutNoticeDays)
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(300000)),
		"net = %s, want 300000", result.NetSalary)
	assert.True(t, result.BaseSalary.Equal(decimal.NewFromInt(300000)))
	assert.Nil(t, result.LastWorkingDay)
}

func TestCalculate_FullMonthIn31DayMonth(t *testing.T) {
	t.Parallel()

	// daysDue stays at the fixed 30 even when the calendar month is
	// longer; the month length never enters the ordinary case.
	march := Period{Year: 2024, Month: time.March}
	result := Calculate(activeEmployee(300000), nil, nil, march)

	require.NotNil(t, result)
	assert.Equal(t, 30, result.DaysDue)
	assert.Equal(t, 30, result.PresentDays)
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(300000)))
}

func TestCalculate_UnrecordedDaysCountAsPresent(t *testing.T) {
	t.Parallel()

	// A single absent record; the other 29 days have no record at all
	// and must not be penalized.
	records := []attendance.Attendance{absentDay(5, reasonPtr(attendance.AbsenceWithNotice))}
	result := Calculate(activeEmployee(300000), records, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 1, result.AbsentWithNoticeDays)
	assert.Equal(t, 29, result.PresentDays)
	assert.True(t, result.AbsenceDeduction.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(290000)))
}

func TestCalculate_AbsentWithoutReasonCountsAsWithNotice(t *testing.T) {
	t.Parallel()

	records := []attendance.Attendance{absentDay(5, nil)}
	result := Calculate(activeEmployee(300000), records, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 1, result.AbsentWithNoticeDays)
	assert.Equal(t, 0, result.AbsentWithoutNoticeDays)
}

func TestCalculate_WithoutNoticePenaltyIsDouble(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)

	withNotice := Calculate(emp,
		[]attendance.Attendance{absentDay(5, reasonPtr(attendance.AbsenceWithNotice))}, nil, april)
	withoutNotice := Calculate(emp,
		[]attendance.Attendance{absentDay(5, reasonPtr(attendance.AbsenceWithoutNotice))}, nil, april)

	require.NotNil(t, withNotice)
	require.NotNil(t, withoutNotice)
	assert.True(t, withoutNotice.AbsenceDeduction.Equal(withNotice.AbsenceDeduction.Mul(decimal.NewFromInt(2))),
		"without-notice deduction %s should be double with-notice %s",
		withoutNotice.AbsenceDeduction, withNotice.AbsenceDeduction)
}

func TestCalculate_TwoAbsencesWithoutNoticeScenario(t *testing.T) {
	t.Parallel()

	// 28 present + 2 absent without notice, salary 300000:
	// penalty days = 4, deduction = 40000, net = 260000.
	var records []attendance.Attendance
	for d := 1; d <= 28; d++ {
		records = append(records, presentDay(d))
	}
	records = append(records,
		absentDay(29, reasonPtr(attendance.AbsenceWithoutNotice)),
		absentDay(30, reasonPtr(attendance.AbsenceWithoutNotice)),
	)

	result := Calculate(activeEmployee(300000), records, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 2, result.AbsentWithoutNoticeDays)
	assert.True(t, result.AbsenceDeduction.Equal(decimal.NewFromInt(40000)),
		"absence deduction = %s", result.AbsenceDeduction)
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(260000)),
		"net = %s", result.NetSalary)
	assert.Equal(t, 26, result.PresentDays)
}

func TestCalculate_Idempotent(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	records := []attendance.Attendance{
		absentDay(3, reasonPtr(attendance.AbsenceWithoutNotice)),
		presentDay(4),
	}
	adjustments := []Adjustment{
		{Kind: AdjustmentBonus, Amount: decimal.NewFromInt(5000)},
	}

	first := Calculate(emp, records, adjustments, april)
	second := Calculate(emp, records, adjustments, april)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.DaysDue, second.DaysDue)
	assert.Equal(t, first.PresentDays, second.PresentDays)
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.True(t, first.BaseSalary.Equal(second.BaseSalary))
	assert.True(t, first.AbsenceDeduction.Equal(second.AbsenceDeduction))
}

func TestCalculate_NetSalaryFlooredAtZero(t *testing.T) {
	t.Parallel()

	adjustments := []Adjustment{
		{Kind: AdjustmentDeduction, Amount: decimal.NewFromInt(500000)},
	}
	result := Calculate(activeEmployee(300000), nil, adjustments, april)

	require.NotNil(t, result)
	assert.True(t, result.NetSalary.Equal(decimal.Zero), "net = %s", result.NetSalary)
	assert.True(t, result.TotalDeductions.Equal(decimal.NewFromInt(500000)))
}

func TestCalculate_ProrationMidMonthHire(t *testing.T) {
	t.Parallel()

	// Hired on April 16: workable days 16..30 inclusive = 15,
	// daily rate 300000/30 = 10000, base = 150000.
	emp := activeEmployee(300000)
	emp.HireDate = datePtrOf(2024, time.April, 16)

	result := Calculate(emp, nil, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 15, result.DaysDue)
	assert.Equal(t, 15, result.PresentDays)
	assert.True(t, result.BaseSalary.Equal(decimal.NewFromInt(150000)),
		"base = %s", result.BaseSalary)
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(150000)))
}

func TestCalculate_HireOnMonthStartIsNotProrated(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	emp.HireDate = datePtrOf(2024, time.April, 1)

	result := Calculate(emp, nil, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 30, result.DaysDue)
	assert.True(t, result.BaseSalary.Equal(decimal.NewFromInt(300000)))
}

func TestCalculate_AttendanceBeforeHireDateIgnored(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	emp.HireDate = datePtrOf(2024, time.April, 16)

	// Absences dated before hire must not reduce pay.
	records := []attendance.Attendance{
		absentDay(2, reasonPtr(attendance.AbsenceWithoutNotice)),
		absentDay(10, reasonPtr(attendance.AbsenceWithoutNotice)),
	}
	result := Calculate(emp, records, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 0, result.AbsentWithoutNoticeDays)
	assert.True(t, result.AbsenceDeduction.Equal(decimal.Zero))
}

func TestCalculate_TerminatedMidMonth(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	emp.Status = employee.StatusTerminated
	emp.TerminationDate = datePtrOf(2024, time.April, 10)

	// Attendance after the termination date is ignored even if marked.
	records := []attendance.Attendance{
		presentDay(8),
		absentDay(15, reasonPtr(attendance.AbsenceWithoutNotice)),
	}
	result := Calculate(emp, records, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 10, result.DaysDue)
	assert.Equal(t, 0, result.AbsentWithoutNoticeDays)
	require.NotNil(t, result.LastWorkingDay)
	assert.Equal(t, date(2024, time.April, 10), *result.LastWorkingDay)
}

func TestCalculate_HiredAndTerminatedSameMonth(t *testing.T) {
	t.Parallel()

	// Hired April 10, terminated April 20. The termination cut decides
	// daysDue (counted from the month start), while the base salary still
	// prorates from the hire date to the month end.
	emp := activeEmployee(300000)
	emp.HireDate = datePtrOf(2024, time.April, 10)
	emp.Status = employee.StatusTerminated
	emp.TerminationDate = datePtrOf(2024, time.April, 20)

	result := Calculate(emp, nil, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 20, result.DaysDue)
	assert.Equal(t, 20, result.PresentDays)
	// 10000/day over the 21 workable days 10..30.
	assert.True(t, result.BaseSalary.Equal(decimal.NewFromInt(210000)),
		"base = %s", result.BaseSalary)
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(210000)))
	require.NotNil(t, result.LastWorkingDay)
	assert.Equal(t, date(2024, time.April, 20), *result.LastWorkingDay)
}

func TestCalculate_TerminatedBeforeMonthSkipped(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	emp.Status = employee.StatusTerminated
	emp.TerminationDate = datePtrOf(2024, time.March, 20)

	assert.Nil(t, Calculate(emp, nil, nil, april))
}

func TestCalculate_HiredAfterMonthSkipped(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	emp.HireDate = datePtrOf(2024, time.May, 1)

	assert.Nil(t, Calculate(emp, nil, nil, april))
}

func TestCalculate_SuspendedWithoutSalaryBeforeMonthSkipped(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	emp.Status = employee.StatusSuspended
	suspType := employee.SuspensionWithoutSalary
	emp.SuspensionType = &suspType
	emp.SuspensionDate = datePtrOf(2024, time.March, 15)

	assert.Nil(t, Calculate(emp, nil, nil, april))
}

func TestCalculate_SuspendedWithSalaryBeforeMonthStillPaid(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	emp.Status = employee.StatusSuspended
	suspType := employee.SuspensionWithSalary
	emp.SuspensionType = &suspType
	emp.SuspensionDate = datePtrOf(2024, time.March, 15)

	result := Calculate(emp, nil, nil, april)

	require.NotNil(t, result)
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(300000)))
	assert.Nil(t, result.LastWorkingDay)
}

func TestCalculate_SuspendedMidMonth(t *testing.T) {
	t.Parallel()

	emp := activeEmployee(300000)
	emp.Status = employee.StatusSuspended
	suspType := employee.SuspensionWithoutSalary
	emp.SuspensionType = &suspType
	emp.SuspensionDate = datePtrOf(2024, time.April, 20)

	result := Calculate(emp, nil, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 20, result.DaysDue)
	require.NotNil(t, result.LastWorkingDay)
	assert.Equal(t, date(2024, time.April, 20), *result.LastWorkingDay)
}

func TestCalculate_OvertimeAndDelayRates(t *testing.T) {
	t.Parallel()

	// salary 240000, 8h days: hourly = 1000, minute ≈ 16.667.
	emp := activeEmployee(240000)

	day := presentDay(10)
	day.OvertimeHours = decimal.NewFromInt(1)
	day.TimeDelayMinutes = 30
	day.NonTimeDelayMinutes = 10

	result := Calculate(emp, []attendance.Attendance{day}, nil, april)

	require.NotNil(t, result)
	assert.True(t, result.OvertimePay.Equal(decimal.NewFromInt(1000)),
		"overtime pay = %s", result.OvertimePay)
	assert.True(t, result.TimeDelayDeduction.Equal(decimal.NewFromInt(500)),
		"time delay deduction = %s", result.TimeDelayDeduction)
	// Non-clock lateness costs double per minute: 10*2*16.667 ≈ 333.33.
	assert.InDelta(t, 333.33, result.NonTimeDelayDeduction.InexactFloat64(), 0.01)

	expectedNet := 240000.0 + 1000 - 500 - result.NonTimeDelayDeduction.InexactFloat64()
	assert.InDelta(t, expectedNet, result.NetSalary.InexactFloat64(), 0.01)
}

func TestCalculate_TimeAdjustmentsOnlyOnPresentDays(t *testing.T) {
	t.Parallel()

	// Overtime recorded outside the effective range is not paid.
	emp := activeEmployee(240000)
	emp.Status = employee.StatusTerminated
	emp.TerminationDate = datePtrOf(2024, time.April, 10)

	lateOvertime := presentDay(20)
	lateOvertime.OvertimeHours = decimal.NewFromInt(5)

	result := Calculate(emp, []attendance.Attendance{lateOvertime}, nil, april)

	require.NotNil(t, result)
	assert.True(t, result.OvertimePay.Equal(decimal.Zero))
	assert.True(t, result.OvertimeHours.Equal(decimal.Zero))
}

func TestCalculate_AdjustmentTotalsByKind(t *testing.T) {
	t.Parallel()

	adjustments := []Adjustment{
		{Kind: AdjustmentBonus, Amount: decimal.NewFromInt(20000), Description: "مكافأة"},
		{Kind: AdjustmentBonus, Amount: decimal.NewFromInt(5000)},
		{Kind: AdjustmentDeduction, Amount: decimal.NewFromInt(10000)},
		{Kind: AdjustmentAdvance, Amount: decimal.NewFromInt(30000), Description: "سلفة"},
	}
	result := Calculate(activeEmployee(300000), nil, adjustments, april)

	require.NotNil(t, result)
	assert.True(t, result.TotalBonuses.Equal(decimal.NewFromInt(25000)))
	assert.True(t, result.TotalDeductions.Equal(decimal.NewFromInt(10000)))
	assert.True(t, result.TotalAdvances.Equal(decimal.NewFromInt(30000)))
	// 300000 + 25000 - 10000 - 30000
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(285000)),
		"net = %s", result.NetSalary)
}

func TestCalculate_LeaveAndHolidayNotPenalized(t *testing.T) {
	t.Parallel()

	records := []attendance.Attendance{
		{EmployeeID: "emp-1", Date: date(2024, time.April, 3), DayStatus: attendance.DayStatusLeave},
		{EmployeeID: "emp-1", Date: date(2024, time.April, 4), DayStatus: attendance.DayStatusHoliday},
	}
	result := Calculate(activeEmployee(300000), records, nil, april)

	require.NotNil(t, result)
	assert.Equal(t, 1, result.LeaveDays)
	assert.Equal(t, 1, result.HolidayDays)
	assert.Equal(t, 28, result.PresentDays)
	assert.True(t, result.NetSalary.Equal(decimal.NewFromInt(300000)))
}

func TestDeriveRates(t *testing.T) {
	t.Parallel()

	rates := DeriveRates(decimal.NewFromInt(300000), decimal.NewFromInt(8))
	assert.True(t, rates.Daily.Equal(decimal.NewFromInt(10000)))
	assert.True(t, rates.Hourly.Equal(decimal.NewFromInt(1250)))
	assert.InDelta(t, 20.83, rates.Minute.InexactFloat64(), 0.01)

	// Zero work hours falls back to the 8h default instead of dividing
	// by zero.
	fallback := DeriveRates(decimal.NewFromInt(240000), decimal.Zero)
	assert.True(t, fallback.Hourly.Equal(decimal.NewFromInt(1000)))
}
