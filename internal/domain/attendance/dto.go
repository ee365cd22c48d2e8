package attendance

import (
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// legacyAbsentWithoutNotice is the combined status+reason string older
// clients send. It is folded into {absent, without_notice} here, before
// anything downstream sees the value.
const legacyAbsentWithoutNotice = "absent_without_notice"

// MarkDayRequest creates or replaces the attendance entry for one
// employee-day. A duplicate (employee, date) resolves by update-in-place.
type MarkDayRequest struct {
	EmployeeID          string           `json:"employee_id"`
	Date                string           `json:"date"` // YYYY-MM-DD
	DayStatus           string           `json:"day_status"`
	AbsenceReason       *string          `json:"absence_reason,omitempty"`
	OvertimeHours       *decimal.Decimal `json:"overtime_hours,omitempty"`
	TimeDelayMinutes    *int             `json:"time_delay_minutes,omitempty"`
	NonTimeDelayMinutes *int             `json:"non_time_delay_minutes,omitempty"`
	Notes               *string          `json:"notes,omitempty"`
}

// Normalize maps accepted wire representations onto the canonical
// {day_status, absence_reason} pair. Call before Validate.
func (r *MarkDayRequest) Normalize() {
	if r.DayStatus == legacyAbsentWithoutNotice {
		r.DayStatus = string(DayStatusAbsent)
		reason := string(AbsenceWithoutNotice)
		r.AbsenceReason = &reason
	}
}

func (r *MarkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.DayStatus, []string{
		string(DayStatusPresent), string(DayStatusAbsent), string(DayStatusLeave), string(DayStatusHoliday),
	}) {
		errs = append(errs, validator.ValidationError{Field: "day_status", Message: "must be one of present, absent, leave, holiday"})
	}

	if r.DayStatus == string(DayStatusAbsent) {
		if r.AbsenceReason != nil && !validator.IsInSlice(*r.AbsenceReason, []string{
			string(AbsenceWithNotice), string(AbsenceWithoutNotice),
		}) {
			errs = append(errs, validator.ValidationError{Field: "absence_reason", Message: "must be with_notice or without_notice"})
		}
	} else if r.AbsenceReason != nil {
		errs = append(errs, validator.ValidationError{Field: "absence_reason", Message: "is only valid when day_status is absent"})
	}

	if r.DayStatus == string(DayStatusPresent) {
		if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
		}
		if r.TimeDelayMinutes != nil && *r.TimeDelayMinutes < 0 {
			errs = append(errs, validator.ValidationError{Field: "time_delay_minutes", Message: "must be non-negative"})
		}
		if r.NonTimeDelayMinutes != nil && *r.NonTimeDelayMinutes < 0 {
			errs = append(errs, validator.ValidationError{Field: "non_time_delay_minutes", Message: "must be non-negative"})
		}
	} else {
		if r.OvertimeHours != nil && !r.OvertimeHours.IsZero() {
			errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "is only valid when day_status is present"})
		}
		if r.TimeDelayMinutes != nil && *r.TimeDelayMinutes != 0 {
			errs = append(errs, validator.ValidationError{Field: "time_delay_minutes", Message: "is only valid when day_status is present"})
		}
		if r.NonTimeDelayMinutes != nil && *r.NonTimeDelayMinutes != 0 {
			errs = append(errs, validator.ValidationError{Field: "non_time_delay_minutes", Message: "is only valid when day_status is present"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkMarkRequest marks the same day for several employees at once, e.g.
// declaring a public holiday.
type BulkMarkRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Date        string   `json:"date"`
	DayStatus   string   `json:"day_status"`
}

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.DayStatus, []string{
		string(DayStatusPresent), string(DayStatusLeave), string(DayStatusHoliday),
	}) {
		errs = append(errs, validator.ValidationError{Field: "day_status", Message: "must be one of present, leave, holiday"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                  string          `json:"id"`
	EmployeeID          string          `json:"employee_id"`
	EmployeeName        *string         `json:"employee_name,omitempty"`
	EmployeeNumber      *string         `json:"employee_number,omitempty"`
	Date                string          `json:"date"`
	DayStatus           string          `json:"day_status"`
	AbsenceReason       *string         `json:"absence_reason,omitempty"`
	OvertimeHours       decimal.Decimal `json:"overtime_hours"`
	TimeDelayMinutes    int             `json:"time_delay_minutes"`
	NonTimeDelayMinutes int             `json:"non_time_delay_minutes"`
	Notes               *string         `json:"notes,omitempty"`
}

type AttendanceFilter struct {
	EmployeeID *string
	Month      *string // YYYY-MM
	Page       int
	Limit      int
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
