package payroll

import (
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATION DTOs ==========

type GeneratePayrollRequest struct {
	Period      string   `json:"period"`                 // YYYY-MM
	EmployeeIDs []string `json:"employee_ids,omitempty"` // Empty = all employees
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Period); !ok {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a month in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GeneratePayrollResponse reports the batch outcome. Generation is a
// human-operated monthly process: one employee failing must not abort the
// rest, so failures are collected and counted instead.
type GeneratePayrollResponse struct {
	Period       string                  `json:"period"`
	SuccessCount int                     `json:"success_count"`
	SkipCount    int                     `json:"skip_count"`
	FailedCount  int                     `json:"failed_count"`
	Failures     map[string]string       `json:"failures,omitempty"` // employee id -> reason
	Records      []PayrollRecordResponse `json:"records"`
}

// ========== RECORD DTOs ==========

type PayrollRecordResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	EmployeeNumber string `json:"employee_number"`
	Period         string `json:"period"`

	PresentDays             int `json:"present_days"`
	AbsentWithNoticeDays    int `json:"absent_with_notice_days"`
	AbsentWithoutNoticeDays int `json:"absent_without_notice_days"`
	LeaveDays               int `json:"leave_days"`
	HolidayDays             int `json:"holiday_days"`
	DaysDue                 int `json:"days_due"`

	OvertimeHours       decimal.Decimal `json:"overtime_hours"`
	TimeDelayMinutes    int             `json:"time_delay_minutes"`
	NonTimeDelayMinutes int             `json:"non_time_delay_minutes"`

	OvertimePay           decimal.Decimal `json:"overtime_pay"`
	TimeDelayDeduction    decimal.Decimal `json:"time_delay_deduction"`
	NonTimeDelayDeduction decimal.Decimal `json:"non_time_delay_deduction"`
	BaseSalary            decimal.Decimal `json:"base_salary"`
	AbsenceDeduction      decimal.Decimal `json:"absence_deduction"`
	TotalDeductions       decimal.Decimal `json:"total_deductions"`
	TotalBonuses          decimal.Decimal `json:"total_bonuses"`
	TotalAdvances         decimal.Decimal `json:"total_advances"`
	NetSalary             decimal.Decimal `json:"net_salary"`

	LastWorkingDay *string `json:"last_working_day,omitempty"`
}

type PayrollFilter struct {
	Period     *Period
	EmployeeID *string
	Page       int
	Limit      int
}

type ListPayrollRecordResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

type PayrollSummaryResponse struct {
	Period                string          `json:"period"`
	TotalEmployees        int             `json:"total_employees"`
	TotalBaseSalary       decimal.Decimal `json:"total_base_salary"`
	TotalAbsenceDeduction decimal.Decimal `json:"total_absence_deduction"`
	TotalOvertimePay      decimal.Decimal `json:"total_overtime_pay"`
	TotalDeductions       decimal.Decimal `json:"total_deductions"`
	TotalBonuses          decimal.Decimal `json:"total_bonuses"`
	TotalAdvances         decimal.Decimal `json:"total_advances"`
	TotalNetSalary        decimal.Decimal `json:"total_net_salary"`
}

// ========== ADJUSTMENT DTOs ==========

type CreateAdjustmentRequest struct {
	EmployeeID  string          `json:"-"`
	Period      string          `json:"period"` // YYYY-MM
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Period); !ok {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a month in YYYY-MM format"})
	}
	if !validator.IsInSlice(r.Kind, []string{
		string(AdjustmentDeduction), string(AdjustmentBonus), string(AdjustmentAdvance),
	}) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be one of deduction, bonus, advance"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	EmployeeNumber *string         `json:"employee_number,omitempty"`
	Period         string          `json:"period"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
}

type AdjustmentFilter struct {
	EmployeeID *string
	Period     *Period
	Kind       *string
	Page       int
	Limit      int
}

type ListAdjustmentResponse struct {
	Data       []AdjustmentResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
