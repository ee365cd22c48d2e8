package employee

import (
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeNumber string           `json:"employee_number"`
	FullName       string           `json:"full_name"`
	MonthlySalary  decimal.Decimal  `json:"monthly_salary"`
	DailyWorkHours *decimal.Decimal `json:"daily_work_hours,omitempty"`
	HireDate       *string          `json:"hire_date,omitempty"` // YYYY-MM-DD
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{Field: "employee_number", Message: "is required"})
	} else if !validator.IsValidEmployeeNumber(r.EmployeeNumber) {
		errs = append(errs, validator.ValidationError{Field: "employee_number", Message: "must be a numeric code of up to 10 digits"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be greater than zero"})
	}
	if r.DailyWorkHours != nil && !r.DailyWorkHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_work_hours", Message: "must be greater than zero"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID             string           `json:"-"`
	FullName       *string          `json:"full_name,omitempty"`
	MonthlySalary  *decimal.Decimal `json:"monthly_salary,omitempty"`
	DailyWorkHours *decimal.Decimal `json:"daily_work_hours,omitempty"`
	HireDate       *string          `json:"hire_date,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.MonthlySalary != nil && !r.MonthlySalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be greater than zero"})
	}
	if r.DailyWorkHours != nil && !r.DailyWorkHours.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "daily_work_hours", Message: "must be greater than zero"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ChangeStatusRequest moves an employee between lifecycle states. The
// effective date is the suspension/termination date for those states.
type ChangeStatusRequest struct {
	ID             string  `json:"-"`
	Status         string  `json:"status"`
	SuspensionType *string `json:"suspension_type,omitempty"`
	EffectiveDate  string  `json:"effective_date"` // YYYY-MM-DD
}

func (r *ChangeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusSuspended), string(StatusTerminated)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, suspended, terminated"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date in YYYY-MM-DD format"})
	}
	if r.Status == string(StatusSuspended) {
		if r.SuspensionType == nil {
			errs = append(errs, validator.ValidationError{Field: "suspension_type", Message: "is required when suspending"})
		} else if !validator.IsInSlice(*r.SuspensionType, []string{string(SuspensionWithSalary), string(SuspensionWithoutSalary)}) {
			errs = append(errs, validator.ValidationError{Field: "suspension_type", Message: "must be with_salary or without_salary"})
		}
	} else if r.SuspensionType != nil {
		errs = append(errs, validator.ValidationError{Field: "suspension_type", Message: "is only valid when suspending"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	EmployeeNumber   string          `json:"employee_number"`
	FullName         string          `json:"full_name"`
	MonthlySalary    decimal.Decimal `json:"monthly_salary"`
	DailyWorkHours   decimal.Decimal `json:"daily_work_hours"`
	HireDate         *string         `json:"hire_date,omitempty"`
	Status           string          `json:"status"`
	StatusChangeDate *string         `json:"status_change_date,omitempty"`
	SuspensionType   *string         `json:"suspension_type,omitempty"`
	SuspensionDate   *string         `json:"suspension_date,omitempty"`
	TerminationDate  *string         `json:"termination_date,omitempty"`
}

type EmployeeFilter struct {
	Status *string
	Search string
	Page   int
	Limit  int
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
