package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	EmployeeNumber   string
	FullName         string
	MonthlySalary    decimal.Decimal
	DailyWorkHours   decimal.Decimal
	HireDate         *time.Time
	Status           Status
	StatusChangeDate *time.Time
	SuspensionType   *SuspensionType
	SuspensionDate   *time.Time
	TerminationDate  *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusSuspended  Status = "suspended"
	StatusTerminated Status = "terminated"
)

type SuspensionType string

const (
	SuspensionWithSalary    SuspensionType = "with_salary"
	SuspensionWithoutSalary SuspensionType = "without_salary"
)

// DefaultDailyWorkHours applies when a profile does not specify work hours.
var DefaultDailyWorkHours = decimal.NewFromInt(8)

// Invariant: at most one of SuspensionDate/TerminationDate is set at a
// time, matching Status. Lifecycle transitions go through ApplyStatus so
// the stale date is always cleared.
func (e *Employee) ApplyStatus(status Status, suspensionType *SuspensionType, changeDate time.Time) {
	e.Status = status
	e.StatusChangeDate = &changeDate

	switch status {
	case StatusSuspended:
		e.SuspensionType = suspensionType
		e.SuspensionDate = &changeDate
		e.TerminationDate = nil
	case StatusTerminated:
		e.TerminationDate = &changeDate
		e.SuspensionType = nil
		e.SuspensionDate = nil
	default:
		e.SuspensionType = nil
		e.SuspensionDate = nil
		e.TerminationDate = nil
	}
}
