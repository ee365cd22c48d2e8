package response

import (
	"errors"
	"net/http"

	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/attendance"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/employee"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/payroll"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNumberExists):
		Conflict(w, "Employee number already exists")
	case errors.Is(err, employee.ErrEmployeeHasNoSalary):
		BadRequest(w, "Employee has no monthly salary configured", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Period must be in YYYY-MM format", nil)
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")
	case errors.Is(err, payroll.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, payroll.ErrPayslipNotAvailable):
		InternalServerError(w, "Payslip could not be rendered")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
