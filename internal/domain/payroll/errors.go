package payroll

import "errors"

var (
	ErrInvalidPeriod         = errors.New("invalid payroll period, expected YYYY-MM")
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrAdjustmentNotFound    = errors.New("adjustment not found")
	ErrEmployeeNotFound      = errors.New("employee not found for payroll")
	ErrPayslipNotAvailable   = errors.New("payslip file is not available")
)
