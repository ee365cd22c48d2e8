package payroll

import (
	"context"
	"io"
)

type PayrollService interface {
	// Generate computes and upserts payroll for every eligible employee
	// in the period. Per-employee failures are collected, not fatal.
	Generate(ctx context.Context, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	GetRecord(ctx context.Context, id string) (PayrollRecordResponse, error)
	// GetEmployeeRecord looks a record up by its natural key instead of
	// the row id.
	GetEmployeeRecord(ctx context.Context, employeeID, period string) (PayrollRecordResponse, error)
	ListRecords(ctx context.Context, filter PayrollFilter) (ListPayrollRecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
	GetSummary(ctx context.Context, period string) (PayrollSummaryResponse, error)

	// RenderPayslip renders the record as a PDF and returns the stream
	// plus a suggested file name.
	RenderPayslip(ctx context.Context, recordID string) (io.ReadCloser, string, error)

	CreateAdjustment(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	GetAdjustment(ctx context.Context, id string) (AdjustmentResponse, error)
	ListAdjustments(ctx context.Context, filter AdjustmentFilter) (ListAdjustmentResponse, error)
	DeleteAdjustment(ctx context.Context, id string) error
}
