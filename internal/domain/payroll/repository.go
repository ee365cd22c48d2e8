package payroll

import "context"

type PayrollRepository interface {
	// Records. (employee_id, period) is unique; UpsertRecord overwrites
	// the previous run's row so regeneration is idempotent.
	UpsertRecord(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)
	GetRecordByID(ctx context.Context, id string) (PayrollRecord, error)
	GetRecordByEmployeePeriod(ctx context.Context, employeeID string, period Period) (PayrollRecord, error)
	// ListRecords excludes employees whose termination date precedes the
	// queried period (read-path filter, not the calculator's concern).
	ListRecords(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	DeleteRecord(ctx context.Context, id string) error
	GetSummary(ctx context.Context, period Period) (PayrollSummaryResponse, error)

	// Adjustments
	CreateAdjustment(ctx context.Context, adj Adjustment) (Adjustment, error)
	GetAdjustmentByID(ctx context.Context, id string) (Adjustment, error)
	ListAdjustments(ctx context.Context, filter AdjustmentFilter) ([]Adjustment, int64, error)
	// GetAdjustmentsByPeriod returns all adjustments for the period, for
	// all employees, for bulk payroll generation.
	GetAdjustmentsByPeriod(ctx context.Context, period Period) ([]Adjustment, error)
	DeleteAdjustment(ctx context.Context, id string) error
}
