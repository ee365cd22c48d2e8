package payroll

import (
	"context"
	"log/slog"

	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/attendance"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/employee"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/payroll"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/storage"
)

const dateLayout = "2006-01-02"

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	fileStorage    storage.FileStorage
	logger         *slog.Logger
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	fileStorage storage.FileStorage,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

func toRecordResponse(rec payroll.PayrollRecord) payroll.PayrollRecordResponse {
	resp := payroll.PayrollRecordResponse{
		ID:                      rec.ID,
		EmployeeID:              rec.EmployeeID,
		Period:                  rec.Period().String(),
		PresentDays:             rec.PresentDays,
		AbsentWithNoticeDays:    rec.AbsentWithNoticeDays,
		AbsentWithoutNoticeDays: rec.AbsentWithoutNoticeDays,
		LeaveDays:               rec.LeaveDays,
		HolidayDays:             rec.HolidayDays,
		DaysDue:                 rec.DaysDue,
		OvertimeHours:           rec.OvertimeHours,
		TimeDelayMinutes:        rec.TimeDelayMinutes,
		NonTimeDelayMinutes:     rec.NonTimeDelayMinutes,
		OvertimePay:             rec.OvertimePay,
		TimeDelayDeduction:      rec.TimeDelayDeduction,
		NonTimeDelayDeduction:   rec.NonTimeDelayDeduction,
		BaseSalary:              rec.BaseSalary,
		AbsenceDeduction:        rec.AbsenceDeduction,
		TotalDeductions:         rec.TotalDeductions,
		TotalBonuses:            rec.TotalBonuses,
		TotalAdvances:           rec.TotalAdvances,
		NetSalary:               rec.NetSalary,
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.EmployeeNumber != nil {
		resp.EmployeeNumber = *rec.EmployeeNumber
	}
	if rec.LastWorkingDay != nil {
		lwd := rec.LastWorkingDay.Format(dateLayout)
		resp.LastWorkingDay = &lwd
	}
	return resp
}

// Generate implements payroll.PayrollService. It recomputes and upserts
// one record per eligible employee. One employee's failure is recorded
// and the batch moves on; the calculator returning nil counts as a skip,
// not a failure.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	period, err := payroll.ParsePeriod(req.Period)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	employees, err := s.loadEmployees(ctx, req.EmployeeIDs)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}

	// One query per input kind, then group in memory: the whole month is
	// computed from three round trips however many employees there are.
	monthRecords, err := s.attendanceRepo.GetByMonth(ctx, period.Start(), period.End())
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	recordsByEmployee := make(map[string][]attendance.Attendance)
	for _, rec := range monthRecords {
		recordsByEmployee[rec.EmployeeID] = append(recordsByEmployee[rec.EmployeeID], rec)
	}

	monthAdjustments, err := s.payrollRepo.GetAdjustmentsByPeriod(ctx, period)
	if err != nil {
		return payroll.GeneratePayrollResponse{}, err
	}
	adjustmentsByEmployee := make(map[string][]payroll.Adjustment)
	for _, adj := range monthAdjustments {
		adjustmentsByEmployee[adj.EmployeeID] = append(adjustmentsByEmployee[adj.EmployeeID], adj)
	}

	resp := payroll.GeneratePayrollResponse{
		Period:   period.String(),
		Failures: map[string]string{},
		Records:  []payroll.PayrollRecordResponse{},
	}

	for _, emp := range employees {
		if !emp.MonthlySalary.IsPositive() {
			resp.FailedCount++
			resp.Failures[emp.ID] = employee.ErrEmployeeHasNoSalary.Error()
			continue
		}

		result := payroll.Calculate(emp, recordsByEmployee[emp.ID], adjustmentsByEmployee[emp.ID], period)
		if result == nil {
			resp.SkipCount++
			continue
		}

		saved, err := s.payrollRepo.UpsertRecord(ctx, payroll.PayrollRecord{
			EmployeeID:  emp.ID,
			PeriodYear:  period.Year,
			PeriodMonth: int(period.Month),
			Result:      *result,
		})
		if err != nil {
			s.logger.Error("payroll upsert failed",
				slog.String("employee_id", emp.ID),
				slog.String("period", period.String()),
				slog.Any("error", err))
			resp.FailedCount++
			resp.Failures[emp.ID] = err.Error()
			continue
		}

		resp.SuccessCount++
		resp.Records = append(resp.Records, toRecordResponse(saved))
	}

	if len(resp.Failures) == 0 {
		resp.Failures = nil
	}

	s.logger.Info("payroll generated",
		slog.String("period", period.String()),
		slog.Int("success", resp.SuccessCount),
		slog.Int("skipped", resp.SkipCount),
		slog.Int("failed", resp.FailedCount))

	return resp, nil
}

func (s *PayrollServiceImpl) loadEmployees(ctx context.Context, ids []string) ([]employee.Employee, error) {
	if len(ids) == 0 {
		return s.employeeRepo.GetAllForPayroll(ctx)
	}

	employees := make([]employee.Employee, 0, len(ids))
	for _, id := range ids {
		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// GetRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.PayrollRecordResponse, error) {
	found, err := s.payrollRepo.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toRecordResponse(found), nil
}

// GetEmployeeRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeRecord(ctx context.Context, employeeID, periodStr string) (payroll.PayrollRecordResponse, error) {
	period, err := payroll.ParsePeriod(periodStr)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	found, err := s.payrollRepo.GetRecordByEmployeePeriod(ctx, employeeID, period)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return toRecordResponse(found), nil
}

// ListRecords implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollRecordResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.payrollRepo.ListRecords(ctx, filter)
	if err != nil {
		return payroll.ListPayrollRecordResponse{}, err
	}

	resp := payroll.ListPayrollRecordResponse{
		Data:       make([]payroll.PayrollRecordResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, rec := range records {
		resp.Data = append(resp.Data, toRecordResponse(rec))
	}
	return resp, nil
}

// DeleteRecord implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteRecord(ctx, id)
}

// GetSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, periodStr string) (payroll.PayrollSummaryResponse, error) {
	period, err := payroll.ParsePeriod(periodStr)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, err
	}
	return s.payrollRepo.GetSummary(ctx, period)
}

// CreateAdjustment implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateAdjustment(ctx context.Context, req payroll.CreateAdjustmentRequest) (payroll.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AdjustmentResponse{}, err
	}
	period, err := payroll.ParsePeriod(req.Period)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.AdjustmentResponse{}, payroll.ErrEmployeeNotFound
	}

	created, err := s.payrollRepo.CreateAdjustment(ctx, payroll.Adjustment{
		EmployeeID:  req.EmployeeID,
		PeriodYear:  period.Year,
		PeriodMonth: int(period.Month),
		Kind:        payroll.AdjustmentKind(req.Kind),
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}
	return toAdjustmentResponse(created), nil
}

func toAdjustmentResponse(adj payroll.Adjustment) payroll.AdjustmentResponse {
	return payroll.AdjustmentResponse{
		ID:             adj.ID,
		EmployeeID:     adj.EmployeeID,
		EmployeeName:   adj.EmployeeName,
		EmployeeNumber: adj.EmployeeNumber,
		Period:         adj.Period().String(),
		Kind:           string(adj.Kind),
		Amount:         adj.Amount,
		Description:    adj.Description,
	}
}

// GetAdjustment implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetAdjustment(ctx context.Context, id string) (payroll.AdjustmentResponse, error) {
	found, err := s.payrollRepo.GetAdjustmentByID(ctx, id)
	if err != nil {
		return payroll.AdjustmentResponse{}, err
	}
	return toAdjustmentResponse(found), nil
}

// ListAdjustments implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListAdjustments(ctx context.Context, filter payroll.AdjustmentFilter) (payroll.ListAdjustmentResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	adjustments, total, err := s.payrollRepo.ListAdjustments(ctx, filter)
	if err != nil {
		return payroll.ListAdjustmentResponse{}, err
	}

	resp := payroll.ListAdjustmentResponse{
		Data:       make([]payroll.AdjustmentResponse, 0, len(adjustments)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, adj := range adjustments {
		resp.Data = append(resp.Data, toAdjustmentResponse(adj))
	}
	return resp, nil
}

// DeleteAdjustment implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteAdjustment(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteAdjustment(ctx, id)
}
