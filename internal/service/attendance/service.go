package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/attendance"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/employee"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/database"
	"github.com/rawatib-hr/rawatib-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:                  att.ID,
		EmployeeID:          att.EmployeeID,
		EmployeeName:        att.EmployeeName,
		EmployeeNumber:      att.EmployeeNumber,
		Date:                att.Date.Format(dateLayout),
		DayStatus:           string(att.DayStatus),
		OvertimeHours:       att.OvertimeHours,
		TimeDelayMinutes:    att.TimeDelayMinutes,
		NonTimeDelayMinutes: att.NonTimeDelayMinutes,
		Notes:               att.Notes,
	}
	if att.AbsenceReason != nil {
		reason := string(*att.AbsenceReason)
		resp.AbsenceReason = &reason
	}
	return resp
}

// MarkDay implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkDay(ctx context.Context, req attendance.MarkDayRequest) (attendance.AttendanceResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrEmployeeNotFound
	}

	date, _ := time.Parse(dateLayout, req.Date)
	att := attendance.Attendance{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		DayStatus:     attendance.DayStatus(req.DayStatus),
		OvertimeHours: decimal.Zero,
	}
	if req.AbsenceReason != nil {
		reason := attendance.AbsenceReason(*req.AbsenceReason)
		att.AbsenceReason = &reason
	}
	if req.OvertimeHours != nil {
		att.OvertimeHours = *req.OvertimeHours
	}
	if req.TimeDelayMinutes != nil {
		att.TimeDelayMinutes = *req.TimeDelayMinutes
	}
	if req.NonTimeDelayMinutes != nil {
		att.NonTimeDelayMinutes = *req.NonTimeDelayMinutes
	}
	att.Notes = req.Notes

	saved, err := s.attendanceRepo.Upsert(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(saved), nil
}

// BulkMark implements attendance.AttendanceService. Used for marking the
// same day across many employees at once, e.g. a public holiday. The
// whole batch commits or rolls back together.
func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, req attendance.BulkMarkRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse(dateLayout, req.Date)

	responses := make([]attendance.AttendanceResponse, 0, len(req.EmployeeIDs))
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, employeeID := range req.EmployeeIDs {
			if _, err := s.employeeRepo.GetByID(txCtx, employeeID); err != nil {
				return fmt.Errorf("employee %s: %w", employeeID, attendance.ErrEmployeeNotFound)
			}

			saved, err := s.attendanceRepo.Upsert(txCtx, attendance.Attendance{
				EmployeeID:    employeeID,
				Date:          date,
				DayStatus:     attendance.DayStatus(req.DayStatus),
				OvertimeHours: decimal.Zero,
			})
			if err != nil {
				return err
			}
			responses = append(responses, toResponse(saved))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}

// GetByID implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	found, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(found), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 31
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Data:       make([]attendance.AttendanceResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, att := range records {
		resp.Data = append(resp.Data, toResponse(att))
	}
	return resp, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}
