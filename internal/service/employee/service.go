package employee

import (
	"context"
	"time"

	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/employee"
)

const dateLayout = "2006-01-02"

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeNumber: emp.EmployeeNumber,
		FullName:       emp.FullName,
		MonthlySalary:  emp.MonthlySalary,
		DailyWorkHours: emp.DailyWorkHours,
		Status:         string(emp.Status),
	}
	resp.HireDate = formatDate(emp.HireDate)
	resp.StatusChangeDate = formatDate(emp.StatusChangeDate)
	resp.SuspensionDate = formatDate(emp.SuspensionDate)
	resp.TerminationDate = formatDate(emp.TerminationDate)
	if emp.SuspensionType != nil {
		st := string(*emp.SuspensionType)
		resp.SuspensionType = &st
	}
	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseDate(s string) time.Time {
	// Callers validate the format first.
	t, _ := time.Parse(dateLayout, s)
	return t
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
		MonthlySalary:  req.MonthlySalary,
		DailyWorkHours: employee.DefaultDailyWorkHours,
		Status:         employee.StatusActive,
	}
	if req.DailyWorkHours != nil {
		newEmployee.DailyWorkHours = *req.DailyWorkHours
	}
	if req.HireDate != nil {
		hire := parseDate(*req.HireDate)
		newEmployee.HireDate = &hire
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(found), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(employees)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, emp := range employees {
		resp.Data = append(resp.Data, toResponse(emp))
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.MonthlySalary != nil {
		current.MonthlySalary = *req.MonthlySalary
	}
	if req.DailyWorkHours != nil {
		current.DailyWorkHours = *req.DailyWorkHours
	}
	if req.HireDate != nil {
		hire := parseDate(*req.HireDate)
		current.HireDate = &hire
	}

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

// ChangeStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ChangeStatus(ctx context.Context, req employee.ChangeStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var suspensionType *employee.SuspensionType
	if req.SuspensionType != nil {
		st := employee.SuspensionType(*req.SuspensionType)
		suspensionType = &st
	}
	current.ApplyStatus(employee.Status(req.Status), suspensionType, parseDate(req.EffectiveDate))

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
