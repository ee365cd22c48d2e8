package payroll

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/employee"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatinRenderable(t *testing.T) {
	t.Parallel()

	assert.True(t, latinRenderable("Salem Rashid"))
	assert.True(t, latinRenderable("Müller"))
	assert.True(t, latinRenderable(""))
	assert.False(t, latinRenderable("سالم الراشد"))
	assert.False(t, latinRenderable("Salem سالم"))
}

func TestRenderPayslip_ArabicNamedEmployee(t *testing.T) {
	t.Parallel()

	// Rendering must not choke on a name the built-in fonts cannot
	// encode; the payslip falls back to the employee number.
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{{
		ID: "emp-1", EmployeeNumber: "1001", FullName: "سالم الراشد",
		MonthlySalary:  decimal.NewFromInt(300000),
		DailyWorkHours: decimal.NewFromInt(8),
		HireDate:       datePtrOf(2020, time.January, 1),
		Status:         employee.StatusActive,
	}}}
	svc := newTestService(empRepo, &fakeAttendanceRepo{}, newFakePayrollRepo())

	_, err := svc.Generate(context.Background(), payroll.GeneratePayrollRequest{Period: "2024-04"})
	require.NoError(t, err)

	rec, err := svc.GetEmployeeRecord(context.Background(), "emp-1", "2024-04")
	require.NoError(t, err)

	stream, fileName, err := svc.RenderPayslip(context.Background(), rec.ID)
	require.NoError(t, err)
	defer stream.Close()

	assert.Equal(t, "payslip-2024-04-emp-1.pdf", fileName)

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "payslip should be a PDF")
}
