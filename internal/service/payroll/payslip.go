package payroll

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode"

	"github.com/jung-kurt/gofpdf"
	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/payroll"
)

// RenderPayslip implements payroll.PayrollService. The PDF is rendered
// from the stored record, cached in file storage under a key derived
// from the record's updated_at, and streamed back. Regenerating payroll
// bumps updated_at, so a stale cached payslip is never served.
func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, recordID string) (io.ReadCloser, string, error) {
	rec, err := s.payrollRepo.GetRecordByID(ctx, recordID)
	if err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("payslip-%s-%s.pdf", rec.Period(), rec.EmployeeID)
	cacheKey := fmt.Sprintf("payslips/%s-%d.pdf", rec.ID, rec.UpdatedAt.Unix())

	if ok, err := s.fileStorage.Exists(ctx, cacheKey); err == nil && ok {
		cached, err := s.fileStorage.Download(ctx, cacheKey)
		if err == nil {
			return cached, fileName, nil
		}
		s.logger.Warn("cached payslip unreadable, re-rendering",
			slog.String("key", cacheKey), slog.Any("error", err))
	}

	rendered, err := renderPayslipPDF(rec)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", payroll.ErrPayslipNotAvailable, err)
	}

	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(rendered), cacheKey, "application/pdf"); err != nil {
		// Serving the payslip matters more than caching it.
		s.logger.Warn("failed to cache payslip", slog.String("key", cacheKey), slog.Any("error", err))
	}

	return io.NopCloser(bytes.NewReader(rendered)), fileName, nil
}

func renderPayslipPDF(rec payroll.PayrollRecord) ([]byte, error) {
	name := ""
	if rec.EmployeeName != nil {
		name = *rec.EmployeeName
	}
	number := ""
	if rec.EmployeeNumber != nil {
		number = *rec.EmployeeNumber
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	// The core fonts only encode CP1252, so the employee number carries
	// the identification and the name is printed only when the font can
	// actually render it. Arabic names would otherwise come out garbled.
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee #%s", number))
	pdf.Ln(7)
	if name != "" && latinRenderable(name) {
		pdf.Cell(0, 8, fmt.Sprintf("Name: %s", name))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", rec.Period()))
	pdf.Ln(10)

	lines := []struct {
		label string
		value string
	}{
		{"Days due", fmt.Sprintf("%d", rec.DaysDue)},
		{"Present days", fmt.Sprintf("%d", rec.PresentDays)},
		{"Absent (with notice)", fmt.Sprintf("%d", rec.AbsentWithNoticeDays)},
		{"Absent (without notice)", fmt.Sprintf("%d", rec.AbsentWithoutNoticeDays)},
		{"Leave days", fmt.Sprintf("%d", rec.LeaveDays)},
		{"Holiday days", fmt.Sprintf("%d", rec.HolidayDays)},
		{"Base salary", rec.BaseSalary.StringFixed(2)},
		{"Absence deduction", rec.AbsenceDeduction.StringFixed(2)},
		{"Overtime pay", rec.OvertimePay.StringFixed(2)},
		{"Delay deduction", rec.TimeDelayDeduction.Add(rec.NonTimeDelayDeduction).StringFixed(2)},
		{"Bonuses", rec.TotalBonuses.StringFixed(2)},
		{"Deductions", rec.TotalDeductions.StringFixed(2)},
		{"Advances", rec.TotalAdvances.StringFixed(2)},
	}
	for _, line := range lines {
		pdf.Cell(80, 7, line.label)
		pdf.Cell(0, 7, line.value)
		pdf.Ln(7)
	}
	if rec.LastWorkingDay != nil {
		pdf.Cell(80, 7, "Last working day")
		pdf.Cell(0, 7, rec.LastWorkingDay.Format(dateLayout))
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(80, 8, "Net salary")
	pdf.Cell(0, 8, rec.NetSalary.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// latinRenderable reports whether every rune of s fits the Latin-1
// range the built-in PDF fonts can encode.
func latinRenderable(s string) bool {
	for _, r := range s {
		if r > unicode.MaxLatin1 {
			return false
		}
	}
	return true
}
