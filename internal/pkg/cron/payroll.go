package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/rawatib-hr/rawatib-backend-go/internal/domain/payroll"
)

// RegisterPayrollAutoGenerate schedules a daily check that generates the
// previous month's payroll once that month has closed. Generation is
// idempotent, so firing on every day of the new month only rewrites the
// same records.
func RegisterPayrollAutoGenerate(scheduler *Scheduler, payrollService payroll.PayrollService) {
	scheduler.AddJob("payroll-auto-generate", 24*time.Hour, func(ctx context.Context) error {
		period := payroll.PeriodOf(time.Now().UTC()).Previous()

		resp, err := payrollService.Generate(ctx, payroll.GeneratePayrollRequest{
			Period: period.String(),
		})
		if err != nil {
			return err
		}

		slog.Info("Auto payroll generation finished",
			"period", resp.Period,
			"success", resp.SuccessCount,
			"skipped", resp.SkipCount,
			"failed", resp.FailedCount)
		return nil
	})
}
