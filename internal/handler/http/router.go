package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/rawatib-hr/rawatib-backend-go/internal/config"
	"github.com/rawatib-hr/rawatib-backend-go/internal/handler/http/middleware"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rawatib"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Accept-Language"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Reads are open to every authenticated role.
			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Get("/{employeeID}/payroll", payrollHandler.GetEmployeePayrollRecord)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(jwtService, jwt.RoleAdmin, jwt.RoleHR))
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Patch("/{id}/status", employeeHandler.ChangeEmployeeStatus)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)

					r.Post("/{employeeID}/adjustments", payrollHandler.CreateAdjustment)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListAttendance)
				r.Get("/{id}", attendanceHandler.GetAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(jwtService, jwt.RoleAdmin, jwt.RoleHR))
					r.Post("/", attendanceHandler.MarkDay)
					r.Post("/bulk", attendanceHandler.BulkMark)
					r.Delete("/{id}", attendanceHandler.DeleteAttendance)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/records", payrollHandler.ListPayrollRecords)
				r.Get("/records/{id}", payrollHandler.GetPayrollRecord)
				r.Get("/records/{id}/payslip", payrollHandler.DownloadPayslip)
				r.Get("/summary", payrollHandler.GetPayrollSummary)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(jwtService, jwt.RoleAdmin, jwt.RoleHR))
					r.Post("/generate", payrollHandler.GeneratePayroll)
					r.Delete("/records/{id}", payrollHandler.DeletePayrollRecord)
				})
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Get("/", payrollHandler.ListAdjustments)
				r.Get("/{id}", payrollHandler.GetAdjustment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(jwtService, jwt.RoleAdmin, jwt.RoleHR))
					r.Delete("/{id}", payrollHandler.DeleteAdjustment)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
