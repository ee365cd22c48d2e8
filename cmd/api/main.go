package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/rawatib-hr/rawatib-backend-go/internal/config"
	appHTTP "github.com/rawatib-hr/rawatib-backend-go/internal/handler/http"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/cron"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/database"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/jwt"
	"github.com/rawatib-hr/rawatib-backend-go/internal/pkg/storage"
	"github.com/rawatib-hr/rawatib-backend-go/internal/repository/postgresql"
	attendanceService "github.com/rawatib-hr/rawatib-backend-go/internal/service/attendance"
	employeeService "github.com/rawatib-hr/rawatib-backend-go/internal/service/employee"
	payrollService "github.com/rawatib-hr/rawatib-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, attendanceRepo, fileStorage, logger)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(cfg, jwtService, employeeHandler, attendanceHandler, payrollHandler)

	if cfg.Payroll.AutoGenerate {
		scheduler := cron.NewScheduler()
		cron.RegisterPayrollAutoGenerate(scheduler, payrollSvc)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
