package main

import (
	"fmt"
	"net/http"

	"github.com/tokosakti/backoffice-go/internal/config"
	appHTTP "github.com/tokosakti/backoffice-go/internal/handler/http"
	"github.com/tokosakti/backoffice-go/internal/pkg/database"
	"github.com/tokosakti/backoffice-go/internal/pkg/jwt"
	"github.com/tokosakti/backoffice-go/internal/repository/postgresql"
	advanceService "github.com/tokosakti/backoffice-go/internal/service/advance"
	employeeService "github.com/tokosakti/backoffice-go/internal/service/employee"
	kpiService "github.com/tokosakti/backoffice-go/internal/service/kpi"
	payrollService "github.com/tokosakti/backoffice-go/internal/service/payroll"
	salaryService "github.com/tokosakti/backoffice-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	kpiRepo := postgresql.NewKPIRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	salarySvc := salaryService.NewSalaryService(db, salaryRepo, employeeRepo)
	kpiSvc := kpiService.NewKPIService(db, kpiRepo, employeeRepo)
	advanceSvc := advanceService.NewAdvanceService(db, advanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, salaryRepo, kpiRepo, advanceRepo, employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	kpiHandler := appHTTP.NewKPIHandler(kpiSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		employeeHandler,
		salaryHandler,
		kpiHandler,
		advanceHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
