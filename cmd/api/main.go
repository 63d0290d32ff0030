package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffsync-hq/staffsync-backend-go/internal/config"
	appHTTP "github.com/staffsync-hq/staffsync-backend-go/internal/handler/http"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/database"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/jwt"
	"github.com/staffsync-hq/staffsync-backend-go/internal/pkg/oauth"
	"github.com/staffsync-hq/staffsync-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffsync-hq/staffsync-backend-go/internal/service/attendance"
	authService "github.com/staffsync-hq/staffsync-backend-go/internal/service/auth"
	employeeService "github.com/staffsync-hq/staffsync-backend-go/internal/service/employee"
	leaveService "github.com/staffsync-hq/staffsync-backend-go/internal/service/leave"
	payrollService "github.com/staffsync-hq/staffsync-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveQuotaRepo := postgresql.NewLeaveQuotaRepository(db)
	leaveApplicationRepo := postgresql.NewLeaveApplicationRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	metricsCalculator, err := attendanceService.NewMetricsCalculator(cfg.Policy.ExpectedWorkingDays, cfg.Policy.LateCutoff)
	if err != nil {
		log.Fatal("Error building metrics calculator: ", err)
	}
	quotaLedger := leaveService.NewQuotaLedger()

	authSvc := authService.NewAuthService(db, userRepo, jwtRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, userRepo, metricsCalculator)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveQuotaRepo, leaveApplicationRepo, userRepo, quotaLedger)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, userRepo)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		employeeHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
