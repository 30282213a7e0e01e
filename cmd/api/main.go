package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/attendhq/rules-engine-go/internal/config"
	appHTTP "github.com/attendhq/rules-engine-go/internal/handler/http"
	"github.com/attendhq/rules-engine-go/internal/pkg/cron"
	"github.com/attendhq/rules-engine-go/internal/pkg/database"
	"github.com/attendhq/rules-engine-go/internal/pkg/jwt"
	"github.com/attendhq/rules-engine-go/internal/repository/postgresql"
	attendanceService "github.com/attendhq/rules-engine-go/internal/service/attendance"
	employeeService "github.com/attendhq/rules-engine-go/internal/service/employee"
	payPeriodService "github.com/attendhq/rules-engine-go/internal/service/payperiod"
	ruleService "github.com/attendhq/rules-engine-go/internal/service/rules"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchDayRepo := postgresql.NewPunchDayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	ruleSvc := ruleService.NewRuleService(employeeRepo)
	payPeriodSvc := payPeriodService.NewPayPeriodService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(ruleSvc, punchDayRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	ruleHandler := appHTTP.NewRuleHandler(ruleSvc)
	payPeriodHandler := appHTTP.NewPayPeriodHandler(payPeriodSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	pruneInterval, err := time.ParseDuration(cfg.Cron.PruneInterval)
	if err != nil {
		fmt.Println("Invalid PRUNE_INTERVAL:", err)
		return
	}
	scheduler := cron.NewScheduler()
	cron.RegisterMaintenanceJobs(scheduler, punchDayRepo, pruneInterval, cfg.Cron.PunchRetentionDays)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		employeeHandler,
		ruleHandler,
		payPeriodHandler,
		attendanceHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
