package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/leave"
	"go-payroll/internal/loan"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/payroll"
	"go-payroll/internal/payslip"
	"go-payroll/internal/rbac"
	"go-payroll/internal/settings"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	loanRepo := loan.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	salaryRepo := payroll.NewRepository(gormDB)
	artifactRepo := payslip.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC ---
	enforcer, err := rbac.NewEnforcer(
		filepath.Join("internal", "rbac", "model.conf"),
		filepath.Join("internal", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}

	// --- Core ---
	calculator := payroll.NewCalculator(employeeRepo, settingsRepo, attendanceRepo, leaveRepo, loanRepo)
	ledger := loan.NewLedger(loanRepo)
	renderer := payslip.NewPDFRenderer(os.Getenv("PAYSLIP_DIR"))

	payrollService := payroll.NewService(
		db,
		calculator,
		salaryRepo,
		ledger,
		employeeRepo,
		artifactRepo,
		renderer,
		outboxRepo,
	)

	// --- Handlers & routes ---
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	api := router.Group("/api/v1")
	payroll.RegisterRoutes(api, payrollHandler, enforcer, rdb)

	return nil
}
