package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/OutLand606/FinancePro-sub001/internal/attendance"
	"github.com/OutLand606/FinancePro-sub001/internal/bootstrap"
	"github.com/OutLand606/FinancePro-sub001/internal/employee"
	"github.com/OutLand606/FinancePro-sub001/internal/kpi"
	"github.com/OutLand606/FinancePro-sub001/internal/ledger"
	"github.com/OutLand606/FinancePro-sub001/internal/messaging/kafka"
	"github.com/OutLand606/FinancePro-sub001/internal/payroll"
	"github.com/OutLand606/FinancePro-sub001/internal/rbac"
	"github.com/OutLand606/FinancePro-sub001/internal/salary"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	kpiRepo := kpi.NewRepository(gormDB)
	ledgerRepo := ledger.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo)
	kpiService := kpi.NewService(kpiRepo)
	ledgerService := ledger.NewService(ledgerRepo)
	salaryService := salary.NewService(db, salaryRepo)
	payrollService := payroll.NewServiceWithOutbox(
		db,
		payrollRepo,
		payroll.Sources{
			Directory:   employeeRepo,
			Templates:   salary.NewCatalog(salaryRepo),
			Timesheets:  attendanceRepo,
			Commissions: kpiRepo,
		},
		ledgerRepo,
		outboxRepo,
		bootstrap.NewStdoutAuditLogger(),
	)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	kpiHandler := kpi.NewHandler(kpiService)
	ledgerHandler := ledger.NewHandler(ledgerService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	salaryHandler := salary.NewHandler(salaryService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		kpi.RegisterRoutes(api, kpiHandler, rbacService)
		ledger.RegisterRoutes(api, ledgerHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		salary.RegisterRoutes(api, salaryHandler, rbacService)
	}

	return nil
}
