package app

import (
	"database/sql"
	"math/rand"

	"go-payroll/internal/employee"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/middleware"
	"go-payroll/internal/salary"
	"go-payroll/internal/skillset"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	sqlDB *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	rng *rand.Rand,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB, sqlDB)
	skillsetRepo := skillset.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	// --- Services ---
	numbers := employee.NewNumberGenerator(rng)
	employeeService := employee.NewServiceWithOutbox(sqlDB, employeeRepo, numbers, outboxRepo)
	salaryService := salary.NewService(employeeRepo)
	skillsetService := skillset.NewService(skillsetRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandlerWithRedis(employeeService, rdb)
	salaryHandler := salary.NewHandler(salaryService)
	skillsetHandler := skillset.NewHandler(skillsetService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, rdb)
		salary.RegisterRoutes(api, salaryHandler)
		skillset.RegisterRoutes(api, skillsetHandler)
	}
}
