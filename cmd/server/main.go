// @title           Hostel Management API
// @version         1.0
// @description     Administration dashboard backend for a student hostel

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/app/routes"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/domain/models"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/config"
	"github.com/mdtanbirulislam55-maxorasoft/HostelManagement/internal/infrastructure/database"
	Logger "github.com/mdtanbirulislam55-maxorasoft/HostelManagement/pkg/logger"
)

func main() {
	// Use all available cores
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Initialize logging
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file
	if err := godotenv.Load(); err != nil {
		Logger.Warning("could not load .env file: %v", err)
		// Keep going; the environment may already be set another way
	} else {
		Logger.Info(".env file loaded")
	}

	// Load configuration
	cfg := config.GetConfig()

	// Create the database connection pool
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	db := pool.DB

	// Run migrations according to the configured mode
	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("drop and recreate failed: %v", err)
		}
	} else {
		// Default AutoMigrate only adds new columns and tables
		log.Println("running in standard mode, only new columns and tables will be added")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	// Make sure an administrator account exists
	ensureAdminExists(db, cfg)

	// Initialize routes
	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort

	printSystemInfo()

	// Listen on all interfaces, not just localhost
	Logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models (adds new columns and tables only)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Floor{},
		&models.Room{},
		&models.Student{},
		&models.Payment{},
		&models.Expense{},
		&models.ActivityLog{},
		&models.Alert{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every table and rebuilds the schema
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	// Disable foreign key checks while tables are dropped
	_, err = sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0")
	if err != nil {
		log.Printf("failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"users", "floors", "rooms", "students", "payments",
		"expenses", "activity_logs", "alerts",
	}

	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		_, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
		if err != nil {
			log.Printf("failed to drop table: %v", err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists creates the default administrator when none exists
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.User{}).Count(&count)

	if count == 0 {
		// The model hooks hash the password on create
		admin := models.User{
			Username: cfg.DefaultAdminUsername,
			Password: cfg.DefaultAdminPassword,
			Role:     "admin",
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to create default administrator: %v", err)
		}

		log.Println("default administrator account created")
	}
}

// printSystemInfo logs runtime resource information
func printSystemInfo() {
	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
