package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"mes/cmd"
	httpserver "mes/internal/adapters/in/http"
	"mes/internal/adapters/out/postgres/laborrepo"
	"mes/internal/adapters/out/postgres/operationrepo"
	"mes/internal/adapters/out/postgres/orderrepo"
	"mes/internal/adapters/out/postgres/qualityrepo"
	"mes/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	createDbIfNotExists(configs)

	gormDB := mustConnectDb(configs)
	mustMigrateDb(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		LaborSweepSchedule:  goDotEnvVariable("LABOR_SWEEP_SCHEDULE"),
		MaxShiftLengthHours: goDotEnvVariable("MAX_SHIFT_LENGTH_HOURS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// createDbIfNotExists connects to the maintenance database with the plain
// SQL driver and creates the application database when it is missing.
func createDbIfNotExists(configs cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err := db.Exec("CREATE DATABASE " + configs.DBName); err != nil {
			log.Fatalf("Failed to create database %s: %v", configs.DBName, err)
		}
	}
}

func mustConnectDb(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDb(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&operationrepo.OperationDTO{},
		&qualityrepo.CheckDTO{},
		&laborrepo.AssignmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	maxShiftHours, err := strconv.Atoi(configs.MaxShiftLengthHours)
	if err != nil || maxShiftHours <= 0 {
		log.Fatalf("MAX_SHIFT_LENGTH_HOURS must be a positive integer, got %q", configs.MaxShiftLengthHours)
	}

	jobManager := jobs.NewJobManager(
		app.CreateClockOutStaleAssignmentsCommandHandler(),
		configs.LaborSweepSchedule,
		time.Duration(maxShiftHours)*time.Hour,
		slog.Default(),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpserver.NewServer(
		app.CreateTransitionOrderStatusCommandHandler(),
		app.CreateTransitionOperationStatusCommandHandler(),
		app.CreateUpdateOperationQuantityCommandHandler(),
		app.CreateCreateOperationsFromRoutingCommandHandler(),
		app.CreateTransitionQualityCheckStatusCommandHandler(),
		app.CreateRecordQualityResultCommandHandler(),
		app.CreateClockInCommandHandler(),
		app.CreateClockOutCommandHandler(),
		app.CreateStartBreakCommandHandler(),
		app.CreateEndBreakCommandHandler(),
		app.CreateGetOperationProgressQueryHandler(),
		app.CreateGetQualitySummaryQueryHandler(),
		app.CreateGetLaborSummaryQueryHandler(),
		app.CreateGetOrderExecutionSummaryQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
