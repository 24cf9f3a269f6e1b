package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"enrollment-metrics-report/app/repository"
	repoMongo "enrollment-metrics-report/app/repository/mongodb"
	repoPostgre "enrollment-metrics-report/app/repository/postgresql"
	reportService "enrollment-metrics-report/app/service/report"
	"enrollment-metrics-report/config"
	"enrollment-metrics-report/database"
	FiberApp "enrollment-metrics-report/fiber"
	"enrollment-metrics-report/route"

	"github.com/gofiber/fiber/v2/log"
)

func main() {

	// 1. Load .env file
	config.LoadEnv()
	cfg := config.Load()

	// 2. Connect to the enrollment source
	repo := connectSource(cfg)

	// 3. Setup Fiber App
	app := FiberApp.SetupFiber(cfg)

	// 4. Setup Route
	route.SetupRoutes(app, cfg, repo)

	// 5. Start server
	go func() {
		log.Infof("server running on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorf("server stopped: %v", err)
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}

	database.DisconnectMongo(ctx)
	database.ClosePostgres()
}

// connectSource never aborts startup: when the connection cannot be set up
// the service still serves /health and reports the error on /metrics/scalar.
func connectSource(cfg *config.Config) reportService.EnrollmentReader {
	switch cfg.EnrollmentSource {
	case config.SourcePostgres:
		db, err := database.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Errorf("postgres setup failed: %v", err)
			return repository.Unavailable{Err: err}
		}
		return repoPostgre.NewEnrollmentRepository(db, cfg.PostgresTable)
	default:
		db, err := database.ConnectMongo(cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Errorf("mongodb setup failed: %v", err)
			return repository.Unavailable{Err: err}
		}
		return repoMongo.NewEnrollmentRepository(db, cfg.MongoCollection)
	}
}
