package main

import (
	"context"
	"log"
	"os"

	"github.com/timmy/goodjob/internal/config"
	"github.com/timmy/goodjob/internal/logger"
	"github.com/timmy/goodjob/internal/repository"
	"github.com/timmy/goodjob/internal/service"
)

// Seeds the default status catalog into an empty database. Safe to run
// repeatedly; an already-populated catalog is left alone.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.New(&logger.Config{
		Level:       cfg.Log.Level,
		Format:      "text",
		ServiceName: "goodjob-seed",
	})
	logger.SetDefaultLogger(appLog)

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize database")
	}

	statusRepo := repository.NewStatusRepository(db)
	jobRepo := repository.NewJobRepository(db)
	statusService := service.NewStatusService(statusRepo, jobRepo)

	seeded, err := statusService.SeedDefaults(context.Background())
	if err != nil {
		appLog.WithError(err).Fatal("Seeding failed")
	}
	appLog.Infof("Seeded %d default statuses", seeded)
}
