package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/timmy/goodjob/internal/api"
	"github.com/timmy/goodjob/internal/config"
	"github.com/timmy/goodjob/internal/logger"
	"github.com/timmy/goodjob/internal/repository"
	"github.com/timmy/goodjob/internal/service"
)

func main() {
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLog := logger.New(&logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "goodjob",
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
	})
	logger.SetDefaultLogger(appLog)

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLog.WithError(err).Fatal("Failed to initialize database")
	}

	// Repositories
	statusRepo := repository.NewStatusRepository(db)
	jobRepo := repository.NewJobRepository(db)
	prepRepo := repository.NewPrepTodoRepository(db)
	todoRepo := repository.NewDashboardTodoRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	// Services
	statusService := service.NewStatusService(statusRepo, jobRepo)
	jobService := service.NewJobService(jobRepo, prepRepo, statusRepo)
	prepService := service.NewPrepTodoService(prepRepo, jobRepo)
	todoService := service.NewDashboardTodoService(todoRepo)
	questionService := service.NewQuestionService(questionRepo)
	calendarService := service.NewCalendarService(jobRepo, statusRepo)

	router := api.SetupRouter(
		statusService,
		jobService,
		prepService,
		todoService,
		questionService,
		calendarService,
		cfg,
	)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLog.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.WithError(err).Fatal("Server forced to shutdown")
	}

	appLog.Info("Server exited")
}
