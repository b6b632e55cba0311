package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"skillax-backend/internal/config"
	analyticsservice "skillax-backend/internal/domains/analytics/service"
	"skillax-backend/internal/infrastructure/database"
	infradocstore "skillax-backend/internal/infrastructure/docstore"
	"skillax-backend/internal/infrastructure/email"
	"skillax-backend/internal/infrastructure/queue"
	"skillax-backend/pkg/logger"
)

// Run starts the asynq worker plus the cron scheduler and blocks until a
// termination signal arrives.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(context.Background()); err != nil {
		logger.Error("failed to connect database", err)
		os.Exit(1)
	}
	defer db.Close()

	store := infradocstore.NewPostgresStore(db.Pool)
	analytics := analyticsservice.NewService(store)
	mailer := email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	handlers := newTaskHandlers(analytics, mailer, cfg.SMTP.AdminTo)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{"default": 1},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TaskLeadNotify, handlers.handleLeadNotify)
	mux.HandleFunc(queue.TaskAnalyticsDigest, handlers.handleAnalyticsDigest)

	scheduler := queue.NewScheduler(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := scheduler.RegisterPeriodicTasks(); err != nil {
		logger.Error("failed to register periodic tasks", err)
		os.Exit(1)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("scheduler stopped", err)
		}
	}()

	go func() {
		logger.Info("worker starting", map[string]interface{}{"redis": cfg.Redis.Host})
		if err := srv.Run(mux); err != nil {
			logger.Error("worker failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker", nil)
	scheduler.Shutdown()
	srv.Shutdown()
	logger.Info("worker exited", nil)
}
