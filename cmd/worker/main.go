package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/coursegen/backend/internal/app"
	"github.com/coursegen/backend/internal/config"
	"github.com/coursegen/backend/internal/jobs"
	"github.com/coursegen/backend/internal/logger"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting CourseGen Worker")

	// Connect to database
	db, err := app.ConnectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := app.RunMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Connect to Redis
	ctx := context.Background()
	rdb, err := app.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()

	responses, err := app.NewResponseCache(cfg, rdb, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create response cache", zap.Error(err))
	}

	svc, err := app.NewServices(ctx, cfg, db, responses, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	processor := jobs.NewProcessor(svc.JobRepo, svc.Generator, logger.Logger)

	// Create Asynq server
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				jobs.QueueGeneration: 1,
			},
		},
	)

	// Register task handlers
	mux := asynq.NewServeMux()
	processor.Register(mux)

	// Start worker
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Logger.Fatal("Failed to start worker", zap.Error(err))
		}
	}()

	// Fail jobs abandoned by crashed workers
	scheduler, err := jobs.NewScheduler(processor)
	if err != nil {
		logger.Logger.Fatal("Failed to create scheduler", zap.Error(err))
	}
	scheduler.Start()

	logger.Logger.Info("Worker started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down worker...")
	<-scheduler.Stop().Done()
	srv.Shutdown()
	logger.Logger.Info("Worker exited")
}
