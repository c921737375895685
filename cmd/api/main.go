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

	_ "github.com/coursegen/backend/docs"
	"github.com/coursegen/backend/internal/app"
	"github.com/coursegen/backend/internal/config"
	"github.com/coursegen/backend/internal/handlers"
	"github.com/coursegen/backend/internal/jobs"
	"github.com/coursegen/backend/internal/logger"
	"github.com/coursegen/backend/internal/middleware"
	"github.com/coursegen/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title CourseGen API
// @version 1.0
// @description API for generating video courses from YouTube sources, topics and prompts

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
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

	logger.Logger.Info("Starting CourseGen API")

	// Connect to database
	db, err := app.ConnectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := app.RunMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()

	// Redis backs the shared cache and the job queue
	var rdb *redis.Client
	if cfg.Cache.Backend == config.CacheBackendRedis || cfg.Jobs.Enabled {
		rdb, err = app.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer rdb.Close()
	}

	responses, err := app.NewResponseCache(cfg, rdb, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create response cache", zap.Error(err))
	}

	// Initialize services
	svc, err := app.NewServices(ctx, cfg, db, responses, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, logger.Logger)
	courseHandler := handlers.NewCourseHandler(svc.Courses, svc.Generator, logger.Logger)
	progressHandler := handlers.NewProgressHandler(svc.Quizzes, svc.Progress, logger.Logger)
	studyNoteHandler := handlers.NewStudyNoteHandler(svc.StudyNotes, logger.Logger)

	var jobHandler *handlers.JobHandler
	if cfg.Jobs.Enabled {
		taskClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer taskClient.Close()

		jobService := services.NewJobService(svc.JobRepo, jobs.NewEnqueuer(taskClient), logger.Logger)
		jobHandler = handlers.NewJobHandler(jobService, logger.Logger)
	}

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger.Logger))
	r.Use(middleware.Recovery(logger.Logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimit(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		healthHandler.RegisterRoutes(r)
		courseHandler.RegisterRoutes(r)
		progressHandler.RegisterRoutes(r)
		studyNoteHandler.RegisterRoutes(r)
		if jobHandler != nil {
			jobHandler.RegisterRoutes(r)
		}
	})

	// Start server. Generation calls several external APIs, so writes get a long timeout.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port), zap.Bool("jobs", cfg.Jobs.Enabled))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
