// Package app wires the pieces shared by the API server and the generation worker
package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/coursegen/backend/internal/cache"
	"github.com/coursegen/backend/internal/chapters"
	"github.com/coursegen/backend/internal/clients/llm"
	"github.com/coursegen/backend/internal/clients/youtube"
	"github.com/coursegen/backend/internal/config"
	"github.com/coursegen/backend/internal/handlers"
	"github.com/coursegen/backend/internal/repositories"
	"github.com/coursegen/backend/internal/services"
	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

const cachePrefix = "coursegen:llm:"

// ConnectDB connects to the database
func ConnectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// RunMigrations applies the SQL migrations found in ./migrations or ../migrations
func RunMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}

// NewResponseCache builds the completion cache selected by the configuration.
// rdb may be nil when the memory backend is configured.
func NewResponseCache(cfg *config.Config, rdb redis.UniversalClient, logger *zap.Logger) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis cache backend requires a redis client")
		}
		return cache.NewRedis(rdb, cachePrefix, cfg.Cache.TTL, logger), nil
	default:
		memory, err := cache.NewMemory(cfg.Cache.Capacity)
		if err != nil {
			return nil, err
		}
		return memory, nil
	}
}

// Services holds the services built on top of the database and the external APIs
type Services struct {
	Courses    handlers.CourseService
	Generator  handlers.CourseGenerator
	Quizzes    handlers.QuizService
	Progress   handlers.ProgressService
	StudyNotes handlers.StudyNoteService
	JobRepo    services.GenerationJobRepository
}

// NewServices builds the repositories, the external API clients and the services using them
func NewServices(ctx context.Context, cfg *config.Config, db *sql.DB, responses cache.Cache, logger *zap.Logger) (*Services, error) {
	videos, err := youtube.NewClient(ctx, cfg.YouTube.APIKey, cfg.YouTube.Timeout, logger)
	if err != nil {
		return nil, err
	}
	completer := llm.NewClient(llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.Model,
		Timeout: cfg.OpenAI.Timeout,
	}, responses, logger)

	if !videos.Configured() {
		logger.Warn("YOUTUBE_API_KEY is not set, courses will use placeholder videos")
	}
	if !completer.Configured() {
		logger.Warn("OPENAI_API_KEY is not set, courses will use placeholder content")
	}

	courseRepo := repositories.NewCourseRepository(db)
	moduleRepo := repositories.NewModuleRepository(db)
	lessonRepo := repositories.NewLessonRepository(db)
	quizRepo := repositories.NewQuizRepository(db)
	noteRepo := repositories.NewStudyNoteRepository(db)
	progressRepo := repositories.NewProgressRepository(db)

	courseService := services.NewCourseService(courseRepo, moduleRepo, lessonRepo, quizRepo, logger)
	policy := chapters.ParsePolicy(cfg.GroupingPolicy)

	return &Services{
		Courses:    courseService,
		Generator:  services.NewGenerationService(courseRepo, courseService, videos, completer, policy, logger),
		Quizzes:    services.NewQuizService(quizRepo, progressRepo, logger),
		Progress:   services.NewProgressService(progressRepo, lessonRepo, courseRepo, logger),
		StudyNotes: services.NewStudyNoteService(noteRepo, lessonRepo, moduleRepo, courseRepo, completer, logger),
		JobRepo:    repositories.NewGenerationJobRepository(db),
	}, nil
}
