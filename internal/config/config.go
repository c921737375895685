// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	YouTube  YouTubeConfig
	OpenAI   OpenAIConfig
	Cache    CacheConfig
	Jobs     JobsConfig
	// GroupingPolicy selects how video chapters are grouped into modules: fixed or duration
	GroupingPolicy string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// YouTubeConfig holds YouTube Data API settings.
// An empty APIKey disables every YouTube call.
type YouTubeConfig struct {
	APIKey  string
	Timeout time.Duration
}

// OpenAIConfig holds chat completion API settings.
// An empty APIKey disables every completion.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// CacheConfig holds language model response cache settings
type CacheConfig struct {
	Backend  string
	Capacity int
	TTL      time.Duration
}

// JobsConfig holds asynchronous generation settings
type JobsConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return nil, fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	// Server configuration
	serverPort, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	cfg.Logging.Level = stringEnv("LOG_LEVEL", "info")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// External APIs share one timeout setting
	timeout, err := durationEnv("EXTERNAL_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY") // optional
	cfg.YouTube.Timeout = timeout

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")   // optional
	cfg.OpenAI.BaseURL = os.Getenv("OPENAI_BASE_URL") // optional
	cfg.OpenAI.Model = os.Getenv("OPENAI_MODEL")      // optional
	cfg.OpenAI.Timeout = timeout

	// Cache configuration
	cfg.Cache.Backend = strings.ToLower(stringEnv("CACHE_BACKEND", CacheBackendMemory))
	if cfg.Cache.Backend != CacheBackendMemory && cfg.Cache.Backend != CacheBackendRedis {
		return nil, fmt.Errorf("invalid CACHE_BACKEND: %s", cfg.Cache.Backend)
	}
	if cfg.Cache.Capacity, err = intEnv("CACHE_CAPACITY", 1000); err != nil {
		return nil, err
	}
	if cfg.Cache.TTL, err = durationEnv("CACHE_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	// Redis configuration (cache and jobs)
	cfg.Redis.Host = stringEnv("REDIS_HOST", "localhost")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD") // optional
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}

	// Jobs configuration
	if jobsEnabled := os.Getenv("JOBS_ENABLED"); jobsEnabled != "" {
		enabled, err := strconv.ParseBool(jobsEnabled)
		if err != nil {
			return nil, fmt.Errorf("invalid JOBS_ENABLED: %w", err)
		}
		cfg.Jobs.Enabled = enabled
	}

	cfg.GroupingPolicy = stringEnv("COURSE_GROUPING_POLICY", "fixed")

	return cfg, nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// RedisAddr returns the Redis host:port address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// parseOrigins splits a comma-separated origin list, allowing all origins when it is empty
func parseOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
