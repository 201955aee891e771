package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // APP_TIMEZONE must resolve on images without a zoneinfo database

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Geofence GeofenceConfig
	HTTP     HTTPConfig
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int32
	MinConns    int32
	AutoMigrate bool
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	Timezone    string
	FrontendURL string
}

type GeofenceConfig struct {
	// OfficeCacheTTL of zero disables the active office cache.
	OfficeCacheTTL time.Duration
}

type HTTPConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	// RateLimitPerMinute applies per client IP to the evaluation endpoints; zero disables it.
	RateLimitPerMinute int
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var (
		config = &Config{}
		errs   []error
	)

	// Database configuration
	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        getEnvInt("DB_PORT", 5432, &errs),
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "cmlabs-hris"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		MaxConns:    int32(getEnvInt("DB_MAX_CONNS", 25, &errs)),
		MinConns:    int32(getEnvInt("DB_MIN_CONNS", 5, &errs)),
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false, &errs),
	}

	// Application configuration
	config.App = AppConfig{
		Port:        getEnvInt("APP_PORT", 8080, &errs),
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Timezone:    getEnv("APP_TIMEZONE", "Asia/Kolkata"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnvDuration("JWT_ACCESS_EXPIRATION_TIME", time.Hour, &errs),
	}

	config.Geofence = GeofenceConfig{
		OfficeCacheTTL: getEnvDuration("OFFICE_CACHE_TTL", 30*time.Second, &errs),
	}

	config.HTTP = HTTPConfig{
		ReadTimeout:        getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second, &errs),
		WriteTimeout:       getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second, &errs),
		IdleTimeout:        getEnvDuration("HTTP_IDLE_TIMEOUT", 60*time.Second, &errs),
		ShutdownTimeout:    getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 15*time.Second, &errs),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60, &errs),
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.JWT.AccessExpiration <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE %q is not a known timezone: %w", c.App.Timezone, err)
	}
	if c.Geofence.OfficeCacheTTL < 0 {
		return fmt.Errorf("OFFICE_CACHE_TTL must not be negative")
	}
	if c.HTTP.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return nil
}

// Location returns the configured business timezone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LogLevel maps LOG_LEVEL onto slog levels, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool, errs *[]error) bool {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return d
}
