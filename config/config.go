package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// devJWTSecret is only accepted outside production.
const devJWTSecret = "recipe-share-development-secret"

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerHost  string `validate:"required"`
	ServerPort  string `validate:"required,numeric"`
	CORSOrigins []string
	LogLevel    string `validate:"oneof=debug info warn error"`

	// Database configuration
	DBDriver    string `validate:"oneof=postgres sqlite"`
	DBHost      string `validate:"required_if=DBDriver postgres"`
	DBPort      string `validate:"required_if=DBDriver postgres"`
	DBUser      string `validate:"required_if=DBDriver postgres"`
	DBPassword  string
	DBName      string `validate:"required_if=DBDriver postgres"`
	DBSSLMode   string `validate:"omitempty,oneof=disable require verify-ca verify-full"`
	SQLitePath  string `validate:"required_if=DBDriver sqlite"`
	AutoMigrate bool

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int `validate:"gte=0"`

	// Session configuration
	JWTSecret    string        `validate:"required,min=16"`
	SessionTTL   time.Duration `validate:"gt=0"`
	SecureCookie bool

	// Rate limits per hour; zero disables the limiter
	RecipeCreateLimit int `validate:"gte=0"`
	RecipeModifyLimit int `validate:"gte=0"`

	// Image storage configuration
	S3Bucket    string
	AWSRegion   string `validate:"required_with=S3Bucket"`
	S3PublicURL string
}

// LoadConfig builds a Config from an optional .env file, the process
// environment and Docker secrets, then validates it.
func LoadConfig() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// Existing environment variables are never overridden by the file.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	env := GetEnvironment()
	l := &loader{}
	cfg := &Config{
		Environment: env,

		ServerHost:  getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:  getEnv("SERVER_PORT", "3001"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getSecret("DB_PASSWORD", "db_password"),
		DBName:      getEnv("DB_NAME", "recipe_share"),
		DBSSLMode:   getEnv("DB_SSL_MODE", "disable"),
		SQLitePath:  getEnv("SQLITE_PATH", "recipe_share.db"),
		AutoMigrate: l.boolean("DB_AUTO_MIGRATE", !env.IsProduction()),

		RedisURL:      getSecret("REDIS_URL", "redis_url"),
		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getSecret("REDIS_PASSWORD", "redis_password"),
		RedisDB:       l.integer("REDIS_DB", 0),

		JWTSecret:    getSecret("JWT_SECRET", "jwt_secret"),
		SessionTTL:   l.duration("SESSION_TTL", 24*time.Hour),
		SecureCookie: l.boolean("SECURE_COOKIE", env.IsProduction()),

		RecipeCreateLimit: l.integer("RECIPE_CREATE_LIMIT", 20),
		RecipeModifyLimit: l.integer("RECIPE_MODIFY_LIMIT", 30),

		S3Bucket:    getEnv("S3_BUCKET_NAME", ""),
		AWSRegion:   getEnv("AWS_REGION", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),
	}
	if cfg.JWTSecret == "" && !env.IsProduction() {
		cfg.JWTSecret = devJWTSecret
	}

	if len(l.errs) > 0 {
		return nil, fmt.Errorf("failed to parse configuration: %w", errors.Join(l.errs...))
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN returns a key/value connection string for PostgreSQL.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// SlogLevel maps LogLevel onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loader collects parse errors so every bad variable is reported at once.
type loader struct {
	errs []error
}

func (l *loader) integer(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}

func (l *loader) boolean(key string, def bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}

func (l *loader) duration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		l.errs = append(l.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return v
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// getSecret prefers the environment variable and falls back to a Docker
// secret file of the given name.
func getSecret(envKey, secretName string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
