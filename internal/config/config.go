package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port        string
	Env         string
	CORSOrigins []string

	// Database
	DBDriver    string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	SQLitePath  string

	// AI service
	AIServiceURL     string
	AITrainTimeout   time.Duration
	AIPredictTimeout time.Duration
	AICompareTimeout time.Duration
	AIStatusTimeout  time.Duration
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:3001",
}

// Load loads configuration from the environment, reading a .env file first
// when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("ENV", "development"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "finsight"),
		DBPassword:  getEnv("DB_PASSWORD", "finsight"),
		DBName:      getEnv("DB_NAME", "expense_tracker"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		SQLitePath:  getEnv("SQLITE_PATH", "expense-tracker.db"),

		AIServiceURL: strings.TrimRight(getEnv("AI_SERVICE_URL", "http://localhost:3001"), "/"),
	}

	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		cfg.CORSOrigins = splitList(v)
	} else {
		cfg.CORSOrigins = append([]string(nil), defaultCORSOrigins...)
	}

	if cfg.DBDriver != "postgres" && cfg.DBDriver != "sqlite" {
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be postgres or sqlite", cfg.DBDriver)
	}

	var err error
	if cfg.AITrainTimeout, err = getDuration("AI_TRAIN_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.AIPredictTimeout, err = getDuration("AI_PREDICT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.AICompareTimeout, err = getDuration("AI_COMPARE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.AIStatusTimeout, err = getDuration("AI_STATUS_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether internal error details must be masked.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// PostgresURL returns the postgres:// connection string used by both gorm
// and golang-migrate. DATABASE_URL takes precedence over the DB_* parts.
func (c *Config) PostgresURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
