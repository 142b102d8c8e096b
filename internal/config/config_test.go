package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("AI_SERVICE_URL", "")
		t.Setenv("DB_DRIVER", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		t.Setenv("AI_PREDICT_TIMEOUT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "5000" {
			t.Errorf("expected port 5000, got %s", cfg.Port)
		}
		if cfg.AIServiceURL != "http://localhost:3001" {
			t.Errorf("unexpected AI service URL %s", cfg.AIServiceURL)
		}
		if cfg.DBDriver != "postgres" {
			t.Errorf("expected postgres driver, got %s", cfg.DBDriver)
		}
		if cfg.AIPredictTimeout != 10*time.Second {
			t.Errorf("expected 10s predict timeout, got %v", cfg.AIPredictTimeout)
		}
		if len(cfg.CORSOrigins) != 4 {
			t.Errorf("expected 4 default origins, got %v", cfg.CORSOrigins)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("AI_SERVICE_URL", "http://ai:9000/")
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
		t.Setenv("AI_TRAIN_TIMEOUT", "45s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AIServiceURL != "http://ai:9000" {
			t.Errorf("expected trailing slash trimmed, got %s", cfg.AIServiceURL)
		}
		if cfg.DBDriver != "sqlite" {
			t.Errorf("expected sqlite driver, got %s", cfg.DBDriver)
		}
		if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
			t.Errorf("unexpected origins %v", cfg.CORSOrigins)
		}
		if cfg.AITrainTimeout != 45*time.Second {
			t.Errorf("expected 45s, got %v", cfg.AITrainTimeout)
		}
	})

	t.Run("invalid_timeout", func(t *testing.T) {
		t.Setenv("AI_STATUS_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for invalid duration")
		}
	})

	t.Run("invalid_driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatal("expected error for unsupported driver")
		}
	})
}

func TestPostgresURL(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "n", DBSSLMode: "disable"}
	if got := cfg.PostgresURL(); got != "postgres://u:p@h:5432/n?sslmode=disable" {
		t.Errorf("unexpected url %s", got)
	}

	cfg.DatabaseURL = "postgres://override"
	if got := cfg.PostgresURL(); got != "postgres://override" {
		t.Errorf("expected DATABASE_URL to win, got %s", got)
	}
}
