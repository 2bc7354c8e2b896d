package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t,
		"SERVER_PORT", "LOG_LEVEL", "LOGIN_RATE_LIMIT", "LOGIN_RATE_WINDOW",
		"REDIS_SESSION_TTL", "RESEND_BASE_URL", "EMAIL_WORKER_ENABLED",
		"PROJECTION_DEFAULT_HORIZON", "PROJECTION_MAX_HORIZON",
	)

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.Server.LogLevel)
	}
	if cfg.Server.LoginRateLimit != 5 || cfg.Server.LoginRateWindow != time.Minute {
		t.Errorf("expected 5 logins per minute, got %d per %s", cfg.Server.LoginRateLimit, cfg.Server.LoginRateWindow)
	}
	if cfg.Redis.SessionTTL != 24*time.Hour {
		t.Errorf("expected session TTL 24h, got %s", cfg.Redis.SessionTTL)
	}
	if cfg.Email.ResendBaseURL != "" {
		t.Errorf("expected empty resend base url, got %s", cfg.Email.ResendBaseURL)
	}
	if !cfg.Email.WorkerEnabled {
		t.Error("expected email worker enabled by default")
	}
	if cfg.Projection.DefaultHorizon != 12 || cfg.Projection.MaxHorizon != 24 {
		t.Errorf("expected horizons 12/24, got %d/%d", cfg.Projection.DefaultHorizon, cfg.Projection.MaxHorizon)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOGIN_RATE_LIMIT", "0")
	t.Setenv("LOGIN_RATE_WINDOW", "30s")
	t.Setenv("RESEND_BASE_URL", "http://localhost:4010")
	t.Setenv("EMAIL_WORKER_ENABLED", "false")
	t.Setenv("PROJECTION_DEFAULT_HORIZON", "3")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.LoginRateLimit != 0 {
		t.Errorf("expected rate limit disabled, got %d", cfg.Server.LoginRateLimit)
	}
	if cfg.Server.LoginRateWindow != 30*time.Second {
		t.Errorf("expected 30s window, got %s", cfg.Server.LoginRateWindow)
	}
	if cfg.Email.ResendBaseURL != "http://localhost:4010" {
		t.Errorf("expected overridden resend base url, got %s", cfg.Email.ResendBaseURL)
	}
	if cfg.Email.WorkerEnabled {
		t.Error("expected email worker disabled")
	}
	if cfg.Projection.DefaultHorizon != 3 {
		t.Errorf("expected default horizon 3, got %d", cfg.Projection.DefaultHorizon)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(*Config) bool
	}{
		{"int", "SERVER_PORT", "eighty", func(c *Config) bool { return c.Server.Port == 8080 }},
		{"bool", "BUDGET_ALERTS_ENABLED", "maybe", func(c *Config) bool { return c.Email.BudgetAlerts }},
		{"duration", "JWT_EXPIRY", "15", func(c *Config) bool { return c.JWT.AccessTokenExpiry == 15*time.Minute }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if !tt.check(Load()) {
				t.Errorf("expected %s=%q to fall back to the default", tt.key, tt.value)
			}
		})
	}
}
