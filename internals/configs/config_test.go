package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
)

func TestLoad_Defaults(t *testing.T) {
	// env kosong diperlakukan viper sebagai tidak diset
	for _, k := range []string{"PORT", "STORE_DRIVER", "RATE_LIMIT_MAX", "DEADLINE_WINDOW_DAYS", "DATABASE_URL", "JWT_SECRET", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 30, cfg.DeadlineWindowDays)
	assert.Empty(t, cfg.JWTSecret)
	assert.Len(t, cfg.CorsAllowOrigins, 2)
	assert.Error(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", " Memory ")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_MAX", "7")
	t.Setenv("DEADLINE_WINDOW_DAYS", "14")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, 7, cfg.RateLimitMax)
	assert.Equal(t, 14, cfg.DeadlineWindowDays)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsAllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := Config{
		StoreDriver:        StoreDriverMemory,
		JWTSecret:          "x",
		RateLimitMax:       100,
		DeadlineWindowDays: 30,
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"missing secret", func(c *Config) { c.JWTSecret = "" }},
		{"unknown driver", func(c *Config) { c.StoreDriver = "mongo" }},
		{"postgres without dsn", func(c *Config) { c.StoreDriver = StoreDriverPostgres }},
		{"zero rate limit", func(c *Config) { c.RateLimitMax = 0 }},
		{"window too large", func(c *Config) { c.DeadlineWindowDays = 366 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mut(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "postgres://u@h/db", Config{DatabaseURL: "postgres://u@h/db", DBHost: "ignored"}.DSN())
	assert.Empty(t, Config{DBHost: "h"}.DSN())

	dsn := Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBName: "db"}.DSN()
	assert.Contains(t, dsn, "postgres://u:p@h:5432/db?sslmode=require")
	assert.Contains(t, dsn, "application_name=scholartrack")
}

func TestGormLogger_LogModeCopies(t *testing.T) {
	l := NewGormLogger(zap.NewNop(), false).(*GormLogger)
	silent := l.LogMode(gormLogger.Silent).(*GormLogger)
	assert.Equal(t, gormLogger.Warn, l.LogLevel)
	assert.Equal(t, gormLogger.Silent, silent.LogLevel)
}
