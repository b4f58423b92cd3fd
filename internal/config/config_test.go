package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "CACHE_TTL", "SEED_ON_STARTUP", "RATE_LIMIT_PER_MINUTE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.True(t, cfg.SeedOnStartup)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("CACHE_TTL", "5m")
	t.Setenv("SEED_ON_STARTUP", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.SeedOnStartup)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "game",
		DBPassword: "secret",
		DBName:     "connections",
		DBSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db user=game password=secret dbname=connections port=5433 sslmode=require TimeZone=UTC",
		cfg.DSN())
}
