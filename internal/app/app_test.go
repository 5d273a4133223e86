package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("SESSION_LIFETIME_HOURS", "")

	cfg := LoadConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./gallerie.db", cfg.DatabasePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DATABASE_PATH", "/tmp/g.db")
	t.Setenv("SESSION_LIFETIME_HOURS", "2")

	cfg := LoadConfig()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/g.db", cfg.DatabasePath)
	assert.Equal(t, 2*time.Hour, cfg.SessionLifetime)
}

func TestLoadConfigBadLifetime(t *testing.T) {
	t.Setenv("SESSION_LIFETIME_HOURS", "soon")

	cfg := LoadConfig()
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
}
