package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "APP_ENV", "HTTP_ADDR", "DB_PATH", "DB_IN_MEMORY", "BACKUP_DIR", "TIMEZONE", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "quillpress", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "data/badger", cfg.DBPath)
	assert.False(t, cfg.DBInMemory)
	assert.Equal(t, "data/backups", cfg.BackupDir)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", "127.0.0.1:8080")
	t.Setenv("DB_IN_MEMORY", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	assert.True(t, cfg.DBInMemory)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "UTC", cfg.Location().String())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("DB_IN_MEMORY", "maybe")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("TIMEZONE", "Nowhere/Special")

	cfg := Load()
	assert.False(t, cfg.DBInMemory)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Local, cfg.Location())
}
