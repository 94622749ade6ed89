package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataquality/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.MemoryCapacity)
	assert.Equal(t, "api:", cfg.Cache.KeyPrefix)
	assert.Empty(t, cfg.Redis.URL)
	assert.False(t, cfg.S3.Enabled())
	assert.Equal(t, time.Hour, cfg.S3.PresignExpiry)
	assert.False(t, cfg.Rules.Persist)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DQ_SERVER_ENVIRONMENT", "production")
	t.Setenv("DQ_REDIS_URL", "redis://cache:6379/2")
	t.Setenv("DQ_CACHE_TTL", "30s")
	t.Setenv("DQ_S3_BUCKET", "dq-reports")
	t.Setenv("DQ_RULES_PERSIST", "true")
	t.Setenv("DQ_CORS_ALLOWED_ORIGINS", " https://dq.example.com , ,https://ops.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.S3.Enabled())
	assert.True(t, cfg.Rules.Persist)
	assert.Equal(t, []string{"https://dq.example.com", "https://ops.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortFromPlatform(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_InvalidMemoryCapacity(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DQ_CACHE_MEMORY_CAPACITY", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_MissingSeedFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DQ_RULES_SEED_FILE", filepath.Join(dir, "rules.yaml"))

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "replica", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@db:5433/replica?sslmode=require", db.DSN())
}
