package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pet-adoption/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_EnvDefaults_WhenFileMissing(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 30*time.Minute, cfg.Auth.TTL)
	require.Equal(t, "Online Pet Adoption Platform", cfg.Platform.Name)
	require.Equal(t, 30, cfg.Platform.MaxApplicationDays)
	require.Equal(t, 30*time.Second, cfg.Jobs.SnapshotInterval)
	require.Empty(t, cfg.Database.DSN)
	require.False(t, cfg.IsProduction())
}

func TestLoad_ReadsYAML_AndPortOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := []byte(`
environment: production
http:
  addr: ":9000"
platform:
  name: "Shelter Hub"
auth:
  secret: "s3cret"
  ttl: 1h
`)
	require.NoError(t, os.WriteFile(path, yml, 0o600))

	t.Setenv("PORT", "7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.True(t, cfg.IsProduction())
	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, "Shelter Hub", cfg.Platform.Name)
	require.Equal(t, "s3cret", cfg.Auth.Secret)
	require.Equal(t, time.Hour, cfg.Auth.TTL)
}

func TestLoad_RejectsEmptySecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  secret: \" \"\n"), 0o600))
	t.Setenv("AUTH_SECRET", "")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("AUTH_SECRET", config.DefaultAuthSecret)

	t.Setenv("ENVIRONMENT", "development")
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultAuthSecret, cfg.Auth.Secret)

	t.Setenv("ENVIRONMENT", "production")
	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)

	t.Setenv("AUTH_SECRET", "a-real-secret")
	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
}
