package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")

	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/biofit/biofit.db", cfg.DBPath)
	assert.Equal(t, "/tmp/xdg/biofit/biofit.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultAdminEmail, cfg.AdminEmail)
	assert.Equal(t, 30*time.Second, cfg.TriviaBudget)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.LLM.Provider)
	assert.Empty(t, cfg.JWTSecret)
}

func TestSigningSecret(t *testing.T) {
	cfg := &Config{}
	first, generated, err := cfg.SigningSecret()
	require.NoError(t, err)
	assert.True(t, generated)
	assert.Len(t, first, 64)

	second, _, err := cfg.SigningSecret()
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "each process gets its own secret")

	cfg.JWTSecret = "a-configured-secret-value"
	got, generated, err := cfg.SigningSecret()
	require.NoError(t, err)
	assert.False(t, generated)
	assert.Equal(t, cfg.JWTSecret, got)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"BIOFIT_DB":             "/data/b.db",
		"BIOFIT_LOG_FILE":       "/data/b.log",
		"BIOFIT_LOG_LEVEL":      "DEBUG",
		"BIOFIT_ADMIN_EMAIL":    "Admin@Farma.ec",
		"BIOFIT_TRIVIA_SECONDS": "45",
		"BIOFIT_TOKEN_TTL":      "1h",
		"BIOFIT_HTTP_ADDR":      ":9090",
		"BIOFIT_LLM_PROVIDER":   "mock",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/data/b.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "admin@farma.ec", cfg.AdminEmail)
	assert.Equal(t, 45*time.Second, cfg.TriviaBudget)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, "mock", cfg.LLM.Provider)
}

func TestFromEnvRejectsInvalid(t *testing.T) {
	base := map[string]string{"BIOFIT_DB": "/data/b.db", "BIOFIT_LOG_FILE": "/data/b.log"}
	tests := map[string]map[string]string{
		"log level":      {"BIOFIT_LOG_LEVEL": "verbose"},
		"admin email":    {"BIOFIT_ADMIN_EMAIL": "not-an-email"},
		"short secret":   {"BIOFIT_JWT_SECRET": "abc"},
		"trivia too low": {"BIOFIT_TRIVIA_SECONDS": "2"},
		"bad duration":   {"BIOFIT_TOKEN_TTL": "soon"},
		"bad address":    {"BIOFIT_HTTP_ADDR": "nowhere"},
	}
	for name, extra := range tests {
		t.Run(name, func(t *testing.T) {
			vars := map[string]string{}
			for k, v := range base {
				vars[k] = v
			}
			for k, v := range extra {
				vars[k] = v
			}
			_, err := FromEnv(envMap(vars))
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BIOFIT_DB="+filepath.Join(dir, "x.db")+"\nBIOFIT_TRIVIA_SECONDS=60\n"), 0o600))
	t.Setenv("BIOFIT_DB", "")
	t.Setenv("BIOFIT_TRIVIA_SECONDS", "")
	os.Unsetenv("BIOFIT_DB")
	os.Unsetenv("BIOFIT_TRIVIA_SECONDS")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x.db"), cfg.DBPath)
	assert.Equal(t, time.Minute, cfg.TriviaBudget)
}

func TestLoadMissingEnvFile(t *testing.T) {
	t.Setenv("BIOFIT_DB", filepath.Join(t.TempDir(), "y.db"))
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
