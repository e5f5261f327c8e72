// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/santgross/BIOFIT-EXPERT/internal/llm"
)

// DefaultAdminEmail is the account that sees the admin views.
const DefaultAdminEmail = "sgross@pharmabrand.com.ec"

var validate = validator.New()

// Config is the resolved application configuration.
type Config struct {
	DBPath   string `validate:"required"`
	LogFile  string
	LogLevel string `validate:"oneof=debug info warn error"`

	AdminEmail string        `validate:"required,email"`
	// JWTSecret signs API tokens. Empty means serve generates one per
	// process.
	JWTSecret  string        `validate:"omitempty,min=16"`
	TokenTTL   time.Duration `validate:"gt=0s"`
	HTTPAddr   string        `validate:"required,hostname_port"`

	TriviaBudget time.Duration `validate:"gte=5s"`
	// ContentPath optionally points to a JSON content pack replacing the
	// built-in one.
	ContentPath string `validate:"omitempty,filepath"`

	LLM llm.Config `validate:"-"`
}

// Load reads envFile (ignored when missing) into the process environment
// without overriding variables already set, then resolves the config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv resolves the config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(name, fallback string) string {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		DBPath:      get("BIOFIT_DB", ""),
		LogFile:     get("BIOFIT_LOG_FILE", ""),
		LogLevel:    strings.ToLower(get("BIOFIT_LOG_LEVEL", "info")),
		AdminEmail:  strings.ToLower(get("BIOFIT_ADMIN_EMAIL", DefaultAdminEmail)),
		JWTSecret:   get("BIOFIT_JWT_SECRET", ""),
		HTTPAddr:    get("BIOFIT_HTTP_ADDR", "127.0.0.1:8080"),
		ContentPath: get("BIOFIT_CONTENT", ""),
		LLM:         llm.ConfigFromEnv(getenv),
	}

	var err error
	if cfg.TokenTTL, err = duration(get("BIOFIT_TOKEN_TTL", "12h")); err != nil {
		return nil, fmt.Errorf("BIOFIT_TOKEN_TTL: %w", err)
	}
	if cfg.TriviaBudget, err = duration(get("BIOFIT_TRIVIA_SECONDS", "30")); err != nil {
		return nil, fmt.Errorf("BIOFIT_TRIVIA_SECONDS: %w", err)
	}

	if cfg.DBPath == "" {
		if cfg.DBPath, err = defaultDataPath("biofit.db"); err != nil {
			return nil, err
		}
	}
	if cfg.LogFile == "" {
		if cfg.LogFile, err = defaultDataPath("biofit.log"); err != nil {
			return nil, err
		}
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// duration accepts a Go duration ("45s") or a bare number of seconds.
func duration(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(s)
}

// defaultDataPath returns name under $XDG_DATA_HOME/biofit or
// ~/.local/share/biofit.
func defaultDataPath(name string) (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "biofit", name), nil
}

// SigningSecret returns the configured JWT secret. Without one it returns a
// random secret and generated is true; tokens then die with the process.
func (c *Config) SigningSecret() (secret string, generated bool, err error) {
	if c.JWTSecret != "" {
		return c.JWTSecret, false, nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", false, fmt.Errorf("generate JWT secret: %w", err)
	}
	return hex.EncodeToString(buf), true, nil
}
