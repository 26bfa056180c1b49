// Package config loads console settings from an optional YAML file and the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/lehigh-university-libraries/libadmin/internal/api"
	"github.com/lehigh-university-libraries/libadmin/internal/models"
)

type Config struct {
	BaseURL   string        `yaml:"base_url" env:"LIBADMIN_BASE_URL" env-default:"http://localhost:5432/api" env-description:"Backend API base URL"`
	Timeout   time.Duration `yaml:"timeout" env:"LIBADMIN_TIMEOUT" env-default:"30s" env-description:"HTTP request timeout"`
	UserAgent string        `yaml:"user_agent" env:"LIBADMIN_USER_AGENT" env-description:"User-Agent header sent to the backend"`
	Roles     []string      `yaml:"roles" env:"LIBADMIN_ROLES" env-separator:"," env-description:"Roles offered by the user form"`
	Output    string        `yaml:"output" env:"LIBADMIN_OUTPUT" env-default:"text" env-description:"Output format: text, json, yaml or csv"`
}

// Load reads path when it is set, then the environment. Environment values
// win over the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if len(cfg.Roles) == 0 {
		cfg.Roles = append([]string(nil), models.DefaultRoles...)
	}
	return cfg, nil
}

// Usage describes the environment variables Load understands
func Usage() string {
	help, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		slog.Error("Unable to describe configuration", "err", err)
		return ""
	}
	return help
}

// API returns the client settings
func (c *Config) API() api.Config {
	return api.Config{
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		UserAgent: c.UserAgent,
	}
}

// SetupLogging installs the default slog handler on stderr, at debug level
// when verbose is set.
func SetupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
