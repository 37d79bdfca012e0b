package config

import (
	"fmt"
	"strings"
	"time"

	coreagg "github.com/crystal-vistas/vistas-ops/internal/core/aggregation"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

// EnvPrefix selects the environment variables that override file settings.
// VISTAS_SERVER__PORT sets server.port.
const EnvPrefix = "VISTAS_"

// Config represents the top-level application config.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Charts    ChartsConfig    `koanf:"charts"`
	Auth      AuthConfig      `koanf:"auth"`
	Reviews   ReviewsConfig   `koanf:"reviews"`
	Notify    NotifyConfig    `koanf:"notify"`
	Retention RetentionConfig `koanf:"retention"`
}

type ServerConfig struct {
	Port               int      `koanf:"port"`
	Host               string   `koanf:"host"`
	MaxBodySizeMB      int      `koanf:"max_body_size_mb"`
	Mode               string   `koanf:"mode"` // debug | release
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

type DatabaseConfig struct {
	Type         string `koanf:"type"` // postgres | memory
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type ChartsConfig struct {
	Timezone    string `koanf:"timezone"`
	ConfigDir   string `koanf:"config_dir"`
	DefaultDays int    `koanf:"default_days"`
	MaxDays     int    `koanf:"max_days"`
}

// Location resolves Timezone. Validate has already rejected unknown zones.
func (c ChartsConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type AuthConfig struct {
	UIDHeader          string   `koanf:"uid_header"`
	BootstrapEmployees []string `koanf:"bootstrap_employees"`
}

type ReviewsConfig struct {
	PublicThreshold int    `koanf:"public_threshold"`
	RedirectURL     string `koanf:"redirect_url"`
}

type NotifyConfig struct {
	Enabled bool       `koanf:"enabled"`
	SMTP    SMTPConfig `koanf:"smtp"`
}

type SMTPConfig struct {
	Host     string   `koanf:"host"`
	Port     int      `koanf:"port"`
	Username string   `koanf:"username"`
	Password string   `koanf:"password"`
	From     string   `koanf:"from"`
	To       []string `koanf:"to"`
}

type RetentionConfig struct {
	Enabled          bool   `koanf:"enabled"`
	Schedule         string `koanf:"schedule"`
	SignInAttemptTTL string `koanf:"sign_in_attempt_ttl"` // parsed and validated on startup
}

// TTL parses SignInAttemptTTL. Validate has already checked it.
func (c RetentionConfig) TTL() time.Duration {
	d, _ := coreagg.ParseSpan(c.SignInAttemptTTL)
	return d
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Database.Type {
	case "postgres":
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	case "memory":
	default:
		return fmt.Errorf("unsupported database.type %q (must be postgres or memory)", c.Database.Type)
	}

	if _, err := time.LoadLocation(c.Charts.Timezone); err != nil {
		return fmt.Errorf("invalid charts.timezone %q: %w", c.Charts.Timezone, err)
	}
	if c.Charts.DefaultDays <= 0 {
		return fmt.Errorf("charts.default_days must be > 0")
	}
	if c.Charts.MaxDays < c.Charts.DefaultDays {
		return fmt.Errorf("charts.max_days must be >= charts.default_days")
	}

	if strings.TrimSpace(c.Auth.UIDHeader) == "" {
		return fmt.Errorf("auth.uid_header is required")
	}

	if c.Reviews.PublicThreshold < 1 || c.Reviews.PublicThreshold > 5 {
		return fmt.Errorf("reviews.public_threshold must be between 1 and 5")
	}

	if c.Notify.Enabled {
		if strings.TrimSpace(c.Notify.SMTP.Host) == "" {
			return fmt.Errorf("notify.smtp.host is required when notify is enabled")
		}
		if c.Notify.SMTP.From == "" || len(c.Notify.SMTP.To) == 0 {
			return fmt.Errorf("notify.smtp.from and notify.smtp.to are required when notify is enabled")
		}
	}

	if c.Retention.Enabled {
		if _, err := cron.ParseStandard(c.Retention.Schedule); err != nil {
			return fmt.Errorf("invalid retention.schedule %q: %w", c.Retention.Schedule, err)
		}
		if _, err := coreagg.ParseSpan(c.Retention.SignInAttemptTTL); err != nil {
			return fmt.Errorf("invalid retention.sign_in_attempt_ttl: %w", err)
		}
	}

	return nil
}

// Load parses config from defaults, an optional file and env, then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                   8080,
		"server.host":                   "0.0.0.0",
		"server.max_body_size_mb":       1,
		"server.mode":                   "release",
		"server.cors_allowed_origins":   []string{},
		"database.type":                 "postgres",
		"database.dsn":                  "",
		"database.max_open_conns":       10,
		"database.max_idle_conns":       5,
		"database.auto_migrate":         true,
		"charts.timezone":               "UTC",
		"charts.config_dir":             "./config/charts",
		"charts.default_days":           7,
		"charts.max_days":               90,
		"auth.uid_header":               "X-Authenticated-Uid",
		"auth.bootstrap_employees":      []string{},
		"reviews.public_threshold":      4,
		"reviews.redirect_url":          "",
		"notify.enabled":                false,
		"notify.smtp.port":              587,
		"retention.enabled":             true,
		"retention.schedule":            "@daily",
		"retention.sign_in_attempt_ttl": "90d",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
