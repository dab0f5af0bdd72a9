package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	App    AppConfig    `toml:"app"`
	Auth   AuthConfig   `toml:"auth"`
	SQLite SQLiteConfig `toml:"sqlite"`
}

type AppConfig struct {
	Name         string `toml:"name"`
	Env          string `toml:"env"`
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	GinMode      string `toml:"gin_mode"`
	TemplateGlob string `toml:"template_glob"`
	TimeZone     string `toml:"time_zone"`
}

type AuthConfig struct {
	// SessionSecret signs the session cookie. Empty means a random secret
	// is generated at startup, so every restart invalidates all sessions.
	SessionSecret    string `toml:"session_secret"`
	SessionCookie    string `toml:"session_cookie"`
	SessionTTLMinute int    `toml:"session_ttl_minute"`
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         "miniblog",
			Env:          "dev",
			Host:         "0.0.0.0",
			Port:         8080,
			GinMode:      "debug",
			TemplateGlob: "web/templates/*.html",
			TimeZone:     "Asia/Tokyo",
		},
		Auth: AuthConfig{
			SessionSecret:    "",
			SessionCookie:    "blog_session",
			SessionTTLMinute: 7 * 24 * 60,
		},
		SQLite: SQLiteConfig{
			Path: "blog.db",
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)
	cfg.App.TemplateGlob = getEnv("APP_TEMPLATE_GLOB", cfg.App.TemplateGlob)
	cfg.App.TimeZone = getEnv("APP_TIME_ZONE", cfg.App.TimeZone)

	cfg.Auth.SessionSecret = getEnv("SESSION_SECRET", cfg.Auth.SessionSecret)
	cfg.Auth.SessionCookie = getEnv("SESSION_COOKIE", cfg.Auth.SessionCookie)
	cfg.Auth.SessionTTLMinute = getEnvAsInt("SESSION_TTL_MINUTE", cfg.Auth.SessionTTLMinute)

	cfg.SQLite.Path = getEnv("SQLITE_PATH", cfg.SQLite.Path)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
