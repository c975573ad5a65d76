package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type SiteConfig struct {
	// Timezone is the IANA name of the site-local time zone used as the
	// reference clock for dwell-time computation.
	Timezone string
}

type FilesConfig struct {
	// BaseURL of the eCare file service issuing temporary image URLs.
	BaseURL string
	// Timeout bounds a single image-URL lookup.
	Timeout time.Duration
	// MaxLookups caps concurrent lookups within one page request.
	MaxLookups int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Site        SiteConfig
	Files       FilesConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Site: SiteConfig{
			Timezone: v.GetString("SITE_TIMEZONE"),
		},
		Files: FilesConfig{
			BaseURL:    v.GetString("FILES_BASE_URL"),
			Timeout:    v.GetDuration("FILES_TIMEOUT"),
			MaxLookups: v.GetInt("FILES_MAX_LOOKUPS"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Site.Timezone == "" {
		cfg.Site.Timezone = "Africa/Casablanca"
	}
	if cfg.Files.BaseURL == "" {
		cfg.Files.BaseURL = "https://ecare.azurewebsites.net"
	}
	if cfg.Files.Timeout == 0 {
		cfg.Files.Timeout = 5 * time.Second
	}
	if cfg.Files.MaxLookups == 0 {
		cfg.Files.MaxLookups = 8
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if _, err := time.LoadLocation(cfg.Site.Timezone); err != nil {
		return fmt.Errorf("SITE_TIMEZONE %q is invalid: %w", cfg.Site.Timezone, err)
	}
	return nil
}
