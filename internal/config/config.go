package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/review-desk/internal/logger"
)

// Config holds the desk's configuration values.
type Config struct {
	ReviewerURL    string
	HealthURL      string
	RequestTimeout time.Duration
	ServerPort     string
	Theme          string
	AIToggle       bool
	ExportDir      string
	Logging        logger.Config
}

// LoadConfig reads configuration from environment variables (prefix RD_) and
// an optional .env file, applies defaults and validates the reviewer URL.
// It uses the global viper instance so that flags bound by the CLI override
// the environment.
func LoadConfig() (*Config, error) {
	v := viper.GetViper()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.SetEnvPrefix("RD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !isNotExist(err) {
			slog.Warn("failed to read .env file, using environment only", "error", err)
		}
	}
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("REVIEWER_URL", "http://localhost:8080/api/review")
	v.SetDefault("HEALTH_URL", "")
	v.SetDefault("REQUEST_TIMEOUT", "60s")
	v.SetDefault("SERVER_PORT", "8090")
	v.SetDefault("THEME", "cyan")
	v.SetDefault("AI_TOGGLE", true)
	v.SetDefault("EXPORT_DIR", ".")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_OUTPUT", "stderr")
}

func fromViper(v *viper.Viper) (*Config, error) {
	reviewerURL := strings.TrimSpace(v.GetString("REVIEWER_URL"))
	u, err := url.Parse(reviewerURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("REVIEWER_URL must be an absolute http(s) URL, got %q", reviewerURL)
	}

	timeout := v.GetDuration("REQUEST_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %q", v.GetString("REQUEST_TIMEOUT"))
	}

	return &Config{
		ReviewerURL:    reviewerURL,
		HealthURL:      v.GetString("HEALTH_URL"),
		RequestTimeout: timeout,
		ServerPort:     v.GetString("SERVER_PORT"),
		Theme:          strings.ToLower(v.GetString("THEME")),
		AIToggle:       v.GetBool("AI_TOGGLE"),
		ExportDir:      v.GetString("EXPORT_DIR"),
		Logging: logger.Config{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: v.GetString("LOG_FORMAT"),
			Output: v.GetString("LOG_OUTPUT"),
		},
	}, nil
}
