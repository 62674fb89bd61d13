package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	NewsDir    string `envconfig:"TG_NEWS_DIR" default:"news"`
	StatsDir   string `envconfig:"TG_STATS_DIR" default:"stats"`
	StatusFile string `envconfig:"TG_STATUS_FILE" default:"update_info.json"`

	WindowDays       int     `envconfig:"TG_WINDOW_DAYS" default:"30"`
	ShortWindowDays  int     `envconfig:"TG_SHORT_WINDOW_DAYS" default:"7"`
	SimilarityCutoff float64 `envconfig:"TG_SIMILARITY_CUTOFF" default:"0.7"`
	KeywordMinLength int     `envconfig:"TG_KEYWORD_MIN_LENGTH" default:"3"`

	// Optional YAML file overriding the built-in tag/urgency keyword tables.
	RulesFile string `envconfig:"TG_RULES_FILE" default:""`

	HTTPHost string `envconfig:"TG_HTTP_HOST" default:"0.0.0.0"`
	HTTPPort int    `envconfig:"TG_HTTP_PORT" default:"8090"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.NewsDir) == "" {
		return fmt.Errorf("TG_NEWS_DIR is required")
	}
	if strings.TrimSpace(c.StatsDir) == "" {
		return fmt.Errorf("TG_STATS_DIR is required")
	}
	if strings.TrimSpace(c.StatusFile) == "" {
		return fmt.Errorf("TG_STATUS_FILE is required")
	}
	if c.WindowDays < 1 {
		return fmt.Errorf("TG_WINDOW_DAYS must be >= 1")
	}
	if c.ShortWindowDays < 1 {
		return fmt.Errorf("TG_SHORT_WINDOW_DAYS must be >= 1")
	}
	if c.ShortWindowDays > c.WindowDays {
		return fmt.Errorf("TG_SHORT_WINDOW_DAYS (%d) cannot exceed TG_WINDOW_DAYS (%d)", c.ShortWindowDays, c.WindowDays)
	}
	if c.SimilarityCutoff <= 0 || c.SimilarityCutoff > 1 {
		return fmt.Errorf("TG_SIMILARITY_CUTOFF must be in (0, 1]")
	}
	if c.KeywordMinLength < 1 {
		return fmt.Errorf("TG_KEYWORD_MIN_LENGTH must be >= 1")
	}
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("TG_HTTP_PORT must be a valid TCP port")
	}
	return nil
}
