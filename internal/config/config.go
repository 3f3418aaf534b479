package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	// Auth: when set, /api routes require "Authorization: Bearer <key>".
	APIKey string `yaml:"api_key"`

	// Directory served by the /view endpoints.
	DocRoot string `yaml:"doc_root"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// Document store
	DocTTL          time.Duration `yaml:"doc_ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Rendering
	EnableEmoji bool   `yaml:"enable_emoji"`
	HardWraps   bool   `yaml:"hard_wraps"`
	Stylesheet  string `yaml:"stylesheet"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:            "8090",
		DocRoot:         ".",
		MaxUploadBytes:  10 << 20, // 10MB
		DocTTL:          1 * time.Hour,
		CleanupInterval: 5 * time.Minute,
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by MDREADER_CONFIG, and finally environment variables.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("MDREADER_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.APIKey = envOr("MDREADER_API_KEY", cfg.APIKey)
	cfg.DocRoot = envOr("DOC_ROOT", cfg.DocRoot)
	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.DocTTL = envDuration("DOC_TTL", cfg.DocTTL)
	cfg.CleanupInterval = envDuration("CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.EnableEmoji = envBool("ENABLE_EMOJI", cfg.EnableEmoji)
	cfg.HardWraps = envBool("HARD_WRAPS", cfg.HardWraps)
	cfg.Stylesheet = envOr("STYLESHEET", cfg.Stylesheet)

	def := Defaults()
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = def.MaxUploadBytes
	}
	if cfg.DocTTL <= 0 {
		cfg.DocTTL = def.DocTTL
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = def.CleanupInterval
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	st, err := os.Stat(c.DocRoot)
	if err != nil {
		return fmt.Errorf("DOC_ROOT: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("DOC_ROOT %s is not a directory", c.DocRoot)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
