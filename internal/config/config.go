// Package config loads talentdesk settings from the environment and an optional JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Local store backends.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds service settings. Empty string fields fall back to Defaults.
type Config struct {
	Port        string `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // remote store; empty runs local-only

	LocalStore    string `json:"local_store,omitempty"` // file, memory or redis
	LocalStoreDir string `json:"local_store_dir,omitempty"`
	RedisURL      string `json:"redis_url,omitempty"`

	UploadsDir    string `json:"uploads_dir,omitempty"`
	UploadsBucket string `json:"uploads_s3_bucket,omitempty"`
	AWSRegion     string `json:"aws_region,omitempty"`

	APIKey   string `json:"api_key,omitempty"` // Gemini key; enables CV refinement
	LogLevel string `json:"log_level,omitempty"`

	StrictTransitions bool `json:"strict_transitions,omitempty"`
}

// Defaults returns the settings used when neither env nor file sets a value.
func Defaults() Config {
	return Config{
		Port:          "8080",
		LocalStore:    StoreFile,
		LocalStoreDir: "data",
		AWSRegion:     "us-east-1",
		LogLevel:      "info",
	}
}

// FromEnv reads settings from environment variables.
func FromEnv() Config {
	return Config{
		Port:              os.Getenv("PORT"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		LocalStore:        strings.ToLower(os.Getenv("LOCAL_STORE")),
		LocalStoreDir:     os.Getenv("LOCAL_STORE_DIR"),
		RedisURL:          os.Getenv("REDIS_URL"),
		UploadsDir:        os.Getenv("UPLOADS_DIR"),
		UploadsBucket:     os.Getenv("UPLOADS_S3_BUCKET"),
		AWSRegion:         os.Getenv("AWS_REGION"),
		APIKey:            os.Getenv("GEMINI_API_KEY"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		StrictTransitions: getEnvBool("STRICT_TRANSITIONS", false),
	}
}

// Load merges environment, the optional JSON file at path and Defaults,
// in that order of precedence, and validates the result.
func Load(path string) (*Config, error) {
	cfg := FromEnv()
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(Defaults())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.LocalStore {
	case StoreFile, StoreMemory, "":
	case StoreRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config error: 'redis_url' is required when local_store is redis")
		}
	default:
		return fmt.Errorf("config error: unknown local_store %q (want file, memory or redis)", c.LocalStore)
	}

	if c.UploadsDir != "" && c.UploadsBucket != "" {
		return fmt.Errorf("config error: 'uploads_dir' and 'uploads_s3_bucket' are mutually exclusive")
	}

	if c.Port != "" {
		if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("config error: invalid port %q", c.Port)
		}
	}

	return nil
}

// MergeWithDefaults returns a copy of c with empty fields filled from defaults.
// StrictTransitions is enabled when either side enables it.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&result.Port, defaults.Port)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.LocalStore, defaults.LocalStore)
	fill(&result.LocalStoreDir, defaults.LocalStoreDir)
	fill(&result.RedisURL, defaults.RedisURL)
	fill(&result.UploadsDir, defaults.UploadsDir)
	fill(&result.UploadsBucket, defaults.UploadsBucket)
	fill(&result.AWSRegion, defaults.AWSRegion)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.LogLevel, defaults.LogLevel)

	result.StrictTransitions = result.StrictTransitions || defaults.StrictTransitions
	return result
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt parses key as an integer. Unlike getEnvBool a malformed value is
// an error, since these settings bound security parameters.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}
