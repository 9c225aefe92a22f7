package api

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/calder-analytics/cascade/pkg/validation"
)

// Config holds the HTTP server configuration.
type Config struct {
	ListenAddr      string        `yaml:"listenAddr"`
	TopologySource  string        `yaml:"topologySource"` // static | file | postgres
	TopologyFile    string        `yaml:"topologyFile"`
	DatabaseURL     string        `yaml:"databaseURL"`
	BatchWorkers    int           `yaml:"batchWorkers"`
	MaxBodyBytes    int64         `yaml:"maxBodyBytes"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	CORS            CORSConfig    `yaml:"cors"`
}

// CORSConfig controls cross-origin behavior. An empty AllowedOrigins list
// disables cross-origin requests.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// DefaultConfig returns a config with production-safe defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddr:      ":8080",
		TopologySource:  "static",
		BatchWorkers:    4,
		MaxBodyBytes:    1 << 20, // 1 MiB
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path returns
// the defaults untouched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.BatchWorkers = validation.DefaultOrInt(cfg.BatchWorkers, 4)
	cfg.ReadTimeout = validation.DefaultOrDuration(cfg.ReadTimeout, 15*time.Second)
	cfg.WriteTimeout = validation.DefaultOrDuration(cfg.WriteTimeout, 30*time.Second)
	cfg.ShutdownTimeout = validation.DefaultOrDuration(cfg.ShutdownTimeout, 30*time.Second)

	return cfg, nil
}

// Validate checks the config for structural problems.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("ServerConfig").
		Required("ListenAddr", c.ListenAddr).
		OneOf("TopologySource", c.TopologySource, []string{"static", "file", "postgres"}).
		Positive("BatchWorkers", c.BatchWorkers).
		MinDuration("ReadTimeout", c.ReadTimeout, time.Second).
		MinDuration("WriteTimeout", c.WriteTimeout, time.Second).
		When(c.TopologySource == "file", func(cv *validation.ConfigValidator) {
			cv.Required("TopologyFile", c.TopologyFile)
		}).
		When(c.TopologySource == "postgres", func(cv *validation.ConfigValidator) {
			cv.Required("DatabaseURL", c.DatabaseURL)
		}).
		Validate()
}

// InitCORSFromEnv overrides CORS origins from CORS_ALLOWED_ORIGINS, a
// comma-separated list. "*" allows all origins and is not recommended for
// production.
func (c *Config) InitCORSFromEnv() {
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		return
	}

	origins := strings.Split(originsEnv, ",")
	for i, o := range origins {
		origins[i] = strings.TrimSpace(o)
	}
	c.CORS.AllowedOrigins = origins
}
