package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/genc-murat/routeperf/internal/core/models"
	"github.com/genc-murat/routeperf/internal/util"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment  string         `yaml:"environment"`
	Storage      StorageConfig  `yaml:"storage"`
	Cache        CacheConfig    `yaml:"cache"`
	Sampling     SamplingConfig `yaml:"sampling"`
	Alerts       AlertsConfig   `yaml:"alerts"`
	Logging      LoggingConfig  `yaml:"logging"`
	Environments []string       `yaml:"environments"`
	IgnoreRoutes []string       `yaml:"ignore_routes"`
}

type StorageConfig struct {
	Path        string        `yaml:"path"`
	LockTimeout time.Duration `yaml:"lock_timeout"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

type SamplingConfig struct {
	Rate float64 `yaml:"rate"`
}

type AlertsConfig struct {
	Enabled                bool `yaml:"enabled"`
	models.AlertThresholds `yaml:",inline"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		Environment: "dev",
		Storage: StorageConfig{
			Path:        "var/routeperf.jsonl",
			LockTimeout: 5 * time.Second,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Sampling: SamplingConfig{Rate: 1.0},
		Alerts: AlertsConfig{
			AlertThresholds: models.DefaultAlertThresholds,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Environments: []string{"dev", "test", "prod"},
		IgnoreRoutes: []string{"_wdt", "_profiler", "_profiler_search", "_profiler_search_results"},
	}
}

// Validate checks value ranges that yaml decoding cannot express.
func (c *Config) Validate() error {
	if err := util.ValidateSamplingRate(c.Sampling.Rate); err != nil {
		return fmt.Errorf("sampling: %w", err)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage: path is required")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache: ttl must not be negative")
	}
	t := c.Alerts.AlertThresholds
	if t.RequestTimeWarning > t.RequestTimeCritical ||
		t.QueryCountWarning > t.QueryCountCritical ||
		t.MemoryUsageWarning > t.MemoryUsageCritical {
		return fmt.Errorf("alerts: warning thresholds must not exceed critical thresholds")
	}
	return nil
}

// Ignored reports whether records for route are discarded. An entry matches
// the route itself, any route named "<entry>_..." or, when it holds * or ?,
// routes matching it as a glob.
func (c *Config) Ignored(route string) bool {
	if route == "" {
		return false
	}
	for _, ignored := range c.IgnoreRoutes {
		if ignored == "" {
			continue
		}
		if strings.ContainsAny(ignored, "*?") {
			if ok, _ := path.Match(ignored, route); ok {
				return true
			}
			continue
		}
		if route == ignored || strings.HasPrefix(route, ignored+"_") {
			return true
		}
	}
	return false
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "config")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (no config directory found)")
		}
		dir = parent
	}
}

// LoadConfig reads config/<env>.yaml (or .yml) from the nearest ancestor
// directory holding a config directory.
func LoadConfig(env string) (*Config, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		return nil, fmt.Errorf("error finding project root: %w", err)
	}

	configPath := filepath.Join(projectRoot, "config", fmt.Sprintf("%s.yaml", env))
	if _, err := os.Stat(configPath); err != nil {
		configPath = filepath.Join(projectRoot, "config", fmt.Sprintf("%s.yml", env))
	}

	config, err := LoadFile(configPath)
	if err != nil {
		return nil, err
	}
	config.Environment = env
	return config, nil
}

// LoadFile reads an explicit config file. Fields the file omits keep their
// Default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}
