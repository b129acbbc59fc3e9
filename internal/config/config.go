package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Notifier modes
const (
	NotifierModeAsync = "async"
	NotifierModeSync  = "sync"
)

// Config structure represents the application configuration
type Config struct {
	Storage struct {
		EnrollmentsFile string `yaml:"enrollments_file" env:"ENROLL_FILE"`
	} `yaml:"storage"`

	Notifier struct {
		Delay       string `yaml:"delay" env:"NOTIFIER_DELAY"`
		Mode        string `yaml:"mode" env:"NOTIFIER_MODE"`
		DrainOnExit bool   `yaml:"drain_on_exit" env:"NOTIFIER_DRAIN_ON_EXIT"`
	} `yaml:"notifier"`

	Catalog struct {
		Theory struct {
			Code         string  `yaml:"code" env:"THEORY_CODE"`
			FeePerCredit float64 `yaml:"fee_per_credit" env:"THEORY_FEE_PER_CREDIT"`
		} `yaml:"theory"`
		Lab struct {
			Code string `yaml:"code" env:"LAB_CODE"`
		} `yaml:"lab"`
	} `yaml:"catalog"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and env still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			file, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(file, config); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Storage.EnrollmentsFile = "enrollments.txt"

	config.Notifier.Delay = "2s"
	config.Notifier.Mode = NotifierModeAsync
	config.Notifier.DrainOnExit = true

	config.Catalog.Theory.Code = "CS101"
	config.Catalog.Theory.FeePerCredit = 1200
	config.Catalog.Lab.Code = "CS101L"

	config.Logging.Level = "warn"
	config.Logging.Format = "text"
}

// Validate ensures that the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.EnrollmentsFile) == "" {
		return fmt.Errorf("enrollments file path is required")
	}

	d, err := time.ParseDuration(c.Notifier.Delay)
	if err != nil {
		return fmt.Errorf("invalid notifier delay format: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("notifier delay cannot be negative")
	}

	switch c.Notifier.Mode {
	case NotifierModeAsync, NotifierModeSync:
	default:
		return fmt.Errorf("unknown notifier mode %q", c.Notifier.Mode)
	}

	if strings.TrimSpace(c.Catalog.Theory.Code) == "" || strings.TrimSpace(c.Catalog.Lab.Code) == "" {
		return fmt.Errorf("course codes are required")
	}
	if c.Catalog.Theory.FeePerCredit <= 0 {
		return fmt.Errorf("theory fee per credit must be positive")
	}

	return nil
}

// NotifierDelay returns the parsed notifier delay. Validate guarantees it parses.
func (c *Config) NotifierDelay() time.Duration {
	d, err := time.ParseDuration(c.Notifier.Delay)
	if err != nil {
		return 2 * time.Second
	}
	return d
}
