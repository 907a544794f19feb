package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
)

const configFileName = "shiftpoint_config.yaml"

// Config represents the application configuration
type Config struct {
	// DatabaseURL is the Postgres connection string
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// OperatorAccountID identifies the acting administrator account.
	// Mutations run unauthenticated (and are rejected) when it is empty.
	OperatorAccountID string `yaml:"operatorAccountID,omitempty"`

	// CanceledOverridePolicy decides whether a canceled shift instance still
	// suppresses its launch point's template fallback for the day:
	// "suppress" (default) or "restore".
	CanceledOverridePolicy string `yaml:"canceledOverridePolicy,omitempty" validate:"omitempty,oneof=suppress restore"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shiftpoint_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// OverridePolicy returns the configured materializer policy
func (c *Config) OverridePolicy() schedule.OverridePolicy {
	policy, err := schedule.ParseOverridePolicy(c.CanceledOverridePolicy)
	if err != nil {
		// Validate already constrained the value; fall back to the default
		return schedule.CanceledSuppressesTemplate
	}
	return policy
}

func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	homePath := filepath.Join(home, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current or home directory", configFileName)
}
