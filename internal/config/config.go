package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultMaxEntries    = 1000
	DefaultRetentionDays = 30
)

// Config represents the persisted cliplog settings
type Config struct {
	// MaxEntries caps the history log length; oldest entries are
	// evicted once the cap is exceeded.
	MaxEntries int `yaml:"max_entries"`
	// RetentionDays is advisory: commands that filter or prune by age
	// use it as their default window. Nothing expires automatically.
	RetentionDays int `yaml:"retention_days"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxEntries:    DefaultMaxEntries,
		RetentionDays: DefaultRetentionDays,
	}
}

// ConfigManager manages configuration persistence
type ConfigManager struct {
	configPath string
}

// NewConfigManager creates a configuration manager for the given file path
func NewConfigManager(configPath string) *ConfigManager {
	return &ConfigManager{
		configPath: configPath,
	}
}

// Load reads the configuration from file, or returns defaults if the file
// doesn't exist. A file that exists but cannot be parsed is an error, not
// a silent fallback.
func (cm *ConfigManager) Load() (*Config, error) {
	if _, err := os.Stat(cm.configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(cm.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cm.validateAndSetDefaults(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to file
func (cm *ConfigManager) Save(config *Config) error {
	if err := cm.validateAndSetDefaults(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configDir := filepath.Dir(cm.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cm.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// validateAndSetDefaults fills missing fields with defaults and rejects
// values that would break the store's eviction and pruning arithmetic.
func (cm *ConfigManager) validateAndSetDefaults(config *Config) error {
	if config.MaxEntries == 0 {
		config.MaxEntries = DefaultMaxEntries
	}
	if config.RetentionDays == 0 {
		config.RetentionDays = DefaultRetentionDays
	}

	if config.MaxEntries < 0 {
		return fmt.Errorf("max_entries must be greater than 0")
	}
	if config.RetentionDays < 0 {
		return fmt.Errorf("retention_days must be greater than 0")
	}

	return nil
}

// GetConfigPath returns the path to the config file
func (cm *ConfigManager) GetConfigPath() string {
	return cm.configPath
}

// Update modifies a specific configuration value
func (cm *ConfigManager) Update(key, value string) error {
	config, err := cm.Load()
	if err != nil {
		return err
	}

	switch key {
	case "max-entries":
		var maxEntries int
		if _, err := fmt.Sscanf(value, "%d", &maxEntries); err != nil {
			return fmt.Errorf("invalid integer value for max-entries: %s", value)
		}
		if maxEntries <= 0 {
			return fmt.Errorf("max-entries must be a positive integer")
		}
		config.MaxEntries = maxEntries
	case "retention-days":
		var retentionDays int
		if _, err := fmt.Sscanf(value, "%d", &retentionDays); err != nil {
			return fmt.Errorf("invalid integer value for retention-days: %s", value)
		}
		if retentionDays <= 0 {
			return fmt.Errorf("retention-days must be a positive integer")
		}
		config.RetentionDays = retentionDays
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}

	return cm.Save(config)
}

// Get returns the value for a specific configuration key
func (cm *ConfigManager) Get(key string) (string, error) {
	config, err := cm.Load()
	if err != nil {
		return "", err
	}

	switch key {
	case "max-entries":
		return fmt.Sprintf("%d", config.MaxEntries), nil
	case "retention-days":
		return fmt.Sprintf("%d", config.RetentionDays), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// List returns all configuration keys and values
func (cm *ConfigManager) List() (map[string]string, error) {
	config, err := cm.Load()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"max-entries":    fmt.Sprintf("%d", config.MaxEntries),
		"retention-days": fmt.Sprintf("%d", config.RetentionDays),
	}, nil
}
