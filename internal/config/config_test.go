package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.MaxEntries != 1000 {
		t.Errorf("Expected default max entries 1000, got %d", config.MaxEntries)
	}

	if config.RetentionDays != 30 {
		t.Errorf("Expected default retention days 30, got %d", config.RetentionDays)
	}
}

func TestConfigManager_LoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	cm := NewConfigManager(configPath)

	config, err := cm.Load()
	if err != nil {
		t.Fatalf("Expected no error loading non-existent config, got: %v", err)
	}

	// Should return default config
	expectedDefault := DefaultConfig()
	if config.MaxEntries != expectedDefault.MaxEntries {
		t.Errorf("Expected default max entries %d, got %d", expectedDefault.MaxEntries, config.MaxEntries)
	}

	if config.RetentionDays != expectedDefault.RetentionDays {
		t.Errorf("Expected default retention days %d, got %d", expectedDefault.RetentionDays, config.RetentionDays)
	}
}

func TestConfigManager_SaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	cm := NewConfigManager(configPath)

	testConfig := &Config{
		MaxEntries:    100,
		RetentionDays: 7,
	}

	err := cm.Save(testConfig)
	if err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedConfig, err := cm.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedConfig.MaxEntries != testConfig.MaxEntries {
		t.Errorf("Expected max entries %d, got %d", testConfig.MaxEntries, loadedConfig.MaxEntries)
	}

	if loadedConfig.RetentionDays != testConfig.RetentionDays {
		t.Errorf("Expected retention days %d, got %d", testConfig.RetentionDays, loadedConfig.RetentionDays)
	}
}

func TestConfigManager_LoadPartialFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// A file that only sets max_entries should still pick up the default
	// retention window.
	if err := os.WriteFile(configPath, []byte("max_entries: 250\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cm := NewConfigManager(configPath)

	config, err := cm.Load()
	if err != nil {
		t.Fatalf("Failed to load partial config: %v", err)
	}

	if config.MaxEntries != 250 {
		t.Errorf("Expected max entries 250, got %d", config.MaxEntries)
	}

	if config.RetentionDays != DefaultRetentionDays {
		t.Errorf("Expected default retention days %d, got %d", DefaultRetentionDays, config.RetentionDays)
	}
}

func TestConfigManager_LoadMalformed(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("max_entries: [not an int\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cm := NewConfigManager(configPath)

	if _, err := cm.Load(); err == nil {
		t.Error("Expected error loading malformed config, got none")
	}
}

func TestConfigManager_Validation(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	cm := NewConfigManager(configPath)

	tests := []struct {
		name        string
		config      *Config
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid config",
			config: &Config{
				MaxEntries:    50,
				RetentionDays: 14,
			},
			expectError: false,
		},
		{
			name: "zero fields take defaults",
			config: &Config{
				MaxEntries:    0,
				RetentionDays: 0,
			},
			expectError: false,
		},
		{
			name: "negative max entries",
			config: &Config{
				MaxEntries:    -5,
				RetentionDays: 30,
			},
			expectError: true,
			errorMsg:    "max_entries must be greater than 0",
		},
		{
			name: "negative retention days",
			config: &Config{
				MaxEntries:    100,
				RetentionDays: -1,
			},
			expectError: true,
			errorMsg:    "retention_days must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cm.Save(tt.config)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %s, but got none", tt.name)
				} else if tt.errorMsg != "" && err.Error() != "invalid configuration: "+tt.errorMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errorMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for %s: %v", tt.name, err)
				}
			}
		})
	}
}

func TestConfigManager_ValidationFillsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	cm := NewConfigManager(configPath)

	config := &Config{}
	if err := cm.Save(config); err != nil {
		t.Fatalf("Failed to save zero config: %v", err)
	}

	if config.MaxEntries != DefaultMaxEntries {
		t.Errorf("Expected max entries filled to %d, got %d", DefaultMaxEntries, config.MaxEntries)
	}

	if config.RetentionDays != DefaultRetentionDays {
		t.Errorf("Expected retention days filled to %d, got %d", DefaultRetentionDays, config.RetentionDays)
	}
}

func TestConfigManager_Update(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	cm := NewConfigManager(configPath)

	tests := []struct {
		name        string
		key         string
		value       string
		expectError bool
	}{
		{"valid max-entries", "max-entries", "100", false},
		{"valid retention-days", "retention-days", "7", false},
		{"invalid key", "invalid-key", "value", true},
		{"invalid max-entries", "max-entries", "not-a-number", true},
		{"negative max-entries", "max-entries", "-3", true},
		{"zero max-entries", "max-entries", "0", true},
		{"zero retention-days", "retention-days", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cm.Update(tt.key, tt.value)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %s, but got none", tt.name)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for %s: %v", tt.name, err)
				}

				retrievedValue, err := cm.Get(tt.key)
				if err != nil {
					t.Errorf("Failed to get value after update: %v", err)
				} else if retrievedValue != tt.value {
					t.Errorf("Expected retrieved value %s, got %s", tt.value, retrievedValue)
				}
			}
		})
	}
}

func TestConfigManager_Get(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	cm := NewConfigManager(configPath)

	config := &Config{
		MaxEntries:    75,
		RetentionDays: 21,
	}

	err := cm.Save(config)
	if err != nil {
		t.Fatalf("Failed to save test config: %v", err)
	}

	tests := []struct {
		name          string
		key           string
		expectedValue string
		expectError   bool
	}{
		{"get max-entries", "max-entries", "75", false},
		{"get retention-days", "retention-days", "21", false},
		{"get invalid key", "invalid-key", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := cm.Get(tt.key)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %s, but got none", tt.name)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error for %s: %v", tt.name, err)
				} else if value != tt.expectedValue {
					t.Errorf("Expected value %s, got %s", tt.expectedValue, value)
				}
			}
		})
	}
}

func TestConfigManager_List(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	cm := NewConfigManager(configPath)

	// No file yet, so list reports the defaults
	values, err := cm.List()
	if err != nil {
		t.Fatalf("Failed to list default config: %v", err)
	}

	expectedKeys := []string{"max-entries", "retention-days"}
	for _, key := range expectedKeys {
		if _, exists := values[key]; !exists {
			t.Errorf("Expected key %s to exist in list output", key)
		}
	}

	if values["max-entries"] != "1000" {
		t.Errorf("Expected default max-entries 1000, got %s", values["max-entries"])
	}

	if values["retention-days"] != "30" {
		t.Errorf("Expected default retention-days 30, got %s", values["retention-days"])
	}
}

func TestConfigManager_GetConfigPath(t *testing.T) {
	configPath := "/test/config/path.yaml"
	cm := NewConfigManager(configPath)

	if cm.GetConfigPath() != configPath {
		t.Errorf("Expected config path %s, got %s", configPath, cm.GetConfigPath())
	}
}
