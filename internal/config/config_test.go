package config

import (
	"os"
	"testing"
)

func TestConfigLoad(t *testing.T) {
	// Set test environment variables
	os.Setenv("API_URL", "https://api.test.example/v1")
	os.Setenv("API_TOKEN", "test-token")
	os.Setenv("WORKSPACE_ID", "ws1")
	os.Setenv("PROJECT_ID", "My Project")
	defer func() {
		os.Unsetenv("API_URL")
		os.Unsetenv("API_TOKEN")
		os.Unsetenv("WORKSPACE_ID")
		os.Unsetenv("PROJECT_ID")
	}()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.APIURL != "https://api.test.example/v1" {
		t.Errorf("Expected APIURL to be 'https://api.test.example/v1', got '%s'", cfg.APIURL)
	}

	if cfg.APIToken != "test-token" {
		t.Errorf("Expected APIToken to be 'test-token', got '%s'", cfg.APIToken)
	}

	if cfg.WorkspaceID != "ws1" {
		t.Errorf("Expected WorkspaceID to be 'ws1', got '%s'", cfg.WorkspaceID)
	}

	if cfg.OutputDir != "./my-project-plan" {
		t.Errorf("Expected OutputDir to be derived from project id, got '%s'", cfg.OutputDir)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
	}{
		{
			name: "valid config",
			config: &Config{
				APIURL: "https://api.flowhub.dev/v1",
			},
			expectError: false,
		},
		{
			name:        "missing API URL",
			config:      &Config{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestConfigValidatePlan(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
	}{
		{
			name: "project id set",
			config: &Config{
				APIURL:    "https://api.flowhub.dev/v1",
				ProjectID: "p1",
			},
			expectError: false,
		},
		{
			name: "export file set",
			config: &Config{
				APIURL:     "https://api.flowhub.dev/v1",
				ExportFile: "./export.json",
			},
			expectError: false,
		},
		{
			name: "neither set",
			config: &Config{
				APIURL: "https://api.flowhub.dev/v1",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidatePlan()
			if tt.expectError && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
