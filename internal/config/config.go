// Package config handles configuration loading from files, environment variables, and flags.
package config

import (
	"fmt"
	"os"

	"github.com/codebypatrickleung/flowlift-cli/internal/common"
	"github.com/spf13/viper"
)

const (
	defaultAPIURL    = "https://api.flowhub.dev/v1"
	defaultPlanKind  = "project"
	defaultOutputDir = "./flowlift-output"
	planDirSuffix    = "-plan"
)

// Config holds all configuration for the Flowlift CLI.
type Config struct {
	APIURL            string
	APIToken          string
	TokenFile         string
	WorkspaceID       string
	TargetWorkspaceID string
	ProjectID         string
	ProjectVersion    string
	ExportFile        string
	OutputDir         string
	PlanKind          string
	Debug             bool
}

// Load initializes configuration from file, environment variables, and flags.
func Load(configFile string) (*Config, error) {
	viper.SetDefault("api_url", defaultAPIURL)
	viper.SetDefault("plan_kind", defaultPlanKind)
	viper.SetDefault("output_dir", defaultOutputDir)

	viper.AutomaticEnv()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	projectID := viper.GetString("project_id")
	outputDir := viper.GetString("output_dir")
	if outputDir == defaultOutputDir && projectID != "" {
		outputDir = fmt.Sprintf("./%s%s", common.SanitizeName(projectID), planDirSuffix)
	}

	cfg := &Config{
		APIURL:            viper.GetString("api_url"),
		APIToken:          viper.GetString("api_token"),
		TokenFile:         viper.GetString("token_file"),
		WorkspaceID:       viper.GetString("workspace_id"),
		TargetWorkspaceID: viper.GetString("target_workspace_id"),
		ProjectID:         projectID,
		ProjectVersion:    viper.GetString("project_version"),
		ExportFile:        viper.GetString("export_file"),
		OutputDir:         outputDir,
		PlanKind:          viper.GetString("plan_kind"),
		Debug:             viper.GetBool("debug"),
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	return nil
}

// ValidatePlan checks the configuration needed to build a migration plan.
// The export either comes from a local file or is fetched by project id.
func (c *Config) ValidatePlan() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ExportFile == "" && c.ProjectID == "" {
		return fmt.Errorf("project_id or export_file is required for migration planning")
	}
	return nil
}

// LoadConfig loads configuration using the global Viper instance.
func LoadConfig() (*Config, error) {
	return Load("")
}
