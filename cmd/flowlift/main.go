// Package main provides the entry point for the Flowlift CLI.
package main

import (
	"fmt"
	"os"

	"github.com/codebypatrickleung/flowlift-cli/internal/config"
	"github.com/codebypatrickleung/flowlift-cli/internal/logger"
	"github.com/codebypatrickleung/flowlift-cli/internal/platform"
	"github.com/codebypatrickleung/flowlift-cli/internal/token"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "flowlift",
	Short:   "Flowlift - Project Migration Tool",
	Long:    `Flowlift is a Go-based CLI tool that inspects workflow platform projects and plans their migration between workspaces.`,
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./flowlift-config.env)")

	flags := []struct {
		name, shorthand, usage, defaultValue string
	}{
		{"api-url", "", "Platform API base URL", ""},
		{"api-token", "", "Platform API bearer token", ""},
		{"token-file", "", "Path to the token file (default is ~/.flowlift/token)", ""},
		{"workspace-id", "", "Workspace ID for workspace-scoped operations", ""},
		{"target-workspace-id", "", "Target workspace ID for migration", ""},
		{"project-id", "", "Project ID to export and analyze", ""},
		{"project-version", "", "Project export version (empty for latest)", ""},
		{"export-file", "", "Local export document to analyze instead of fetching", ""},
		{"output-dir", "", "Directory for migration plan files", ""},
		{"plan-kind", "", "Migration plan kind (project)", "project"},
	}
	for _, f := range flags {
		rootCmd.PersistentFlags().String(f.name, f.defaultValue, f.usage)
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	bindings := map[string]string{
		"API_URL":             "api-url",
		"API_TOKEN":           "api-token",
		"TOKEN_FILE":          "token-file",
		"WORKSPACE_ID":        "workspace-id",
		"TARGET_WORKSPACE_ID": "target-workspace-id",
		"PROJECT_ID":          "project-id",
		"PROJECT_VERSION":     "project-version",
		"EXPORT_FILE":         "export-file",
		"OUTPUT_DIR":          "output-dir",
		"PLAN_KIND":           "plan-kind",
		"DEBUG":               "debug",
	}
	for env, flag := range bindings {
		if err := viper.BindPFlag(env, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to bind flag %s to env %s: %v\n", flag, env, err)
		}
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("flowlift-config")
		viper.SetConfigType("env")
	}
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadSetup loads configuration and creates the logger shared by commands.
func loadSetup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, logger.New(cfg.Debug), nil
}

// resolveToken returns the bearer token, preferring the config/env value
// over the on-disk token file.
func resolveToken(cfg *config.Config) (string, error) {
	if cfg.APIToken != "" {
		return cfg.APIToken, nil
	}

	path := cfg.TokenFile
	if path == "" {
		var err error
		if path, err = token.DefaultPath(); err != nil {
			return "", err
		}
	}
	stored, err := token.NewStore(path).Load()
	if err != nil {
		return "", err
	}
	if stored == "" {
		return "", fmt.Errorf("no API token configured; set API_TOKEN or run 'flowlift token setup'")
	}
	return stored, nil
}

// newClient builds the platform API client with the resolved token.
func newClient(cfg *config.Config, log *logger.Logger) (*platform.Client, error) {
	tok, err := resolveToken(cfg)
	if err != nil {
		return nil, err
	}
	return platform.NewClient(cfg.APIURL, tok, log), nil
}
