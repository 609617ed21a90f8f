package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/codebypatrickleung/flowlift-cli/internal/analysis"
	"github.com/codebypatrickleung/flowlift-cli/internal/common"
	"github.com/codebypatrickleung/flowlift-cli/internal/export"
	"github.com/codebypatrickleung/flowlift-cli/internal/logger"
	"github.com/codebypatrickleung/flowlift-cli/internal/migration"
	"github.com/codebypatrickleung/flowlift-cli/internal/platform"
	"github.com/codebypatrickleung/flowlift-cli/internal/report"
	"github.com/codebypatrickleung/flowlift-cli/internal/token"
	"github.com/spf13/cobra"
)

const descriptionWidth = 60

func init() {
	tokenCmd.AddCommand(tokenSetupCmd)
	rootCmd.AddCommand(
		planCmd,
		analyzeCmd,
		connectorsCmd,
		operationsCmd,
		triggersCmd,
		authsCmd,
		workspacesCmd,
		subscriptionsCmd,
		projectsCmd,
		exportCmd,
		importCmd,
		tokenCmd,
	)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a migration plan for a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadSetup()
		if err != nil {
			return err
		}
		if err := cfg.ValidatePlan(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}

		logFileName := fmt.Sprintf("flowlift-%s.log", logger.GetTimestamp())
		log, err := logger.NewWithFile(cfg.Debug, logFileName)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer log.Close()

		log.Infof("Flowlift version %s", version)
		log.Infof("Log file: %s", logFileName)

		var client *platform.Client
		if cfg.ExportFile == "" {
			if client, err = newClient(cfg, log); err != nil {
				return err
			}
		}

		mgr, err := migration.NewManager(cfg, log, client, version)
		if err != nil {
			return fmt.Errorf("failed to create migration manager: %w", err)
		}
		return mgr.Run(cmd.Context())
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a project export and print the dependency report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		if err := cfg.ValidatePlan(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}

		var raw []byte
		if cfg.ExportFile != "" {
			if raw, err = os.ReadFile(cfg.ExportFile); err != nil {
				return fmt.Errorf("failed to read export file: %w", err)
			}
		} else {
			client, err := newClient(cfg, log)
			if err != nil {
				return err
			}
			doc, err := client.ExportProject(cmd.Context(), cfg.ProjectID, cfg.ProjectVersion)
			if err != nil {
				return err
			}
			raw = doc
		}

		doc, err := export.Decode(raw)
		if err != nil {
			return err
		}
		fmt.Print(report.Render(analysis.Analyze(doc)))
		return nil
	},
}

var connectorsCmd = &cobra.Command{
	Use:   "connectors",
	Short: "List the connector catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		connectors, err := client.ListConnectors(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range connectors {
			fmt.Printf("%s@%s  %s  %s\n", c.Name, c.Version,
				common.FirstNonEmpty("Unknown", c.Title),
				common.Truncate(c.Description, descriptionWidth))
		}
		fmt.Printf("%d connectors\n", len(connectors))
		return nil
	},
}

var operationsCmd = &cobra.Command{
	Use:   "operations <connector> <version>",
	Short: "List the operations of a connector version",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		operations, err := client.ListConnectorOperations(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		for _, op := range operations {
			fmt.Printf("%s  %s  %s\n", op.Name,
				common.FirstNonEmpty("N/A", op.Type),
				common.Truncate(common.FirstNonEmpty("N/A", op.Description, op.Title), descriptionWidth))
		}
		fmt.Printf("%d operations\n", len(operations))
		return nil
	},
}

var triggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "List trigger-capable connectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		triggers, err := client.ListTriggers(cmd.Context())
		if err != nil {
			return err
		}
		for _, c := range triggers {
			fmt.Printf("%s@%s  %s\n", c.Name, c.Version, common.FirstNonEmpty("Unknown", c.Title))
		}
		fmt.Printf("%d triggers\n", len(triggers))
		return nil
	},
}

var authsCmd = &cobra.Command{
	Use:   "auths",
	Short: "List authentications",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		auths, err := client.ListAuthentications(cmd.Context())
		if err != nil {
			return err
		}
		for _, a := range auths {
			fmt.Printf("%s  %s  service=%s  scopes=%s\n", a.ID, a.Name,
				common.FirstNonEmpty("N/A", a.Service),
				common.JoinOrNone(a.Scopes))
		}
		fmt.Printf("%d authentications\n", len(auths))
		return nil
	},
}

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		workspaces, err := client.ListWorkspaces(cmd.Context())
		if err != nil {
			return err
		}
		for _, w := range workspaces {
			fmt.Printf("%s  %s  type=%s\n", w.ID, w.Name, common.FirstNonEmpty("N/A", w.Type))
		}
		fmt.Printf("%d workspaces\n", len(workspaces))
		return nil
	},
}

var subscriptionsCmd = &cobra.Command{
	Use:   "subscriptions",
	Short: "List workflow subscriptions of a workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		if cfg.WorkspaceID == "" {
			return fmt.Errorf("workspace_id is required to list subscriptions")
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		subscriptions, err := client.ListSubscriptions(cmd.Context(), cfg.WorkspaceID)
		if err != nil {
			return err
		}
		for _, s := range subscriptions {
			fmt.Printf("%s  %s  workflow=%s  enabled=%t\n", s.ID, s.Name,
				common.FirstNonEmpty("N/A", s.WorkflowID), s.Enabled)
		}
		fmt.Printf("%d subscriptions\n", len(subscriptions))
		return nil
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects of a workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		if cfg.WorkspaceID == "" {
			return fmt.Errorf("workspace_id is required to list projects")
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		projects, err := client.ListProjects(cmd.Context(), cfg.WorkspaceID)
		if err != nil {
			return err
		}
		for _, p := range projects {
			fmt.Printf("%s  %s  %s\n", p.ID, p.Name, common.Truncate(p.Description, descriptionWidth))
		}
		fmt.Printf("%d projects\n", len(projects))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <project-id>",
	Short: "Fetch a project export document and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		doc, err := client.ExportProject(cmd.Context(), args[0], cfg.ProjectVersion)
		if err != nil {
			return err
		}
		var pretty map[string]json.RawMessage
		if err := json.Unmarshal(doc, &pretty); err != nil {
			// Not an object; print the raw document as-is.
			fmt.Println(string(doc))
			return nil
		}
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format export document: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <export-file>",
	Short: "Import an export document into the target workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadSetup()
		if err != nil {
			return err
		}
		workspaceID := common.FirstNonEmpty("", cfg.TargetWorkspaceID, cfg.WorkspaceID)
		if workspaceID == "" {
			return fmt.Errorf("target_workspace_id is required to import a project")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read export file: %w", err)
		}
		client, err := newClient(cfg, log)
		if err != nil {
			return err
		}
		result, err := client.ImportProject(cmd.Context(), workspaceID, data)
		if err != nil {
			return err
		}
		fmt.Printf("Imported project %s (status: %s)\n", result.ProjectID, result.Status)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the stored platform API token",
}

var tokenSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactively store the platform API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadSetup()
		if err != nil {
			return err
		}
		path := cfg.TokenFile
		if path == "" {
			if path, err = token.DefaultPath(); err != nil {
				return err
			}
		}
		_, err = token.NewStore(path).Setup(cmd.InOrStdin(), cmd.OutOrStdout())
		return err
	},
}
