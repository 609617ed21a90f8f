// Package migration provides planners for specific plan kinds.
package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codebypatrickleung/flowlift-cli/internal/analysis"
	"github.com/codebypatrickleung/flowlift-cli/internal/common"
	"github.com/codebypatrickleung/flowlift-cli/internal/config"
	"github.com/codebypatrickleung/flowlift-cli/internal/export"
	"github.com/codebypatrickleung/flowlift-cli/internal/logger"
	"github.com/codebypatrickleung/flowlift-cli/internal/platform"
	"github.com/codebypatrickleung/flowlift-cli/internal/report"
)

const planFileName = "migration-plan.md"

// ProjectPlanner builds the migration plan for one project: it obtains the
// export document, analyzes its dependencies, and writes the Markdown plan.
type ProjectPlanner struct {
	config *config.Config
	logger *logger.Logger
	client *platform.Client
}

func NewProjectPlanner() *ProjectPlanner { return &ProjectPlanner{} }
func (p *ProjectPlanner) Name() string   { return "Project Migration Plan" }
func (p *ProjectPlanner) Kind() string   { return "project" }

func (p *ProjectPlanner) Initialize(cfg *config.Config, log *logger.Logger, client *platform.Client) error {
	p.config, p.logger = cfg, log
	p.client = client
	if cfg.ExportFile == "" && client == nil {
		return fmt.Errorf("platform client is required when no export file is configured")
	}
	return nil
}

func (p *ProjectPlanner) Execute(ctx context.Context) error {
	p.logger.Step(1, "Fetch project export")
	raw, err := p.fetchExport(ctx)
	if err != nil {
		return fmt.Errorf("export retrieval failed: %w", err)
	}

	p.logger.Step(2, "Read export model")
	doc, err := export.Decode(raw)
	if err != nil {
		return fmt.Errorf("export decoding failed: %w", err)
	}
	p.logger.Infof("Project: %s (%s)", common.FirstNonEmpty("Unknown", doc.Project.Name), common.FirstNonEmpty("Unknown", doc.Project.ID))

	p.logger.Step(3, "Analyze dependencies")
	res := analysis.Analyze(doc)
	p.logger.Infof("Workflows: %d, Connectors: %d, Services: %d, Authentications: %d",
		res.Summary.Workflows, res.Summary.Connectors, res.Summary.Services, res.Summary.Authentications)
	if len(res.NestedWorkflowIndex) > 0 {
		p.logger.Warningf("%d workflows contain nested workflow calls", len(res.NestedWorkflowIndex))
	}

	p.logger.Step(4, "Write migration plan")
	planPath, err := p.writePlan(report.Render(res))
	if err != nil {
		return fmt.Errorf("plan generation failed: %w", err)
	}

	p.logger.Successf("Migration plan written to %s", planPath)
	for _, rec := range res.Recommendations {
		p.logger.Infof("Recommendation: %s", rec)
	}

	return nil
}

// fetchExport reads the export from the configured local file or fetches it
// from the platform API.
func (p *ProjectPlanner) fetchExport(ctx context.Context) (json.RawMessage, error) {
	if p.config.ExportFile != "" {
		p.logger.Infof("Reading export from %s", p.config.ExportFile)
		data, err := os.ReadFile(p.config.ExportFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read export file: %w", err)
		}
		return data, nil
	}

	p.logger.Infof("Fetching export for project %s", p.config.ProjectID)
	return p.client.ExportProject(ctx, p.config.ProjectID, p.config.ProjectVersion)
}

func (p *ProjectPlanner) writePlan(content string) (string, error) {
	if err := common.EnsureDir(p.config.OutputDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	planPath := filepath.Join(p.config.OutputDir, planFileName)
	if err := os.WriteFile(planPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write plan file: %w", err)
	}
	return planPath, nil
}
