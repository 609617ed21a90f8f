// Package migration orchestrates migration planning for platform projects.
package migration

import (
	"context"
	"fmt"

	"github.com/codebypatrickleung/flowlift-cli/internal/config"
	"github.com/codebypatrickleung/flowlift-cli/internal/logger"
	"github.com/codebypatrickleung/flowlift-cli/internal/platform"
)

// Manager orchestrates migration planning by delegating to a registered planner.
type Manager struct {
	config  *config.Config
	logger  *logger.Logger
	planner Planner
	version string
}

// NewManager creates a new migration manager. The client may be nil when the
// plan runs entirely from a local export file.
func NewManager(cfg *config.Config, log *logger.Logger, client *platform.Client, version string) (*Manager, error) {
	// Create registry and register all planners
	registry := NewRegistry()

	if err := registry.Register(NewProjectPlanner()); err != nil {
		return nil, fmt.Errorf("failed to register project planner: %w", err)
	}

	// Get the planner for the configured plan kind
	planner, err := registry.Get(cfg.PlanKind)
	if err != nil {
		return nil, fmt.Errorf("failed to get migration planner: %w", err)
	}

	if err := planner.Initialize(cfg, log, client); err != nil {
		return nil, fmt.Errorf("failed to initialize migration planner: %w", err)
	}

	return &Manager{
		config:  cfg,
		logger:  log,
		planner: planner,
		version: version,
	}, nil
}

// Run executes migration planning by delegating to the registered planner.
func (m *Manager) Run(ctx context.Context) error {
	m.logger.Info("=========================================")
	m.logger.Infof("Flowlift - Project Migration Tool v%s", m.version)
	m.logger.Info("=========================================")
	m.logger.Infof("Plan Kind: %s", m.config.PlanKind)
	if m.config.TargetWorkspaceID != "" {
		m.logger.Infof("Target Workspace: %s", m.config.TargetWorkspaceID)
	}
	m.logger.Info("=========================================")

	if err := m.planner.Execute(ctx); err != nil {
		m.logger.Error(fmt.Sprintf("Migration planning failed: %v", err))
		return err
	}

	return nil
}
