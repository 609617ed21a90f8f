// Package migration defines interfaces for migration plan abstraction.
package migration

import (
	"context"

	"github.com/codebypatrickleung/flowlift-cli/internal/config"
	"github.com/codebypatrickleung/flowlift-cli/internal/logger"
	"github.com/codebypatrickleung/flowlift-cli/internal/platform"
)

// Planner defines the interface for a migration planner. Each planner
// produces the migration plan for one kind of platform entity.
type Planner interface {
	// Name returns the human-readable name of the planner
	Name() string

	// Kind returns the plan kind identifier (e.g., "project")
	Kind() string

	// Initialize prepares the planner with configuration, logger, and the
	// platform API client. The client may be nil for offline planning from
	// a local export file.
	Initialize(cfg *config.Config, log *logger.Logger, client *platform.Client) error

	// Execute builds the migration plan
	Execute(ctx context.Context) error
}
