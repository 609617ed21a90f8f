package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ListProjects retrieves the projects of a workspace.
func (c *Client) ListProjects(ctx context.Context, workspaceID string) ([]Project, error) {
	query := url.Values{"workspaceId": []string{workspaceID}}
	var resp projectsResponse
	if err := c.get(ctx, "/projects", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to list projects for workspace %s: %w", workspaceID, err)
	}
	return resp.Items, nil
}

// ExportProject retrieves the raw export document of a project. Version may
// be empty for the latest version. The document is returned undecoded so the
// export package owns all interpretation of its shape.
func (c *Client) ExportProject(ctx context.Context, projectID, version string) (json.RawMessage, error) {
	path := fmt.Sprintf("/projects/%s/export", url.PathEscape(projectID))
	var query url.Values
	if version != "" {
		query = url.Values{"version": []string{version}}
	}
	var doc json.RawMessage
	if err := c.get(ctx, path, query, &doc); err != nil {
		return nil, fmt.Errorf("failed to export project %s: %w", projectID, err)
	}
	return doc, nil
}

// ImportProject imports an export document into a workspace.
func (c *Client) ImportProject(ctx context.Context, workspaceID string, doc json.RawMessage) (*ImportResult, error) {
	req := importRequest{WorkspaceID: workspaceID, Document: doc}
	var result ImportResult
	if err := c.post(ctx, "/projects/import", req, &result); err != nil {
		return nil, fmt.Errorf("failed to import project into workspace %s: %w", workspaceID, err)
	}
	return &result, nil
}
