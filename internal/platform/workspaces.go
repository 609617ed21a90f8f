package platform

import (
	"context"
	"fmt"
	"net/url"
)

// ListAuthentications retrieves the authentications visible to the token.
func (c *Client) ListAuthentications(ctx context.Context) ([]Authentication, error) {
	var resp authenticationsResponse
	if err := c.get(ctx, "/authentications", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list authentications: %w", err)
	}
	return resp.Items, nil
}

// ListWorkspaces retrieves the workspaces the token has access to.
func (c *Client) ListWorkspaces(ctx context.Context) ([]Workspace, error) {
	var resp workspacesResponse
	if err := c.get(ctx, "/workspaces", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return resp.Items, nil
}

// ListSubscriptions retrieves the workflow subscriptions of a workspace.
func (c *Client) ListSubscriptions(ctx context.Context, workspaceID string) ([]Subscription, error) {
	query := url.Values{"workspaceId": []string{workspaceID}}
	var resp subscriptionsResponse
	if err := c.get(ctx, "/subscriptions", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to list subscriptions for workspace %s: %w", workspaceID, err)
	}
	return resp.Items, nil
}
