package platform

import (
	"context"
	"fmt"
	"net/url"
)

// ListConnectors retrieves the connector catalog.
func (c *Client) ListConnectors(ctx context.Context) ([]Connector, error) {
	var resp connectorsResponse
	if err := c.get(ctx, "/connectors", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list connectors: %w", err)
	}
	return resp.Items, nil
}

// ListConnectorOperations retrieves the operations of one connector version.
func (c *Client) ListConnectorOperations(ctx context.Context, name, version string) ([]Operation, error) {
	path := fmt.Sprintf("/connectors/%s/versions/%s/operations", url.PathEscape(name), url.PathEscape(version))
	var resp operationsResponse
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list operations for %s@%s: %w", name, version, err)
	}
	return resp.Items, nil
}

// ListTriggers retrieves the trigger-capable connectors.
func (c *Client) ListTriggers(ctx context.Context) ([]Connector, error) {
	query := url.Values{"trigger": []string{"true"}}
	var resp connectorsResponse
	if err := c.get(ctx, "/connectors", query, &resp); err != nil {
		return nil, fmt.Errorf("failed to list triggers: %w", err)
	}
	return resp.Items, nil
}
