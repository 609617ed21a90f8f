package platform

import "encoding/json"

// Connector is one catalog entry. Triggers are connectors flagged as
// trigger-capable by the platform.
type Connector struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description"`
	IsTrigger   bool   `json:"isTrigger"`
}

// Operation is one operation exposed by a connector version.
type Operation struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Authentication is a stored credential visible to the caller's workspace.
type Authentication struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Service              string   `json:"service"`
	ServiceEnvironmentID string   `json:"serviceEnvironmentId"`
	Scopes               []string `json:"scopes"`
}

// Workspace is a workspace the token has access to.
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Subscription is a workflow subscription within a workspace.
type Subscription struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	WorkflowID string `json:"workflowId"`
	Enabled    bool   `json:"enabled"`
}

// Project is a project within a workspace.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	WorkspaceID string `json:"workspaceId"`
}

// ImportResult reports the outcome of a project import.
type ImportResult struct {
	ProjectID string `json:"projectId"`
	Status    string `json:"status"`
}

type connectorsResponse struct {
	Items []Connector `json:"items"`
}

type operationsResponse struct {
	Items []Operation `json:"items"`
}

type authenticationsResponse struct {
	Items []Authentication `json:"items"`
}

type workspacesResponse struct {
	Items []Workspace `json:"items"`
}

type subscriptionsResponse struct {
	Items []Subscription `json:"items"`
}

type projectsResponse struct {
	Items []Project `json:"items"`
}

type importRequest struct {
	WorkspaceID string          `json:"workspaceId"`
	Document    json.RawMessage `json:"document"`
}
