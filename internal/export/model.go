// Package export defines the typed model for a project export document and
// the lenient decoding that normalizes it for analysis.
package export

import (
	"encoding/json"
	"fmt"
)

// ProjectExport is the typed view over an exported project document.
// Every collection field is optional in the wire format; after Normalize all
// collections are non-nil so consumers can range over them without checks.
type ProjectExport struct {
	Project         ProjectInfo      `json:"project"`
	Workflows       []Workflow       `json:"workflows"`
	Authentications []Authentication `json:"authentications"`
	Connectors      []ConnectorRef   `json:"connectors"`
	Services        []ServiceRef     `json:"services"`
	Dependencies    DependencyLists  `json:"dependencies"`
}

// ProjectInfo identifies the exported project.
type ProjectInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DependencyLists holds the id lists the platform attaches to an export.
type DependencyLists struct {
	Workflows       []string `json:"workflows"`
	Connectors      []string `json:"connectors"`
	Services        []string `json:"services"`
	Authentications []string `json:"authentications"`
}

// Workflow is a single workflow in the export. Id uniqueness within the
// export is assumed, not verified.
type Workflow struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Enabled         bool                `json:"enabled"`
	Steps           []Step              `json:"steps"`
	Connections     []Connection        `json:"connections"`
	NestedWorkflows []NestedWorkflowRef `json:"nestedWorkflows"`
}

// Step is a single workflow step. Connector, Trigger, and Authentication are
// independent optional references; absent stays nil.
type Step struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Connector      *ConnectorRef      `json:"connector"`
	Trigger        *TriggerRef        `json:"trigger"`
	Authentication *AuthenticationRef `json:"authentication"`
	Input          json.RawMessage    `json:"input"`
}

// Connection links two steps within a workflow.
type Connection struct {
	SourceStepID string `json:"sourceStepId"`
	TargetStepID string `json:"targetStepId"`
}

// ConnectorRef references a connector by name and version.
type ConnectorRef struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Operation string `json:"operation"`
	Title     string `json:"title"`
}

// TriggerRef references a trigger connector by name and version.
type TriggerRef struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Operation string `json:"operation"`
	Title     string `json:"title"`
}

// AuthenticationRef is a step's reference to an authentication by id.
type AuthenticationRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Authentication is a project-level authentication record.
type Authentication struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	ServiceEnvironmentID string   `json:"serviceEnvironmentId"`
	Scopes               []string `json:"scopes"`
}

// ServiceRef references a service used by the project.
type ServiceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Decode parses an export document and normalizes it. Top-level fields are
// decoded independently so a malformed field (wrong type, null) degrades to
// its zero value instead of rejecting the whole document. The export format
// is externally owned and may grow fields; unknown fields are ignored.
func Decode(data []byte) (*ProjectExport, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("export document is not a JSON object: %w", err)
	}

	doc := &ProjectExport{}
	decodeField(fields, "project", &doc.Project)
	decodeField(fields, "workflows", &doc.Workflows)
	decodeField(fields, "authentications", &doc.Authentications)
	decodeField(fields, "connectors", &doc.Connectors)
	decodeField(fields, "services", &doc.Services)
	decodeField(fields, "dependencies", &doc.Dependencies)

	doc.Normalize()
	return doc, nil
}

// decodeField unmarshals a single top-level field, leaving the target at its
// zero value when the field is absent or malformed.
func decodeField(fields map[string]json.RawMessage, name string, target interface{}) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	// Ignore the error: a field of the wrong type degrades to empty.
	_ = json.Unmarshal(raw, target)
}

// Normalize defaults every collection field to an empty (non-nil) slice so
// the analyzer can assume fully populated, possibly empty, collections.
func (d *ProjectExport) Normalize() {
	if d.Workflows == nil {
		d.Workflows = []Workflow{}
	}
	if d.Authentications == nil {
		d.Authentications = []Authentication{}
	}
	if d.Connectors == nil {
		d.Connectors = []ConnectorRef{}
	}
	if d.Services == nil {
		d.Services = []ServiceRef{}
	}
	d.Dependencies.normalize()

	for i := range d.Workflows {
		wf := &d.Workflows[i]
		if wf.Steps == nil {
			wf.Steps = []Step{}
		}
		if wf.Connections == nil {
			wf.Connections = []Connection{}
		}
		if wf.NestedWorkflows == nil {
			wf.NestedWorkflows = []NestedWorkflowRef{}
		}
	}
	for i := range d.Authentications {
		if d.Authentications[i].Scopes == nil {
			d.Authentications[i].Scopes = []string{}
		}
	}
}

func (l *DependencyLists) normalize() {
	if l.Workflows == nil {
		l.Workflows = []string{}
	}
	if l.Connectors == nil {
		l.Connectors = []string{}
	}
	if l.Services == nil {
		l.Services = []string{}
	}
	if l.Authentications == nil {
		l.Authentications = []string{}
	}
}

// NestedWorkflowRef records one nested workflow call site.
type NestedWorkflowRef struct {
	WorkflowID   string `json:"workflowId"`
	WorkflowName string `json:"workflowName"`
	StepID       string `json:"stepId"`
}

// AuthenticationName resolves an authentication id to its name by linear
// scan, falling back to the raw id when the export does not contain it.
func (d *ProjectExport) AuthenticationName(id string) string {
	for _, auth := range d.Authentications {
		if auth.ID == id {
			return auth.Name
		}
	}
	return id
}
