package export

import (
	"testing"
)

func TestDecodeFullDocument(t *testing.T) {
	data := []byte(`{
		"project": {"id": "p1", "name": "CRM Sync"},
		"workflows": [
			{
				"id": "w1",
				"name": "Onboarding",
				"description": "New customer onboarding",
				"enabled": true,
				"steps": [
					{"id": "s1", "name": "Fetch contact", "connector": {"name": "hubspot", "version": "3.0", "operation": "get_contact"}},
					{"id": "s2", "name": "Notify", "authentication": {"id": "auth1"}}
				],
				"connections": [{"sourceStepId": "s1", "targetStepId": "s2"}],
				"nestedWorkflows": [{"workflowId": "w2", "workflowName": "SubFlow", "stepId": "s2"}]
			}
		],
		"authentications": [{"id": "auth1", "name": "HubSpot Auth", "serviceEnvironmentId": "env1", "scopes": ["contacts.read"]}],
		"connectors": [{"name": "hubspot", "version": "3.0"}],
		"services": [{"id": "svc1", "name": "hubspot"}],
		"dependencies": {"connectors": ["hubspot"], "authentications": ["auth1"]}
	}`)

	doc, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if doc.Project.Name != "CRM Sync" {
		t.Errorf("Expected project name 'CRM Sync', got %q", doc.Project.Name)
	}
	if len(doc.Workflows) != 1 {
		t.Fatalf("Expected 1 workflow, got %d", len(doc.Workflows))
	}

	wf := doc.Workflows[0]
	if wf.ID != "w1" || wf.Name != "Onboarding" || !wf.Enabled {
		t.Errorf("Unexpected workflow fields: %+v", wf)
	}
	if len(wf.Steps) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(wf.Steps))
	}
	if wf.Steps[0].Connector == nil || wf.Steps[0].Connector.Name != "hubspot" {
		t.Errorf("Expected step 1 connector hubspot, got %+v", wf.Steps[0].Connector)
	}
	if wf.Steps[0].Authentication != nil {
		t.Error("Expected step 1 authentication to be absent")
	}
	if wf.Steps[1].Authentication == nil || wf.Steps[1].Authentication.ID != "auth1" {
		t.Errorf("Expected step 2 authentication auth1, got %+v", wf.Steps[1].Authentication)
	}
	if len(wf.NestedWorkflows) != 1 || wf.NestedWorkflows[0].WorkflowName != "SubFlow" {
		t.Errorf("Unexpected nested workflows: %+v", wf.NestedWorkflows)
	}
	if len(doc.Dependencies.Connectors) != 1 || doc.Dependencies.Connectors[0] != "hubspot" {
		t.Errorf("Unexpected dependency connectors: %+v", doc.Dependencies.Connectors)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	doc, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if doc.Workflows == nil || len(doc.Workflows) != 0 {
		t.Errorf("Expected empty non-nil workflows, got %#v", doc.Workflows)
	}
	if doc.Authentications == nil || doc.Connectors == nil || doc.Services == nil {
		t.Error("Expected all collections to be non-nil after Decode")
	}
	if doc.Dependencies.Workflows == nil || doc.Dependencies.Authentications == nil {
		t.Error("Expected dependency lists to be non-nil after Decode")
	}
}

func TestDecodeMalformedFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Workflows is a number", `{"workflows": 42}`},
		{"Workflows is a string", `{"workflows": "nope"}`},
		{"Project is an array", `{"project": [1, 2]}`},
		{"Null collections", `{"workflows": null, "authentications": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.data))
			if err != nil {
				t.Fatalf("Decode should degrade malformed fields, got error: %v", err)
			}
			if doc.Workflows == nil || len(doc.Workflows) != 0 {
				t.Errorf("Expected empty workflows for malformed field, got %#v", doc.Workflows)
			}
		})
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	if _, err := Decode([]byte(`[1, 2, 3]`)); err == nil {
		t.Error("Expected error for non-object document")
	}
	if _, err := Decode([]byte(`not json`)); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestNormalizeWorkflowCollections(t *testing.T) {
	doc, err := Decode([]byte(`{"workflows": [{"id": "w1", "name": "Bare"}]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	wf := doc.Workflows[0]
	if wf.Steps == nil || wf.Connections == nil || wf.NestedWorkflows == nil {
		t.Errorf("Expected workflow collections to be non-nil, got %+v", wf)
	}
	if len(wf.Steps) != 0 {
		t.Errorf("Expected no steps, got %d", len(wf.Steps))
	}
}

func TestAuthenticationName(t *testing.T) {
	doc := &ProjectExport{
		Authentications: []Authentication{
			{ID: "auth1", Name: "HubSpot Auth"},
			{ID: "auth2", Name: "Slack Auth"},
		},
	}

	tests := []struct {
		name     string
		id       string
		expected string
	}{
		{"Known id resolves to name", "auth1", "HubSpot Auth"},
		{"Second entry resolves", "auth2", "Slack Auth"},
		{"Unknown id falls back to raw id", "auth9", "auth9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.AuthenticationName(tt.id); got != tt.expected {
				t.Errorf("AuthenticationName(%q) = %q, want %q", tt.id, got, tt.expected)
			}
		})
	}
}
