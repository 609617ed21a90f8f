// Package analysis derives cross-reference indexes and migration
// recommendations from a normalized project export.
package analysis

import "fmt"

// KeyKind tags the variant of a dependency key.
type KeyKind string

const (
	KindConnector      KeyKind = "connector"
	KindTrigger        KeyKind = "trigger"
	KindAuthentication KeyKind = "auth"
	KindWorkflow       KeyKind = "workflow"
)

// DependencyKey identifies one dependency of a workflow. The kind decides
// which payload fields are meaningful: connector and trigger carry name and
// version, auth carries the authentication id, workflow carries the nested
// workflow name. Keys are comparable and used directly as map keys.
type DependencyKey struct {
	Kind    KeyKind
	Name    string
	Version string
	ID      string
}

// ConnectorKey builds the key for a connector reference.
func ConnectorKey(name, version string) DependencyKey {
	return DependencyKey{Kind: KindConnector, Name: name, Version: version}
}

// TriggerKey builds the key for a trigger reference.
func TriggerKey(name, version string) DependencyKey {
	return DependencyKey{Kind: KindTrigger, Name: name, Version: version}
}

// AuthenticationKey builds the key for an authentication reference.
func AuthenticationKey(id string) DependencyKey {
	return DependencyKey{Kind: KindAuthentication, ID: id}
}

// WorkflowKey builds the key for a nested workflow reference.
func WorkflowKey(name string) DependencyKey {
	return DependencyKey{Kind: KindWorkflow, Name: name}
}

// String renders the canonical display form of the key.
func (k DependencyKey) String() string {
	switch k.Kind {
	case KindConnector, KindTrigger:
		return fmt.Sprintf("%s:%s:%s", k.Kind, k.Name, k.Version)
	case KindAuthentication:
		return fmt.Sprintf("%s:%s", k.Kind, k.ID)
	case KindWorkflow:
		return fmt.Sprintf("%s:%s", k.Kind, k.Name)
	}
	return string(k.Kind)
}
