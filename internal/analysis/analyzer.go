package analysis

import (
	"fmt"
	"sort"

	"github.com/codebypatrickleung/flowlift-cli/internal/export"
)

// Summary holds the top-level entity counts of an export.
type Summary struct {
	Workflows       int
	Connectors      int
	Services        int
	Authentications int
}

// WorkflowDetail is the per-workflow analysis row, in input workflow order.
type WorkflowDetail struct {
	ID              string
	Name            string
	Description     string
	Enabled         bool
	StepCount       int
	DependencyCount int
	Connectors      []string // connector keys, first-seen order within the workflow
	Authentications []string // resolved names, raw id fallback
	NestedWorkflows []string // nested workflow names in call order
}

// UsageEntry pairs a usage-map key with the workflows referencing it.
type UsageEntry struct {
	Key       string
	Workflows []string
}

// Result is the complete analysis of one project export. All maps and
// slices are built fresh per Analyze call; nothing is shared across calls.
type Result struct {
	Summary Summary
	Details []WorkflowDetail
	Project ProjectInfo

	// ConnectorUsage maps a connector key to the distinct workflow names
	// using it, in first-encounter order. ConnectorKeys preserves the
	// first-seen order of the keys themselves.
	ConnectorUsage map[string][]string
	ConnectorKeys  []string

	// AuthenticationUsage maps an authentication id to the distinct
	// workflow names using it. AuthenticationNames carries the resolved
	// display name per id (raw id when unresolved).
	AuthenticationUsage map[string][]string
	AuthenticationIDs   []string
	AuthenticationNames map[string]string

	// NestedWorkflowIndex maps a workflow id to the names of the workflows
	// it calls, in call order. Only workflows with nested calls appear.
	NestedWorkflowIndex map[string][]string

	Recommendations []string
}

// ProjectInfo mirrors the export's project identity for report rendering.
type ProjectInfo struct {
	ID   string
	Name string
}

// Analyze walks the export's workflows once, in input order, and builds the
// dependency indexes, per-workflow detail, and the recommendation checklist.
// It is a pure function of its input: no I/O, no shared state, and the same
// document always yields the same result.
func Analyze(doc *export.ProjectExport) *Result {
	res := &Result{
		Summary: Summary{
			Workflows:       len(doc.Workflows),
			Connectors:      len(doc.Connectors),
			Services:        len(doc.Services),
			Authentications: len(doc.Authentications),
		},
		Project:             ProjectInfo{ID: doc.Project.ID, Name: doc.Project.Name},
		Details:             make([]WorkflowDetail, 0, len(doc.Workflows)),
		ConnectorUsage:      make(map[string][]string),
		AuthenticationUsage: make(map[string][]string),
		AuthenticationNames: make(map[string]string),
		NestedWorkflowIndex: make(map[string][]string),
	}

	connectorSeen := make(map[string]map[string]bool)
	authSeen := make(map[string]map[string]bool)

	for _, wf := range doc.Workflows {
		deps := make(map[DependencyKey]bool)
		var connectorKeys []string
		var authNames []string
		wfConnectorSeen := make(map[string]bool)
		wfAuthSeen := make(map[string]bool)

		for _, step := range wf.Steps {
			if step.Connector != nil {
				key := ConnectorKey(step.Connector.Name, step.Connector.Version)
				deps[key] = true
				keyStr := key.String()
				if !wfConnectorSeen[keyStr] {
					wfConnectorSeen[keyStr] = true
					connectorKeys = append(connectorKeys, keyStr)
				}
				res.addConnectorUsage(connectorSeen, keyStr, wf.Name)
			}
			if step.Trigger != nil {
				// Triggers enter the workflow's dependency set but no
				// global trigger usage index is kept.
				deps[TriggerKey(step.Trigger.Name, step.Trigger.Version)] = true
			}
			if step.Authentication != nil {
				id := step.Authentication.ID
				deps[AuthenticationKey(id)] = true
				if !wfAuthSeen[id] {
					wfAuthSeen[id] = true
					authNames = append(authNames, doc.AuthenticationName(id))
				}
				res.addAuthenticationUsage(authSeen, doc, id, wf.Name)
			}
		}

		var nestedNames []string
		if len(wf.NestedWorkflows) > 0 {
			for _, nested := range wf.NestedWorkflows {
				nestedNames = append(nestedNames, nested.WorkflowName)
				deps[WorkflowKey(nested.WorkflowName)] = true
			}
			res.NestedWorkflowIndex[wf.ID] = nestedNames
		}

		res.Details = append(res.Details, WorkflowDetail{
			ID:              wf.ID,
			Name:            wf.Name,
			Description:     wf.Description,
			Enabled:         wf.Enabled,
			StepCount:       len(wf.Steps),
			DependencyCount: len(deps),
			Connectors:      connectorKeys,
			Authentications: authNames,
			NestedWorkflows: nestedNames,
		})
	}

	res.Recommendations = res.buildRecommendations()
	return res
}

// addConnectorUsage records a workflow name against a connector key,
// collapsing duplicates. The key order list tracks first encounter.
func (r *Result) addConnectorUsage(seen map[string]map[string]bool, key, workflowName string) {
	if seen[key] == nil {
		seen[key] = make(map[string]bool)
		r.ConnectorKeys = append(r.ConnectorKeys, key)
	}
	if !seen[key][workflowName] {
		seen[key][workflowName] = true
		r.ConnectorUsage[key] = append(r.ConnectorUsage[key], workflowName)
	}
}

// addAuthenticationUsage records a workflow name against an authentication
// id, collapsing duplicates and caching the resolved display name.
func (r *Result) addAuthenticationUsage(seen map[string]map[string]bool, doc *export.ProjectExport, id, workflowName string) {
	if seen[id] == nil {
		seen[id] = make(map[string]bool)
		r.AuthenticationIDs = append(r.AuthenticationIDs, id)
		r.AuthenticationNames[id] = doc.AuthenticationName(id)
	}
	if !seen[id][workflowName] {
		seen[id][workflowName] = true
		r.AuthenticationUsage[id] = append(r.AuthenticationUsage[id], workflowName)
	}
}

// buildRecommendations produces the fixed-order migration checklist from
// aggregate facts only.
func (r *Result) buildRecommendations() []string {
	var recs []string

	if len(r.NestedWorkflowIndex) > 0 {
		recs = append(recs,
			fmt.Sprintf("⚠️ Nested Workflows Detected: %d workflows contain nested calls", len(r.NestedWorkflowIndex)),
			"Ensure nested workflows are included in the migration",
			"Verify execution-order dependencies between workflows",
		)
	}
	for _, key := range r.ConnectorKeys {
		recs = append(recs, fmt.Sprintf("Verify connector availability in target environment: %s", key))
	}
	for _, id := range r.AuthenticationIDs {
		recs = append(recs, fmt.Sprintf("Recreate authentication: %s", r.AuthenticationNames[id]))
	}

	return recs
}

// RankedConnectorUsage returns connector usage sorted by descending count of
// distinct workflows, ties broken by first-seen key order.
func (r *Result) RankedConnectorUsage() []UsageEntry {
	return rankUsage(r.ConnectorKeys, r.ConnectorUsage)
}

// RankedAuthenticationUsage returns authentication usage sorted the same way
// as connector usage, keyed by authentication id.
func (r *Result) RankedAuthenticationUsage() []UsageEntry {
	return rankUsage(r.AuthenticationIDs, r.AuthenticationUsage)
}

func rankUsage(order []string, usage map[string][]string) []UsageEntry {
	entries := make([]UsageEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, UsageEntry{Key: key, Workflows: usage[key]})
	}
	// Stable sort over first-seen order gives the deterministic tie-break.
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Workflows) > len(entries[j].Workflows)
	})
	return entries
}
