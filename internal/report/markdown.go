// Package report renders a dependency analysis into a Markdown document.
package report

import (
	"fmt"
	"strings"

	"github.com/codebypatrickleung/flowlift-cli/internal/analysis"
	"github.com/codebypatrickleung/flowlift-cli/internal/common"
)

// Section headers and fixed phrases below are part of the observable output
// contract for consumers that diff reports across runs.

// Render produces the Markdown migration-planning report for one analysis.
func Render(res *analysis.Result) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("# Project Export Analysis: %s\n\n", common.FirstNonEmpty("Unknown", res.Project.Name)))

	writeSummary(&b, res)
	writeWorkflowDependencies(&b, res)
	writeCrossReference(&b, res)
	writeRecommendations(&b, res)

	return b.String()
}

func writeSummary(b *strings.Builder, res *analysis.Result) {
	b.WriteString("## Summary\n\n")
	b.WriteString(fmt.Sprintf("- Project ID: %s\n", common.FirstNonEmpty("Unknown", res.Project.ID)))
	b.WriteString(fmt.Sprintf("- Workflows: %d\n", res.Summary.Workflows))
	b.WriteString(fmt.Sprintf("- Connectors: %d\n", res.Summary.Connectors))
	b.WriteString(fmt.Sprintf("- Services: %d\n", res.Summary.Services))
	b.WriteString(fmt.Sprintf("- Authentications: %d\n", res.Summary.Authentications))
	b.WriteString("\n")
}

func writeWorkflowDependencies(b *strings.Builder, res *analysis.Result) {
	b.WriteString("## Workflow Dependencies\n\n")
	for _, detail := range res.Details {
		b.WriteString(fmt.Sprintf("### %s (`%s`)\n\n", common.FirstNonEmpty("Unknown", detail.Name), detail.ID))
		b.WriteString(fmt.Sprintf("- Description: %s\n", common.FirstNonEmpty("N/A", detail.Description)))
		b.WriteString(fmt.Sprintf("- Enabled: %t\n", detail.Enabled))
		b.WriteString(fmt.Sprintf("- Steps: %d\n", detail.StepCount))
		b.WriteString(fmt.Sprintf("- Dependencies: %d\n", detail.DependencyCount))
		b.WriteString(fmt.Sprintf("- Connectors: %s\n", common.JoinOrNone(detail.Connectors)))
		b.WriteString(fmt.Sprintf("- Authentications: %s\n", common.JoinOrNone(detail.Authentications)))
		if len(detail.NestedWorkflows) > 0 {
			b.WriteString(fmt.Sprintf("- Nested Workflows: %s\n", strings.Join(detail.NestedWorkflows, ", ")))
		}
		b.WriteString("\n")
	}
}

func writeCrossReference(b *strings.Builder, res *analysis.Result) {
	b.WriteString("## Cross-Reference Analysis\n\n")

	b.WriteString("### Connector Usage\n\n")
	writeUsageEntries(b, res.RankedConnectorUsage(), func(key string) string {
		return fmt.Sprintf("`%s`", key)
	})

	b.WriteString("### Authentication Usage\n\n")
	writeUsageEntries(b, res.RankedAuthenticationUsage(), func(id string) string {
		return fmt.Sprintf("%s (`%s`)", res.AuthenticationNames[id], id)
	})
}

func writeUsageEntries(b *strings.Builder, entries []analysis.UsageEntry, label func(string) string) {
	if len(entries) == 0 {
		b.WriteString("No usage recorded.\n\n")
		return
	}
	for _, entry := range entries {
		noun := "workflows"
		if len(entry.Workflows) == 1 {
			noun = "workflow"
		}
		b.WriteString(fmt.Sprintf("- %s used by %d %s: %s\n",
			label(entry.Key), len(entry.Workflows), noun, strings.Join(entry.Workflows, ", ")))
	}
	b.WriteString("\n")
}

func writeRecommendations(b *strings.Builder, res *analysis.Result) {
	b.WriteString("## Migration Recommendations\n\n")
	if len(res.Recommendations) == 0 {
		b.WriteString("No recommendations.\n")
		return
	}
	for i, rec := range res.Recommendations {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
	}
}
