package assembly

import (
	"strings"

	"grc-docengine/internal/document"
)

// sectionBuilder pairs a name predicate with a content builder. The builders
// table is evaluated top to bottom and the first match wins, so a section
// named "Risk Timeline" gets risk content, not timeline content. Matching is
// a case-sensitive substring check on the section name.
type sectionBuilder struct {
	keywords []string
	build    func(answers map[string]string) []document.Element
}

var sectionBuilders = []sectionBuilder{
	{keywords: []string{"Summary", "Overview"}, build: buildSummary},
	{keywords: []string{"Details", "Findings"}, build: buildDetails},
	{keywords: []string{"Risk", "Impact"}, build: buildRiskTable},
	{keywords: []string{"Roles", "Responsibilities"}, build: buildRolesTable},
	{keywords: []string{"Timeline", "Schedule"}, build: buildTimelineTable},
	{keywords: []string{"Recommendation"}, build: buildRecommendations},
}

func buildSectionContent(sectionName string, answers map[string]string) []document.Element {
	for _, builder := range sectionBuilders {
		for _, keyword := range builder.keywords {
			if strings.Contains(sectionName, keyword) {
				return builder.build(answers)
			}
		}
	}
	return buildGeneric(answers)
}

func buildSummary(answers map[string]string) []document.Element {
	text := answers["summary"]
	if text == "" {
		text = "This document was prepared to fulfill the organization's governance, risk and compliance obligations. It summarizes the scope, context and key outcomes of the activity it records."
	}
	return []document.Element{document.Paragraph(text)}
}

func buildDetails(answers map[string]string) []document.Element {
	items := splitLines(answers["details"])
	if len(items) == 0 {
		items = []string{
			"Detail item to be completed by the document owner",
			"Supporting information gathered during the assessment",
			"References to related records and evidence",
		}
	}
	return []document.Element{
		document.Paragraph("The following points summarize the principal details recorded for this document:"),
		document.List(items),
	}
}

func buildRiskTable(map[string]string) []document.Element {
	return []document.Element{
		document.Table(
			[]string{"Risk", "Likelihood", "Impact", "Mitigation"},
			[][]string{
				{"Unauthorized access to personal data", "Medium", "High", "Access control and encryption"},
				{"Incomplete regulatory documentation", "Medium", "Medium", "Periodic completeness review"},
				{"Process failure or human error", "Low", "Medium", "Training and procedural controls"},
			},
		),
	}
}

func buildRolesTable(map[string]string) []document.Element {
	return []document.Element{
		document.Table(
			[]string{"Role", "Responsibility"},
			[][]string{
				{"Document Owner", "Maintains content and initiates reviews"},
				{"Compliance Officer", "Verifies regulatory alignment"},
				{"Data Protection Officer", "Advises on data protection impact"},
				{"Management", "Approves and allocates resources"},
			},
		),
	}
}

func buildTimelineTable(map[string]string) []document.Element {
	return []document.Element{
		document.Table(
			[]string{"Phase", "Activity", "Start", "End", "PIC"},
			[][]string{
				{"1", "Preparation and scoping", "Week 1", "Week 2", "Document Owner"},
				{"2", "Execution and data collection", "Week 3", "Week 6", "Assigned Team"},
				{"3", "Review and validation", "Week 7", "Week 8", "Compliance Officer"},
				{"4", "Approval and publication", "Week 9", "Week 9", "Management"},
			},
		),
	}
}

func buildRecommendations(map[string]string) []document.Element {
	return []document.Element{
		document.Paragraph("Based on the recorded findings, the following actions are recommended:"),
		document.List([]string{
			"Complete any open documentation items identified during review",
			"Assign owners and due dates to all remediation actions",
			"Schedule a periodic review aligned with the regulatory cycle",
			"Communicate relevant outcomes to affected stakeholders",
		}),
	}
}

func buildGeneric(answers map[string]string) []document.Element {
	text := answers["content"]
	if text == "" {
		text = "Content for this section has not been provided and should be completed by the document owner."
	}
	return []document.Element{document.Paragraph(text)}
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
