// Package assembly builds structured compliance documents from a module's
// template and the interview answers. Assembly is pure construction: the only
// ambient input is the clock, which is injectable for tests.
package assembly

import (
	"fmt"
	"strings"
	"time"

	"grc-docengine/internal/catalog"
	"grc-docengine/internal/document"
)

// Engine assembles documents. The zero value is not usable; call New.
type Engine struct {
	now func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock injects the clock, used by tests to pin the document number.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Assemble builds a document for the module type from the merged answer map.
// Unknown module types resolve to the policy template. Uniqueness of the
// document number is only guaranteed within a session; two calls in the same
// millisecond collide, which is an accepted limitation.
func (e *Engine) Assemble(moduleType catalog.ModuleType, answers map[string]string) *document.Generated {
	if answers == nil {
		answers = map[string]string{}
	}
	template := catalog.Template(moduleType)
	now := e.now()

	title := answers["title"]
	if title == "" {
		title = template.Title
	}
	docNumber := documentNumber(moduleType, now)
	date := now.Format("2 January 2006")

	elements := []document.Element{
		document.CenteredHeading(1, title),
		document.Paragraph(fmt.Sprintf("Document Number: %s", docNumber)),
		document.Paragraph(fmt.Sprintf("Date: %s", date)),
		document.Divider(),
	}

	elements = append(elements, infoTable(title, docNumber, date, answers))

	for i, section := range template.Sections {
		elements = append(elements, document.Heading(2, fmt.Sprintf("%d. %s", i+1, section.Name)))
		elements = append(elements, buildSectionContent(section.Name, answers)...)
	}

	elements = append(elements,
		document.Divider(),
		document.Heading(2, "Approval & Signatures"),
		document.Signature([]document.SignatureLine{
			{Title: "Prepared By", Role: "Document Owner"},
			{Title: "Reviewed By", Role: "Compliance Officer"},
			{Title: "Approved By", Role: "Management Representative"},
		}),
	)

	return &document.Generated{
		Title:          title,
		Subtitle:       string(template.Format),
		DocumentNumber: docNumber,
		Version:        "1.0",
		Date:           date,
		Module:         moduleType,
		Elements:       elements,
		Metadata: document.Metadata{
			GeneratedAt: now,
			ModuleType:  moduleType,
			Regulations: catalog.Regulations(moduleType),
		},
	}
}

// documentNumber derives the session-unique identifier from the module type
// and the last six digits of the epoch millisecond timestamp.
func documentNumber(moduleType catalog.ModuleType, now time.Time) string {
	millis := now.UnixMilli()
	return fmt.Sprintf("DOC-%s-%06d", strings.ToUpper(string(moduleType)), millis%1000000)
}

// infoTable is the fixed eight-field document info block every document opens
// with.
func infoTable(title, docNumber, date string, answers map[string]string) document.Element {
	owner := answers["owner"]
	if owner == "" {
		owner = "To be assigned"
	}
	return document.Table(
		[]string{"Field", "Value"},
		[][]string{
			{"Title", title},
			{"Number", docNumber},
			{"Version", "1.0"},
			{"Status", "Draft"},
			{"Classification", "Internal"},
			{"Owner", owner},
			{"Created Date", date},
			{"Review Date", "Annual"},
		},
	)
}
