package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func exportDoc(elements ...Element) *Generated {
	return &Generated{Title: "Test Doc", Elements: elements}
}

func TestExportHTML_WalksElementsInOrder(t *testing.T) {
	out := ExportHTML(exportDoc(
		Heading(2, "First"),
		Paragraph("body text"),
		Divider(),
		Heading(2, "Second"),
	))

	first := strings.Index(out, "<h2>First</h2>")
	para := strings.Index(out, "<p>body text</p>")
	hr := strings.Index(out, "<hr>")
	second := strings.Index(out, "<h2>Second</h2>")

	assert.True(t, first >= 0 && para > first && hr > para && second > hr,
		"elements out of order: %d %d %d %d", first, para, hr, second)
}

func TestExportHTML_EscapesContent(t *testing.T) {
	out := ExportHTML(exportDoc(Paragraph(`<script>alert("x")</script>`)))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestExportHTML_TableCells(t *testing.T) {
	out := ExportHTML(exportDoc(Table([]string{"Field", "Value"}, [][]string{{"Status", "Draft"}})))
	assert.Contains(t, out, "<th>Field</th><th>Value</th>")
	assert.Contains(t, out, "<td>Status</td><td>Draft</td>")
}

func TestExportHTML_SignatureBlankNameLine(t *testing.T) {
	out := ExportHTML(exportDoc(Signature([]SignatureLine{
		{Title: "Prepared By", Role: "Document Owner"},
	})))
	assert.Contains(t, out, "(            )")
	assert.Contains(t, out, "Prepared By")
	assert.Contains(t, out, "Document Owner")
}

func TestExportHTML_CenteredBoldHeadingStyle(t *testing.T) {
	out := ExportHTML(exportDoc(CenteredHeading(1, "Title")))
	assert.Contains(t, out, "text-align: center")
	assert.Contains(t, out, "font-weight: bold")
}

func TestExportHTML_IsStandalonePage(t *testing.T) {
	out := ExportHTML(exportDoc())
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Test Doc</title>")
	assert.Contains(t, out, "</html>")
}
