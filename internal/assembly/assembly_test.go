package assembly

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grc-docengine/internal/catalog"
	"grc-docengine/internal/document"
)

func fixedEngine(t *testing.T) *Engine {
	t.Helper()
	fixed := time.Date(2025, 3, 14, 10, 30, 0, 123_000_000, time.UTC)
	return NewWithClock(func() time.Time { return fixed })
}

func TestAssemble_DocumentNumberFormat(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 10, 30, 0, 123_000_000, time.UTC)
	engine := NewWithClock(func() time.Time { return fixed })

	doc := engine.Assemble(catalog.ModuleDPIA, nil)

	expected := fmt.Sprintf("DOC-DPIA-%06d", fixed.UnixMilli()%1000000)
	assert.Equal(t, expected, doc.DocumentNumber)
}

func TestAssemble_TitleFromAnswersOrTemplate(t *testing.T) {
	engine := fixedEngine(t)

	withTitle := engine.Assemble(catalog.ModuleDPIA, map[string]string{"title": "Custom DPIA"})
	assert.Equal(t, "Custom DPIA", withTitle.Title)

	withoutTitle := engine.Assemble(catalog.ModuleDPIA, nil)
	assert.Equal(t, catalog.Template(catalog.ModuleDPIA).Title, withoutTitle.Title)
}

func TestAssemble_UnknownModuleUsesPolicyTemplate(t *testing.T) {
	engine := fixedEngine(t)

	doc := engine.Assemble(catalog.ModuleType("no-such-module"), nil)

	assert.Equal(t, catalog.Template(catalog.ModulePolicy).Title, doc.Title)
	assert.Equal(t, catalog.Regulations(catalog.ModulePolicy), doc.Metadata.Regulations)
}

func TestAssemble_HeaderBlockLayout(t *testing.T) {
	engine := fixedEngine(t)
	doc := engine.Assemble(catalog.ModuleRisk, nil)
	require.GreaterOrEqual(t, len(doc.Elements), 5)

	title := doc.Elements[0]
	assert.Equal(t, document.ElementHeading, title.Type)
	assert.True(t, title.Bold)
	assert.Equal(t, document.AlignCenter, title.Align)

	assert.Equal(t, document.ElementParagraph, doc.Elements[1].Type)
	assert.Contains(t, doc.Elements[1].Content, "Document Number: "+doc.DocumentNumber)
	assert.Contains(t, doc.Elements[2].Content, "Date: 14 March 2025")
	assert.Equal(t, document.ElementDivider, doc.Elements[3].Type)
}

func TestAssemble_InfoTable(t *testing.T) {
	engine := fixedEngine(t)
	doc := engine.Assemble(catalog.ModuleAudit, map[string]string{"owner": "Jane Auditor"})

	table := doc.Elements[4]
	require.Equal(t, document.ElementTable, table.Type)
	assert.Equal(t, []string{"Field", "Value"}, table.Headers)
	require.Len(t, table.Rows, 8)
	assert.NoError(t, table.Validate())

	rows := map[string]string{}
	for _, row := range table.Rows {
		rows[row[0]] = row[1]
	}
	assert.Equal(t, "1.0", rows["Version"])
	assert.Equal(t, "Draft", rows["Status"])
	assert.Equal(t, "Internal", rows["Classification"])
	assert.Equal(t, "Jane Auditor", rows["Owner"])
	assert.Equal(t, "Annual", rows["Review Date"])
}

func TestAssemble_OwnerDefaultsToUnassigned(t *testing.T) {
	engine := fixedEngine(t)
	doc := engine.Assemble(catalog.ModuleAudit, nil)

	table := doc.Elements[4]
	found := false
	for _, row := range table.Rows {
		if row[0] == "Owner" {
			assert.Equal(t, "To be assigned", row[1])
			found = true
		}
	}
	assert.True(t, found)
}

func TestAssemble_SectionsAreNumberedHeadings(t *testing.T) {
	engine := fixedEngine(t)
	sections := catalog.Template(catalog.ModuleDPIA).Sections

	doc := engine.Assemble(catalog.ModuleDPIA, nil)

	var headings []string
	for _, el := range doc.Elements {
		if el.Type == document.ElementHeading && el.Level == 2 {
			headings = append(headings, el.Content)
		}
	}

	// Last level-2 heading is the signature section.
	require.Len(t, headings, len(sections)+1)
	for i, section := range sections {
		assert.Equal(t, fmt.Sprintf("%d. %s", i+1, section.Name), headings[i])
	}
	assert.Equal(t, "Approval & Signatures", headings[len(headings)-1])
}

func TestAssemble_ClosesWithSignatureBlock(t *testing.T) {
	engine := fixedEngine(t)
	doc := engine.Assemble(catalog.ModulePolicy, nil)

	last := doc.Elements[len(doc.Elements)-1]
	require.Equal(t, document.ElementSignature, last.Type)
	require.Len(t, last.Signatures, 3)
	assert.Equal(t, "Prepared By", last.Signatures[0].Title)
	assert.Equal(t, "Reviewed By", last.Signatures[1].Title)
	assert.Equal(t, "Approved By", last.Signatures[2].Title)
}

func TestAssemble_AllElementsValid(t *testing.T) {
	engine := fixedEngine(t)
	for _, m := range catalog.Registered() {
		doc := engine.Assemble(m, map[string]string{"summary": "ringkasan", "details": "a\nb"})
		require.NoError(t, doc.Validate(), "module %s", m)
	}
}

func TestAssemble_MetadataCarriesRegulations(t *testing.T) {
	engine := fixedEngine(t)
	doc := engine.Assemble(catalog.ModuleIncident, nil)

	assert.Equal(t, catalog.ModuleIncident, doc.Metadata.ModuleType)
	assert.Equal(t, catalog.Regulations(catalog.ModuleIncident), doc.Metadata.Regulations)
	assert.Equal(t, "1.0", doc.Version)
}
