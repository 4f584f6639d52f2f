// Package document defines the structured document model produced by the
// assembly engine: an ordered tree of typed elements independent of any
// rendering target.
package document

import "fmt"

// ElementType tags the variant of a DocumentElement.
type ElementType string

const (
	ElementHeading   ElementType = "heading"
	ElementParagraph ElementType = "paragraph"
	ElementTable     ElementType = "table"
	ElementList      ElementType = "list"
	ElementSignature ElementType = "signature"
	ElementDivider   ElementType = "divider"
	ElementSpacer    ElementType = "spacer"
)

// Alignment of heading and paragraph content.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// SignatureLine is one signer slot in a signature block.
type SignatureLine struct {
	Title string `json:"title"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Element is a tagged variant. Only the fields of the active variant are
// populated; the Type tag says which.
type Element struct {
	Type ElementType `json:"type"`

	// heading / paragraph
	Content string    `json:"content,omitempty"`
	Level   int       `json:"level,omitempty"` // heading only, 1..4
	Bold    bool      `json:"bold,omitempty"`
	Italic  bool      `json:"italic,omitempty"`
	Align   Alignment `json:"align,omitempty"`

	// table
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`

	// list
	Items []string `json:"items,omitempty"`

	// signature
	Signatures []SignatureLine `json:"signatures,omitempty"`
}

func Heading(level int, content string) Element {
	if level < 1 {
		level = 1
	}
	if level > 4 {
		level = 4
	}
	return Element{Type: ElementHeading, Level: level, Content: content}
}

func CenteredHeading(level int, content string) Element {
	h := Heading(level, content)
	h.Align = AlignCenter
	h.Bold = true
	return h
}

func Paragraph(content string) Element {
	return Element{Type: ElementParagraph, Content: content}
}

func BoldParagraph(content string) Element {
	return Element{Type: ElementParagraph, Content: content, Bold: true}
}

func Table(headers []string, rows [][]string) Element {
	return Element{Type: ElementTable, Headers: headers, Rows: rows}
}

func List(items []string) Element {
	return Element{Type: ElementList, Items: items}
}

func Signature(lines []SignatureLine) Element {
	return Element{Type: ElementSignature, Signatures: lines}
}

func Divider() Element {
	return Element{Type: ElementDivider}
}

func Spacer() Element {
	return Element{Type: ElementSpacer}
}

// Validate checks the variant invariants, in particular that every table row
// has the same cardinality as its headers.
func (e Element) Validate() error {
	switch e.Type {
	case ElementHeading:
		if e.Level < 1 || e.Level > 4 {
			return fmt.Errorf("heading level %d out of range 1..4", e.Level)
		}
	case ElementTable:
		for i, row := range e.Rows {
			if len(row) != len(e.Headers) {
				return fmt.Errorf("table row %d has %d cells, headers have %d", i, len(row), len(e.Headers))
			}
		}
	case ElementParagraph, ElementList, ElementSignature, ElementDivider, ElementSpacer:
	default:
		return fmt.Errorf("unknown element type %q", e.Type)
	}
	return nil
}
