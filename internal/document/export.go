package document

import (
	"fmt"
	"html"
	"strings"
)

// WordMIMEType is the content type the exported artifact is served under so
// word processors open it directly.
const WordMIMEType = "application/msword"

// exportCSS is the fixed inline stylesheet of the Word-compatible export.
const exportCSS = `body { font-family: 'Times New Roman', serif; font-size: 12pt; margin: 2.5cm; color: #000; }
h1 { font-size: 18pt; } h2 { font-size: 14pt; margin-top: 18pt; } h3 { font-size: 13pt; } h4 { font-size: 12pt; }
p { line-height: 1.5; text-align: justify; }
table { border-collapse: collapse; width: 100%; margin: 12pt 0; }
th, td { border: 1px solid #000; padding: 6pt; font-size: 11pt; text-align: left; }
th { background-color: #e8e8e8; }
ul { margin: 6pt 0 6pt 18pt; }
hr { border: none; border-top: 1px solid #000; margin: 18pt 0; }
.signature-block { display: table; width: 100%; margin-top: 36pt; }
.signature { display: table-cell; text-align: center; padding: 0 12pt; }
.signature .line { margin-top: 54pt; border-top: 1px solid #000; padding-top: 4pt; }`

// ExportHTML renders a generated document as a standalone HTML page that Word
// accepts when served as application/msword. It walks the element tree in
// order and emits one block per element.
func ExportHTML(doc *Generated) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(doc.Title))
	fmt.Fprintf(&b, "<style>\n%s\n</style>\n</head>\n<body>\n", exportCSS)

	for _, el := range doc.Elements {
		writeElement(&b, el)
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeElement(b *strings.Builder, el Element) {
	switch el.Type {
	case ElementHeading:
		tag := fmt.Sprintf("h%d", el.Level)
		style := inlineStyle(el)
		if style != "" {
			fmt.Fprintf(b, "<%s style=\"%s\">%s</%s>\n", tag, style, html.EscapeString(el.Content), tag)
		} else {
			fmt.Fprintf(b, "<%s>%s</%s>\n", tag, html.EscapeString(el.Content), tag)
		}
	case ElementParagraph:
		style := inlineStyle(el)
		if style != "" {
			fmt.Fprintf(b, "<p style=\"%s\">%s</p>\n", style, html.EscapeString(el.Content))
		} else {
			fmt.Fprintf(b, "<p>%s</p>\n", html.EscapeString(el.Content))
		}
	case ElementTable:
		b.WriteString("<table>\n<tr>")
		for _, h := range el.Headers {
			fmt.Fprintf(b, "<th>%s</th>", html.EscapeString(h))
		}
		b.WriteString("</tr>\n")
		for _, row := range el.Rows {
			b.WriteString("<tr>")
			for _, cell := range row {
				fmt.Fprintf(b, "<td>%s</td>", html.EscapeString(cell))
			}
			b.WriteString("</tr>\n")
		}
		b.WriteString("</table>\n")
	case ElementList:
		b.WriteString("<ul>\n")
		for _, item := range el.Items {
			fmt.Fprintf(b, "<li>%s</li>\n", html.EscapeString(item))
		}
		b.WriteString("</ul>\n")
	case ElementSignature:
		b.WriteString("<div class=\"signature-block\">\n")
		for _, sig := range el.Signatures {
			b.WriteString("<div class=\"signature\">")
			fmt.Fprintf(b, "<div>%s</div>", html.EscapeString(sig.Title))
			name := sig.Name
			if name == "" {
				name = "(            )"
			}
			fmt.Fprintf(b, "<div class=\"line\">%s</div>", html.EscapeString(name))
			fmt.Fprintf(b, "<div>%s</div>", html.EscapeString(sig.Role))
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")
	case ElementDivider:
		b.WriteString("<hr>\n")
	case ElementSpacer:
		b.WriteString("<p>&nbsp;</p>\n")
	}
}

func inlineStyle(el Element) string {
	var parts []string
	if el.Align != "" && el.Align != AlignLeft {
		parts = append(parts, fmt.Sprintf("text-align: %s", el.Align))
	}
	if el.Bold {
		parts = append(parts, "font-weight: bold")
	}
	if el.Italic {
		parts = append(parts, "font-style: italic")
	}
	return strings.Join(parts, "; ")
}
