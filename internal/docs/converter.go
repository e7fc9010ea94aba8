package docs

import (
	"strings"

	docs "google.golang.org/api/docs/v1"
)

// ExtractText flattens a document's structured body to plain text.
//
// Block elements are visited in document order; only paragraphs contribute
// text, and within a paragraph only text runs do. Run contents are appended
// verbatim with no injected separators, so adjacent runs reconstruct the
// visible text exactly. Tables, section breaks, and inline objects carry no
// representation and are silently skipped; formatting is discarded.
//
// A document without a body yields the empty string, not an error.
func ExtractText(doc *docs.Document) string {
	if doc == nil || doc.Body == nil || doc.Body.Content == nil {
		return ""
	}

	var text strings.Builder
	for _, element := range doc.Body.Content {
		if element.Paragraph != nil {
			extractParagraphText(&text, element.Paragraph)
		}
	}

	return text.String()
}

// extractParagraphText appends the text runs of a paragraph in order.
func extractParagraphText(text *strings.Builder, para *docs.Paragraph) {
	if para == nil || para.Elements == nil {
		return
	}

	for _, elem := range para.Elements {
		if elem.TextRun != nil && elem.TextRun.Content != "" {
			text.WriteString(elem.TextRun.Content)
		}
	}
}
