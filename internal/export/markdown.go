package export

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownExporter writes the document as a Markdown table.
type MarkdownExporter struct{}

// Export writes doc to w.
func (e *MarkdownExporter) Export(doc *Document, w io.Writer) error {
	var b strings.Builder
	b.WriteString("# " + doc.Title + "\n\n")
	if doc.FetchedAt != "" {
		b.WriteString("Fetched: " + doc.FetchedAt + "\n\n")
	}

	b.WriteString("| " + strings.Join(doc.Columns, " | ") + " |\n")
	sep := make([]string, len(doc.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	b.WriteString("| " + strings.Join(sep, " | ") + " |\n")

	for _, row := range doc.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "|", "\\|")
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	_, err := fmt.Fprint(w, b.String())
	return err
}

// Extension returns the file extension for Markdown exports.
func (e *MarkdownExporter) Extension() string {
	return "md"
}
