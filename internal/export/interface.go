package export

import (
	"fmt"
	"io"
)

// Document is a titled, columnar record set ready for serialization, built
// by the CLI from a fetched listing.
type Document struct {
	Title     string
	FetchedAt string
	Columns   []string
	Rows      [][]string
}

// records returns the rows as column-keyed maps, used by the structured
// formats.
func (d *Document) records() []map[string]string {
	out := make([]map[string]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		rec := make(map[string]string, len(d.Columns))
		for i, col := range d.Columns {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(doc *Document, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "json":
		return &JSONExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml, csv, md)", format)
	}
}
