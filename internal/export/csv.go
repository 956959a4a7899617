package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVExporter writes the document as CSV with a header row.
type CSVExporter struct{}

// Export writes doc to w.
func (e *CSVExporter) Export(doc *Document, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(doc.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range doc.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Extension returns the file extension for CSV exports.
func (e *CSVExporter) Extension() string {
	return "csv"
}
