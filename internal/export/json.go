package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONExporter writes the document as an indented JSON object.
type JSONExporter struct{}

// Export writes doc to w.
func (e *JSONExporter) Export(doc *Document, w io.Writer) error {
	payload := struct {
		Title     string              `json:"title"`
		FetchedAt string              `json:"fetched_at,omitempty"`
		Records   []map[string]string `json:"records"`
	}{
		Title:     doc.Title,
		FetchedAt: doc.FetchedAt,
		Records:   doc.records(),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// Extension returns the file extension for JSON exports.
func (e *JSONExporter) Extension() string {
	return "json"
}
