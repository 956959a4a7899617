package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the document as YAML.
type YAMLExporter struct{}

// Export writes doc to w.
func (e *YAMLExporter) Export(doc *Document, w io.Writer) error {
	payload := struct {
		Title     string              `yaml:"title"`
		FetchedAt string              `yaml:"fetched_at,omitempty"`
		Records   []map[string]string `yaml:"records"`
	}{
		Title:     doc.Title,
		FetchedAt: doc.FetchedAt,
		Records:   doc.records(),
	}
	data, err := yaml.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Extension returns the file extension for YAML exports.
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
