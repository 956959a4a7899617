package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleDocument() *Document {
	return &Document{
		Title:     "Products",
		FetchedAt: "2026-08-29T10:00:00Z",
		Columns:   []string{"sku", "name", "quantity"},
		Rows: [][]string{
			{"TEA-001", "Green Tea", "12"},
			{"TEA-002", "Black | Loose", "2"},
		},
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
		wantErr bool
	}{
		{format: "json", wantExt: "json"},
		{format: "yaml", wantExt: "yaml"},
		{format: "csv", wantExt: "csv"},
		{format: "md", wantExt: "md"},
		{format: "markdown", wantExt: "md"},
		{format: "xml", wantErr: true},
		{format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("format_"+tt.format, func(t *testing.T) {
			exp, err := NewExporter(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewExporter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if exp.Extension() != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", exp.Extension(), tt.wantExt)
			}
		})
	}
}

func TestJSONExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(sampleDocument(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var out struct {
		Title   string              `json:"title"`
		Records []map[string]string `json:"records"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Title != "Products" {
		t.Errorf("title = %q", out.Title)
	}
	if len(out.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(out.Records))
	}
	if out.Records[0]["sku"] != "TEA-001" || out.Records[1]["quantity"] != "2" {
		t.Errorf("records = %+v", out.Records)
	}
}

func TestYAMLExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLExporter{}).Export(sampleDocument(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var out struct {
		Title   string              `yaml:"title"`
		Records []map[string]string `yaml:"records"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if out.Title != "Products" || len(out.Records) != 2 {
		t.Errorf("out = %+v", out)
	}
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVExporter{}).Export(sampleDocument(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header + 2 rows", len(lines))
	}
	if lines[0] != "sku,name,quantity" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "TEA-001") {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestMarkdownExporter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(sampleDocument(), &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "# Products") {
		t.Errorf("output should open with the title heading, got %q", out[:min(len(out), 40)])
	}
	if !strings.Contains(out, "| sku | name | quantity |") {
		t.Error("missing column header row")
	}
	if !strings.Contains(out, "| --- | --- | --- |") {
		t.Error("missing separator row")
	}
	// Pipes inside cells are escaped so the table stays intact
	if !strings.Contains(out, `Black \| Loose`) {
		t.Error("cell pipe should be escaped")
	}
}

func TestMarkdownExporter_NoFetchedAt(t *testing.T) {
	doc := sampleDocument()
	doc.FetchedAt = ""

	var buf bytes.Buffer
	if err := (&MarkdownExporter{}).Export(doc, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if strings.Contains(buf.String(), "Fetched:") {
		t.Error("empty FetchedAt should omit the Fetched line")
	}
}
