package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf, false, "")

	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var doc JSONReport
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	if doc.Passed {
		t.Error("passed = true for report with an error")
	}
	if doc.Summary.Errors != 1 || doc.Summary.Warnings != 1 || doc.Summary.Info != 1 {
		t.Errorf("summary = %+v, want 1/1/1", doc.Summary)
	}
	if len(doc.Findings) != 3 {
		t.Fatalf("findings = %d, want 3", len(doc.Findings))
	}
	// Insertion order is preserved.
	if doc.Findings[0].Message != "Missing README.md" {
		t.Errorf("findings reordered: %+v", doc.Findings)
	}
	if doc.Header.Tool != "ccplug" {
		t.Errorf("tool = %q", doc.Header.Tool)
	}
}

func TestJSONFormatToFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "report.json")
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf, true, outputFile)

	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("wrote to stdout despite output file:\n%s", buf.String())
	}
	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	var doc JSONReport
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
}
