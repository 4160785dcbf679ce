package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/ccplug/internal/types"
	"github.com/dotcommander/ccplug/internal/validate"
)

// JSONFormatter formats a validation report as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
	out        io.Writer
}

// NewJSONFormatter creates a JSONFormatter. When outputFile is empty the
// report is written to out.
func NewJSONFormatter(out io.Writer, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
		out:        out,
	}
}

// JSONReport is the machine-readable report document.
type JSONReport struct {
	Header   JSONHeader      `json:"header"`
	Passed   bool            `json:"passed"`
	Summary  JSONSummary     `json:"summary"`
	Findings []types.Finding `json:"findings"`
}

// JSONHeader contains report metadata.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JSONSummary contains per-severity counts.
type JSONSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Format marshals the report, preserving finding order.
func (f *JSONFormatter) Format(report *validate.Report) error {
	errors, warnings, infos := report.Counts()
	doc := JSONReport{
		Header: JSONHeader{
			Tool:      "ccplug",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Passed: report.Passed(),
		Summary: JSONSummary{
			Errors:   errors,
			Warnings: warnings,
			Info:     infos,
		},
		Findings: report.Findings(),
	}

	var jsonBytes []byte
	var err error
	if f.indent {
		jsonBytes, err = json.MarshalIndent(doc, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	_, err = fmt.Fprintln(f.out, string(jsonBytes))
	return err
}
