package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/ccplug/internal/types"
	"github.com/dotcommander/ccplug/internal/validate"
)

// MarkdownFormatter formats a validation report as a markdown document.
type MarkdownFormatter struct {
	outputFile string
	out        io.Writer
}

// NewMarkdownFormatter creates a MarkdownFormatter. When outputFile is empty
// the report is written to out.
func NewMarkdownFormatter(out io.Writer, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		outputFile: outputFile,
		out:        out,
	}
}

// Format renders the report as markdown with one section per severity.
func (f *MarkdownFormatter) Format(report *validate.Report) error {
	var sb strings.Builder

	sb.WriteString("# Validation Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))

	if report.Passed() {
		sb.WriteString("**Result: PASSED**\n\n")
	} else {
		sb.WriteString("**Result: FAILED**\n\n")
	}

	errors, warnings, infos := report.Counts()
	sb.WriteString(fmt.Sprintf("Errors: %d | Warnings: %d | Info: %d\n\n", errors, warnings, infos))

	writeSection(&sb, "Errors", report.Errors())
	writeSection(&sb, "Warnings", report.Warnings())
	writeSection(&sb, "Info", report.Infos())

	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(sb.String()), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}

	_, err := io.WriteString(f.out, sb.String())
	return err
}

func writeSection(sb *strings.Builder, title string, findings []types.Finding) {
	if len(findings) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("## %s\n\n", title))
	for _, finding := range findings {
		if finding.File != "" {
			sb.WriteString(fmt.Sprintf("- `%s`: %s\n", finding.File, finding.Message))
		} else {
			sb.WriteString(fmt.Sprintf("- %s\n", finding.Message))
		}
	}
	sb.WriteString("\n")
}
