// Package output renders validation reports for humans and machines.
// Renderers group findings by severity but preserve insertion order within
// each group; the report itself stays the source of truth for pass/fail.
package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/ccplug/internal/types"
	"github.com/dotcommander/ccplug/internal/validate"
)

// ConsoleFormatter formats a validation report for terminal display.
type ConsoleFormatter struct {
	quiet    bool
	colorize bool
	out      io.Writer
}

// NewConsoleFormatter creates a ConsoleFormatter writing to out.
func NewConsoleFormatter(out io.Writer, quiet bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		colorize: true,
		out:      out,
	}
}

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))  // yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))  // gray
	passStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
)

// Format renders the report: severity-grouped findings, a counts line, and a
// conclusion. Quiet mode prints nothing; the exit code carries the verdict.
func (f *ConsoleFormatter) Format(report *validate.Report) error {
	if f.quiet {
		return nil
	}

	if len(report.Findings()) == 0 {
		fmt.Fprintln(f.out, f.render(passStyle, "✓ Validation passed! No issues found."))
		return nil
	}

	f.printGroup("ERRORS", report.Errors(), errorStyle, "✘")
	f.printGroup("WARNINGS", report.Warnings(), warningStyle, "⚠")
	f.printGroup("INFO", report.Infos(), infoStyle, "·")

	errors, warnings, infos := report.Counts()
	fmt.Fprintf(f.out, "\nErrors: %d | Warnings: %d | Info: %d\n", errors, warnings, infos)

	if report.Passed() {
		fmt.Fprintln(f.out, f.render(warningStyle, "⚠ Validation passed with warnings"))
	} else {
		fmt.Fprintln(f.out, f.render(errorStyle, "✗ Validation failed - fix errors before packaging"))
	}

	return nil
}

func (f *ConsoleFormatter) printGroup(title string, findings []types.Finding, style lipgloss.Style, mark string) {
	if len(findings) == 0 {
		return
	}

	fmt.Fprintf(f.out, "%s:\n", title)
	for _, finding := range findings {
		if finding.File != "" {
			fmt.Fprintf(f.out, "  %s [%s]: %s\n", f.render(style, mark), finding.File, finding.Message)
		} else {
			fmt.Fprintf(f.out, "  %s %s\n", f.render(style, mark), finding.Message)
		}
	}
	fmt.Fprintln(f.out)
}

func (f *ConsoleFormatter) render(style lipgloss.Style, s string) string {
	if !f.colorize {
		return s
	}
	return style.Render(s)
}
