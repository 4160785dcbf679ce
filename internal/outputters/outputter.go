// Package outputters dispatches report rendering to the formatter selected
// by configuration.
package outputters

import (
	"fmt"
	"io"

	"github.com/dotcommander/ccplug/internal/config"
	"github.com/dotcommander/ccplug/internal/output"
	"github.com/dotcommander/ccplug/internal/validate"
)

// Outputter handles output formatting.
type Outputter struct {
	config *config.Config
	out    io.Writer
}

// NewOutputter creates an Outputter writing to out.
func NewOutputter(cfg *config.Config, out io.Writer) *Outputter {
	return &Outputter{
		config: cfg,
		out:    out,
	}
}

// Format renders the report using the configured format.
func (o *Outputter) Format(report *validate.Report) error {
	switch o.config.Format {
	case "console":
		return output.NewConsoleFormatter(o.out, o.config.Quiet).Format(report)
	case "json":
		return output.NewJSONFormatter(o.out, true, o.config.Output).Format(report)
	case "markdown":
		return output.NewMarkdownFormatter(o.out, o.config.Output).Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
