package outputters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dotcommander/ccplug/internal/config"
	"github.com/dotcommander/ccplug/internal/types"
	"github.com/dotcommander/ccplug/internal/validate"
)

func TestOutputterFormatDispatch(t *testing.T) {
	report := &validate.Report{}
	report.Add(types.SeverityError, "Missing ## Prompt section", "commands/a.md")

	tests := []struct {
		format string
		want   string
	}{
		{"console", "ERRORS:"},
		{"json", `"passed": false`},
		{"markdown", "# Validation Report"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			o := NewOutputter(&config.Config{Format: tt.format}, &buf)

			if err := o.Format(report); err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("%s output missing %q:\n%s", tt.format, tt.want, buf.String())
			}
		})
	}
}

func TestOutputterUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	o := NewOutputter(&config.Config{Format: "xml"}, &buf)

	if err := o.Format(&validate.Report{}); err == nil {
		t.Error("Format() accepted unsupported format")
	}
}
