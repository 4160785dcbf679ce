// Package validate implements the plugin validation engine: component
// detection, the per-component check sets, and the report they feed.
//
// The check sets are fixed and hardcoded per component kind. Validators
// accumulate findings instead of returning errors; a read failure on an
// individual file becomes a finding scoped to that file and the run
// continues. Only three conditions abort a run early: a bad path, a path
// that is not a directory, and a directory with no components at all.
package validate

import (
	"fmt"
	"os"

	"github.com/dotcommander/ccplug/internal/types"
)

// Validator runs the full check sequence against one plugin directory.
type Validator struct {
	root string
}

// New creates a Validator for the plugin at root. The path may be absolute
// or relative; it is probed, not resolved.
func New(root string) *Validator {
	return &Validator{root: root}
}

// Validate runs detection and every applicable component validator, then the
// documentation checks, and returns the frozen report. Component validators
// run in a fixed order (MCP, skill, commands) and never short-circuit each
// other; documentation always runs last.
func (v *Validator) Validate() *Report {
	report := &Report{}

	info, err := os.Stat(v.root)
	if err != nil {
		report.Add(types.SeverityError, fmt.Sprintf("Plugin path does not exist: %s", v.root), "")
		return report
	}
	if !info.IsDir() {
		report.Add(types.SeverityError, fmt.Sprintf("Plugin path is not a directory: %s", v.root), "")
		return report
	}

	presence := DetectComponents(v.root)
	if !presence.Any() {
		report.Add(types.SeverityError, "No plugin components found (MCP server, skill, or commands)", "")
		return report
	}

	if presence.MCP {
		report.Append(validateMCPServer(v.root)...)
	}
	if presence.Skill {
		report.Append(validateSkill(v.root)...)
	}
	if presence.Commands {
		report.Append(validateCommands(v.root)...)
	}

	report.Append(validateDocumentation(v.root)...)

	return report
}
