// Package types provides shared types used across the ccplug codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Severity classifies a validation finding.
type Severity string

// Severity level constants.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is a single validation result. File is the path of the artifact the
// finding is scoped to, relative to the plugin root; empty when the finding
// concerns the plugin as a whole. Findings are created by validators and never
// mutated afterwards.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	File     string   `json:"file,omitempty"`
}

// Plugin type constants, shared by scaffolding and the CLI.
const (
	TypeMCPTypeScript = "mcp-ts"
	TypeMCPPython     = "mcp-py"
	TypeSkill         = "skill"
	TypeCommand       = "command"
	TypeFull          = "full"
)
