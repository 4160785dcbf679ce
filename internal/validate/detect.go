package validate

import (
	"os"
	"path/filepath"
)

// ComponentPresence records which plugin components a directory contains.
// Detection is purely presence-based: a component can be detected and still
// fail every one of its checks.
type ComponentPresence struct {
	MCP      bool
	Skill    bool
	Commands bool
}

// Any reports whether at least one component was detected.
func (p ComponentPresence) Any() bool {
	return p.MCP || p.Skill || p.Commands
}

// DetectComponents probes a plugin root for component markers.
func DetectComponents(root string) ComponentPresence {
	return ComponentPresence{
		MCP:      hasMCPServer(root),
		Skill:    hasSkill(root),
		Commands: hasCommands(root),
	}
}

// hasMCPServer checks the marker paths for either MCP server flavor: the
// TypeScript manifest, the Python project file, a canonical entry point for
// either, or a pre-merged mcp-server directory.
func hasMCPServer(root string) bool {
	markers := []string{
		"package.json",
		"pyproject.toml",
		filepath.Join("src", "index.ts"),
		filepath.Join("app", "main.py"),
		"mcp-server",
	}
	for _, marker := range markers {
		if pathExists(filepath.Join(root, marker)) {
			return true
		}
	}
	return false
}

func hasSkill(root string) bool {
	return pathExists(filepath.Join(root, "SKILL.md")) ||
		pathExists(filepath.Join(root, "skill", "SKILL.md"))
}

// hasCommands checks for a commands/ directory, falling back to a heuristic:
// more than one root-level markdown file suggests command files beyond a lone
// README. Two documentation files with no commands will trip this; the
// commands validator then only reports per-file issues, so the misdetection
// is harmless.
func hasCommands(root string) bool {
	if pathExists(filepath.Join(root, "commands")) {
		return true
	}

	matches, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		return false
	}
	return len(matches) > 1
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
