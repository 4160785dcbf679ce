// Package scaffold creates plugin directories from embedded templates.
//
// Scaffolding is a plain directory copy parameterized by a type-to-template
// mapping; templates carry placeholder names the user edits afterwards.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dotcommander/ccplug/internal/types"
)

//go:embed all:templates
var templatesFS embed.FS

// Descriptions maps plugin types to their human-readable names, in the order
// the CLI lists them.
var Descriptions = map[string]string{
	types.TypeMCPTypeScript: "MCP Server (TypeScript)",
	types.TypeMCPPython:     "MCP Server (Python)",
	types.TypeSkill:         "Skill",
	types.TypeCommand:       "Slash Command",
	types.TypeFull:          "Full Plugin (MCP + Skill + Commands)",
}

// templateDirs maps plugin types to their template directory under
// templates/. The full type is assembled from several templates instead.
var templateDirs = map[string]string{
	types.TypeMCPTypeScript: "mcp-server-typescript",
	types.TypeMCPPython:     "mcp-server-python",
	types.TypeSkill:         "skill",
	types.TypeCommand:       "slash-command",
}

// Create scaffolds a new plugin named name of the given type under
// outputDir (the working directory when empty) and returns the created path.
// It refuses to overwrite an existing directory.
func Create(name, pluginType, outputDir string) (string, error) {
	if outputDir == "" {
		var err error
		outputDir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}
	target := filepath.Join(outputDir, name)

	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("directory already exists: %s", target)
	}

	if pluginType == types.TypeFull {
		if err := createFullPlugin(target); err != nil {
			return "", err
		}
		return target, nil
	}

	templateDir, ok := templateDirs[pluginType]
	if !ok {
		return "", fmt.Errorf("unknown plugin type: %s", pluginType)
	}

	if err := copyTemplate(templateDir, target); err != nil {
		return "", err
	}
	return target, nil
}

// createFullPlugin assembles a complete plugin: both MCP server flavors (the
// user keeps one), the skill, the commands, and the top-level README.
func createFullPlugin(target string) error {
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("error creating plugin directory: %w", err)
	}

	components := map[string]string{
		"mcp-server-typescript": "mcp-server-typescript",
		"mcp-server-python":     "mcp-server-python",
		"skill":                 "skill",
		"slash-command":         "commands",
	}
	for templateDir, destName := range components {
		if err := copyTemplate(templateDir, filepath.Join(target, destName)); err != nil {
			return err
		}
	}

	readme, err := templatesFS.ReadFile("templates/full-plugin/README.md")
	if err != nil {
		return fmt.Errorf("error reading full-plugin template: %w", err)
	}
	return os.WriteFile(filepath.Join(target, "README.md"), readme, 0644)
}

// copyTemplate copies an embedded template tree to target on disk.
func copyTemplate(templateDir, target string) error {
	root := "templates/" + templateDir

	return fs.WalkDir(templatesFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, filepath.FromSlash(path))
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)

		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}

		data, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading template file %s: %w", path, err)
		}
		return os.WriteFile(dest, data, 0644)
	})
}
