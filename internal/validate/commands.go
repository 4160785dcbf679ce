package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotcommander/ccplug/internal/types"
)

const minCommandLength = 50

// validateCommands checks every command file independently: a failure in one
// file never aborts the checks on the remaining files.
func validateCommands(root string) []types.Finding {
	files, err := commandFiles(root)
	if err != nil {
		return []types.Finding{{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("Error listing command files: %v", err),
		}}
	}

	if len(files) == 0 {
		return []types.Finding{{
			Severity: types.SeverityInfo,
			Message:  "No command files found",
		}}
	}

	var findings []types.Finding
	for _, file := range files {
		findings = append(findings, checkCommandFile(root, file)...)
	}
	return findings
}

// commandFiles returns the root-relative markdown files to treat as
// commands: everything under commands/ when that directory exists, otherwise
// the root-level markdown files minus the README.
func commandFiles(root string) ([]string, error) {
	if pathExists(filepath.Join(root, "commands")) {
		matches, err := filepath.Glob(filepath.Join(root, "commands", "*.md"))
		if err != nil {
			return nil, err
		}
		files := make([]string, 0, len(matches))
		for _, match := range matches {
			files = append(files, filepath.Join("commands", filepath.Base(match)))
		}
		return files, nil
	}

	matches, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		return nil, err
	}
	var files []string
	for _, match := range matches {
		name := filepath.Base(match)
		if strings.EqualFold(name, "README.md") {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

func checkCommandFile(root, file string) []types.Finding {
	raw, err := os.ReadFile(filepath.Join(root, file))
	if err != nil {
		return []types.Finding{{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("Error reading command file: %v", err),
			File:     file,
		}}
	}
	content := string(raw)

	var findings []types.Finding

	if !strings.Contains(content, "## Prompt") {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  "Missing ## Prompt section",
			File:     file,
		})
	}

	if len(strings.TrimSpace(content)) < minCommandLength {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  "Command file is very short",
			File:     file,
		})
	}

	return findings
}
