package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotcommander/ccplug/internal/types"
)

const minReadmeLength = 100

// recommendedReadmeSections are matched as plain substrings; "# " catches any
// top-level title line.
var recommendedReadmeSections = []string{
	"# ",
	"## Installation",
	"## Usage",
}

// validateDocumentation checks the root README. A missing README is only a
// warning: absent documentation never fails validation by itself.
func validateDocumentation(root string) []types.Finding {
	readmePath := filepath.Join(root, "README.md")
	if !pathExists(readmePath) {
		return []types.Finding{{
			Severity: types.SeverityWarning,
			Message:  "Missing README.md",
		}}
	}

	raw, err := os.ReadFile(readmePath)
	if err != nil {
		return []types.Finding{{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("Error reading README.md: %v", err),
			File:     "README.md",
		}}
	}
	content := string(raw)

	var findings []types.Finding

	if len(strings.TrimSpace(content)) < minReadmeLength {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  "README.md is very short",
			File:     "README.md",
		})
	}

	for _, section := range recommendedReadmeSections {
		if !strings.Contains(content, section) {
			findings = append(findings, types.Finding{
				Severity: types.SeverityInfo,
				Message:  fmt.Sprintf("README missing recommended section: %s", section),
				File:     "README.md",
			})
		}
	}

	return findings
}
