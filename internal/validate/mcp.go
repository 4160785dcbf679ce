package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotcommander/ccplug/internal/types"
)

// sdkDependency is the MCP SDK package a TypeScript server must depend on.
const sdkDependency = "@modelcontextprotocol/sdk"

// validateMCPServer dispatches to the per-flavor checks. Both flavors are
// validated when both manifests are present.
func validateMCPServer(root string) []types.Finding {
	var findings []types.Finding

	if pathExists(filepath.Join(root, "package.json")) {
		findings = append(findings, validateTypeScriptServer(root)...)
	}
	if pathExists(filepath.Join(root, "pyproject.toml")) {
		findings = append(findings, validatePythonServer(root)...)
	}

	return findings
}

// validateTypeScriptServer checks the package.json manifest and the expected
// source layout. Manifest field checks are skipped when the JSON is
// malformed, but the filesystem checks still run: a broken manifest says
// nothing about whether src/ exists.
func validateTypeScriptServer(root string) []types.Finding {
	var findings []types.Finding

	raw, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("Error reading package.json: %v", err),
			File:     "package.json",
		})
	} else {
		var pkg map[string]any
		if err := json.Unmarshal(raw, &pkg); err != nil {
			findings = append(findings, types.Finding{
				Severity: types.SeverityError,
				Message:  "Invalid JSON format",
				File:     "package.json",
			})
		} else {
			findings = append(findings, checkPackageManifest(pkg)...)
		}
	}

	srcDir := filepath.Join(root, "src")
	if !pathExists(srcDir) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  "Missing src/ directory",
		})
	} else if !pathExists(filepath.Join(srcDir, "index.ts")) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  "Missing src/index.ts entry point",
		})
	}

	if !pathExists(filepath.Join(root, "tsconfig.json")) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  "Missing tsconfig.json",
		})
	}

	return findings
}

// checkPackageManifest runs the field checks on a parsed package.json. Each
// check is independent: a missing field never blocks the next check.
func checkPackageManifest(pkg map[string]any) []types.Finding {
	var findings []types.Finding

	if _, ok := pkg["name"]; !ok {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  "Missing 'name' in package.json",
			File:     "package.json",
		})
	}

	if _, ok := pkg["version"]; !ok {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  "Missing 'version' in package.json",
			File:     "package.json",
		})
	}

	deps, _ := pkg["dependencies"].(map[string]any)
	if _, ok := deps[sdkDependency]; !ok {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("Missing %s dependency", sdkDependency),
			File:     "package.json",
		})
	}

	if _, ok := pkg["bin"]; !ok {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  "No bin entry in package.json (won't be installable globally)",
			File:     "package.json",
		})
	}

	return findings
}

// validatePythonServer checks the pyproject.toml descriptor and the expected
// app layout. The descriptor is scanned as raw text, tolerant of content a
// TOML parser would reject; the checks are substring probes only.
func validatePythonServer(root string) []types.Finding {
	var findings []types.Finding

	raw, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	if err != nil {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("Error reading pyproject.toml: %v", err),
			File:     "pyproject.toml",
		})
	} else {
		content := string(raw)

		if !strings.Contains(content, "[project]") {
			findings = append(findings, types.Finding{
				Severity: types.SeverityError,
				Message:  "Missing [project] section",
				File:     "pyproject.toml",
			})
		}

		if !strings.Contains(content, "mcp") {
			findings = append(findings, types.Finding{
				Severity: types.SeverityWarning,
				Message:  "MCP dependency not found in pyproject.toml",
				File:     "pyproject.toml",
			})
		}
	}

	appDir := filepath.Join(root, "app")
	if !pathExists(appDir) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  "Missing app/ directory",
		})
	} else if !pathExists(filepath.Join(appDir, "main.py")) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  "Missing app/main.py entry point",
		})
	}

	return findings
}
