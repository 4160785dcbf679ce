package validate

import (
	"testing"

	"github.com/dotcommander/ccplug/internal/types"
)

const healthyCommand = "# deploy\n\nDeploys the current branch.\n\n## Prompt\nDeploy the current branch to staging and report the resulting URL.\n"

func TestValidateCommandsEmptySet(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, "commands/.keep", "")

	findings := validateCommands(root)

	if len(findings) != 1 {
		t.Fatalf("findings = %d, want 1: %+v", len(findings), findings)
	}
	if findings[0].Severity != types.SeverityInfo || findings[0].Message != "No command files found" {
		t.Errorf("unexpected finding: %+v", findings[0])
	}
}

func TestValidateCommandsDirectory(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, "commands/deploy.md", healthyCommand)
	writePluginFile(t, root, "commands/broken.md", "no prompt here")

	findings := validateCommands(root)

	if !hasFindingContaining(findings, types.SeverityError, "Missing ## Prompt section") {
		t.Errorf("missing prompt error: %+v", findings)
	}
	if !hasFindingContaining(findings, types.SeverityWarning, "very short") {
		t.Errorf("missing brevity warning: %+v", findings)
	}
	// The healthy file contributes nothing.
	for _, f := range findings {
		if f.File == "commands/deploy.md" {
			t.Errorf("healthy command produced finding: %+v", f)
		}
	}
}

func TestValidateCommandsRootMarkdownExcludesReadme(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, "README.md", "# plugin docs without a prompt section")
	writePluginFile(t, root, "readme.md", "# lowercase variant also excluded")
	writePluginFile(t, root, "deploy.md", healthyCommand)

	findings := validateCommands(root)

	for _, f := range findings {
		if f.File == "README.md" || f.File == "readme.md" {
			t.Errorf("README treated as command: %+v", f)
		}
	}
	if len(findings) != 0 {
		t.Errorf("findings = %+v, want none", findings)
	}
}

func TestValidateCommandsFailuresAreIndependent(t *testing.T) {
	root := t.TempDir()
	writePluginFile(t, root, "commands/a.md", "no prompt")
	writePluginFile(t, root, "commands/b.md", "also no prompt")

	findings := validateCommands(root)

	// Both files are reported: one broken file never stops the next.
	files := map[string]bool{}
	for _, f := range findings {
		files[f.File] = true
	}
	if !files["commands/a.md"] || !files["commands/b.md"] {
		t.Errorf("expected findings for both files: %+v", findings)
	}
}
