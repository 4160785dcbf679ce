package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args, capturing output and any
// exit code requested through the exit stub.
func runCommand(t *testing.T, args ...string) (string, int, error) {
	t.Helper()

	exitCode := 0
	origExit := exit
	exit = func(code int) { exitCode = code }
	t.Cleanup(func() { exit = origExit })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), exitCode, err
}

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestValidateCommandPassingPlugin(t *testing.T) {
	root := filepath.Join(t.TempDir(), "plugin")
	writeFixture(t, root, "commands/deploy.md",
		"# deploy\n\n## Prompt\nDeploy the current branch to staging and report the URL.\n")

	out, exitCode, err := runCommand(t, "validate", root)

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode, "output:\n%s", out)
	assert.Contains(t, out, "WARNINGS:") // missing README is reported but does not fail
}

func TestValidateCommandFailingPluginExitsNonZero(t *testing.T) {
	root := filepath.Join(t.TempDir(), "plugin")
	writeFixture(t, root, "commands/bad.md", "no prompt")

	out, exitCode, err := runCommand(t, "validate", root)

	require.NoError(t, err)
	assert.Equal(t, 1, exitCode, "output:\n%s", out)
	assert.Contains(t, out, "ERRORS:")
}

func TestValidateCommandBadPathExitsNonZero(t *testing.T) {
	_, exitCode, err := runCommand(t, "validate", filepath.Join(t.TempDir(), "missing"))

	require.NoError(t, err)
	assert.Equal(t, 1, exitCode)
}

func TestNewThenValidateRoundTrip(t *testing.T) {
	outputDir := t.TempDir()

	out, exitCode, err := runCommand(t, "new", "fresh-skill", "--type", "skill", "--output", outputDir)
	require.NoError(t, err)
	require.Equal(t, 0, exitCode, "output:\n%s", out)

	_, exitCode, err = runCommand(t, "validate", filepath.Join(outputDir, "fresh-skill"))
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
}

func TestNewCommandUnknownType(t *testing.T) {
	_, _, err := runCommand(t, "new", "x", "--type", "bogus", "--output", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown plugin type")
}

func TestPackageCommandGatesOnValidation(t *testing.T) {
	root := filepath.Join(t.TempDir(), "broken")
	writeFixture(t, root, "commands/bad.md", "no prompt")
	outputDir := t.TempDir()

	out, exitCode, err := runCommand(t, "package", root, "--output", outputDir)

	require.NoError(t, err)
	assert.Equal(t, 1, exitCode, "output:\n%s", out)
	_, statErr := os.Stat(filepath.Join(outputDir, "broken.zip"))
	assert.True(t, os.IsNotExist(statErr), "archive created despite failing validation")
}

func TestPackageCommandSkipValidation(t *testing.T) {
	root := filepath.Join(t.TempDir(), "broken")
	writeFixture(t, root, "commands/bad.md", "no prompt")
	outputDir := t.TempDir()

	out, exitCode, err := runCommand(t, "package", root, "--output", outputDir, "--skip-validation")

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode, "output:\n%s", out)
	assert.FileExists(t, filepath.Join(outputDir, "broken.zip"))
}
