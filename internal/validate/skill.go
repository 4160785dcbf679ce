package validate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/dotcommander/ccplug/internal/frontend"
	"github.com/dotcommander/ccplug/internal/types"
)

const (
	minDescriptionLength = 20
	minSkillBodyLength   = 100
)

var (
	skillNamePattern    = regexp.MustCompile(`^[a-z0-9-]+$`)
	secondPersonPattern = regexp.MustCompile(`(?i)\byou\b|\byour\b`)
)

// recommendedSkillSections are advisory only: their absence is reported as
// info, never as an error or warning.
var recommendedSkillSections = []struct {
	heading string
	label   string
}{
	{"## Purpose", "Purpose section"},
	{"## When to Use", "When to Use section"},
}

// validateSkill locates and checks the skill document. A root-level SKILL.md
// takes precedence over skill/SKILL.md. Structural failures (missing file,
// missing or unterminated frontmatter) abort the remaining skill checks;
// field checks are independent of each other.
func validateSkill(root string) []types.Finding {
	skillPath := findSkillFile(root)
	if skillPath == "" {
		return []types.Finding{{
			Severity: types.SeverityError,
			Message:  "SKILL.md not found",
		}}
	}

	raw, err := os.ReadFile(filepath.Join(root, skillPath))
	if err != nil {
		return []types.Finding{{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("Error reading SKILL.md: %v", err),
			File:     skillPath,
		}}
	}

	fm, err := frontend.Parse(string(raw))
	if err != nil {
		message := "Invalid YAML frontmatter format"
		if errors.Is(err, frontend.ErrMissingFrontmatter) {
			message = "Missing YAML frontmatter"
		}
		return []types.Finding{{
			Severity: types.SeverityError,
			Message:  message,
			File:     skillPath,
		}}
	}

	var findings []types.Finding
	findings = append(findings, checkSkillFields(fm, skillPath)...)
	findings = append(findings, checkSkillBody(fm.Body, skillPath)...)
	return findings
}

// findSkillFile returns the root-relative path of the skill document, or ""
// if none exists.
func findSkillFile(root string) string {
	candidates := []string{
		"SKILL.md",
		filepath.Join("skill", "SKILL.md"),
	}
	for _, candidate := range candidates {
		if pathExists(filepath.Join(root, candidate)) {
			return candidate
		}
	}
	return ""
}

func checkSkillFields(fm *frontend.Frontmatter, skillPath string) []types.Finding {
	var findings []types.Finding

	if !fm.HasField("name") {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  "Missing 'name' in frontmatter",
			File:     skillPath,
		})
	}

	if !fm.HasField("description") {
		findings = append(findings, types.Finding{
			Severity: types.SeverityError,
			Message:  "Missing 'description' in frontmatter",
			File:     skillPath,
		})
	}

	if name := fm.Name(); name != "" && !skillNamePattern.MatchString(name) {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("Name should be lowercase-with-dashes: %s", name),
			File:     skillPath,
		})
	}

	if desc := fm.Description(); desc != "" {
		if len(desc) < minDescriptionLength {
			findings = append(findings, types.Finding{
				Severity: types.SeverityWarning,
				Message:  "Description is too short (should be 1-3 sentences)",
				File:     skillPath,
			})
		}
		if secondPersonPattern.MatchString(desc) {
			findings = append(findings, types.Finding{
				Severity: types.SeverityWarning,
				Message:  "Description uses second person (prefer third person)",
				File:     skillPath,
			})
		}
	}

	return findings
}

func checkSkillBody(body, skillPath string) []types.Finding {
	var findings []types.Finding

	if len(strings.TrimSpace(body)) < minSkillBodyLength {
		findings = append(findings, types.Finding{
			Severity: types.SeverityWarning,
			Message:  "Skill body is very short (add more content)",
			File:     skillPath,
		})
	}

	for _, section := range recommendedSkillSections {
		if !strings.Contains(body, section.heading) {
			findings = append(findings, types.Finding{
				Severity: types.SeverityInfo,
				Message:  fmt.Sprintf("Missing recommended %s", section.label),
				File:     skillPath,
			})
		}
	}

	return findings
}
