package validate

import "github.com/dotcommander/ccplug/internal/types"

// Report collects findings from a validation run. Findings keep their
// insertion order; severity-filtered views preserve that order within the
// partition. Warnings and info findings never affect the pass verdict.
type Report struct {
	findings []types.Finding
}

// Add appends a finding to the report.
func (r *Report) Add(severity types.Severity, message, file string) {
	r.findings = append(r.findings, types.Finding{
		Severity: severity,
		Message:  message,
		File:     file,
	})
}

// Append appends pre-built findings in order.
func (r *Report) Append(findings ...types.Finding) {
	r.findings = append(r.findings, findings...)
}

// Findings returns all findings in insertion order.
func (r *Report) Findings() []types.Finding {
	return r.findings
}

// Passed reports whether the run produced no error-severity findings.
func (r *Report) Passed() bool {
	for _, f := range r.findings {
		if f.Severity == types.SeverityError {
			return false
		}
	}
	return true
}

// BySeverity returns the findings with the given severity, in insertion order.
func (r *Report) BySeverity(severity types.Severity) []types.Finding {
	var filtered []types.Finding
	for _, f := range r.findings {
		if f.Severity == severity {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

// Errors returns the error-severity findings.
func (r *Report) Errors() []types.Finding {
	return r.BySeverity(types.SeverityError)
}

// Warnings returns the warning-severity findings.
func (r *Report) Warnings() []types.Finding {
	return r.BySeverity(types.SeverityWarning)
}

// Infos returns the info-severity findings.
func (r *Report) Infos() []types.Finding {
	return r.BySeverity(types.SeverityInfo)
}

// Counts returns the number of findings per severity.
func (r *Report) Counts() (errors, warnings, infos int) {
	for _, f := range r.findings {
		switch f.Severity {
		case types.SeverityError:
			errors++
		case types.SeverityWarning:
			warnings++
		case types.SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}
