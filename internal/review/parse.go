package review

import (
	"strconv"
	"strings"
)

// NoIssuesMarker is what the passes instruct the model to answer when
// the diff is clean.
const NoIssuesMarker = "NO_ISSUES"

// ParseFindings runs the two-stage parse of raw model output. Stage
// one extracts structured finding blocks; stage two collects whatever
// stage one could not consume into a single info finding carrying the
// leftover text, so unparsed output never disappears silently.
//
// Expected block format, blocks separated by "---" lines:
//
//	SEVERITY: high
//	FILE: internal/auth/token.go
//	LINE: 42
//	ISSUE: token compared with == instead of hmac.Equal
//	SUGGESTION: use hmac.Equal for constant-time comparison
func ParseFindings(category Category, raw string) []Finding {

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, NoIssuesMarker) {
		return nil
	}

	var findings []Finding
	var leftover []string

	for _, block := range strings.Split(trimmed, "\n---") {

		f, rest := parseBlock(category, block)
		if f != nil {
			findings = append(findings, *f)
		}
		leftover = append(leftover, rest...)
	}

	if remainder := strings.TrimSpace(strings.Join(leftover, "\n")); remainder != "" {
		if !strings.EqualFold(remainder, NoIssuesMarker) {
			findings = append(findings, Finding{
				Category: category,
				Severity: SeverityInfo,
				Message:  remainder,
			})
		}
	}

	return findings
}

// parseBlock returns the finding parsed out of one block, if any, plus
// the lines it could not attribute to a field.
func parseBlock(category Category, block string) (*Finding, []string) {

	f := Finding{Category: category, Severity: SeverityInfo}
	var rest []string
	sawIssue := false

	for _, line := range strings.Split(block, "\n") {

		key, value, ok := splitField(line)
		if !ok {
			if strings.TrimSpace(strings.Trim(line, "-")) != "" {
				rest = append(rest, line)
			}
			continue
		}

		switch key {
		case "SEVERITY":
			if s, ok := parseSeverity(value); ok {
				f.Severity = s
			}
		case "FILE":
			f.File = value
		case "LINE":
			if n, err := strconv.Atoi(value); err == nil {
				f.Line = n
			}
		case "ISSUE":
			f.Message = value
			sawIssue = true
		case "SUGGESTION":
			f.Suggestion = value
		default:
			rest = append(rest, line)
		}
	}

	if !sawIssue || f.Message == "" {
		// No ISSUE field means this block is not a finding at all;
		// everything in it is leftover.
		return nil, allLines(block)
	}

	return &f, rest
}

func splitField(line string) (key, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.ToUpper(strings.TrimSpace(line[:idx]))
	switch key {
	case "SEVERITY", "FILE", "LINE", "ISSUE", "SUGGESTION":
		return key, strings.TrimSpace(line[idx+1:]), true
	}
	return "", "", false
}

func parseSeverity(s string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityCritical:
		return SeverityCritical, true
	case SeverityHigh:
		return SeverityHigh, true
	case SeverityMedium:
		return SeverityMedium, true
	case SeverityLow:
		return SeverityLow, true
	case SeverityInfo:
		return SeverityInfo, true
	}
	return "", false
}

func allLines(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(strings.Trim(line, "-")) != "" {
			out = append(out, line)
		}
	}
	return out
}
