package render

import (
	"fmt"
	"strings"

	"prai/internal/review"
)

var severityBadge = map[review.Severity]string{
	review.SeverityCritical: "🔴",
	review.SeverityHigh:     "🟠",
	review.SeverityMedium:   "🟡",
	review.SeverityLow:      "🟢",
	review.SeverityInfo:     "🔵",
	review.SeverityUnknown:  "⚪",
}

var sectionTitles = map[review.Category]string{
	review.CategoryLogic:       "🧠 Logic & Correctness",
	review.CategoryReadability: "📖 Code Quality & Readability",
	review.CategoryPerformance: "⚡ Performance",
	review.CategorySecurity:    "🔒 Security",
}

// Comment renders a report as the PR comment body. Same report in,
// same markdown out.
func Comment(r review.Report) string {

	var b strings.Builder

	b.WriteString("# 🤖 PRAI Automated Code Review\n\n")
	b.WriteString(r.Summary)
	b.WriteString("\n\n---\n\n")

	fmt.Fprintf(&b, "## Overall Severity: %s %s\n",
		severityBadge[r.OverallSeverity],
		strings.ToUpper(string(r.OverallSeverity)),
	)

	for _, c := range review.Categories() {

		fmt.Fprintf(&b, "\n## %s\n\n", sectionTitles[c])

		s := r.Section(c)
		if s == nil {
			b.WriteString("_Analysis unavailable for this category._\n")
			continue
		}

		if len(s.Findings) == 0 {
			b.WriteString("No issues found.\n")
			continue
		}

		for _, f := range s.Findings {
			fmt.Fprintf(&b, "- **%s**", strings.ToUpper(string(f.Severity)))
			if f.File != "" {
				fmt.Fprintf(&b, " `%s`", f.File)
				if f.Line > 0 {
					fmt.Fprintf(&b, ":%d", f.Line)
				}
			}
			fmt.Fprintf(&b, ": %s\n", f.Message)
			if f.Suggestion != "" {
				fmt.Fprintf(&b, "  - Suggestion: %s\n", f.Suggestion)
			}
		}
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n## 📋 Key Recommendations\n\n")
		for i, rec := range r.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	b.WriteString("\n---\n")
	fmt.Fprintf(&b, "*Review completed in %d seconds*\n",
		int(r.Meta.Duration.Seconds()))
	b.WriteString("*Powered by PRAI*\n")

	return b.String()
}
