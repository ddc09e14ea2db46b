package review

import (
	"fmt"
	"strings"
	"time"
)

// Aggregate merges one FindingSet per pass into a Report. It is a pure
// function: the same sets and warnings always produce a byte-identical
// report. Sets are keyed by category, so input order does not matter;
// output order is always the fixed pass order.
func Aggregate(sets []FindingSet, warnings []string, duration time.Duration) Report {

	byCategory := map[Category]FindingSet{}
	for _, s := range sets {
		byCategory[s.Category] = s
	}

	r := Report{
		Recommendations: []string{},
		Meta: Meta{
			Duration: duration,
			Warnings: warnings,
		},
	}

	overall := SeverityUnknown
	succeeded := 0
	seen := map[string]bool{}

	for _, c := range Categories() {

		s, ok := byCategory[c]
		if !ok {
			// A missing set means the runner broke its contract;
			// treat the pass as not having run.
			s = FindingSet{Category: c, Status: PassFailed, Err: "no result"}
		}

		r.Meta.Passes = append(r.Meta.Passes, PassResult{
			Category: c,
			Status:   s.Status,
			Duration: s.Duration,
			Err:      s.Err,
		})

		if s.Status != PassSucceeded {
			r.Unavailable = append(r.Unavailable, c)
			continue
		}

		succeeded++
		findings := s.Findings
		if findings == nil {
			findings = []Finding{}
		}
		r.Sections = append(r.Sections, Section{Category: c, Findings: findings})

		for _, f := range findings {

			if f.Severity.Rank() > overall.Rank() {
				overall = f.Severity
			}

			rec := f.Suggestion
			if rec == "" {
				rec = f.Message
			}
			key := normalize(rec)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			r.Recommendations = append(r.Recommendations, rec)
		}
	}

	if succeeded == 0 {
		r.OverallSeverity = SeverityUnknown
		r.AnalysisUnavailable = true
	} else if overall == SeverityUnknown {
		// Passes ran and found nothing.
		r.OverallSeverity = SeverityInfo
	} else {
		r.OverallSeverity = overall
	}

	r.Summary = summarize(&r, succeeded)

	return r
}

func summarize(r *Report, succeeded int) string {

	if r.AnalysisUnavailable {
		return "Automated review could not run: analysis unavailable for every category."
	}

	total := 0
	var parts []string
	for _, s := range r.Sections {
		total += len(s.Findings)
		parts = append(parts, fmt.Sprintf("%s: %d", s.Category, len(s.Findings)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Automated review completed: %d of %d analyses succeeded. ",
		succeeded, len(Categories()))

	if total == 0 {
		b.WriteString("No issues found.")
	} else {
		fmt.Fprintf(&b, "%d issue(s) found, highest severity %s (%s).",
			total, r.OverallSeverity, strings.Join(parts, ", "))
	}

	if len(r.Unavailable) > 0 {
		names := make([]string, len(r.Unavailable))
		for i, c := range r.Unavailable {
			names[i] = string(c)
		}
		fmt.Fprintf(&b, " Analysis unavailable: %s.", strings.Join(names, ", "))
	}

	return b.String()
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
