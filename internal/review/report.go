package review

import "time"

type Section struct {
	Category Category  `json:"category"`
	Findings []Finding `json:"findings"`
}

type PassResult struct {
	Category Category      `json:"category"`
	Status   PassStatus    `json:"status"`
	Duration time.Duration `json:"duration"`
	Err      string        `json:"error,omitempty"`
}

type Meta struct {
	Duration time.Duration `json:"duration"`
	Passes   []PassResult  `json:"passes"`
	Warnings []string      `json:"warnings,omitempty"`
}

// Report is the aggregated outcome of one review attempt. Sections
// exist only for passes that succeeded; a pass that failed or timed
// out appears in Unavailable and in Meta.Passes, so callers can tell
// "no issues found" apart from "analysis did not run".
type Report struct {
	OverallSeverity     Severity   `json:"overall_severity"`
	AnalysisUnavailable bool       `json:"analysis_unavailable"`
	Sections            []Section  `json:"sections"`
	Unavailable         []Category `json:"unavailable,omitempty"`
	Recommendations     []string   `json:"recommendations"`
	Summary             string     `json:"summary"`
	Meta                Meta       `json:"meta"`
}

// Section returns the section for the category, or nil if that pass
// did not succeed.
func (r *Report) Section(c Category) *Section {
	for i := range r.Sections {
		if r.Sections[i].Category == c {
			return &r.Sections[i]
		}
	}
	return nil
}
