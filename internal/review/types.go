package review

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
	SeverityInfo     Severity = "info"

	// SeverityUnknown is only ever an overall severity, used when no
	// analysis pass succeeded. Individual findings never carry it.
	SeverityUnknown Severity = "unknown"
)

var severityRank = map[Severity]int{
	SeverityCritical: 5,
	SeverityHigh:     4,
	SeverityMedium:   3,
	SeverityLow:      2,
	SeverityInfo:     1,
	SeverityUnknown:  0,
}

// Rank maps the severity onto the ordered scale; higher is worse.
func (s Severity) Rank() int { return severityRank[s] }

type Category string

const (
	CategoryLogic       Category = "logic"
	CategoryReadability Category = "readability"
	CategoryPerformance Category = "performance"
	CategorySecurity    Category = "security"
)

// Categories returns the fixed pass order. Every fan-out and every
// aggregation iterates in this order, never in completion order.
func Categories() []Category {
	return []Category{
		CategoryLogic,
		CategoryReadability,
		CategoryPerformance,
		CategorySecurity,
	}
}

type Finding struct {
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	File       string   `json:"file,omitempty"`
	Line       int      `json:"line,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

type PassStatus string

const (
	PassSucceeded PassStatus = "succeeded"
	PassFailed    PassStatus = "failed"
	PassTimedOut  PassStatus = "timed-out"
)

// TokenUsage is per-pass model usage, carried for cost accounting.
type TokenUsage struct {
	Provider   string `json:"provider,omitempty"`
	Model      string `json:"model,omitempty"`
	Prompt     int    `json:"prompt_tokens,omitempty"`
	Completion int    `json:"completion_tokens,omitempty"`
}

// FindingSet is the complete outcome of one analysis pass.
type FindingSet struct {
	Category Category      `json:"category"`
	Status   PassStatus    `json:"status"`
	Findings []Finding     `json:"findings"`
	Raw      string        `json:"raw,omitempty"` // unparsed model output, kept for diagnostics
	Err      string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
	Usage    TokenUsage    `json:"usage,omitempty"`
}

// PRContext carries the PR metadata the passes embed in their prompts.
type PRContext struct {
	Repo         string   `json:"repo"`
	Number       int      `json:"number"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Author       string   `json:"author"`
	HeadSHA      string   `json:"head_sha"`
	Languages    []string `json:"languages,omitempty"`
	Additions    int      `json:"additions"`
	Deletions    int      `json:"deletions"`
	ChangedFiles int      `json:"changed_files"`
}
