package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"prai/internal/review"
)

func sampleReport() review.Report {
	sets := []review.FindingSet{
		{Category: review.CategoryLogic, Status: review.PassSucceeded},
		{Category: review.CategoryReadability, Status: review.PassFailed, Err: "model unavailable"},
		{Category: review.CategoryPerformance, Status: review.PassSucceeded},
		{
			Category: review.CategorySecurity,
			Status:   review.PassSucceeded,
			Findings: []review.Finding{{
				Category:   review.CategorySecurity,
				Severity:   review.SeverityHigh,
				Message:    "SQL built by string concatenation",
				File:       "db/query.go",
				Line:       12,
				Suggestion: "use parameterized queries",
			}},
		},
	}
	return review.Aggregate(sets, nil, 42*time.Second)
}

func TestCommentRendersSectionsAndBadges(t *testing.T) {

	body := Comment(sampleReport())

	require.Contains(t, body, "# 🤖 PRAI Automated Code Review")
	require.Contains(t, body, "## Overall Severity: 🟠 HIGH")
	require.Contains(t, body, "🔒 Security")
	require.Contains(t, body, "`db/query.go`:12")
	require.Contains(t, body, "SQL built by string concatenation")
	require.Contains(t, body, "Suggestion: use parameterized queries")
	require.Contains(t, body, "*Review completed in 42 seconds*")
}

func TestCommentMarksUnavailableCategory(t *testing.T) {

	body := Comment(sampleReport())

	// Readability failed, so its section carries the marker while the
	// succeeded empty sections say no issues.
	readability := section(t, body, "📖 Code Quality & Readability")
	require.Contains(t, readability, "_Analysis unavailable for this category._")

	logic := section(t, body, "🧠 Logic & Correctness")
	require.Contains(t, logic, "No issues found.")
}

func TestCommentNumbersRecommendations(t *testing.T) {

	body := Comment(sampleReport())

	require.Contains(t, body, "## 📋 Key Recommendations")
	require.Contains(t, body, "1. use parameterized queries")
}

func TestCommentOmitsRecommendationsWhenEmpty(t *testing.T) {

	r := review.Aggregate([]review.FindingSet{
		{Category: review.CategoryLogic, Status: review.PassSucceeded},
		{Category: review.CategoryReadability, Status: review.PassSucceeded},
		{Category: review.CategoryPerformance, Status: review.PassSucceeded},
		{Category: review.CategorySecurity, Status: review.PassSucceeded},
	}, nil, time.Second)

	body := Comment(r)

	require.NotContains(t, body, "Key Recommendations")
	require.Contains(t, body, "No issues found.")
}

func TestCommentIsDeterministic(t *testing.T) {

	r := sampleReport()
	require.Equal(t, Comment(r), Comment(r))
}

func TestCommentAllCategoriesAlwaysPresent(t *testing.T) {

	body := Comment(sampleReport())

	for _, title := range []string{
		"🧠 Logic & Correctness",
		"📖 Code Quality & Readability",
		"⚡ Performance",
		"🔒 Security",
	} {
		require.Contains(t, body, title)
	}
}

// section extracts the body between a section heading and the next one.
func section(t *testing.T, body, title string) string {
	t.Helper()
	idx := strings.Index(body, "## "+title)
	require.GreaterOrEqual(t, idx, 0)
	rest := body[idx+len("## "+title):]
	if next := strings.Index(rest, "\n## "); next >= 0 {
		rest = rest[:next]
	}
	return rest
}
