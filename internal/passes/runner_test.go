package passes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"prai/internal/diff"
	"prai/internal/observability"
	"prai/internal/review"
)

// stubPass lets each test script a pass's behavior directly.
type stubPass struct {
	category review.Category
	delay    time.Duration
	panics   bool
	findings []review.Finding
}

func (s *stubPass) Category() review.Category { return s.category }

func (s *stubPass) Analyze(ctx context.Context, m *diff.Model, prctx review.PRContext) review.FindingSet {
	if s.panics {
		panic("scripted panic")
	}
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return review.FindingSet{
				Category: s.category,
				Status:   review.PassTimedOut,
				Err:      ctx.Err().Error(),
			}
		case <-time.After(s.delay):
		}
	}
	return review.FindingSet{
		Category: s.category,
		Status:   review.PassSucceeded,
		Findings: s.findings,
	}
}

func TestRunnerOutputOrderMatchesDeclarationOrder(t *testing.T) {

	// Completion order is deliberately the reverse of declaration order.
	passes := []AnalysisPass{
		&stubPass{category: review.CategoryLogic, delay: 80 * time.Millisecond},
		&stubPass{category: review.CategoryReadability, delay: 60 * time.Millisecond},
		&stubPass{category: review.CategoryPerformance, delay: 40 * time.Millisecond},
		&stubPass{category: review.CategorySecurity, delay: 20 * time.Millisecond},
	}

	r := NewRunner(passes, nil, time.Second, observability.NewTestLogger())

	sets := r.Run(context.Background(), testModel(t), testPRContext())

	require.Len(t, sets, 4)
	for i, c := range review.Categories() {
		require.Equal(t, c, sets[i].Category)
		require.Equal(t, review.PassSucceeded, sets[i].Status)
	}
}

func TestRunnerTimesOutOnlyTheSlowPass(t *testing.T) {

	passes := []AnalysisPass{
		&stubPass{category: review.CategoryLogic},
		&stubPass{category: review.CategoryReadability, delay: time.Second},
		&stubPass{category: review.CategoryPerformance},
		&stubPass{category: review.CategorySecurity},
	}

	r := NewRunner(passes, nil, 30*time.Millisecond, observability.NewTestLogger())

	sets := r.Run(context.Background(), testModel(t), testPRContext())

	require.Equal(t, review.PassSucceeded, sets[0].Status)
	require.Equal(t, review.PassTimedOut, sets[1].Status)
	require.Equal(t, review.PassSucceeded, sets[2].Status)
	require.Equal(t, review.PassSucceeded, sets[3].Status)
}

func TestRunnerPerCategoryTimeoutOverride(t *testing.T) {

	passes := []AnalysisPass{
		&stubPass{category: review.CategoryLogic, delay: 60 * time.Millisecond},
		&stubPass{category: review.CategorySecurity, delay: 60 * time.Millisecond},
	}

	timeouts := map[review.Category]time.Duration{
		review.CategorySecurity: 200 * time.Millisecond,
	}

	r := NewRunner(passes, timeouts, 20*time.Millisecond, observability.NewTestLogger())

	sets := r.Run(context.Background(), testModel(t), testPRContext())

	require.Equal(t, review.PassTimedOut, sets[0].Status)
	require.Equal(t, review.PassSucceeded, sets[1].Status)
}

func TestRunnerRecoversPanickingPass(t *testing.T) {

	passes := []AnalysisPass{
		&stubPass{category: review.CategoryLogic, panics: true},
		&stubPass{category: review.CategoryReadability},
	}

	r := NewRunner(passes, nil, time.Second, observability.NewTestLogger())

	sets := r.Run(context.Background(), testModel(t), testPRContext())

	require.Equal(t, review.PassFailed, sets[0].Status)
	require.Contains(t, sets[0].Err, "scripted panic")
	require.Equal(t, review.PassSucceeded, sets[1].Status)
}

func TestRunnerAlwaysReturnsOneSetPerPass(t *testing.T) {

	passes := BuildAll(&fakeProvider{text: "NO_ISSUES"}, nil, 400)
	r := NewRunner(passes, nil, time.Second, observability.NewTestLogger())

	sets := r.Run(context.Background(), testModel(t), testPRContext())

	require.Len(t, sets, len(passes))
	seen := map[review.Category]bool{}
	for _, s := range sets {
		seen[s.Category] = true
	}
	require.Len(t, seen, len(passes))
}
