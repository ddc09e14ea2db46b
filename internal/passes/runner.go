package passes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"prai/internal/diff"
	"prai/internal/observability"
	"prai/internal/review"
)

// Runner fans one diff out to every pass concurrently and always
// returns exactly one FindingSet per pass, in declaration order,
// regardless of completion order. A pass failing or timing out never
// affects its siblings: each gets its own timeout context, and a
// timeout cancels only that pass's in-flight call.
type Runner struct {
	passes   []AnalysisPass
	timeouts map[review.Category]time.Duration
	fallback time.Duration
	logger   *observability.Logger
}

func NewRunner(passes []AnalysisPass, timeouts map[review.Category]time.Duration, fallback time.Duration, logger *observability.Logger) *Runner {
	return &Runner{
		passes:   passes,
		timeouts: timeouts,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *Runner) Run(ctx context.Context, m *diff.Model, prctx review.PRContext) []review.FindingSet {

	results := make([]review.FindingSet, len(r.passes))

	var wg sync.WaitGroup

	for i, p := range r.passes {
		wg.Add(1)

		go func(i int, p AnalysisPass) {
			defer wg.Done()

			passCtx, cancel := context.WithTimeout(ctx, r.timeout(p.Category()))
			defer cancel()

			results[i] = r.analyze(passCtx, p, m, prctx)

			observability.Passes.WithLabelValues(
				string(p.Category()), string(results[i].Status),
			).Inc()
			observability.PassLatency.WithLabelValues(
				string(p.Category()),
			).Observe(results[i].Duration.Seconds())

			if results[i].Status != review.PassSucceeded {
				r.logger.Warn("analysis pass did not complete",
					"category", p.Category(),
					"status", results[i].Status,
					"err", results[i].Err,
				)
			}
		}(i, p)
	}

	wg.Wait()

	return results
}

// analyze guards the pass invocation: a panicking pass becomes a
// failed FindingSet instead of taking down the whole review.
func (r *Runner) analyze(ctx context.Context, p AnalysisPass, m *diff.Model, prctx review.PRContext) (fs review.FindingSet) {

	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			fs = review.FindingSet{
				Category: p.Category(),
				Status:   review.PassFailed,
				Err:      fmt.Sprintf("panic: %v", rec),
				Duration: time.Since(start),
			}
		}
	}()

	return p.Analyze(ctx, m, prctx)
}

func (r *Runner) timeout(c review.Category) time.Duration {
	if d, ok := r.timeouts[c]; ok && d > 0 {
		return d
	}
	if r.fallback > 0 {
		return r.fallback
	}
	return time.Minute
}
