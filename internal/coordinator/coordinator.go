package coordinator

import (
	"context"
	"errors"
	"time"

	"prai/internal/budget"
	"prai/internal/cost"
	"prai/internal/diff"
	"prai/internal/github"
	"prai/internal/lock"
	"prai/internal/observability"
	"prai/internal/review"
)

// Fetcher is the external GitHub collaborator as the coordinator sees
// it. Implementations wrap github.ErrNotFound / github.ErrRateLimited
// for the cases the coordinator must distinguish.
type Fetcher interface {
	FetchPullRequest(ctx context.Context, repo string, pr int) (review.PRContext, []diff.FilePayload, diff.Metadata, error)
}

// Runner is the pass fan-out. It always returns one FindingSet per
// pass and never errors at this level.
type Runner interface {
	Run(ctx context.Context, m *diff.Model, prctx review.PRContext) []review.FindingSet
}

// Coordinator owns one review attempt end to end: the per-(repo, PR)
// lock, diff acquisition, the pass fan-out and the final aggregation.
// It holds no state of its own between attempts; the lock table is the
// only shared mutable resource, so reviews of different PRs run fully
// in parallel.
type Coordinator struct {
	locks   *lock.Keyed
	fetcher Fetcher
	runner  Runner
	guard   *budget.Guard
	logger  *observability.Logger
	model   string // pricing key for budget projection
}

func New(locks *lock.Keyed, fetcher Fetcher, runner Runner, guard *budget.Guard, logger *observability.Logger, model string) *Coordinator {
	return &Coordinator{
		locks:   locks,
		fetcher: fetcher,
		runner:  runner,
		guard:   guard,
		logger:  logger,
		model:   model,
	}
}

// Trigger runs one review attempt for (repo, pr). It either returns a
// complete report, possibly with some categories unavailable, or a
// typed error; never a silent empty report. A second trigger for the
// same key while one is active gets ErrReviewInProgress immediately.
func (c *Coordinator) Trigger(ctx context.Context, repo string, pr int, requestedBy string) (review.Report, error) {

	start := time.Now()

	key := lock.Key(repo, pr)
	if !c.locks.TryAcquire(key) {
		observability.Reviews.WithLabelValues("rejected").Inc()
		return review.Report{}, ErrReviewInProgress
	}
	defer c.locks.Release(key)

	log := c.logger.With("repo", repo, "pr", pr, "requested_by", requestedBy)
	log.Info("review started")

	prctx, files, meta, err := c.fetcher.FetchPullRequest(ctx, repo, pr)
	if err != nil {
		observability.Reviews.WithLabelValues("fetch_failed").Inc()
		log.Error("diff fetch failed", "error", err)
		return review.Report{}, fetchError(repo, pr, err)
	}

	m, err := diff.Build(files, meta)
	if err != nil {
		// Only a fully unparsable payload aborts; partial damage is
		// carried as warnings on the model.
		observability.Reviews.WithLabelValues("malformed").Inc()
		log.Error("diff unusable", "error", err)
		return review.Report{}, err
	}
	prctx.Languages = m.Languages()

	for _, w := range m.Warnings {
		log.Warn("diff warning", "warning", w)
	}

	if c.guard.Enabled() {
		projected := cost.ProjectUSD(c.model, m.TotalAdditions+m.TotalDeletions, len(review.Categories()))
		allowed, reason, gerr := c.guard.Allow(ctx, repo, pr, projected, time.Now())
		if gerr != nil {
			log.Error("budget check failed", "error", gerr)
		} else if !allowed {
			observability.BudgetBlocks.WithLabelValues("review").Inc()
			observability.Reviews.WithLabelValues("budget_blocked").Inc()
			log.Warn("review blocked by budget", "reason", reason)
			return review.Report{}, &BudgetError{Reason: reason}
		}
	}

	log.Info("analyzing", "files", len(m.Files))

	sets := c.runner.Run(ctx, m, prctx)

	c.recordSpend(ctx, repo, pr, sets)

	report := review.Aggregate(sets, m.Warnings, time.Since(start))

	observability.Reviews.WithLabelValues("completed").Inc()
	observability.ReviewDuration.Observe(report.Meta.Duration.Seconds())

	log.Info("review completed",
		"severity", report.OverallSeverity,
		"unavailable", len(report.Unavailable),
		"duration", report.Meta.Duration,
	)

	return report, nil
}

func (c *Coordinator) recordSpend(ctx context.Context, repo string, pr int, sets []review.FindingSet) {

	if !c.guard.Enabled() {
		return
	}

	total := 0.0
	now := time.Now()

	for _, s := range sets {
		if s.Usage.Model == "" {
			continue
		}
		usd := cost.EstimateUSD(s.Usage.Model, s.Usage.Prompt, s.Usage.Completion)
		if usd > 0 {
			observability.ModelCostUSD.WithLabelValues(s.Usage.Provider, s.Usage.Model).Add(usd)
		}
		total += usd
	}

	if err := c.guard.Record(ctx, repo, pr, total, now); err != nil {
		c.logger.Error("budget record failed", "repo", repo, "pr", pr, "error", err)
	}
}

func fetchError(repo string, pr int, err error) error {
	if errors.Is(err, github.ErrNotFound) {
		return &NotFoundError{Repo: repo, PR: pr}
	}
	return &DiffFetchError{
		Repo:        repo,
		PR:          pr,
		RateLimited: errors.Is(err, github.ErrRateLimited),
		Err:         err,
	}
}
