package worker

import (
	"context"
	"errors"
	"time"

	"prai/internal/coordinator"
	"prai/internal/observability"
	"prai/internal/render"
	"prai/internal/retry"
	"prai/internal/review"
	"prai/internal/store"
)

// Trigger is the coordinator as the processor sees it.
type Trigger interface {
	Trigger(ctx context.Context, repo string, pr int, requestedBy string) (review.Report, error)
}

// Commenter posts the rendered report back to the PR.
type Commenter interface {
	CreateComment(ctx context.Context, repo string, pr int, body string) error
}

// Processor drains the job queue and drives one review per job:
// coordinator, persistence, PR comment. Failures are persisted as
// failed records; a rejected duplicate trigger is just dropped.
type Processor struct {
	queue    Queue
	reviews  Trigger
	store    store.Store
	comments Commenter
	logger   *observability.Logger
}

func NewProcessor(q Queue, reviews Trigger, st store.Store, comments Commenter, logger *observability.Logger) *Processor {
	return &Processor{
		queue:    q,
		reviews:  reviews,
		store:    st,
		comments: comments,
		logger:   logger,
	}
}

func (p *Processor) Start(ctx context.Context) {

	go func() {
		for {
			job, err := p.queue.Pop(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				continue
			}

			p.handle(ctx, job)
		}
	}()
}

func (p *Processor) handle(parent context.Context, j Job) {

	ctx, cancel := context.WithTimeout(parent, 10*time.Minute)
	defer cancel()

	_, err := p.Process(ctx, j)

	if errors.Is(err, coordinator.ErrReviewInProgress) {
		// Webhook bursts land here; the active review covers them.
		p.logger.Info("duplicate trigger dropped", "repo", j.Repo, "pr", j.PR)
		return
	}
	if err != nil {
		p.logger.Error("review failed", "repo", j.Repo, "pr", j.PR, "error", err)
	}
}

// Process runs one review end to end: trigger, persist, post comment.
// The manual-trigger endpoint uses it too, so both paths behave the
// same way.
func (p *Processor) Process(ctx context.Context, j Job) (review.Report, error) {

	start := time.Now()

	report, err := p.reviews.Trigger(ctx, j.Repo, j.PR, j.RequestedBy)

	if errors.Is(err, coordinator.ErrReviewInProgress) {
		return review.Report{}, err
	}

	if err != nil {
		p.persist(ctx, store.Record{
			Repo:        j.Repo,
			PR:          j.PR,
			HeadSHA:     j.HeadSHA,
			RequestedBy: j.RequestedBy,
			Status:      store.StatusFailed,
			Severity:    review.SeverityUnknown,
			Error:       err.Error(),
			Duration:    time.Since(start),
		})
		return review.Report{}, err
	}

	p.persist(ctx, store.Record{
		Repo:        j.Repo,
		PR:          j.PR,
		HeadSHA:     j.HeadSHA,
		RequestedBy: j.RequestedBy,
		Status:      store.StatusCompleted,
		Severity:    report.OverallSeverity,
		Report:      &report,
		Duration:    report.Meta.Duration,
	})

	body := render.Comment(report)

	err = retry.Do(ctx, 3, time.Second, func() error {
		return p.comments.CreateComment(ctx, j.Repo, j.PR, body)
	})
	if err != nil {
		// The review itself succeeded; a lost comment is not a failure.
		p.logger.Error("comment failed", "repo", j.Repo, "pr", j.PR, "error", err)
	} else {
		p.logger.Info("review posted",
			"repo", j.Repo,
			"pr", j.PR,
			"severity", report.OverallSeverity,
		)
	}

	return report, nil
}

func (p *Processor) persist(ctx context.Context, rec store.Record) {
	if p.store == nil {
		return
	}
	if err := p.store.Save(ctx, rec); err != nil {
		p.logger.Error("persist failed", "repo", rec.Repo, "pr", rec.PR, "error", err)
	}
}
