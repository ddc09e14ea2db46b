package passes

import (
	"context"
	"errors"
	"time"

	"prai/internal/ai"
	"prai/internal/diff"
	"prai/internal/ratelimit"
	"prai/internal/review"
)

// AnalysisPass is one independent analysis capability. Implementations
// are stateless across invocations and never mutate the diff model.
type AnalysisPass interface {
	Category() review.Category
	Analyze(ctx context.Context, m *diff.Model, prctx review.PRContext) review.FindingSet
}

// Pass composes a deterministic prompt serialization with one model
// call and the two-stage output parse. All four categories share this
// implementation; only the system prompt differs.
type Pass struct {
	category review.Category
	provider ai.Provider
	limiter  *ratelimit.Limiter
	maxLines int
}

func New(category review.Category, provider ai.Provider, limiter *ratelimit.Limiter, maxLines int) *Pass {
	return &Pass{
		category: category,
		provider: provider,
		limiter:  limiter,
		maxLines: maxLines,
	}
}

func (p *Pass) Category() review.Category { return p.category }

func (p *Pass) Analyze(ctx context.Context, m *diff.Model, prctx review.PRContext) review.FindingSet {

	start := time.Now()

	fs := review.FindingSet{Category: p.category}

	prompt := ai.Prompt{
		System: systemPrompts[p.category],
		User:   userPrompt(m, prctx, p.maxLines),
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, prctx.Repo); err != nil {
			return p.fail(fs, err, start)
		}
	}

	result, err := p.provider.Generate(ctx, prompt)
	if err != nil {
		return p.fail(fs, err, start)
	}

	fs.Status = review.PassSucceeded
	fs.Raw = result.Text
	fs.Findings = review.ParseFindings(p.category, result.Text)
	fs.Duration = time.Since(start)
	fs.Usage = review.TokenUsage{
		Provider:   result.Provider,
		Model:      result.Model,
		Prompt:     result.Usage.PromptTokens,
		Completion: result.Usage.CompletionTokens,
	}

	return fs
}

func (p *Pass) fail(fs review.FindingSet, err error, start time.Time) review.FindingSet {

	fs.Duration = time.Since(start)
	fs.Err = err.Error()

	if errors.Is(ai.Classify(err), ai.ErrModelTimeout) {
		fs.Status = review.PassTimedOut
	} else {
		fs.Status = review.PassFailed
	}

	return fs
}

// BuildAll constructs the four passes in the fixed order.
func BuildAll(provider ai.Provider, limiter *ratelimit.Limiter, maxLines int) []AnalysisPass {
	var out []AnalysisPass
	for _, c := range review.Categories() {
		out = append(out, New(c, provider, limiter, maxLines))
	}
	return out
}
