package budget

import (
	"context"
	"fmt"
	"time"
)

type Store interface {
	AddSpend(ctx context.Context, repo string, pr int, usd float64, at time.Time) error
	GetPRSpend(ctx context.Context, repo string, pr int) (float64, error)
	GetDailySpend(ctx context.Context, day time.Time) (float64, error)
}

// Guard caps model spend per PR and per day. The coordinator consults
// it with a projected cost before fanning out the passes and records
// the actual cost afterwards.
type Guard struct {
	enabled    bool
	dailyLimit float64
	prLimit    float64
	store      Store
}

func NewGuard(enabled bool, dailyLimit, prLimit float64, store Store) *Guard {
	return &Guard{
		enabled:    enabled,
		dailyLimit: dailyLimit,
		prLimit:    prLimit,
		store:      store,
	}
}

func (g *Guard) Enabled() bool {
	return g != nil && g.enabled && g.store != nil
}

func (g *Guard) Allow(ctx context.Context, repo string, pr int, projectedUSD float64, now time.Time) (bool, string, error) {
	if !g.Enabled() {
		return true, "", nil
	}

	prSpend, err := g.store.GetPRSpend(ctx, repo, pr)
	if err != nil {
		return false, "", err
	}
	if g.prLimit > 0 && prSpend+projectedUSD > g.prLimit {
		return false, fmt.Sprintf("PR spend limit of %.4f USD would be exceeded", g.prLimit), nil
	}

	daySpend, err := g.store.GetDailySpend(ctx, now)
	if err != nil {
		return false, "", err
	}
	if g.dailyLimit > 0 && daySpend+projectedUSD > g.dailyLimit {
		return false, fmt.Sprintf("daily spend limit of %.4f USD would be exceeded", g.dailyLimit), nil
	}

	return true, "", nil
}

func (g *Guard) Record(ctx context.Context, repo string, pr int, usd float64, now time.Time) error {
	if !g.Enabled() || usd <= 0 {
		return nil
	}
	return g.store.AddSpend(ctx, repo, pr, usd, now)
}
