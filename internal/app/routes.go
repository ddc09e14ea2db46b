package app

import (
	"net/http"
	"time"

	"prai/internal/ai"
	"prai/internal/budget"
	"prai/internal/coordinator"
	"prai/internal/dedup"
	"prai/internal/github"
	"prai/internal/lock"
	"prai/internal/observability"
	"prai/internal/passes"
	"prai/internal/ratelimit"
	"prai/internal/review"
	"prai/internal/store"
	"prai/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// build wires the whole pipeline and returns the route mux.
func (s *Server) build() (*http.ServeMux, error) {

	observability.InitMetrics()

	ghClient := github.NewClient(s.cfg, s.logger)

	provider := ai.NewFallback(
		ai.NewCircuitBreaker(ai.NewProvider(s.cfg)),
		ai.NewOllama(s.cfg.OllamaURL, s.cfg.OllamaModel),
	)

	limiter := ratelimit.New(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst)

	timeouts := map[review.Category]time.Duration{
		review.CategorySecurity: s.cfg.SecurityPassTimeout,
	}

	runner := passes.NewRunner(
		passes.BuildAll(provider, limiter, s.cfg.MaxPromptLines),
		timeouts,
		s.cfg.PassTimeout,
		s.logger,
	)

	guard := budget.NewGuard(
		s.cfg.BudgetEnabled,
		s.cfg.BudgetDailyUSD,
		s.cfg.BudgetPRUSD,
		budget.NewMemoryStore(),
	)

	coord := coordinator.New(
		lock.NewKeyed(),
		ghClient,
		runner,
		guard,
		s.logger,
		s.cfg.OpenAIModel,
	)

	st, err := store.NewSQLite(s.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	s.store = st

	s.queue = worker.NewQueue(s.cfg)

	s.processor = worker.NewProcessor(
		s.queue,
		coord,
		st,
		ghClient,
		s.logger,
	)

	webhook := github.NewWebhookHandler(
		s.cfg,
		s.logger,
		worker.NewAdapter(s.queue),
		dedup.NewMemory(),
	)

	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.health)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/webhook/github", webhook.Handle)
	mux.HandleFunc("POST /reviews", s.triggerReview)
	mux.HandleFunc("GET /reviews/latest", s.latestReview)

	return mux, nil
}
