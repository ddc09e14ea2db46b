package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	Reviews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prai_reviews_total",
			Help: "Total review attempts",
		},
		[]string{"outcome"},
	)

	ReviewDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prai_review_duration_seconds",
			Help:    "Wall-clock duration of one review attempt",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	Passes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prai_passes_total",
			Help: "Analysis pass completions by category and status",
		},
		[]string{"category", "status"},
	)

	PassLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prai_pass_latency_seconds",
			Help:    "Analysis pass latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"category"},
	)

	ModelCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prai_model_calls_total",
			Help: "Total model calls",
		},
		[]string{"provider"},
	)

	ModelErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prai_model_errors_total",
			Help: "Total model call errors",
		},
		[]string{"provider"},
	)

	ModelTokens = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prai_model_tokens_total",
			Help: "Total model tokens",
		},
		[]string{"provider", "model", "type"},
	)

	ModelCostUSD = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prai_model_cost_usd_total",
			Help: "Total estimated model cost in USD",
		},
		[]string{"provider", "model"},
	)

	BudgetBlocks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prai_budget_block_total",
			Help: "Total budget block events",
		},
		[]string{"scope"},
	)
)

func InitMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(
			Reviews, ReviewDuration,
			Passes, PassLatency,
			ModelCalls, ModelErrors, ModelTokens, ModelCostUSD,
			BudgetBlocks,
		)
	})
}
