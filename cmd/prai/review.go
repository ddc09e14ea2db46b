package main

import (
	"fmt"
	"strconv"
	"time"

	"prai/internal/ai"
	"prai/internal/budget"
	"prai/internal/config"
	"prai/internal/coordinator"
	"prai/internal/github"
	"prai/internal/lock"
	"prai/internal/observability"
	"prai/internal/passes"
	"prai/internal/ratelimit"
	"prai/internal/render"
	"prai/internal/review"

	"github.com/spf13/cobra"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <owner/repo> <pr-number>",
		Short: "Run one review from the command line and print the report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {

			repo := args[0]
			pr, err := strconv.Atoi(args[1])
			if err != nil || pr <= 0 {
				return fmt.Errorf("invalid PR number %q", args[1])
			}

			cfg := config.Load()
			logger := observability.NewLogger(cfg.LogLevel)
			observability.InitMetrics()

			provider := ai.NewCircuitBreaker(ai.NewProvider(cfg))
			limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)

			timeouts := map[review.Category]time.Duration{
				review.CategorySecurity: cfg.SecurityPassTimeout,
			}

			runner := passes.NewRunner(
				passes.BuildAll(provider, limiter, cfg.MaxPromptLines),
				timeouts,
				cfg.PassTimeout,
				logger,
			)

			guard := budget.NewGuard(cfg.BudgetEnabled, cfg.BudgetDailyUSD, cfg.BudgetPRUSD, budget.NewMemoryStore())

			coord := coordinator.New(
				lock.NewKeyed(),
				github.NewClient(cfg, logger),
				runner,
				guard,
				logger,
				cfg.OpenAIModel,
			)

			report, err := coord.Trigger(cmd.Context(), repo, pr, "cli")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.Comment(report))
			return nil
		},
	}
}
