package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

type CircuitBreakerProvider struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

func NewCircuitBreaker(p Provider) *CircuitBreakerProvider {

	settings := gobreaker.Settings{
		Name:        "ai-provider",
		MaxRequests: 3,
		Interval:    0,
		Timeout:     30 * time.Second,
	}

	return &CircuitBreakerProvider{
		provider: p,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

func (c *CircuitBreakerProvider) Generate(ctx context.Context, p Prompt) (Result, error) {

	out, err := c.cb.Execute(func() (interface{}, error) {
		return c.provider.Generate(ctx, p)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return Result{}, fmt.Errorf("circuit open: %w", ErrModelUnavailable)
		}
		return Result{}, err
	}

	resp, ok := out.(Result)
	if !ok {
		return Result{}, fmt.Errorf("unexpected circuit breaker response type")
	}

	return resp, nil
}
