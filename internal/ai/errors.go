package ai

import (
	"context"
	"errors"

	"github.com/sony/gobreaker"
)

var (
	ErrModelUnavailable = errors.New("model unavailable")
	ErrModelTimeout     = errors.New("model timeout")
)

// Classify maps a provider error onto the two failure kinds the rest
// of the pipeline distinguishes.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrModelTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return ErrModelTimeout
	case errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrModelUnavailable
	default:
		return ErrModelUnavailable
	}
}
