package store

import (
	"context"
	"errors"
	"time"

	"prai/internal/review"
)

var ErrNoReview = errors.New("no review recorded")

type ReviewStatus string

const (
	StatusCompleted ReviewStatus = "completed"
	StatusFailed    ReviewStatus = "failed"
)

// Record is one persisted review attempt.
type Record struct {
	ID          string
	Repo        string
	PR          int
	HeadSHA     string
	RequestedBy string
	Status      ReviewStatus
	Severity    review.Severity
	Report      *review.Report // nil for failed attempts
	Error       string
	Duration    time.Duration
	CreatedAt   time.Time
}

// Store is the persistence collaborator the review pipeline hands
// finished reports to. The pipeline itself never reads reports back;
// Latest and List serve the API surface.
type Store interface {
	Save(ctx context.Context, rec Record) error
	Latest(ctx context.Context, repo string, pr int) (Record, error)
	List(ctx context.Context, repo string, limit int) ([]Record, error)
	Close() error
}
