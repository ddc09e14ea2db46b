package coordinator

import (
	"errors"
	"fmt"
)

// ErrReviewInProgress rejects a duplicate trigger while a review for
// the same (repo, PR) key is active. The caller may retry after the
// active review finishes; the coordinator never queues triggers.
var ErrReviewInProgress = errors.New("review already in progress")

// NotFoundError is terminal for the trigger: the PR is gone.
type NotFoundError struct {
	Repo string
	PR   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pull request %s#%d not found", e.Repo, e.PR)
}

// DiffFetchError covers transient fetch failures, rate limits
// included. Callers may retry with backoff; the coordinator does not.
type DiffFetchError struct {
	Repo        string
	PR          int
	RateLimited bool
	Err         error
}

func (e *DiffFetchError) Error() string {
	if e.RateLimited {
		return fmt.Sprintf("fetch %s#%d: rate limited: %v", e.Repo, e.PR, e.Err)
	}
	return fmt.Sprintf("fetch %s#%d: %v", e.Repo, e.PR, e.Err)
}

func (e *DiffFetchError) Unwrap() error { return e.Err }

// BudgetError rejects a review whose projected spend would exceed the
// configured limits.
type BudgetError struct {
	Reason string
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("review blocked by budget: %s", e.Reason)
}
