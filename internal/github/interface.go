package github

import (
	"context"

	"prai/internal/diff"
	"prai/internal/review"
)

//go:generate mockery --name Client --output ../mocks --with-expecter
type Client interface {
	// FetchPullRequest returns the PR metadata and its changed files.
	// Fetch failures wrap ErrNotFound or ErrRateLimited when the API
	// says so.
	FetchPullRequest(ctx context.Context, repo string, pr int) (review.PRContext, []diff.FilePayload, diff.Metadata, error)

	CreateComment(ctx context.Context, repo string, pr int, body string) error
}
