package github

import "context"

// JobQueue is all the webhook handler knows about the worker side.
type JobQueue interface {
	Enqueue(ctx context.Context, repo string, pr int, requestedBy, headSHA string) error
}
