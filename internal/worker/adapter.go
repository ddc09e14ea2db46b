package worker

import "context"

// Adapter implements github.JobQueue so the webhook package doesn't
// know about the worker side.
type Adapter struct {
	q Queue
}

func NewAdapter(q Queue) *Adapter {
	return &Adapter{q: q}
}

func (a *Adapter) Enqueue(ctx context.Context, repo string, pr int, requestedBy, headSHA string) error {
	return a.q.Push(ctx, Job{
		Repo:        repo,
		PR:          pr,
		RequestedBy: requestedBy,
		HeadSHA:     headSHA,
	})
}
