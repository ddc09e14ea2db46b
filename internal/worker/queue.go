package worker

import "context"

type Job struct {
	Repo        string `json:"repo"`
	PR          int    `json:"pr"`
	RequestedBy string `json:"requested_by,omitempty"`
	HeadSHA     string `json:"head_sha,omitempty"`
}

type Queue interface {
	Push(ctx context.Context, j Job) error
	Pop(ctx context.Context) (Job, error)
}
