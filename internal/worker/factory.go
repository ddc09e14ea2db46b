package worker

import "prai/internal/config"

func NewQueue(cfg *config.Config) Queue {

	if cfg.QueueType == "redis" {
		return NewRedisQueue(
			cfg.RedisAddr,
			"prai_review_jobs",
		)
	}

	return NewMemoryQueue(100)
}
