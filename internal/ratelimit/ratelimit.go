package ratelimit

import (
	"context"
	"time"
)

type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter is a per-key sliding-window limiter.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
