// Package ratelimit implements the fixed-window counter that guards the
// booking endpoint. Counter state lives in a Store so the limiter can run
// in-process or against Redis.
package ratelimit

import (
	"context"
	"time"
)

// Counter is the state of one key's current window.
type Counter struct {
	Count   int
	ResetAt time.Time
}

// Result is what a Store reports for a single hit.
type Result struct {
	Allowed bool
	Counter Counter
}

// Store records hits against fixed windows.
//
// Take must start a new window (count 1, allowed) when the key has no
// counter or now is past ResetAt, reject when the count has reached limit,
// and otherwise increment and allow.
type Store interface {
	Take(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (Result, error)
}
