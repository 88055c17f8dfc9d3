package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultLimit  = 10
	DefaultWindow = time.Minute
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter applies a fixed limit per window to caller keys.
type Limiter struct {
	store  Store
	limit  int
	window time.Duration
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Limiter)

// WithClock replaces time.Now; used in tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Limiter) { l.logger = logger }
}

func NewLimiter(store Store, limit int, window time.Duration, opts ...Option) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	l := &Limiter{
		store:  store,
		limit:  limit,
		window: window,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records a request for key. A store failure lets the request through.
func (l *Limiter) Allow(ctx context.Context, key string) Decision {
	now := l.now()
	res, err := l.store.Take(ctx, key, l.limit, l.window, now)
	if err != nil {
		l.logger.Error("rate limiter store failed, allowing request", zap.String("key", key), zap.Error(err))
		return Decision{Allowed: true, Remaining: l.limit - 1, ResetAt: now.Add(l.window)}
	}

	remaining := l.limit - res.Counter.Count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   res.Allowed,
		Remaining: remaining,
		ResetAt:   res.Counter.ResetAt,
	}
}

func (l *Limiter) Limit() int { return l.limit }

func (l *Limiter) Window() time.Duration { return l.window }
