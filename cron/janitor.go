package cron

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bestdental/utils"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper evicts expired in-memory state and reports how much it removed.
type Sweeper interface {
	Sweep(now time.Time) int
}

// Janitor runs periodic housekeeping: evicting expired rate-limit windows
// and idle page limiters, and refreshing the health snapshot.
type Janitor struct {
	cron     *cron.Cron
	sweepers map[string]Sweeper
	redis    *redis.Client
	logger   *zap.Logger
	now      func() time.Time
}

// NewJanitor schedules the housekeeping run. redisClient may be nil when
// the limiter keeps its state in memory.
func NewJanitor(schedule string, redisClient *redis.Client, logger *zap.Logger, sweepers map[string]Sweeper) (*Janitor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	j := &Janitor{
		cron:     cron.New(),
		sweepers: sweepers,
		redis:    redisClient,
		logger:   logger,
		now:      time.Now,
	}
	if _, err := j.cron.AddFunc(schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("cron.NewJanitor: invalid schedule %q: %w", schedule, err)
	}
	return j, nil
}

// RunOnce performs one housekeeping pass.
func (j *Janitor) RunOnce(ctx context.Context) {
	now := j.now()

	names := make([]string, 0, len(j.sweepers))
	for name := range j.sweepers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if removed := j.sweepers[name].Sweep(now); removed > 0 {
			j.logger.Debug("Janitor swept entries", zap.String("sweeper", name), zap.Int("removed", removed))
		}
	}

	status := utils.CheckHealth(ctx, j.redis)
	if status.Status != "ok" {
		j.logger.Warn("Redis connection lost, rate limiter failing open", zap.String("redis", status.Redis))
	}
}

// Start runs one pass immediately, then follows the schedule.
func (j *Janitor) Start() {
	j.RunOnce(context.Background())
	j.cron.Start()
	j.logger.Info("Janitor started", zap.Int("sweepers", len(j.sweepers)))
}

// Stop waits for a running pass to finish or for ctx to expire.
func (j *Janitor) Stop(ctx context.Context) error {
	done := j.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
