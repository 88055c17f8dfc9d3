package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string    `json:"status"`
	Redis     string    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{Status: "ok", Redis: "disabled"}
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings the given Redis client (nil means Redis is not in use)
// and stores the result.
func CheckHealth(ctx context.Context, client *redis.Client) HealthStatus {
	status := HealthStatus{Status: "ok", Redis: "disabled", CheckedAt: time.Now()}
	if client != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			// The limiter fails open, so the site stays up.
			status.Status = "degraded"
			status.Redis = "down"
		} else {
			status.Redis = "up"
		}
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}
