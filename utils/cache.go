// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"bestdental/config"

	"github.com/go-redis/redis/v8"
)

// RateLimitCacheClient is the dedicated client for booking rate-limit counters.
var RateLimitCacheClient *redis.Client

// NewRedisClient builds a client and pings it once before handing it out.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("utils.NewRedisClient: failed to connect to %s: %w", addr, err)
	}
	return client, nil
}

// InitRateLimitCache connects the rate-limit client using DB from AppConfig.
func InitRateLimitCache() error {
	client, err := NewRedisClient(
		config.AppConfig.RedisAddr,
		config.AppConfig.RedisPassword,
		config.AppConfig.RedisRateLimitDB,
	)
	if err != nil {
		return err
	}
	RateLimitCacheClient = client
	return nil
}

// GetRateLimitCacheClient returns the rate-limit client, connecting on first use.
func GetRateLimitCacheClient() (*redis.Client, error) {
	if RateLimitCacheClient == nil {
		if err := InitRateLimitCache(); err != nil {
			return nil, err
		}
	}
	return RateLimitCacheClient, nil
}
