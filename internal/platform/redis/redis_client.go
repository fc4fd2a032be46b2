package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"askbox_backend/internal/platform/config"
)

// NewRedisClient connects to the Redis instance described by the
// configuration. It returns nil without error when Redis is not
// configured; the caller runs without the cache in that case.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	addr := cfg.RedisAddr()
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// 接続確認
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
