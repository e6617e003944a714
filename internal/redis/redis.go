package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fieldops/internal/config"

	goredis "github.com/redis/go-redis/v9"
)

// Redis owns the client shared by the team cache and the notification queue.
type Redis struct {
	Client      *goredis.Client
	pingTimeout time.Duration
}

func options(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		PoolSize:    cfg.PoolSize,
		DialTimeout: cfg.DialTimeout,
	}
}

// NewRedis connects and fails fast when the server does not answer a ping
// within the configured timeout.
func NewRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Redis, error) {
	r := &Redis{
		Client:      goredis.NewClient(options(cfg.Redis)),
		pingTimeout: cfg.Redis.PingTimeout,
	}

	if err := r.Ping(ctx); err != nil {
		logger.Error("redis unreachable", slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
		if cerr := r.Close(); cerr != nil {
			logger.Warn("redis client close failed", slog.Any("error", cerr))
		}
		return nil, err
	}

	logger.Info("redis ready",
		slog.String("addr", cfg.Redis.Addr),
		slog.Int("db", cfg.Redis.DB),
		slog.Int("pool_size", cfg.Redis.PoolSize),
	)
	return r, nil
}

// Ping checks the server within the configured timeout. Used at start and by the health endpoint.
func (r *Redis) Ping(ctx context.Context) error {
	if r.pingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.pingTimeout)
		defer cancel()
	}
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}
