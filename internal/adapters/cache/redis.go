package cache

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Options struct {
	Addr     string
	Password string
	DB       int

	// ConnectTimeout bounds the whole retry loop of the initial ping.
	ConnectTimeout time.Duration
}

// NewRedisClient connects and pings Redis, retrying with exponential
// backoff until ConnectTimeout elapses.
func NewRedisClient(ctx context.Context, opts Options, log zerolog.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 2 * time.Second
	exp.MaxElapsedTime = timeout

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return rdb.Ping(pingCtx).Err()
	}
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Str("addr", opts.Addr).Dur("retry_in", wait).Msg("redis not ready")
	}

	if err := backoff.RetryNotify(ping, backoff.WithContext(exp, ctx), notify); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	return rdb, nil
}
