package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/comitanigiacomo/streak-radar/internal/adapters/cache"
	"github.com/comitanigiacomo/streak-radar/internal/config"
	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Handle owns the opened store and the connections behind it.
type Handle struct {
	Store   domain.KeyValueStore
	Backend string
	// Redis is set when a Redis connection was opened, for reuse by the
	// rate limiter.
	Redis *redis.Client

	closers []io.Closer
	pingers map[string]func(context.Context) error
}

// Ping checks every remote connection behind the handle. The map is empty
// for the memory backend.
func (h *Handle) Ping(ctx context.Context) map[string]error {
	out := make(map[string]error, len(h.pingers))
	for name, ping := range h.pingers {
		out[name] = ping(ctx)
	}
	return out
}

func (h *Handle) Close() error {
	var errs []error
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open builds the configured backend, wraps it with the Redis cache when
// enabled and with metrics when reg is not nil.
func Open(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, log zerolog.Logger) (*Handle, error) {
	h := &Handle{Backend: cfg.Backend, pingers: make(map[string]func(context.Context) error)}

	connectRedis := func() (*redis.Client, error) {
		if h.Redis != nil {
			return h.Redis, nil
		}
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, log)
		if err != nil {
			return nil, err
		}
		h.Redis = rdb
		h.closers = append(h.closers, rdb)
		h.pingers["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		return rdb, nil
	}

	var store domain.KeyValueStore
	switch cfg.Backend {
	case config.BackendMemory:
		store = NewMemoryStore()

	case config.BackendSQLite:
		s, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		h.closers = append(h.closers, s)
		h.pingers["database"] = s.Ping
		store = s

	case config.BackendPostgres:
		s, err := OpenPostgres(ctx, cfg.PostgresDSN, cfg.PostgresTable)
		if err != nil {
			return nil, err
		}
		h.closers = append(h.closers, s)
		h.pingers["database"] = s.Ping
		store = s

	case config.BackendRedis:
		rdb, err := connectRedis()
		if err != nil {
			return nil, err
		}
		store = NewRedisStore(rdb, cfg.RedisKeyPrefix)

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedBackend, cfg.Backend)
	}

	if cfg.CacheEnabled && cfg.Backend != config.BackendRedis && cfg.Backend != config.BackendMemory {
		rdb, err := connectRedis()
		if err != nil {
			h.Close()
			return nil, err
		}
		store = NewCachedStore(store, rdb, cfg.CacheTTL, log)
	}

	if reg != nil {
		store = NewInstrumentedStore(store, cfg.Backend, NewMetrics(reg))
	}

	h.Store = store
	log.Info().Str("backend", cfg.Backend).Bool("cache", cfg.CacheEnabled).Msg("key/value store ready")
	return h, nil
}
