package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var _ domain.KeyValueStore = (*CachedStore)(nil)

const DefaultCacheTTL = 30 * time.Minute

// CachedStore is a read-through Redis cache in front of another store.
// Cache read and fill failures are logged and fall back to the backing
// store. Invalidation failures are returned: a stale entry would be read
// back and rewritten by the next read-modify-write.
type CachedStore struct {
	next  domain.KeyValueStore
	cache redis.UniversalClient
	ttl   time.Duration
	log   zerolog.Logger
}

func NewCachedStore(next domain.KeyValueStore, cache redis.UniversalClient, ttl time.Duration, log zerolog.Logger) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		next:  next,
		cache: cache,
		ttl:   ttl,
		log:   log.With().Str("component", "cache").Logger(),
	}
}

func (s *CachedStore) cacheKey(key string) string {
	return "cache:" + key
}

func (s *CachedStore) invalidate(ctx context.Context, key string) error {
	if err := s.cache.Del(ctx, s.cacheKey(key)).Err(); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to invalidate cache entry")
		return fmt.Errorf("failed to invalidate cache entry %q: %w", key, err)
	}
	return nil
}

// write drops the cached entry around op. The first drop keeps a write
// from landing while the cache is unreachable; the second clears any fill
// that raced with op.
func (s *CachedStore) write(ctx context.Context, key string, op func() error) error {
	if err := s.invalidate(ctx, key); err != nil {
		return err
	}
	if err := op(); err != nil {
		return err
	}
	return s.invalidate(ctx, key)
}

func (s *CachedStore) Get(ctx context.Context, key string) ([]byte, error) {
	ck := s.cacheKey(key)

	val, err := s.cache.Get(ctx, ck).Bytes()
	if err == nil {
		return val, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("key", key).Msg("cache read error")
	}

	val, err = s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if setErr := s.cache.Set(ctx, ck, val, s.ttl).Err(); setErr != nil {
		s.log.Warn().Err(setErr).Str("key", key).Msg("cache write error")
	}
	return val, nil
}

func (s *CachedStore) Set(ctx context.Context, key string, value []byte) error {
	return s.write(ctx, key, func() error { return s.next.Set(ctx, key, value) })
}

func (s *CachedStore) Remove(ctx context.Context, key string) error {
	return s.write(ctx, key, func() error { return s.next.Remove(ctx, key) })
}
