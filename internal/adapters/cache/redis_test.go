package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestRedisClient_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	host := getEnv("STREAK_RADAR_REDIS_HOST", "localhost")
	port := getEnv("STREAK_RADAR_REDIS_PORT", "6379")
	pass := getEnv("STREAK_RADAR_REDIS_PASSWORD", "")

	rdb, err := NewRedisClient(context.Background(), Options{
		Addr:           fmt.Sprintf("%s:%s", host, port),
		Password:       pass,
		DB:             1,
		ConnectTimeout: time.Second,
	}, zerolog.Nop())
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()
	require.NoError(t, rdb.FlushDB(ctx).Err(), "Failed to flush test DB")

	t.Run("Connection Ping", func(t *testing.T) {
		pong, err := rdb.Ping(ctx).Result()
		assert.NoError(t, err)
		assert.Equal(t, "PONG", pong)
	})

	t.Run("Missing key is redis.Nil", func(t *testing.T) {
		_, err := rdb.Get(ctx, "streak-radar-test:absent").Result()
		assert.ErrorIs(t, err, redis.Nil)
	})
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	start := time.Now()

	_, err := NewRedisClient(context.Background(), Options{
		Addr:           "127.0.0.1:1",
		ConnectTimeout: 300 * time.Millisecond,
	}, zerolog.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewRedisClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedisClient(ctx, Options{Addr: "127.0.0.1:1"}, zerolog.Nop())
	assert.Error(t, err)
}
