package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises the key/value contract against a store implementation.
// makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) domain.KeyValueStore) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()
	prefix := "test-" + uuid.NewString() + ":"

	t.Run("Missing key returns ErrKeyNotFound", func(t *testing.T) {
		val, err := s.Get(ctx, prefix+"absent")
		assert.Nil(t, val)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Set then Get returns the same bytes", func(t *testing.T) {
		key := prefix + domain.KeyHabits
		payload := []byte(`[{"id":"h1","name":"Drink water","completedDates":["2024-01-03"]}]`)

		require.NoError(t, s.Set(ctx, key, payload))

		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("Set replaces the whole value", func(t *testing.T) {
		key := prefix + domain.KeyAchievements
		require.NoError(t, s.Set(ctx, key, []byte(`[1,2,3]`)))
		require.NoError(t, s.Set(ctx, key, []byte(`[]`)))

		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("Keys are independent", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, prefix+"a", []byte("A")))
		require.NoError(t, s.Set(ctx, prefix+"b", []byte("B")))

		a, err := s.Get(ctx, prefix+"a")
		require.NoError(t, err)
		assert.Equal(t, []byte("A"), a)

		require.NoError(t, s.Remove(ctx, prefix+"a"))
		b, err := s.Get(ctx, prefix+"b")
		require.NoError(t, err)
		assert.Equal(t, []byte("B"), b)
	})

	t.Run("Remove deletes and is idempotent", func(t *testing.T) {
		key := prefix + domain.KeyRoutineTasks
		require.NoError(t, s.Set(ctx, key, []byte(`[]`)))

		require.NoError(t, s.Remove(ctx, key))
		_, err := s.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)

		assert.NoError(t, s.Remove(ctx, key))
	})

	t.Run("Concurrent writers on distinct keys", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("%sconcurrent-%d", prefix, i)
				assert.NoError(t, s.Set(ctx, key, []byte(key)))
			}(i)
		}
		wg.Wait()

		for i := 0; i < 10; i++ {
			key := fmt.Sprintf("%sconcurrent-%d", prefix, i)
			got, err := s.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, []byte(key), got)
		}
	})
}
