package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/rs/zerolog"
)

var (
	_ domain.Repository[domain.Habit]       = (*Collection[domain.Habit])(nil)
	_ domain.Repository[domain.Achievement] = (*Collection[domain.Achievement])(nil)
	_ domain.Repository[domain.RoutineTask] = (*Collection[domain.RoutineTask])(nil)
)

// Collection stores a list of T as one JSON array under a single key.
type Collection[T any] struct {
	store domain.KeyValueStore
	key   string
	log   zerolog.Logger
}

func NewCollection[T any](store domain.KeyValueStore, key string, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		store: store,
		key:   key,
		log:   log.With().Str("key", key).Logger(),
	}
}

func NewHabitRepository(store domain.KeyValueStore, log zerolog.Logger) *Collection[domain.Habit] {
	return NewCollection[domain.Habit](store, domain.KeyHabits, log)
}

func NewAchievementRepository(store domain.KeyValueStore, log zerolog.Logger) *Collection[domain.Achievement] {
	return NewCollection[domain.Achievement](store, domain.KeyAchievements, log)
}

func NewRoutineRepository(store domain.KeyValueStore, log zerolog.Logger) *Collection[domain.RoutineTask] {
	return NewCollection[domain.RoutineTask](store, domain.KeyRoutineTasks, log)
}

func (c *Collection[T]) Key() string {
	return c.key
}

// Load treats undecodable content like an absent key so callers can fall
// back to defaults.
func (c *Collection[T]) Load(ctx context.Context) ([]T, bool, error) {
	data, err := c.store.Get(ctx, c.key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load %s: %w", c.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Warn().Err(err).Int("bytes", len(data)).Msg("stored value is not valid JSON, ignoring it")
		return nil, false, nil
	}
	if items == nil {
		// A stored "null" decodes to nil.
		items = []T{}
	}
	return items, true, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T]) Clear(ctx context.Context) error {
	if err := c.store.Remove(ctx, c.key); err != nil {
		return fmt.Errorf("failed to clear %s: %w", c.key, err)
	}
	return nil
}

var _ domain.Document[domain.Settings] = (*JSONDocument[domain.Settings])(nil)

// JSONDocument stores a single JSON object under one key. Fields missing
// from the stored object keep the values returned by defaults.
type JSONDocument[T any] struct {
	store    domain.KeyValueStore
	key      string
	defaults func() T
	log      zerolog.Logger
}

func NewSettingsRepository(store domain.KeyValueStore, log zerolog.Logger) *JSONDocument[domain.Settings] {
	return &JSONDocument[domain.Settings]{
		store:    store,
		key:      domain.KeySettings,
		defaults: domain.DefaultSettings,
		log:      log.With().Str("key", domain.KeySettings).Logger(),
	}
}

func (d *JSONDocument[T]) zero() T {
	if d.defaults != nil {
		return d.defaults()
	}
	var doc T
	return doc
}

func (d *JSONDocument[T]) Load(ctx context.Context) (T, bool, error) {
	doc := d.zero()

	data, err := d.store.Get(ctx, d.key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return doc, false, nil
		}
		return doc, false, fmt.Errorf("failed to load %s: %w", d.key, err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		d.log.Warn().Err(err).Msg("stored value is not valid JSON, ignoring it")
		return d.zero(), false, nil
	}
	return doc, true, nil
}

func (d *JSONDocument[T]) Save(ctx context.Context, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", d.key, err)
	}
	if err := d.store.Set(ctx, d.key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", d.key, err)
	}
	return nil
}
