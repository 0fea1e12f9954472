package domain

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// Keys of the persisted state. Each key is written independently; there is
// no transaction spanning several keys.
const (
	KeyHabits       = "habits"
	KeyAchievements = "achievements"
	KeyRoutineTasks = "routineTasks"
	KeySettings     = "settings"
)

type KeyValueStore interface {
	// Get returns the stored value or ErrKeyNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the whole value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Repository is a typed view over a single key holding an ordered list.
type Repository[T any] interface {
	// Load returns the stored list. found is false when the key is absent
	// or its content cannot be decoded; I/O failures are returned as err.
	Load(ctx context.Context) (items []T, found bool, err error)

	Save(ctx context.Context, items []T) error

	Clear(ctx context.Context) error
}

// Document is a typed view over a single key holding one JSON object.
type Document[T any] interface {
	Load(ctx context.Context) (doc T, found bool, err error)
	Save(ctx context.Context, doc T) error
}

type AppState struct {
	Habits       []Habit       `json:"habits"`
	Achievements []Achievement `json:"achievements"`
	RoutineTasks []RoutineTask `json:"routineTasks"`
	Settings     Settings      `json:"settings"`
}
