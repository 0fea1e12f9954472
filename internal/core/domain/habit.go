package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrHabitNotFound    = errors.New("habit not found")
)

const (
	MaxHabitNameLen = 100
	DefaultTarget   = 1
)

type Habit struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       Category  `json:"category"`
	Streak         int       `json:"streak"`
	CompletedDates []string  `json:"completedDates"`
	CreatedAt      time.Time `json:"createdAt"`
	Target         int       `json:"target"`
	Unit           *string   `json:"unit,omitempty"`
}

func NewHabit(name string, category Category, now time.Time) (*Habit, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrHabitNameEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxHabitNameLen {
		return nil, ErrHabitNameTooLong
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	return &Habit{
		ID:             uuid.NewString(),
		Name:           trimmed,
		Category:       category,
		Streak:         0,
		CompletedDates: []string{},
		CreatedAt:      now.UTC(),
		Target:         DefaultTarget,
	}, nil
}

// Clone returns a deep copy so callers can mutate the result freely.
func (h Habit) Clone() Habit {
	out := h
	out.CompletedDates = append([]string(nil), h.CompletedDates...)
	if out.CompletedDates == nil {
		out.CompletedDates = []string{}
	}
	if h.Unit != nil {
		unit := *h.Unit
		out.Unit = &unit
	}
	return out
}

func (h Habit) completedOn(key string) bool {
	for _, d := range h.CompletedDates {
		if d == key {
			return true
		}
	}
	return false
}

// IsCompletedOn reports whether the calendar day of now is marked done.
func IsCompletedOn(h Habit, now time.Time) bool {
	return h.completedOn(DayKey(now))
}

// ToggleCompletion marks or unmarks the day of now and recomputes the
// streak. The input habit is left untouched.
func ToggleCompletion(h Habit, now time.Time) Habit {
	today := DayKey(now)
	out := h.Clone()

	if h.completedOn(today) {
		kept := make([]string, 0, len(out.CompletedDates))
		for _, d := range out.CompletedDates {
			if d != today {
				kept = append(kept, d)
			}
		}
		out.CompletedDates = kept
	} else {
		out.CompletedDates = append(out.CompletedDates, today)
	}

	out.Streak = CalculateStreak(out.CompletedDates, now)
	return out
}

// RefreshStreak recomputes the derived streak for the day of now and
// reports whether it changed.
func RefreshStreak(h Habit, now time.Time) (Habit, bool) {
	streak := CalculateStreak(h.CompletedDates, now)
	if streak == h.Streak {
		return h, false
	}
	out := h.Clone()
	out.Streak = streak
	return out, true
}

func FindHabit(habits []Habit, id string) (int, bool) {
	for i, h := range habits {
		if h.ID == id {
			return i, true
		}
	}
	return -1, false
}
