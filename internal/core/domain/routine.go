package domain

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrTaskNameEmpty       = errors.New("routine task name cannot be empty")
	ErrTaskNameTooLong     = errors.New("routine task name is too long (max 100 chars)")
	ErrInvalidStartTime    = errors.New("invalid start time format (must be HH:MM 24h)")
	ErrInvalidDuration     = errors.New("duration must be a positive number of minutes")
	ErrInvalidTaskCategory = errors.New("invalid task category (must be habit, goal or routine)")
	ErrInvalidRecurrence   = errors.New("invalid recurrence (must be none, daily, weekly or monthly)")
	ErrInvalidPriority     = errors.New("invalid priority (must be low, medium or high)")
	ErrRoutineTaskNotFound = errors.New("routine task not found")
)

var clockRegex = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)

const (
	MaxTaskNameLen = 100
	MinutesPerDay  = 24 * 60
)

type TaskCategory string

const (
	TaskCategoryHabit   TaskCategory = "habit"
	TaskCategoryGoal    TaskCategory = "goal"
	TaskCategoryRoutine TaskCategory = "routine"
)

// Color is the swatch shown next to tasks of this category.
func (c TaskCategory) Color() string {
	switch c {
	case TaskCategoryHabit:
		return "#8B5CF6"
	case TaskCategoryGoal:
		return "#7C3AED"
	case TaskCategoryRoutine:
		return "#5B21B6"
	}
	return ""
}

func (c TaskCategory) Valid() bool {
	switch c {
	case TaskCategoryHabit, TaskCategoryGoal, TaskCategoryRoutine:
		return true
	}
	return false
}

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type RoutineTask struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	StartTime   string       `json:"startTime"`
	EndTime     string       `json:"endTime"`
	Duration    int          `json:"duration"`
	Category    TaskCategory `json:"category"`
	Description string       `json:"description,omitempty"`
	Recurrence  Recurrence   `json:"recurrence,omitempty"`
	Priority    Priority     `json:"priority,omitempty"`
	Completed   bool         `json:"completed"`
	Color       string       `json:"color,omitempty"`
}

type RoutineTaskInput struct {
	Name        string
	StartTime   string
	Duration    int
	Category    TaskCategory
	Description string
	Recurrence  Recurrence
	Priority    Priority
}

// ClockMinutes converts a zero-padded HH:MM string to minutes past midnight.
func ClockMinutes(clock string) (int, error) {
	if !clockRegex.MatchString(clock) {
		return 0, ErrInvalidStartTime
	}
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, ErrInvalidStartTime
	}
	return h*60 + m, nil
}

// AddClock returns clock shifted by minutes, wrapping past midnight.
func AddClock(clock string, minutes int) (string, error) {
	start, err := ClockMinutes(clock)
	if err != nil {
		return "", err
	}
	total := ((start+minutes)%MinutesPerDay + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

func NewRoutineTask(input RoutineTaskInput) (*RoutineTask, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTaskNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxTaskNameLen {
		return nil, ErrTaskNameTooLong
	}
	if input.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	category := input.Category
	if category == "" {
		category = TaskCategoryRoutine
	}
	if !category.Valid() {
		return nil, ErrInvalidTaskCategory
	}

	recurrence := input.Recurrence
	if recurrence == "" {
		recurrence = RecurrenceDaily
	}
	if !recurrence.Valid() {
		return nil, ErrInvalidRecurrence
	}

	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	endTime, err := AddClock(input.StartTime, input.Duration)
	if err != nil {
		return nil, err
	}

	return &RoutineTask{
		ID:          uuid.NewString(),
		Name:        name,
		StartTime:   input.StartTime,
		EndTime:     endTime,
		Duration:    input.Duration,
		Category:    category,
		Description: strings.TrimSpace(input.Description),
		Recurrence:  recurrence,
		Priority:    priority,
		Completed:   false,
		Color:       category.Color(),
	}, nil
}

func AddTask(tasks []RoutineTask, task RoutineTask) []RoutineTask {
	out := make([]RoutineTask, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, task)
}

func ToggleTask(tasks []RoutineTask, id string) ([]RoutineTask, bool) {
	out := append([]RoutineTask(nil), tasks...)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			return out, true
		}
	}
	return out, false
}

func RemoveTask(tasks []RoutineTask, id string) ([]RoutineTask, bool) {
	out := make([]RoutineTask, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	return out, found
}

// SortByStartTime orders a copy of tasks by their HH:MM start time. Equal
// start times keep their insertion order.
func SortByStartTime(tasks []RoutineTask) []RoutineTask {
	out := append([]RoutineTask(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// NextOccurrence is the next wall-clock instant at the task's start time:
// today if it is still ahead of now, otherwise tomorrow.
func NextOccurrence(task RoutineTask, now time.Time) (time.Time, error) {
	minutes, err := ClockMinutes(task.StartTime)
	if err != nil {
		return time.Time{}, err
	}

	y, m, d := now.Date()
	at := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, now.Location())
	if at.Before(now) {
		at = time.Date(y, m, d+1, minutes/60, minutes%60, 0, 0, now.Location())
	}
	return at, nil
}
