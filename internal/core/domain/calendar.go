package domain

import (
	"errors"
	"time"
)

const MonthLayout = "2006-01"

var ErrInvalidMonth = errors.New("invalid month (must be YYYY-MM)")

type DayCompletion struct {
	Date      time.Time `json:"date"`
	Day       string    `json:"day"`
	Completed bool      `json:"completed"`
	IsToday   bool      `json:"isToday"`
}

// MonthlyCompletions lists every calendar day of month's month, from the
// 1st to the last day in ascending order.
func MonthlyCompletions(h Habit, month, now time.Time) []DayCompletion {
	loc := month.Location()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()

	done := make(map[string]bool, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		done[d] = true
	}

	localNow := now.In(loc)
	out := make([]DayCompletion, 0, days)
	for i := 0; i < days; i++ {
		day := time.Date(first.Year(), first.Month(), 1+i, 0, 0, 0, 0, loc)
		key := DayKey(day)
		out = append(out, DayCompletion{
			Date:      day,
			Day:       key,
			Completed: done[key],
			IsToday:   sameDay(day, localNow),
		})
	}
	return out
}

func ParseMonth(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(MonthLayout, raw, loc)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return t, nil
}
