package domain

import (
	"errors"
	"time"
)

const DayKeyLayout = "2006-01-02"

var ErrInvalidDayKey = errors.New("invalid day key (must be YYYY-MM-DD)")

// DayKey formats t as a local calendar day in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// daysBefore returns the key of the calendar day n days before t.
// Calendar arithmetic is done on the wall-clock date at noon so DST
// transitions never shift the result to a neighbouring day.
func daysBefore(t time.Time, n int) string {
	y, m, d := t.Date()
	return time.Date(y, m, d-n, 12, 0, 0, 0, t.Location()).Format(DayKeyLayout)
}

func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DayKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDayKey
	}
	return t, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
