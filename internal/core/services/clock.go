package services

import "time"

// Clock yields the reference instant used to derive calendar days.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func SystemClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}
