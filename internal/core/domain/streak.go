package domain

import (
	"sort"
	"time"
)

// CalculateStreak counts consecutive completed days walking backward from
// the day of now. The walk is anchored at today: if today is not completed
// the streak is 0 even when yesterday closes an unbroken run.
func CalculateStreak(dates []string, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	done := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		done[d] = struct{}{}
	}

	streak := 0
	for {
		if _, ok := done[daysBefore(now, streak)]; !ok {
			return streak
		}
		streak++
	}
}

// LongestRun returns the longest run of consecutive days anywhere in the
// history. Malformed keys and duplicates are ignored.
func LongestRun(dates []string) int {
	seen := make(map[string]bool, len(dates))
	var days []time.Time

	for _, d := range dates {
		if seen[d] {
			continue
		}
		t, err := time.Parse(DayKeyLayout, d)
		if err != nil {
			continue
		}
		seen[d] = true
		days = append(days, t)
	}

	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	longest, current := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}

	return longest
}
