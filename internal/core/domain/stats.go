package domain

import "time"

const RadarFullMark = 100

type HabitStats struct {
	TotalHabits      int     `json:"totalHabits"`
	CompletedToday   int     `json:"completedToday"`
	LongestStreak    int     `json:"longestStreak"`
	TotalCompletions int     `json:"totalCompletions"`
	CompletionRate   float64 `json:"completionRate"`
}

type RadarPoint struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	FullMark int     `json:"fullMark"`
}

func percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func CalculateHabitStats(habits []Habit, now time.Time) HabitStats {
	stats := HabitStats{TotalHabits: len(habits)}

	for _, h := range habits {
		if IsCompletedOn(h, now) {
			stats.CompletedToday++
		}
		if h.Streak > stats.LongestStreak {
			stats.LongestStreak = h.Streak
		}
		stats.TotalCompletions += len(h.CompletedDates)
	}

	stats.CompletionRate = percentage(stats.CompletedToday, stats.TotalHabits)
	return stats
}

// RadarChartData returns one point per category, in Categories() order,
// holding the share of that category's habits completed today.
func RadarChartData(habits []Habit, now time.Time) []RadarPoint {
	total := make(map[Category]int)
	completed := make(map[Category]int)

	for _, h := range habits {
		total[h.Category]++
		if IsCompletedOn(h, now) {
			completed[h.Category]++
		}
	}

	categories := Categories()
	points := make([]RadarPoint, 0, len(categories))
	for _, c := range categories {
		points = append(points, RadarPoint{
			Category: c.Label(),
			Value:    percentage(completed[c], total[c]),
			FullMark: RadarFullMark,
		})
	}
	return points
}
