package domain

import "time"

const (
	AchievementFirstHabit    = "first-habit"
	AchievementWeekWarrior   = "week-warrior"
	AchievementPerfectDay    = "perfect-day"
	AchievementMonthMaster   = "month-master"
	AchievementRoutineMaster = "routine-master"
)

type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// AchievementCatalog returns the fixed catalog, all locked.
func AchievementCatalog() []Achievement {
	return []Achievement{
		{ID: AchievementFirstHabit, Name: "Getting Started", Description: "Create your first habit", Icon: "🎯"},
		{ID: AchievementWeekWarrior, Name: "Week Warrior", Description: "Maintain a 7-day streak", Icon: "🔥"},
		{ID: AchievementPerfectDay, Name: "Perfect Day", Description: "Complete all habits in a day", Icon: "⭐"},
		{ID: AchievementMonthMaster, Name: "Month Master", Description: "Maintain a 30-day streak", Icon: "👑"},
		{ID: AchievementRoutineMaster, Name: "Routine Master", Description: "Create your first daily routine", Icon: "📅"},
	}
}

type achievementRule struct {
	id  string
	met func(HabitStats) bool
}

var habitRules = []achievementRule{
	{id: AchievementFirstHabit, met: func(s HabitStats) bool { return s.TotalHabits >= 1 }},
	{id: AchievementWeekWarrior, met: func(s HabitStats) bool { return s.LongestStreak >= 7 }},
	{id: AchievementPerfectDay, met: func(s HabitStats) bool { return s.TotalHabits > 0 && s.CompletionRate == 100 }},
	{id: AchievementMonthMaster, met: func(s HabitStats) bool { return s.LongestStreak >= 30 }},
}

func cloneAchievements(in []Achievement) []Achievement {
	out := make([]Achievement, len(in))
	for i, a := range in {
		out[i] = a
		if a.UnlockedAt != nil {
			at := *a.UnlockedAt
			out[i].UnlockedAt = &at
		}
	}
	return out
}

// unlock flips a locked entry to unlocked and stamps it. Already unlocked
// entries keep their original timestamp.
func unlock(a *Achievement, now time.Time) bool {
	if a.Unlocked {
		return false
	}
	at := now.UTC()
	a.Unlocked = true
	a.UnlockedAt = &at
	return true
}

// CheckAchievements evaluates the habit rules and returns an updated copy.
// Ids missing from achievements are never created here.
func CheckAchievements(habits []Habit, achievements []Achievement, now time.Time) []Achievement {
	stats := CalculateHabitStats(habits, now)
	out := cloneAchievements(achievements)

	for _, rule := range habitRules {
		if !rule.met(stats) {
			continue
		}
		for i := range out {
			if out[i].ID == rule.id {
				unlock(&out[i], now)
			}
		}
	}
	return out
}

func UnlockAchievement(achievements []Achievement, id string, now time.Time) ([]Achievement, bool) {
	out := cloneAchievements(achievements)
	changed := false
	for i := range out {
		if out[i].ID == id && unlock(&out[i], now) {
			changed = true
		}
	}
	return out, changed
}

// NewlyUnlocked lists the entries unlocked in after but not in before.
func NewlyUnlocked(before, after []Achievement) []Achievement {
	was := make(map[string]bool, len(before))
	for _, a := range before {
		was[a.ID] = a.Unlocked
	}

	var out []Achievement
	for _, a := range after {
		if a.Unlocked && !was[a.ID] {
			out = append(out, a)
		}
	}
	return out
}

// SeedAchievements appends catalog entries missing from existing, keeping
// the persisted entries and their order untouched.
func SeedAchievements(existing []Achievement) []Achievement {
	out := cloneAchievements(existing)
	have := make(map[string]bool, len(out))
	for _, a := range out {
		have[a.ID] = true
	}
	for _, a := range AchievementCatalog() {
		if !have[a.ID] {
			out = append(out, a)
		}
	}
	return out
}
