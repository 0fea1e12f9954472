package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
	"github.com/comitanigiacomo/streak-radar/internal/core/services"
)

func (c *cli) newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "habit",
		Aliases: []string{"habits"},
		Short:   "Manage habits",
	}
	cmd.AddCommand(
		c.newHabitAddCmd(),
		c.newHabitListCmd(),
		c.newHabitShowCmd(),
		c.newHabitToggleCmd(),
		c.newHabitDeleteCmd(),
		c.newHabitCalendarCmd(),
		c.newHabitRefreshCmd(),
	)
	return cmd
}

func (c *cli) newHabitAddCmd() *cobra.Command {
	var category, unit string
	var target int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Create a habit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			change, err := c.app.Habits.Create(cmd.Context(), services.CreateHabitInput{
				Name:     strings.Join(args, " "),
				Category: category,
				Target:   target,
				Unit:     unit,
			})
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(change)
			}
			c.println("Habit created: %s (%s)", change.Habit.Name, change.Habit.ID)
			c.printUnlocked(change.Unlocked)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(domain.CategoryHealth), "Category: health, productivity, learning, mindfulness, social or creative")
	cmd.Flags().IntVar(&target, "target", 0, "Daily target, defaults to 1")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit for the target (optional)")
	return cmd
}

func (c *cli) newHabitListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits with today's status",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := c.app.Habits.List(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(habits)
			}
			if len(habits) == 0 {
				c.println("No habits yet.")
				return nil
			}

			today := c.app.Clock.Now().In(c.app.Clock.Location)
			w := c.table("ID", "NAME", "CATEGORY", "STREAK", "TODAY")
			for _, h := range habits {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", h.ID, h.Name, h.Category, h.Streak, check(domain.IsCompletedOn(h, today)))
			}
			return w.Flush()
		},
	}
}

func (c *cli) newHabitShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.app.Habits.Detail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(detail)
			}
			c.println("%s (%s)", detail.Name, detail.Category)
			c.println("  streak:       %d", detail.Streak)
			c.println("  longest run:  %d", detail.LongestRun)
			c.println("  completions:  %d", len(detail.CompletedDates))
			c.println("  done today:   %s", check(detail.CompletedToday))
			return nil
		},
	}
}

func (c *cli) newHabitToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Mark or unmark today's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			change, err := c.app.Habits.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(change)
			}
			c.println("%s: streak %d", change.Habit.Name, change.Habit.Streak)
			c.printUnlocked(change.Unlocked)
			return nil
		},
	}
}

func (c *cli) newHabitDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a habit and its history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Habits.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.println("Habit deleted: %s", args[0])
			return nil
		},
	}
}

func (c *cli) newHabitCalendarCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar ID",
		Short: "Show the monthly completion grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.app.Habits.ResolveMonth(month)
			if err != nil {
				return err
			}
			days, err := c.app.Habits.Calendar(cmd.Context(), args[0], m)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(days)
			}
			c.println("%s", renderCalendar(days))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month as YYYY-MM, defaults to the current month")
	return cmd
}

func (c *cli) newHabitRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Recompute stored streaks for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Habits.RefreshStreaks(cmd.Context())
			if err != nil {
				return err
			}
			c.println("Streaks updated: %d", result.Changed)
			c.printUnlocked(result.Unlocked)
			return nil
		},
	}
}

// renderCalendar lays days out in Monday-first weeks. Completed days are
// shown as "##", today is wrapped in brackets.
func renderCalendar(days []domain.DayCompletion) string {
	if len(days) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(days[0].Date.Format("January 2006"))
	b.WriteString("\n Mo  Tu  We  Th  Fr  Sa  Su\n")

	offset := (int(days[0].Date.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("    ", offset))

	for i, d := range days {
		cell := fmt.Sprintf("%2d", d.Date.Day())
		if d.Completed {
			cell = "##"
		}
		if d.IsToday {
			fmt.Fprintf(&b, "[%s]", cell)
		} else {
			fmt.Fprintf(&b, " %s ", cell)
		}
		if (offset+i+1)%7 == 0 && i < len(days)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (c *cli) printUnlocked(list []domain.Achievement) {
	for _, a := range list {
		c.println("Achievement unlocked: %s %s", a.Icon, a.Name)
	}
}

func check(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}
