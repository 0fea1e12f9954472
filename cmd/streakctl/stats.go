package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show today's summary and the category radar",
		RunE: func(cmd *cobra.Command, args []string) error {
			overview, err := c.app.Stats.Overview(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(overview)
			}

			s := overview.Stats
			c.println("Habits:            %d", s.TotalHabits)
			c.println("Completed today:   %d", s.CompletedToday)
			c.println("Completion rate:   %.0f%%", s.CompletionRate)
			c.println("Longest streak:    %d", s.LongestStreak)
			c.println("Total completions: %d", s.TotalCompletions)
			c.println("")

			w := c.table("CATEGORY", "TODAY")
			for _, p := range overview.Radar {
				fmt.Fprintf(w, "%s\t%.0f%%\n", p.Category, p.Value)
			}
			return w.Flush()
		},
	}
}

func (c *cli) newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and their unlock state",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Achievements.List(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(list)
			}

			w := c.table("", "NAME", "UNLOCKED", "DESCRIPTION")
			for _, a := range list {
				unlocked := "-"
				if a.Unlocked && a.UnlockedAt != nil {
					unlocked = a.UnlockedAt.Format("2006-01-02")
				} else if a.Unlocked {
					unlocked = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Icon, a.Name, unlocked, a.Description)
			}
			return w.Flush()
		},
	}
}

func (c *cli) newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Dump the full persisted state as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := c.app.State.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(state)
		},
	}
}
