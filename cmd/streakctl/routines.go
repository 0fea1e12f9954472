package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
)

func (c *cli) newRoutineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routine",
		Aliases: []string{"routines"},
		Short:   "Manage the daily routine timeline",
	}
	cmd.AddCommand(
		c.newRoutineAddCmd(),
		c.newRoutineListCmd(),
		c.newRoutineToggleCmd(),
		c.newRoutineRemoveCmd(),
	)
	return cmd
}

func (c *cli) newRoutineAddCmd() *cobra.Command {
	var input domain.RoutineTaskInput
	var category, recurrence, priority string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a routine task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = strings.Join(args, " ")
			input.Category = domain.TaskCategory(category)
			input.Recurrence = domain.Recurrence(recurrence)
			input.Priority = domain.Priority(priority)

			change, err := c.app.Routines.Add(cmd.Context(), input)
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(change)
			}
			c.println("Routine task added: %s %s-%s (%s)", change.Task.Name, change.Task.StartTime, change.Task.EndTime, change.Task.ID)
			c.printUnlocked(change.Unlocked)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input.StartTime, "start", "s", "", "Start time as HH:MM (required)")
	cmd.Flags().IntVar(&input.Duration, "duration", 30, "Duration in minutes")
	cmd.Flags().StringVar(&input.Description, "description", "", "Description (optional)")
	cmd.Flags().StringVar(&category, "category", "", "Category: habit, goal or routine")
	cmd.Flags().StringVar(&recurrence, "recurrence", "", "Recurrence: none, daily, weekly or monthly")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium or high")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func (c *cli) newRoutineListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List routine tasks by start time",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := c.app.Routines.List(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(tasks)
			}
			if len(tasks) == 0 {
				c.println("No routine tasks yet.")
				return nil
			}

			w := c.table("ID", "TIME", "NAME", "CATEGORY", "REPEAT", "DONE")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s-%s\t%s\t%s\t%s\t%s\n", t.ID, t.StartTime, t.EndTime, t.Name, t.Category, t.Recurrence, check(t.Completed))
			}
			return w.Flush()
		},
	}
}

func (c *cli) newRoutineToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Flip a routine task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.app.Routines.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if c.asJSON {
				return c.printJSON(task)
			}
			c.println("%s: done %s", task.Name, check(task.Completed))
			return nil
		},
	}
}

func (c *cli) newRoutineRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a routine task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Routines.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			c.println("Routine task removed: %s", args[0])
			return nil
		},
	}
}
