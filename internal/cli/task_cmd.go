package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/onlyone/internal/cli/formatter"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func parsePriority(input string) (domain.TaskPriority, error) {
	p := strings.ToLower(input)
	switch p {
	case "高":
		p = "high"
	case "中":
		p = "medium"
	case "低":
		p = "low"
	}
	if !domain.ValidPriorities[p] {
		return "", fmt.Errorf("invalid priority %q (want low, medium or high)", input)
	}
	return domain.TaskPriority(p), nil
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, due, priority, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(due, app.now())
			if err != nil {
				return err
			}
			prio, err := parsePriority(priority)
			if err != nil {
				return err
			}

			t := &domain.Task{
				Title:    title,
				Notes:    notes,
				Date:     day,
				Priority: prio,
			}
			if err := app.Tasks.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s due %s (%s)\n",
				t.Title, formatter.DateLabel(t.Date), formatter.TruncID(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, today, tomorrow; default today)")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority: low, medium, high")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var sortFlag string
	var open bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := taskSortFlag(app, sortFlag)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.List(context.Background(), mode)
			if err != nil {
				return err
			}

			pending, done := schedule.SplitByCompletion(tasks)
			if !open {
				pending = append(pending, done...)
			}
			if len(pending) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			title := fmt.Sprintf("Tasks (%s)", mode)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.FormatTasks(pending, app.now())))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "", "Order: "+strings.Join(taskSortNames(), ", ")+" (default from config)")
	cmd.Flags().BoolVar(&open, "open", false, "Hide completed tasks")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between open and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.ToggleCompleted(ctx, id)
			if err != nil {
				return err
			}

			state := "reopened"
			if t.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s %s\n", t.Title, state)
			return nil
		},
	}

	return cmd
}

func newTaskEditCmd(app *App) *cobra.Command {
	var title, due, priority, notes string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			t.Title = domain.StrFromPtrWithDefault(t.Title, changedStr(cmd, "title", title))
			t.Notes = domain.StrFromPtrWithDefault(t.Notes, changedStr(cmd, "notes", notes))
			if cmd.Flags().Changed("due") {
				if t.Date, err = parseDate(due, app.now()); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("priority") {
				if t.Priority, err = parsePriority(priority); err != nil {
					return err
				}
			}

			if err := app.Tasks.Update(ctx, t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", t.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium, high")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", formatter.TruncID(id))
			return nil
		},
	}

	return cmd
}
