package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/cli/formatter"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the month, year or day view",
	}

	cmd.AddCommand(
		newCalendarMonthCmd(app),
		newCalendarYearCmd(app),
		newCalendarDayCmd(app),
	)

	return cmd
}

func newCalendarMonthCmd(app *App) *cobra.Command {
	var offset int
	var list bool

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "Show a month grid with event, task and shift markers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			anchor, err := parseMonth(input, app.now())
			if err != nil {
				return err
			}
			anchor = calendar.ShiftMonth(anchor, offset)

			view, err := app.Calendar.Month(context.Background(), anchor)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.RenderBox(formatter.MonthTitle(view.Month), formatter.FormatMonth(view)))

			if list {
				items := view.Items
				if len(items.Events) > 0 {
					fmt.Fprintln(out, formatter.Header("予定"))
					fmt.Fprint(out, formatter.FormatEvents(items.Events))
				}
				if len(items.Tasks) > 0 {
					fmt.Fprintln(out, formatter.Header("課題"))
					fmt.Fprint(out, formatter.FormatTasks(items.Tasks, app.now()))
				}
				if len(items.Shifts) > 0 {
					views, err := app.Shifts.ListMonth(context.Background(), items.Year, items.Month)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, formatter.Header("シフト"))
					fmt.Fprint(out, formatter.FormatShifts(views))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Months to move from the given month (e.g. -1 for the previous month)")
	cmd.Flags().BoolVar(&list, "list", false, "List the month's events, tasks and shifts under the grid")

	return cmd
}

func newCalendarYearCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year [YYYY]",
		Short: "Show all twelve months of a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := app.now().Year()
			if len(args) == 1 {
				y, err := parseYear(args[0])
				if err != nil {
					return err
				}
				year = y
			}

			window := app.Calendar.YearWindow()
			if year < window[0] || year > window[len(window)-1] {
				return fmt.Errorf("year %d is outside %d-%d", year, window[0], window[len(window)-1])
			}

			view, err := app.Calendar.Year(context.Background(), year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(fmt.Sprintf("%d年", view.Year), formatter.FormatYear(view)))
			return nil
		},
	}

	return cmd
}

func newCalendarDayCmd(app *App) *cobra.Command {
	var sortFlag string

	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "List everything scheduled on one day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			day, err := parseDate(input, app.now())
			if err != nil {
				return err
			}
			mode, err := taskSortFlag(app, sortFlag)
			if err != nil {
				return err
			}

			ctx := context.Background()
			items, err := app.Calendar.Day(ctx, day, mode)
			if err != nil {
				return err
			}
			workplaces, err := app.Workplaces.List(ctx)
			if err != nil {
				return err
			}

			title := formatter.DateLabel(items.Date)
			if name := calendar.DefaultHolidays.Name(items.Date); name != "" {
				title += " " + name
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.FormatDay(items, workplaces)))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "", "Task order: "+strings.Join(taskSortNames(), ", ")+" (default from config)")

	return cmd
}

// taskSortFlag resolves a --sort flag, falling back to the configured default.
func taskSortFlag(app *App, input string) (schedule.TaskSortMode, error) {
	if input == "" {
		return app.config().TaskSortMode(), nil
	}
	return schedule.ParseTaskSortMode(input)
}

func taskSortNames() []string {
	return []string{string(schedule.SortAdded), string(schedule.SortPriority), string(schedule.SortDueDate)}
}
