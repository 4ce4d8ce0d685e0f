package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/onlyone/internal/cli/formatter"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/spf13/cobra"
)

func newShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Log work shifts and see income",
	}

	cmd.AddCommand(
		newShiftAddCmd(app),
		newShiftListCmd(app),
		newShiftPreviewCmd(app),
		newShiftStatsCmd(app),
		newShiftEditCmd(app),
		newShiftRemoveCmd(app),
	)

	return cmd
}

// shiftFlags are the fields shared by add and preview.
type shiftFlags struct {
	workplace, date, start, end, notes string
	breakMin                           int
}

func (f *shiftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.workplace, "workplace", "", "Workplace name or ID")
	cmd.Flags().StringVar(&f.date, "date", "", "Date (YYYY-MM-DD, today, tomorrow; default today)")
	cmd.Flags().StringVar(&f.start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&f.end, "end", "", "End time (HH:MM, 24:00 for midnight)")
	cmd.Flags().IntVar(&f.breakMin, "break", 0, "Unpaid break in minutes")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("workplace")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
}

func (f *shiftFlags) build(ctx context.Context, app *App) (*domain.Shift, error) {
	wp, err := resolveWorkplace(ctx, app, f.workplace)
	if err != nil {
		return nil, err
	}
	day, err := parseDate(f.date, app.now())
	if err != nil {
		return nil, err
	}
	start, err := parseClock(day, f.start)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(day, f.end)
	if err != nil {
		return nil, err
	}
	return &domain.Shift{
		Date:         day,
		StartTime:    start,
		EndTime:      end,
		WorkplaceID:  wp.ID,
		BreakMinutes: f.breakMin,
		Notes:        f.notes,
	}, nil
}

func newShiftAddCmd(app *App) *cobra.Command {
	var f shiftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := f.build(ctx, app)
			if err != nil {
				return err
			}
			if err := app.Shifts.Create(ctx, s); err != nil {
				return err
			}
			view, err := app.Shifts.Preview(ctx, s)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged shift at %s on %s: %s, %s (%s)\n",
				view.Workplace.Name, formatter.DateLabel(s.Date),
				formatter.FormatHours(view.Pay.WorkedHours), formatter.FormatYen(view.Pay.Wage),
				formatter.TruncID(s.ID))
			return nil
		},
	}

	f.register(cmd)

	return cmd
}

func newShiftPreviewCmd(app *App) *cobra.Command {
	var f shiftFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the pay a shift would earn without saving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := f.build(ctx, app)
			if err != nil {
				return err
			}
			view, err := app.Shifts.Preview(ctx, s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Preview", formatter.FormatPreview(view)))
			return nil
		},
	}

	f.register(cmd)

	return cmd
}

func newShiftListCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a month's shifts with pay",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(month, app.now())
			if err != nil {
				return err
			}
			views, err := app.Shifts.ListMonth(context.Background(), m.Year(), m.Month())
			if err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No shifts in %s.\n", formatter.MonthTitle(m))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(formatter.MonthTitle(m)+" Shifts", formatter.FormatShifts(views)))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM, default current)")

	return cmd
}

func newShiftStatsCmd(app *App) *cobra.Command {
	var month string
	var year int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show hours and income for a month or a whole year",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("year") {
				report, err := app.Stats.Yearly(ctx, year)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.RenderBox(fmt.Sprintf("%d年 Income", report.Year), formatter.FormatYearReport(report)))
				return nil
			}

			m, err := parseMonth(month, app.now())
			if err != nil {
				return err
			}
			st, err := app.Stats.Monthly(ctx, m.Year(), m.Month())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.RenderBox(formatter.MonthTitle(m)+" Income", formatter.FormatMonthlyStats(st)))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM, default current)")
	cmd.Flags().IntVar(&year, "year", 0, "Show the twelve months of this year instead")
	cmd.MarkFlagsMutuallyExclusive("month", "year")

	return cmd
}

func newShiftEditCmd(app *App) *cobra.Command {
	var workplace, date, start, end, notes string
	var breakMin int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveShiftID(ctx, app, args[0])
			if err != nil {
				return err
			}
			s, err := app.Shifts.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("workplace") {
				wp, err := resolveWorkplace(ctx, app, workplace)
				if err != nil {
					return err
				}
				s.WorkplaceID = wp.ID
			}
			if flags.Changed("date") {
				day, err := parseDate(date, app.now())
				if err != nil {
					return err
				}
				s.StartTime = moveToDay(s.StartTime, s.Date, day)
				s.EndTime = moveToDay(s.EndTime, s.Date, day)
				s.Date = day
			}
			if flags.Changed("start") {
				if s.StartTime, err = parseClock(s.Date, start); err != nil {
					return err
				}
			}
			if flags.Changed("end") {
				if s.EndTime, err = parseClock(s.Date, end); err != nil {
					return err
				}
			}
			s.BreakMinutes = domain.IntFromPtrWithDefault(s.BreakMinutes, changedInt(cmd, "break", breakMin))
			s.Notes = domain.StrFromPtrWithDefault(s.Notes, changedStr(cmd, "notes", notes))

			if err := app.Shifts.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated shift %s\n", formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&workplace, "workplace", "", "Workplace name or ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().IntVar(&breakMin, "break", 0, "Unpaid break in minutes")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newShiftRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a shift",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveShiftID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Shifts.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted shift %s\n", formatter.TruncID(id))
			return nil
		},
	}

	return cmd
}
