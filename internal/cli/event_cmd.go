package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/alexanderramin/onlyone/internal/cli/formatter"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/ics"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/spf13/cobra"
)

func newEventCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}

	cmd.AddCommand(
		newEventAddCmd(app),
		newEventListCmd(app),
		newEventEditCmd(app),
		newEventRemoveCmd(app),
		newEventImportCmd(app),
	)

	return cmd
}

func newEventAddCmd(app *App) *cobra.Command {
	var title, date, start, end, notes string
	var allDay bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(date, app.now())
			if err != nil {
				return err
			}
			e := &domain.Event{
				Title:  title,
				Notes:  notes,
				Date:   day,
				AllDay: allDay,
			}
			if !allDay {
				if e.StartTime, err = parseClock(day, start); err != nil {
					return err
				}
				if e.EndTime, err = parseClock(day, end); err != nil {
					return err
				}
			}

			if err := app.Events.Create(context.Background(), e); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added event %s on %s (%s)\n",
				e.Title, formatter.DateLabel(e.Date), formatter.TruncID(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, today, tomorrow; default today)")
	cmd.Flags().StringVar(&start, "start", "09:00", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "10:00", "End time (HH:MM)")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day event")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newEventListCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.Events.List(context.Background())
			if err != nil {
				return err
			}

			title := "Events"
			if month != "" {
				m, err := parseMonth(month, app.now())
				if err != nil {
					return err
				}
				events = schedule.ForMonth(m.Year(), m.Month(), events, nil, nil).Events
				title = formatter.MonthTitle(m) + " Events"
			} else {
				events = sortEventsByDate(events)
			}

			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No events found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.FormatEvents(events)))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Only this month (YYYY-MM)")

	return cmd
}

// sortEventsByDate orders by date, then by the within-day event order.
func sortEventsByDate(events []domain.Event) []domain.Event {
	out := schedule.SortEvents(events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func newEventEditCmd(app *App) *cobra.Command {
	var title, date, start, end, notes string
	var allDay bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Events.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			e.Title = domain.StrFromPtrWithDefault(e.Title, changedStr(cmd, "title", title))
			e.Notes = domain.StrFromPtrWithDefault(e.Notes, changedStr(cmd, "notes", notes))
			e.AllDay = domain.BoolFromPtrWithDefault(e.AllDay, changedBool(cmd, "all-day", allDay))
			if flags.Changed("date") {
				day, err := parseDate(date, app.now())
				if err != nil {
					return err
				}
				e.StartTime = moveToDay(e.StartTime, e.Date, day)
				e.EndTime = moveToDay(e.EndTime, e.Date, day)
				e.Date = day
			}
			if flags.Changed("start") {
				if e.StartTime, err = parseClock(e.Date, start); err != nil {
					return err
				}
			}
			if flags.Changed("end") {
				if e.EndTime, err = parseClock(e.Date, end); err != nil {
					return err
				}
			}

			if err := app.Events.Update(ctx, e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated event %s\n", e.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().BoolVar(&allDay, "all-day", false, "All-day event")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newEventRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an event",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEventID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Events.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted event %s\n", formatter.TruncID(id))
			return nil
		},
	}

	return cmd
}

func newEventImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.ics>",
		Short: "Import events from an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			events, skipped, err := ics.ParseEvents(f, app.now().Location())
			if err != nil {
				return err
			}

			ctx := context.Background()
			imported := 0
			for i := range events {
				if err := app.Events.Create(ctx, &events[i]); err != nil {
					return fmt.Errorf("importing %q: %w", events[i].Title, err)
				}
				imported++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d events", imported)
			if skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%d skipped)", skipped)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	return cmd
}
