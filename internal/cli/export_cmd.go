package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/onlyone/internal/ics"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export schedule data",
	}

	cmd.AddCommand(newExportICSCmd(app))

	return cmd
}

func newExportICSCmd(app *App) *cobra.Command {
	var year int
	var out, name string
	var tasks bool

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export a year's events and shifts as iCalendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if year == 0 {
				year = app.now().Year()
			}

			src, err := exportSource(ctx, app, year)
			if err != nil {
				return err
			}
			opts := ics.Options{Name: name, IncludeTasks: tasks, Stamp: app.now()}

			if out == "" || out == "-" {
				return ics.Write(cmd.OutOrStdout(), *src, opts)
			}

			var buf bytes.Buffer
			if err := ics.Write(&buf, *src, opts); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			n := len(src.Events) + len(src.Shifts)
			if tasks {
				n += len(src.Tasks)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d items to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to export (default current)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&name, "name", "onlyone", "Calendar name")
	cmd.Flags().BoolVar(&tasks, "tasks", false, "Include tasks as all-day items")

	return cmd
}

// exportSource gathers every item dated in year, month by month.
func exportSource(ctx context.Context, app *App, year int) (*ics.Source, error) {
	events, err := app.Events.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := app.Tasks.List(ctx, schedule.SortDueDate)
	if err != nil {
		return nil, err
	}
	shifts, err := app.Shifts.List(ctx)
	if err != nil {
		return nil, err
	}
	workplaces, err := app.Workplaces.List(ctx)
	if err != nil {
		return nil, err
	}

	src := &ics.Source{Workplaces: workplaces}
	for m := time.January; m <= time.December; m++ {
		items := schedule.ForMonth(year, m, events, tasks, shifts)
		src.Events = append(src.Events, items.Events...)
		src.Tasks = append(src.Tasks, items.Tasks...)
		src.Shifts = append(src.Shifts, items.Shifts...)
	}
	return src, nil
}
