package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/onlyone/internal/cli/formatter"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/timetable"
	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage the class timetable",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseGridCmd(app),
		newCourseEditCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

// termFlags resolves --year/--semester, defaulting to the term containing now.
type termFlags struct {
	year     int
	semester string
}

func (f *termFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.year, "year", 0, "Academic year (default current)")
	cmd.Flags().StringVar(&f.semester, "semester", "", "Semester: first or second (default current)")
}

func (f *termFlags) resolve(app *App) (int, domain.Semester, error) {
	year, sem := timetable.TermFor(app.now())
	if f.year != 0 {
		year = f.year
	}
	if f.semester != "" {
		s, err := parseSemester(f.semester)
		if err != nil {
			return 0, "", err
		}
		sem = s
	}
	return year, sem, nil
}

func newCourseAddCmd(app *App) *cobra.Command {
	var title, weekday, room, professor, color, notes string
	var period int
	var term termFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a course to a timetable slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := parseWeekday(weekday)
			if err != nil {
				return err
			}
			c, err := parseColor(color)
			if err != nil {
				return err
			}
			year, sem, err := term.resolve(app)
			if err != nil {
				return err
			}

			course := &domain.Course{
				Title:     title,
				Professor: professor,
				Room:      room,
				Weekday:   wd,
				Period:    period,
				Color:     c,
				Notes:     notes,
				Year:      year,
				Semester:  sem,
			}
			if err := app.Courses.Create(context.Background(), course); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s at %s (%s)\n",
				course.Title, course.Slot(), formatter.TruncID(course.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Course title")
	cmd.Flags().StringVar(&weekday, "weekday", "", "Weekday: 月-土 or mon-sat")
	cmd.Flags().IntVar(&period, "period", 0, fmt.Sprintf("Period (%d-%d)", domain.MinPeriod, domain.MaxPeriod))
	cmd.Flags().StringVar(&room, "room", "", "Room")
	cmd.Flags().StringVar(&professor, "professor", "", "Professor")
	cmd.Flags().StringVar(&color, "color", string(domain.ColorBlue), "Color tag")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	term.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("weekday")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	var all bool
	var term termFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses of a term",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				courses []domain.Course
				title   = "All Courses"
				err     error
			)
			if all {
				courses, err = app.Courses.List(ctx)
			} else {
				year, sem, rerr := term.resolve(app)
				if rerr != nil {
					return rerr
				}
				courses, err = app.Courses.ListByTerm(ctx, year, sem)
				title = formatter.TermTitle(year, sem)
			}
			if err != nil {
				return err
			}

			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(title, formatter.FormatCourses(courses)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every term")
	term.register(cmd)

	return cmd
}

func newCourseGridCmd(app *App) *cobra.Command {
	var saturday bool
	var term termFlags

	cmd := &cobra.Command{
		Use:     "grid",
		Aliases: []string{"timetable"},
		Short:   "Show a term's weekly timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, sem, err := term.resolve(app)
			if err != nil {
				return err
			}
			cfg := app.config()
			show := cfg.ShowSaturday
			if cmd.Flags().Changed("saturday") {
				show = saturday
			}

			view, err := app.Courses.Timetable(context.Background(), year, sem, show)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox(formatter.TermTitle(year, sem), formatter.FormatTimetable(view, cfg.Periods)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&saturday, "saturday", false, "Show the Saturday column (default from config)")
	term.register(cmd)

	return cmd
}

func newCourseEditCmd(app *App) *cobra.Command {
	var title, weekday, room, professor, color, notes, semester string
	var period, year int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a course or move it to another slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Courses.GetByID(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			c.Title = domain.StrFromPtrWithDefault(c.Title, changedStr(cmd, "title", title))
			c.Room = domain.StrFromPtrWithDefault(c.Room, changedStr(cmd, "room", room))
			c.Professor = domain.StrFromPtrWithDefault(c.Professor, changedStr(cmd, "professor", professor))
			c.Notes = domain.StrFromPtrWithDefault(c.Notes, changedStr(cmd, "notes", notes))
			c.Period = domain.IntFromPtrWithDefault(c.Period, changedInt(cmd, "period", period))
			c.Year = domain.IntFromPtrWithDefault(c.Year, changedInt(cmd, "year", year))
			if flags.Changed("weekday") {
				if c.Weekday, err = parseWeekday(weekday); err != nil {
					return err
				}
			}
			if flags.Changed("semester") {
				if c.Semester, err = parseSemester(semester); err != nil {
					return err
				}
			}
			if flags.Changed("color") {
				if c.Color, err = parseColor(color); err != nil {
					return err
				}
			}

			if err := app.Courses.Update(ctx, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s at %s\n", c.Title, c.Slot())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Course title")
	cmd.Flags().StringVar(&weekday, "weekday", "", "Weekday: 月-土 or mon-sat")
	cmd.Flags().IntVar(&period, "period", 0, "Period")
	cmd.Flags().IntVar(&year, "year", 0, "Academic year")
	cmd.Flags().StringVar(&semester, "semester", "", "Semester: first or second")
	cmd.Flags().StringVar(&room, "room", "", "Room")
	cmd.Flags().StringVar(&professor, "professor", "", "Professor")
	cmd.Flags().StringVar(&color, "color", "", "Color tag")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a course",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Courses.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted course %s\n", formatter.TruncID(id))
			return nil
		},
	}

	return cmd
}
