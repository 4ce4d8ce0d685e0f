package cli

import (
	"time"

	"github.com/alexanderramin/onlyone/internal/config"
	"github.com/alexanderramin/onlyone/internal/service"
	"github.com/spf13/cobra"
)

// App holds the service dependencies for CLI commands.
type App struct {
	Config     *config.Config
	ConfigPath string
	// Now is the CLI's clock for defaults such as today's date and the
	// current term. Nil means time.Now.
	Now func() time.Time

	Events     service.EventService
	Tasks      service.TaskService
	Shifts     service.ShiftService
	Workplaces service.WorkplaceService
	Courses    service.CourseService
	Calendar   service.CalendarService
	Stats      service.StatsService
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		a.Config = config.DefaultConfig("")
	}
	return a.Config
}

// NewRootCmd creates the root cobra command with all subcommands.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "onlyone",
		Short: "Calendar, tasks, timetable and shift log in one place",
		Long: `onlyone keeps your calendar, task list, class timetable and part-time
shifts together. Shifts are paid by the hour, so monthly income is always one
command away.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCalendarCmd(app),
		newEventCmd(app),
		newTaskCmd(app),
		newShiftCmd(app),
		newWorkplaceCmd(app),
		newCourseCmd(app),
		newExportCmd(app),
		newConfigCmd(app),
	)

	return root
}
