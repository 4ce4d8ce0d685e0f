package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/cli"
	"github.com/alexanderramin/onlyone/internal/config"
	"github.com/alexanderramin/onlyone/internal/db"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config: ONLYONE_CONFIG or ~/.onlyone/config.yaml, then env overrides.
	cfg, cfgPath, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// All date math uses time.Local, so a configured timezone replaces it.
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	time.Local = loc

	// Plain output when piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	eventRepo := repository.NewSQLiteEventRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	shiftRepo := repository.NewSQLiteShiftRepo(database)
	workplaceRepo := repository.NewSQLiteWorkplaceRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.NewLevelUseCaseObserver(os.Stderr, cfg.LogLevel)
	clock := service.Clock(time.Now)

	grids, err := service.NewGridCache(calendar.NewBuilder(clock), service.DefaultGridCacheSize)
	if err != nil {
		return fmt.Errorf("creating grid cache: %w", err)
	}

	workplaceSvc := service.NewWorkplaceService(workplaceRepo, uow, clock, observer)
	courseSvc := service.NewCourseService(courseRepo, uow, clock, observer)

	// Startup steps: default workplaces on first run, and courses saved
	// before term scoping get the current term.
	ctx := context.Background()
	if _, err := workplaceSvc.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seeding workplaces: %w", err)
	}
	report, err := courseSvc.MigrateLegacy(ctx)
	if err != nil {
		return fmt.Errorf("migrating courses: %w", err)
	}
	for _, c := range report.Collisions {
		fmt.Fprintf(os.Stderr, "Warning: %s is shared by %q and %q; move or delete one with `onlyone course edit`.\n",
			c.Slot, c.Kept.Title, c.Shadowed.Title)
	}

	app := &cli.App{
		Config:     cfg,
		ConfigPath: cfgPath,
		Now:        clock,

		Events:     service.NewEventService(eventRepo, clock, observer),
		Tasks:      service.NewTaskService(taskRepo, clock, observer),
		Shifts:     service.NewShiftService(shiftRepo, workplaceRepo, clock, observer),
		Workplaces: workplaceSvc,
		Courses:    courseSvc,
		Calendar:   service.NewCalendarService(eventRepo, taskRepo, shiftRepo, grids, calendar.DefaultHolidays, clock, observer),
		Stats:      service.NewStatsService(shiftRepo, workplaceRepo, observer),
	}

	// Execute root command
	return cli.NewRootCmd(app).Execute()
}
