package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/config"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/service"
	"github.com/alexanderramin/onlyone/internal/testutil"
	"github.com/alexanderramin/onlyone/internal/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
// The clock is fixed at 2025-06-10 12:00 local time.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	clock := testutil.NewClock(time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local))
	now := service.Clock(clock.Now)

	eventRepo := repository.NewSQLiteEventRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	shiftRepo := repository.NewSQLiteShiftRepo(database)
	workplaceRepo := repository.NewSQLiteWorkplaceRepo(database)
	courseRepo := repository.NewSQLiteCourseRepo(database)

	dir := t.TempDir()
	return &App{
		Config:     config.DefaultConfig(dir),
		ConfigPath: filepath.Join(dir, "config.yaml"),
		Now:        clock.Now,
		Events:     service.NewEventService(eventRepo, now),
		Tasks:      service.NewTaskService(taskRepo, now),
		Shifts:     service.NewShiftService(shiftRepo, workplaceRepo, now),
		Workplaces: service.NewWorkplaceService(workplaceRepo, uow, now),
		Courses:    service.NewCourseService(courseRepo, uow, now),
		Calendar:   service.NewCalendarService(eventRepo, taskRepo, shiftRepo, nil, nil, now),
		Stats:      service.NewStatsService(shiftRepo, workplaceRepo),
	}
}

// seedWorkplace creates a workplace paying 1000 yen an hour.
func seedWorkplace(t *testing.T, app *App, name string) *domain.Workplace {
	t.Helper()
	w := testutil.NewTestWorkplace(name)
	require.NoError(t, app.Workplaces.Create(context.Background(), w))
	return w
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "onlyone")
	assert.Contains(t, output, "calendar")
}

// --- calendar ---

func TestCalendarMonthCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "event", "add", "--title", "歯医者", "--date", "2025-06-10", "--start", "10:00", "--end", "11:00")
	require.NoError(t, err)

	output, err := executeCmd(t, app, "calendar", "month", "2025-06", "--list")
	require.NoError(t, err)
	assert.Contains(t, output, "2025年6月")
	assert.Contains(t, output, "●")
	assert.Contains(t, output, "歯医者")
}

func TestCalendarMonthCmd_Offset(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "cal", "month", "--offset=-1")
	require.NoError(t, err)
	assert.Contains(t, output, "2025年5月")
	assert.Contains(t, output, "憲法記念日")
}

func TestCalendarMonthCmd_InvalidMonth(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "calendar", "month", "June")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM")
}

func TestCalendarYearCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "calendar", "year", "2025")
	require.NoError(t, err)
	assert.Contains(t, output, "2025年")
	assert.Contains(t, output, "12月")
}

func TestCalendarYearCmd_OutsideWindow(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "calendar", "year", "2036")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2015-2035")

	_, err = executeCmd(t, app, "calendar", "year", "2035")
	require.NoError(t, err)
}

func TestCalendarDayCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Events.Create(ctx, testutil.NewTestEvent("ゼミ", testutil.Day(2025, time.June, 10))))
	require.NoError(t, app.Tasks.Create(ctx, testutil.NewTestTask("レポート", testutil.Day(2025, time.June, 10))))

	output, err := executeCmd(t, app, "calendar", "day", "2025-06-10")
	require.NoError(t, err)
	assert.Contains(t, output, "ゼミ")
	assert.Contains(t, output, "レポート")

	output, err = executeCmd(t, app, "calendar", "day", "2025-06-11")
	require.NoError(t, err)
	assert.Contains(t, output, "予定はありません")
}

func TestCalendarDayCmd_DefaultsToToday(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "calendar", "day")
	require.NoError(t, err)
	assert.Contains(t, output, "2025/06/10(火)")
}

func TestCalendarDayCmd_BadSort(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "calendar", "day", "--sort", "random")
	assert.Error(t, err)
}

// --- event ---

func TestEventAddCmd_RequiresTitle(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "add")
	assert.Error(t, err)
}

func TestEventAddCmd_EndBeforeStartRejected(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "event", "add", "--title", "x", "--start", "12:00", "--end", "11:00")
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEventEditAndRemoveByPrefix(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	e := testutil.NewTestEvent("old", testutil.Day(2025, time.June, 10), testutil.WithEventTimes(9, 10))
	require.NoError(t, app.Events.Create(ctx, e))

	_, err := executeCmd(t, app, "event", "edit", e.ID[:8], "--title", "new", "--date", "2025-06-12")
	require.NoError(t, err)

	got, err := app.Events.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, 12, got.Date.Day())
	assert.Equal(t, 12, got.StartTime.Day())
	assert.Equal(t, 9, got.StartTime.Hour())

	_, err = executeCmd(t, app, "event", "rm", e.ID[:8])
	require.NoError(t, err)
	_, err = app.Events.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEventListCmd_Month(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Events.Create(ctx, testutil.NewTestEvent("june", testutil.Day(2025, time.June, 3))))
	require.NoError(t, app.Events.Create(ctx, testutil.NewTestEvent("july", testutil.Day(2025, time.July, 3))))

	output, err := executeCmd(t, app, "event", "list", "--month", "2025-06")
	require.NoError(t, err)
	assert.Contains(t, output, "june")
	assert.NotContains(t, output, "july")
}

func TestEventImportCmd(t *testing.T) {
	app := testApp(t)
	body := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//x//y//EN",
		"BEGIN:VEVENT",
		"UID:a@x",
		"SUMMARY:No start",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:b@x",
		"SUMMARY:Festival",
		"DTSTART;VALUE=DATE:20250615",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")
	path := filepath.Join(t.TempDir(), "in.ics")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	output, err := executeCmd(t, app, "event", "import", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Imported 1 events (1 skipped)")

	events, err := app.Events.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Festival", events[0].Title)
	assert.True(t, events[0].AllDay)
}

// --- task ---

func TestTaskDoneCmd_Toggles(t *testing.T) {
	app := testApp(t)
	task := testutil.NewTestTask("課題", testutil.Day(2025, time.June, 12))
	require.NoError(t, app.Tasks.Create(context.Background(), task))

	output, err := executeCmd(t, app, "task", "done", task.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, output, "completed")

	output, err = executeCmd(t, app, "task", "done", task.ID[:8])
	require.NoError(t, err)
	assert.Contains(t, output, "reopened")
}

func TestTaskAddCmd_InvalidPriority(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "--title", "x", "--priority", "urgent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
}

func TestTaskListCmd_OpenHidesCompleted(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Tasks.Create(ctx, testutil.NewTestTask("open one", testutil.Day(2025, time.June, 12))))
	require.NoError(t, app.Tasks.Create(ctx, testutil.NewTestTask("finished", testutil.Day(2025, time.June, 1), testutil.WithCompleted())))

	output, err := executeCmd(t, app, "task", "list", "--open", "--sort", "priority")
	require.NoError(t, err)
	assert.Contains(t, output, "open one")
	assert.NotContains(t, output, "finished")
	assert.Contains(t, output, "2日後")
}

// --- shift & workplace ---

func TestShiftAddCmd_ComputesPay(t *testing.T) {
	app := testApp(t)
	seedWorkplace(t, app, "Cafe")

	output, err := executeCmd(t, app, "shift", "add", "--workplace", "cafe", "--date", "2025-06-10",
		"--start", "09:00", "--end", "17:00", "--break", "60")
	require.NoError(t, err)
	assert.Contains(t, output, "7.00h")
	assert.Contains(t, output, "¥7,000")

	output, err = executeCmd(t, app, "shift", "list", "--month", "2025-06")
	require.NoError(t, err)
	assert.Contains(t, output, "Cafe")
	assert.Contains(t, output, "合計")

	output, err = executeCmd(t, app, "shift", "stats")
	require.NoError(t, err)
	assert.Contains(t, output, "¥7,000")
	assert.Contains(t, output, "1日 / 1件")

	output, err = executeCmd(t, app, "shift", "stats", "--year", "2025")
	require.NoError(t, err)
	assert.Contains(t, output, "12月")
	assert.Contains(t, output, "7.00h")
}

func TestShiftAddCmd_UnknownWorkplace(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "shift", "add", "--workplace", "nowhere", "--start", "09:00", "--end", "10:00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workplace not found")
}

func TestShiftPreviewCmd_ReversedShift(t *testing.T) {
	app := testApp(t)
	seedWorkplace(t, app, "Cafe")

	output, err := executeCmd(t, app, "shift", "preview", "--workplace", "Cafe", "--start", "17:00", "--end", "09:00")
	require.NoError(t, err)
	assert.Contains(t, output, "0.00h")
	assert.Contains(t, output, "マイナス")

	views, err := app.Shifts.ListMonth(context.Background(), 2025, time.June)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestShiftEditCmd_EndAtMidnightSurvivesDateMove(t *testing.T) {
	app := testApp(t)
	seedWorkplace(t, app, "Bar")

	_, err := executeCmd(t, app, "shift", "add", "--workplace", "Bar", "--start", "20:00", "--end", "24:00")
	require.NoError(t, err)
	shifts, err := app.Shifts.List(context.Background())
	require.NoError(t, err)
	require.Len(t, shifts, 1)

	_, err = executeCmd(t, app, "shift", "edit", shifts[0].ID, "--date", "2025-06-20", "--break", "30")
	require.NoError(t, err)

	got, err := app.Shifts.GetByID(context.Background(), shifts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Date.Day())
	assert.Equal(t, 21, got.EndTime.Day())
	assert.InDelta(t, 3.5, got.WorkedHours(), 1e-9)
}

func TestShiftStatsCmd_MonthAndYearExclusive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "shift", "stats", "--month", "2025-06", "--year", "2025")
	assert.Error(t, err)
}

func TestWorkplaceRemoveCmd_ReportsOrphanedShifts(t *testing.T) {
	app := testApp(t)
	w := seedWorkplace(t, app, "Closing")
	_, err := executeCmd(t, app, "shift", "add", "--workplace", "Closing", "--start", "09:00", "--end", "12:00")
	require.NoError(t, err)

	output, err := executeCmd(t, app, "workplace", "rm", "Closing")
	require.NoError(t, err)
	assert.Contains(t, output, "1 shifts")

	_, err = app.Workplaces.GetByID(context.Background(), w.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	output, err = executeCmd(t, app, "shift", "list")
	require.NoError(t, err)
	assert.Contains(t, output, domain.UnknownWorkplaceName)
}

func TestWorkplaceEditCmd(t *testing.T) {
	app := testApp(t)
	w := seedWorkplace(t, app, "Cafe")

	_, err := executeCmd(t, app, "wp", "edit", "Cafe", "--rate", "1250", "--color", "red")
	require.NoError(t, err)

	got, err := app.Workplaces.GetByID(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, 1250.0, got.HourlyRate)
	assert.Equal(t, domain.ColorRed, got.Color)
	assert.Equal(t, "Cafe", got.Name)

	output, err := executeCmd(t, app, "workplace", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "¥1,250")
}

func TestWorkplaceAddCmd_InvalidColor(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "workplace", "add", "--name", "x", "--rate", "1000", "--color", "teal")
	assert.Error(t, err)
}

// --- course ---

func TestCourseAddCmd_SlotConflict(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "--title", "線形代数", "--weekday", "月", "--period", "1",
		"--year", "2025", "--semester", "first")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "course", "add", "--title", "英語", "--weekday", "mon", "--period", "1",
		"--year", "2025", "--semester", "first")
	require.ErrorIs(t, err, timetable.ErrSlotOccupied)

	// Same slot in the other semester is free.
	_, err = executeCmd(t, app, "course", "add", "--title", "英語", "--weekday", "月", "--period", "1",
		"--year", "2025", "--semester", "second")
	require.NoError(t, err)
}

func TestCourseAddCmd_DefaultsToCurrentTerm(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "add", "--title", "統計", "--weekday", "火", "--period", "2")
	require.NoError(t, err)

	courses, err := app.Courses.ListByTerm(context.Background(), 2025, domain.SemesterFirst)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "統計", courses[0].Title)
}

func TestCourseEditCmd_MoveToFreePeriod(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	a := testutil.NewTestCourse("A", "月", 1)
	b := testutil.NewTestCourse("B", "月", 2)
	require.NoError(t, app.Courses.Create(ctx, a))
	require.NoError(t, app.Courses.Create(ctx, b))

	_, err := executeCmd(t, app, "course", "edit", a.ID, "--period", "2")
	require.ErrorIs(t, err, timetable.ErrSlotOccupied)

	_, err = executeCmd(t, app, "course", "edit", a.ID, "--period", "3")
	require.NoError(t, err)

	got, err := app.Courses.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Period)
}

func TestCourseGridCmd_SaturdayFlag(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	require.NoError(t, app.Courses.Create(ctx, testutil.NewTestCourse("体育", "土", 2)))
	require.NoError(t, app.Courses.Create(ctx, testutil.NewTestCourse("線形代数", "月", 1, testutil.WithRoom("A101"))))

	output, err := executeCmd(t, app, "course", "grid", "--year", "2025", "--semester", "first")
	require.NoError(t, err)
	assert.Contains(t, output, "線形代数 @A101")
	assert.Contains(t, output, "体育 (土2限)")
	assert.Contains(t, output, "09:00-10:30")

	output, err = executeCmd(t, app, "course", "grid", "--year", "2025", "--semester", "first", "--saturday")
	require.NoError(t, err)
	assert.NotContains(t, output, "(土2限)")
	assert.Contains(t, output, "体育")
}

func TestCourseListCmd_InvalidSemester(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "course", "list", "--semester", "summer")
	assert.Error(t, err)
}

// --- export ---

func TestExportICSCmd(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	w := seedWorkplace(t, app, "Cafe")
	day := testutil.Day(2025, time.June, 10)
	require.NoError(t, app.Events.Create(ctx, testutil.NewTestEvent("Concert", day)))
	require.NoError(t, app.Shifts.Create(ctx, testutil.NewTestShift(w.ID, day, 9, 17)))
	require.NoError(t, app.Events.Create(ctx, testutil.NewTestEvent("Next year", testutil.Day(2026, time.January, 5))))

	output, err := executeCmd(t, app, "export", "ics")
	require.NoError(t, err)
	assert.Contains(t, output, "BEGIN:VCALENDAR")
	assert.Contains(t, output, "SUMMARY:Concert")
	assert.Contains(t, output, "SUMMARY:Cafe")
	assert.NotContains(t, output, "Next year")

	path := filepath.Join(t.TempDir(), "out.ics")
	output, err = executeCmd(t, app, "export", "ics", "--year", "2026", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 1 items")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:Next year")
}

// --- config ---

func TestConfigShowCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, output, "show_saturday: false")
	assert.Contains(t, output, "task_sort: added")
}

func TestConfigSetCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "config", "set", "show_saturday", "true")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "config", "set", "period.1", "08:50-10:20")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "config", "set", "task_sort", "due")
	require.NoError(t, err)

	cfg, err := config.Load(app.ConfigPath)
	require.NoError(t, err)
	assert.True(t, cfg.ShowSaturday)
	assert.Equal(t, timetable.PeriodLabel{Start: "08:50", End: "10:20"}, cfg.Periods[0])
	assert.Equal(t, schedule.SortDueDate, cfg.TaskSortMode())
	assert.True(t, app.Config.ShowSaturday)
}

func TestConfigSetCmd_Rejects(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		name       string
		key, value string
	}{
		{"unknown key", "colour", "red"},
		{"bad bool", "show_saturday", "maybe"},
		{"bad period index", "period.7", "08:00-09:00"},
		{"reversed period", "period.1", "10:00-09:00"},
		{"bad timezone", "timezone", "Mars/Olympus"},
		{"bad log level", "log_level", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, app, "config", "set", tt.key, tt.value)
			assert.Error(t, err)
		})
	}
}

func TestConfigInitCmd(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "config", "set", "show_saturday", "true")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "config", "init")
	require.NoError(t, err)

	cfg, err := config.Load(app.ConfigPath)
	require.NoError(t, err)
	assert.False(t, cfg.ShowSaturday)
}
