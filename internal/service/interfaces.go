package service

import (
	"context"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/timetable"
	"github.com/alexanderramin/onlyone/internal/wage"
)

type EventService interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, mode schedule.TaskSortMode) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	ToggleCompleted(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

// ShiftView is a shift with its workplace resolved and its pay computed.
type ShiftView struct {
	Shift     domain.Shift
	Workplace domain.Workplace
	Pay       wage.Result
}

type ShiftService interface {
	Create(ctx context.Context, s *domain.Shift) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	List(ctx context.Context) ([]domain.Shift, error)
	ListMonth(ctx context.Context, year int, month time.Month) ([]ShiftView, error)
	Preview(ctx context.Context, s *domain.Shift) (*ShiftView, error)
	Update(ctx context.Context, s *domain.Shift) error
	Delete(ctx context.Context, id string) error
}

type WorkplaceService interface {
	Create(ctx context.Context, w *domain.Workplace) error
	GetByID(ctx context.Context, id string) (*domain.Workplace, error)
	List(ctx context.Context) ([]domain.Workplace, error)
	Update(ctx context.Context, w *domain.Workplace) error
	// Delete removes the workplace and reports how many shifts now resolve
	// to the unknown workplace.
	Delete(ctx context.Context, id string) (orphaned int, err error)
	// SeedDefaults creates the default workplaces on the first run only. A
	// list the user has emptied stays empty.
	SeedDefaults(ctx context.Context) (int, error)
}

// TimetableView is one term's timetable ready to render.
type TimetableView struct {
	Grid   *timetable.Grid
	Hidden []domain.Course
}

// MigrationReport is the outcome of one legacy course migration. Collisions
// are slots a migrated course now shares with another course; the timetable
// shows the kept course until the user moves or deletes the other.
type MigrationReport struct {
	Migrated   int
	Collisions []timetable.Collision
}

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	ListByTerm(ctx context.Context, year int, semester domain.Semester) ([]domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
	Timetable(ctx context.Context, year int, semester domain.Semester, showSaturday bool) (*TimetableView, error)
	// MigrateLegacy assigns a term to courses saved before term scoping.
	MigrateLegacy(ctx context.Context) (*MigrationReport, error)
}

// DayCell is a classified grid cell with its content markers.
type DayCell struct {
	calendar.Cell
	Markers schedule.MarkerSet
	Holiday string
}

// MonthView is a month grid with everything scheduled in the month.
type MonthView struct {
	Month time.Time
	Cells []DayCell
	Items schedule.MonthItems
}

// YearView holds the twelve month views of one year.
type YearView struct {
	Year   int
	Months []MonthView
}

type CalendarService interface {
	Month(ctx context.Context, anchor time.Time) (*MonthView, error)
	Year(ctx context.Context, year int) (*YearView, error)
	Day(ctx context.Context, day time.Time, mode schedule.TaskSortMode) (*schedule.DayItems, error)
	YearWindow() []int
}

// YearReport is a year's monthly stats plus their total.
type YearReport struct {
	Year   int
	Months []schedule.Stats
	Total  schedule.Stats
}

type StatsService interface {
	Monthly(ctx context.Context, year int, month time.Month) (*schedule.Stats, error)
	Yearly(ctx context.Context, year int) (*YearReport, error)
}
