package service

import (
	"context"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/schedule"
)

type calendarService struct {
	events     repository.EventRepo
	tasks      repository.TaskRepo
	shifts     repository.ShiftRepo
	grids      *GridCache
	classifier *calendar.Classifier
	clock      Clock
	observer   UseCaseObserver
}

func NewCalendarService(
	events repository.EventRepo,
	tasks repository.TaskRepo,
	shifts repository.ShiftRepo,
	grids *GridCache,
	holidays calendar.HolidayTable,
	clock Clock,
	observers ...UseCaseObserver,
) CalendarService {
	if grids == nil {
		grids, _ = NewGridCache(calendar.NewBuilder(clock.now), 0)
	}
	return &calendarService{
		events:     events,
		tasks:      tasks,
		shifts:     shifts,
		grids:      grids,
		classifier: calendar.NewClassifier(holidays),
		clock:      clock,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// snapshot is every item dated between two days, inclusive.
type snapshot struct {
	events []domain.Event
	tasks  []domain.Task
	shifts []domain.Shift
}

func (s *calendarService) load(ctx context.Context, from, to time.Time) (*snapshot, error) {
	events, err := s.events.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	shifts, err := s.shifts.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &snapshot{events: events, tasks: tasks, shifts: shifts}, nil
}

func (s *calendarService) monthView(grid []time.Time, anchor, today time.Time, snap *snapshot, index map[schedule.DayKey]schedule.MarkerSet) MonthView {
	cells := s.classifier.Cells(grid, anchor, today)
	out := MonthView{
		Month: calendar.StartOfMonth(anchor),
		Cells: make([]DayCell, len(cells)),
		Items: schedule.ForMonth(anchor.Year(), anchor.Month(), snap.events, snap.tasks, snap.shifts),
	}
	for i, c := range cells {
		out.Cells[i] = DayCell{
			Cell:    c,
			Markers: index[schedule.KeyOf(c.Date)],
			Holiday: s.classifier.Holidays.Name(c.Date),
		}
	}
	return out
}

func (s *calendarService) Month(ctx context.Context, anchor time.Time) (view *MonthView, err error) {
	defer observe(ctx, s.observer, "view-month", time.Now(), &err, map[string]any{"anchor": anchor.Format("2006-01")})

	today := s.clock.now()
	if anchor.IsZero() {
		anchor = today
	}
	grid := s.grids.MonthGrid(anchor)
	snap, err := s.load(ctx, grid[0], grid[len(grid)-1])
	if err != nil {
		return nil, err
	}
	index := schedule.IndexByDay(snap.events, snap.tasks, snap.shifts)
	v := s.monthView(grid, anchor, today, snap, index)
	return &v, nil
}

// Year loads the whole span covered by the twelve grids once and builds
// every month from that snapshot.
func (s *calendarService) Year(ctx context.Context, year int) (view *YearView, err error) {
	defer observe(ctx, s.observer, "view-year", time.Now(), &err, map[string]any{"year": year})

	today := s.clock.now()
	loc := today.Location()
	grids := make([][]time.Time, 12)
	for m := time.January; m <= time.December; m++ {
		grids[m-1] = s.grids.MonthGrid(time.Date(year, m, 1, 0, 0, 0, 0, loc))
	}
	snap, err := s.load(ctx, grids[0][0], grids[11][len(grids[11])-1])
	if err != nil {
		return nil, err
	}
	index := schedule.IndexByDay(snap.events, snap.tasks, snap.shifts)

	view = &YearView{Year: year, Months: make([]MonthView, 0, 12)}
	for i, grid := range grids {
		anchor := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, loc)
		view.Months = append(view.Months, s.monthView(grid, anchor, today, snap, index))
	}
	return view, nil
}

func (s *calendarService) Day(ctx context.Context, day time.Time, mode schedule.TaskSortMode) (items *schedule.DayItems, err error) {
	defer observe(ctx, s.observer, "view-day", time.Now(), &err, map[string]any{"day": day.Format("2006-01-02")})

	if day.IsZero() {
		day = s.clock.now()
	}
	day = calendar.StartOfDay(day)
	snap, err := s.load(ctx, day, day)
	if err != nil {
		return nil, err
	}
	out := schedule.ForDay(day, snap.events, snap.tasks, snap.shifts, mode)
	return &out, nil
}

func (s *calendarService) YearWindow() []int {
	return calendar.YearWindow(s.clock.now().Year())
}
