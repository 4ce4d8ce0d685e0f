package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarService(t *testing.T, env *testEnv) CalendarService {
	t.Helper()
	grids, err := NewGridCache(calendar.NewBuilder(env.clock.Now), 0)
	require.NoError(t, err)
	return NewCalendarService(env.events, env.tasks, env.shifts, grids, nil, env.now())
}

func TestCalendarService_DaySelection(t *testing.T) {
	env := newTestEnv(t)
	svc := newCalendarService(t, env)
	ctx := context.Background()

	june10 := testutil.Day(2025, time.June, 10)
	require.NoError(t, env.events.Create(ctx, testutil.NewTestEvent("Dentist", june10)))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("Essay", june10)))

	items, err := svc.Day(ctx, june10.Add(15*time.Hour), schedule.SortAdded)
	require.NoError(t, err)
	assert.Len(t, items.Events, 1)
	assert.Len(t, items.Tasks, 1)
	assert.Empty(t, items.Shifts)

	items, err = svc.Day(ctx, testutil.Day(2025, time.June, 11), schedule.SortAdded)
	require.NoError(t, err)
	assert.True(t, items.IsEmpty())
	assert.NotNil(t, items.Events)
}

func TestCalendarService_MonthMarkersAndFlags(t *testing.T) {
	env := newTestEnv(t)
	svc := newCalendarService(t, env)
	ctx := context.Background()

	require.NoError(t, env.events.Create(ctx, testutil.NewTestEvent("Trip", testutil.Day(2025, time.May, 3))))
	require.NoError(t, env.shifts.Create(ctx, testutil.NewTestShift("wp", testutil.Day(2025, time.May, 3), 9, 12)))
	// Visible in the May grid's trailing cells.
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("Early June", testutil.Day(2025, time.June, 2))))

	view, err := svc.Month(ctx, testutil.Day(2025, time.May, 20))
	require.NoError(t, err)
	require.Len(t, view.Cells, calendar.GridCells)

	// May 1 2025 is a Thursday, so it sits at index 4.
	may3 := view.Cells[6]
	require.True(t, calendar.SameDay(may3.Date, testutil.Day(2025, time.May, 3)))
	assert.True(t, may3.Markers.Event)
	assert.True(t, may3.Markers.Shift)
	assert.False(t, may3.Markers.Task)
	assert.True(t, may3.Flags.IsHoliday)
	assert.NotEmpty(t, may3.Holiday)
	assert.True(t, may3.Flags.InCurrentPeriod)

	june2 := view.Cells[4+31+1]
	require.True(t, calendar.SameDay(june2.Date, testutil.Day(2025, time.June, 2)))
	assert.True(t, june2.Markers.Task)
	assert.False(t, june2.Flags.InCurrentPeriod)

	assert.Len(t, view.Items.Events, 1)
	assert.Empty(t, view.Items.Tasks, "month items only include the month itself")
}

func TestCalendarService_TodayFlag(t *testing.T) {
	env := newTestEnv(t)
	svc := newCalendarService(t, env)

	view, err := svc.Month(context.Background(), time.Time{})
	require.NoError(t, err)

	var todays int
	for _, c := range view.Cells {
		if c.Flags.IsToday {
			todays++
			assert.True(t, calendar.SameDay(c.Date, env.clock.Now()))
		}
	}
	assert.Equal(t, 1, todays)
	assert.Equal(t, time.June, view.Month.Month())
}

func TestCalendarService_Year(t *testing.T) {
	env := newTestEnv(t)
	svc := newCalendarService(t, env)
	ctx := context.Background()

	require.NoError(t, env.events.Create(ctx, testutil.NewTestEvent("NYE", testutil.Day(2025, time.December, 31))))

	view, err := svc.Year(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, view.Months, 12)
	for i, m := range view.Months {
		assert.Equal(t, time.Month(i+1), m.Month.Month())
		assert.Len(t, m.Cells, calendar.GridCells)
	}
	assert.Len(t, view.Months[11].Items.Events, 1)
}

func TestCalendarService_YearWindow(t *testing.T) {
	env := newTestEnv(t)
	svc := newCalendarService(t, env)

	years := svc.YearWindow()
	require.Len(t, years, 21)
	assert.Equal(t, 2015, years[0])
	assert.Equal(t, 2035, years[20])
}
