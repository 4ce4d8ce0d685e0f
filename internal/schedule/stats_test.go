package schedule

import (
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shiftOn(id string, day int, startH, endH, breakMin int, workplaceID string) domain.Shift {
	return domain.Shift{
		ID:           id,
		Date:         at(2025, 6, day, 0, 0),
		StartTime:    at(2025, 6, day, startH, 0),
		EndTime:      at(2025, 6, day, endH, 0),
		BreakMinutes: breakMin,
		WorkplaceID:  workplaceID,
	}
}

var testWorkplaces = []domain.Workplace{
	{ID: "cafe", Name: "Cafe", Color: domain.ColorRed, HourlyRate: 1000},
	{ID: "lib", Name: "Library", Color: domain.ColorBlue, HourlyRate: 1200},
}

func TestMonthlyStats_SumsHoursIncomeAndDays(t *testing.T) {
	shifts := []domain.Shift{
		shiftOn("a", 10, 9, 17, 60, "cafe"), // 7h * 1000
		shiftOn("b", 10, 18, 20, 0, "lib"),  // 2h * 1200, same day
		shiftOn("c", 12, 10, 14, 0, "lib"),  // 4h * 1200
	}

	st := MonthlyStats(shifts, testWorkplaces, 2025, time.June)
	assert.InDelta(t, 13.0, st.TotalHours, 1e-9)
	assert.InDelta(t, 7000+2400+4800, st.TotalIncome, 1e-9)
	assert.Equal(t, 2, st.WorkedDays)
	assert.Equal(t, 3, st.ShiftCount)

	require.Len(t, st.ByWorkplace, 2)
	assert.Equal(t, "Library", st.ByWorkplace[0].Workplace.Name)
	assert.InDelta(t, 7200.0, st.ByWorkplace[0].Income, 1e-9)
	assert.Equal(t, 2, st.ByWorkplace[0].ShiftCount)
}

func TestMonthlyStats_ReversedShiftClampedToZero(t *testing.T) {
	reversed := shiftOn("r", 11, 17, 9, 0, "cafe")
	require.Less(t, reversed.WorkedHours(), 0.0, "entity stays unclamped")

	shifts := []domain.Shift{shiftOn("a", 10, 9, 17, 60, "cafe"), reversed}
	st := MonthlyStats(shifts, testWorkplaces, 2025, time.June)

	assert.InDelta(t, 7.0, st.TotalHours, 1e-9)
	assert.InDelta(t, 7000.0, st.TotalIncome, 1e-9)
	assert.Equal(t, 2, st.WorkedDays)
}

func TestMonthlyStats_DanglingWorkplaceEarnsNothing(t *testing.T) {
	shifts := []domain.Shift{
		shiftOn("a", 10, 9, 12, 0, "deleted"),
		shiftOn("b", 11, 9, 12, 0, "cafe"),
	}
	st := MonthlyStats(shifts, testWorkplaces, 2025, time.June)

	assert.InDelta(t, 6.0, st.TotalHours, 1e-9)
	assert.InDelta(t, 3000.0, st.TotalIncome, 1e-9)
	require.Len(t, st.ByWorkplace, 2)
	assert.True(t, st.ByWorkplace[1].Workplace.IsUnknown())
}

func TestMonthlyStats_OtherMonthsIgnored(t *testing.T) {
	july := domain.Shift{Date: at(2025, 7, 1, 0, 0), StartTime: at(2025, 7, 1, 9, 0), EndTime: at(2025, 7, 1, 17, 0), WorkplaceID: "cafe"}
	st := MonthlyStats([]domain.Shift{july}, testWorkplaces, 2025, time.June)
	assert.Zero(t, st.TotalHours)
	assert.Zero(t, st.WorkedDays)
	assert.Empty(t, st.ByWorkplace)
}

func TestYearlyStats(t *testing.T) {
	shifts := []domain.Shift{
		shiftOn("a", 10, 9, 17, 60, "cafe"),
		{Date: at(2025, 12, 24, 0, 0), StartTime: at(2025, 12, 24, 10, 0), EndTime: at(2025, 12, 24, 12, 0), WorkplaceID: "lib"},
	}
	months := YearlyStats(shifts, testWorkplaces, 2025)
	require.Len(t, months, 12)
	assert.InDelta(t, 7000.0, months[5].TotalIncome, 1e-9)
	assert.InDelta(t, 2400.0, months[11].TotalIncome, 1e-9)
	assert.Zero(t, months[0].ShiftCount)

	total := Total(months)
	assert.InDelta(t, 9.0, total.TotalHours, 1e-9)
	assert.Equal(t, 2, total.WorkedDays)
	assert.Equal(t, 2025, total.Year)
}
