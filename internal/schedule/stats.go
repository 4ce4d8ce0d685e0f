package schedule

import (
	"sort"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/wage"
)

// WorkplaceStats is one workplace's share of a month.
type WorkplaceStats struct {
	Workplace  domain.Workplace
	Hours      float64
	Income     float64
	ShiftCount int
}

// Stats summarises the shifts of one month.
type Stats struct {
	Year        int
	Month       time.Month
	TotalHours  float64
	TotalIncome float64
	// WorkedDays counts distinct calendar dates with at least one shift.
	WorkedDays  int
	ShiftCount  int
	ByWorkplace []WorkplaceStats
}

// MonthlyStats sums the month's shifts. Every shift's worked hours are
// clamped at zero before they are added, so a shift entered with its end
// before its start contributes nothing rather than a negative amount. Shifts
// whose workplace has been deleted count toward hours but earn nothing.
func MonthlyStats(shifts []domain.Shift, workplaces []domain.Workplace, year int, month time.Month) Stats {
	st := Stats{Year: year, Month: month}

	days := make(map[DayKey]struct{})
	byID := make(map[string]*WorkplaceStats)
	var order []string

	for _, s := range ShiftsInMonth(shifts, year, month) {
		wp := domain.ResolveWorkplace(workplaces, s.WorkplaceID)
		pay := wage.Clamp(s.Pay(wp.HourlyRate))

		st.TotalHours += pay.WorkedHours
		st.TotalIncome += pay.Wage
		st.ShiftCount++
		days[KeyOf(s.Date)] = struct{}{}

		key := wp.ID
		ws, ok := byID[key]
		if !ok {
			ws = &WorkplaceStats{Workplace: wp}
			byID[key] = ws
			order = append(order, key)
		}
		ws.Hours += pay.WorkedHours
		ws.Income += pay.Wage
		ws.ShiftCount++
	}
	st.WorkedDays = len(days)

	for _, id := range order {
		st.ByWorkplace = append(st.ByWorkplace, *byID[id])
	}
	sort.SliceStable(st.ByWorkplace, func(i, j int) bool {
		return st.ByWorkplace[i].Income > st.ByWorkplace[j].Income
	})
	return st
}

// YearlyStats returns MonthlyStats for each month of year, January first.
func YearlyStats(shifts []domain.Shift, workplaces []domain.Workplace, year int) []Stats {
	out := make([]Stats, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthlyStats(shifts, workplaces, year, m))
	}
	return out
}

// Total folds a slice of monthly stats into one.
func Total(months []Stats) Stats {
	var t Stats
	for _, m := range months {
		t.TotalHours += m.TotalHours
		t.TotalIncome += m.TotalIncome
		t.WorkedDays += m.WorkedDays
		t.ShiftCount += m.ShiftCount
	}
	if len(months) > 0 {
		t.Year = months[0].Year
	}
	return t
}
