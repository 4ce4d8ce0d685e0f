package service

import (
	"context"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/schedule"
)

type statsService struct {
	shifts     repository.ShiftRepo
	workplaces repository.WorkplaceRepo
	observer   UseCaseObserver
}

func NewStatsService(shifts repository.ShiftRepo, workplaces repository.WorkplaceRepo, observers ...UseCaseObserver) StatsService {
	return &statsService{shifts: shifts, workplaces: workplaces, observer: useCaseObserverOrNoop(observers)}
}

func (s *statsService) Monthly(ctx context.Context, year int, month time.Month) (st *schedule.Stats, err error) {
	defer observe(ctx, s.observer, "view-monthly-stats", time.Now(), &err, map[string]any{"year": year, "month": int(month)})

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(year, month, calendar.DaysIn(year, month, time.Local), 0, 0, 0, 0, time.Local)
	shifts, err := s.shifts.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	workplaces, err := s.workplaces.List(ctx)
	if err != nil {
		return nil, err
	}
	out := schedule.MonthlyStats(shifts, workplaces, year, month)
	return &out, nil
}

func (s *statsService) Yearly(ctx context.Context, year int) (report *YearReport, err error) {
	defer observe(ctx, s.observer, "view-yearly-stats", time.Now(), &err, map[string]any{"year": year})

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
	shifts, err := s.shifts.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	workplaces, err := s.workplaces.List(ctx)
	if err != nil {
		return nil, err
	}
	months := schedule.YearlyStats(shifts, workplaces, year)
	return &YearReport{Year: year, Months: months, Total: schedule.Total(months)}, nil
}
