package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/alexanderramin/onlyone/internal/wage"
	"github.com/google/uuid"
)

type shiftService struct {
	shifts     repository.ShiftRepo
	workplaces repository.WorkplaceRepo
	clock      Clock
	observer   UseCaseObserver
}

func NewShiftService(shifts repository.ShiftRepo, workplaces repository.WorkplaceRepo, clock Clock, observers ...UseCaseObserver) ShiftService {
	return &shiftService{
		shifts:     shifts,
		workplaces: workplaces,
		clock:      clock,
		observer:   useCaseObserverOrNoop(observers),
	}
}

// requireWorkplace rejects new references to a workplace that does not exist.
// Existing shifts may still dangle after a workplace is deleted.
func (s *shiftService) requireWorkplace(ctx context.Context, id string) error {
	if _, err := s.workplaces.GetByID(ctx, id); err != nil {
		return fmt.Errorf("shift workplace %s: %w", id, err)
	}
	return nil
}

func (s *shiftService) Create(ctx context.Context, sh *domain.Shift) (err error) {
	defer observe(ctx, s.observer, "create-shift", time.Now(), &err, map[string]any{"workplace_id": sh.WorkplaceID})

	if sh.ID == "" {
		sh.ID = uuid.New().String()
	}
	if err = sh.Validate(); err != nil {
		return err
	}
	if err = s.requireWorkplace(ctx, sh.WorkplaceID); err != nil {
		return err
	}
	now := s.clock.now()
	sh.CreatedAt = now
	sh.UpdatedAt = now
	return s.shifts.Create(ctx, sh)
}

func (s *shiftService) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	return s.shifts.GetByID(ctx, id)
}

func (s *shiftService) List(ctx context.Context) ([]domain.Shift, error) {
	return s.shifts.List(ctx)
}

func (s *shiftService) ListMonth(ctx context.Context, year int, month time.Month) ([]ShiftView, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := time.Date(year, month, calendar.DaysIn(year, month, time.Local), 0, 0, 0, 0, time.Local)

	shifts, err := s.shifts.ListBetween(ctx, first, last)
	if err != nil {
		return nil, err
	}
	workplaces, err := s.workplaces.List(ctx)
	if err != nil {
		return nil, err
	}

	shifts = schedule.ShiftsInMonth(shifts, year, month)
	views := make([]ShiftView, 0, len(shifts))
	for _, sh := range shifts {
		views = append(views, viewShift(sh, workplaces))
	}
	return views, nil
}

func viewShift(sh domain.Shift, workplaces []domain.Workplace) ShiftView {
	wp := domain.ResolveWorkplace(workplaces, sh.WorkplaceID)
	return ShiftView{
		Shift:     sh,
		Workplace: wp,
		Pay:       wage.Clamp(sh.Pay(wp.HourlyRate)),
	}
}

// Preview computes the pay a shift would earn without saving it.
func (s *shiftService) Preview(ctx context.Context, sh *domain.Shift) (*ShiftView, error) {
	workplaces, err := s.workplaces.List(ctx)
	if err != nil {
		return nil, err
	}
	v := viewShift(*sh, workplaces)
	return &v, nil
}

func (s *shiftService) Update(ctx context.Context, sh *domain.Shift) (err error) {
	defer observe(ctx, s.observer, "update-shift", time.Now(), &err, map[string]any{"shift_id": sh.ID})

	if err = sh.Validate(); err != nil {
		return err
	}
	existing, err := s.shifts.GetByID(ctx, sh.ID)
	if err != nil {
		return err
	}
	if existing.WorkplaceID != sh.WorkplaceID {
		if err = s.requireWorkplace(ctx, sh.WorkplaceID); err != nil {
			return err
		}
	}
	sh.UpdatedAt = s.clock.now()
	return s.shifts.Update(ctx, sh)
}

func (s *shiftService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-shift", time.Now(), &err, map[string]any{"shift_id": id})
	return s.shifts.Delete(ctx, id)
}
