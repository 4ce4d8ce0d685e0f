package service

import (
	"context"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/google/uuid"
)

type eventService struct {
	events   repository.EventRepo
	clock    Clock
	observer UseCaseObserver
}

func NewEventService(events repository.EventRepo, clock Clock, observers ...UseCaseObserver) EventService {
	return &eventService{events: events, clock: clock, observer: useCaseObserverOrNoop(observers)}
}

// normalizeEventTimes fills missing times from the date so that stored
// events always carry a start and end.
func normalizeEventTimes(e *domain.Event) {
	if e.StartTime.IsZero() {
		e.StartTime = e.Date
	}
	if e.EndTime.IsZero() {
		e.EndTime = e.StartTime
	}
}

func (s *eventService) Create(ctx context.Context, e *domain.Event) (err error) {
	defer observe(ctx, s.observer, "create-event", time.Now(), &err, map[string]any{"title": e.Title})

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	normalizeEventTimes(e)
	if err = e.Validate(); err != nil {
		return err
	}
	now := s.clock.now()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.events.Create(ctx, e)
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *eventService) Update(ctx context.Context, e *domain.Event) (err error) {
	defer observe(ctx, s.observer, "update-event", time.Now(), &err, map[string]any{"event_id": e.ID})

	normalizeEventTimes(e)
	if err = e.Validate(); err != nil {
		return err
	}
	e.UpdatedAt = s.clock.now()
	return s.events.Update(ctx, e)
}

func (s *eventService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-event", time.Now(), &err, map[string]any{"event_id": id})
	return s.events.Delete(ctx, id)
}
