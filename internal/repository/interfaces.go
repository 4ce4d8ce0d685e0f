package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
)

// ErrNotFound is wrapped by every repository lookup, update and delete that
// targets a missing row.
var ErrNotFound = errors.New("not found")

// Date range arguments are inclusive and compared on the calendar date only.

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}

type ShiftRepo interface {
	Create(ctx context.Context, s *domain.Shift) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	List(ctx context.Context) ([]domain.Shift, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]domain.Shift, error)
	CountByWorkplace(ctx context.Context, workplaceID string) (int, error)
	Update(ctx context.Context, s *domain.Shift) error
	Delete(ctx context.Context, id string) error
}

type WorkplaceRepo interface {
	Create(ctx context.Context, w *domain.Workplace) error
	GetByID(ctx context.Context, id string) (*domain.Workplace, error)
	List(ctx context.Context) ([]domain.Workplace, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, w *domain.Workplace) error
	Delete(ctx context.Context, id string) error
}

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	ListByTerm(ctx context.Context, year int, semester domain.Semester) ([]domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
}

// MetaRepo stores application markers such as "default workplaces seeded".
type MetaRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
