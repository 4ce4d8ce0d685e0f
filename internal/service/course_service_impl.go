package service

import (
	"context"
	"time"

	"github.com/alexanderramin/onlyone/internal/db"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/timetable"
	"github.com/google/uuid"
)

type courseService struct {
	courses  repository.CourseRepo
	uow      db.UnitOfWork
	clock    Clock
	observer UseCaseObserver
}

func NewCourseService(courses repository.CourseRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) CourseService {
	return &courseService{
		courses:  courses,
		uow:      uow,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

// checkSlotTx loads the candidate's term inside tx and rejects the write if
// another course already holds its slot.
func checkSlotTx(ctx context.Context, repo repository.CourseRepo, c *domain.Course) error {
	term, err := repo.ListByTerm(ctx, c.Year, c.Semester)
	if err != nil {
		return err
	}
	return timetable.CheckSlot(term, *c)
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) (err error) {
	defer observe(ctx, s.observer, "create-course", time.Now(), &err, map[string]any{"slot": c.Slot().String()})

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Color == "" {
		c.Color = domain.ColorBlue
	}
	if err = c.Validate(); err != nil {
		return err
	}
	now := s.clock.now()
	c.CreatedAt = now
	c.UpdatedAt = now

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCourseRepo(tx)
		if err := checkSlotTx(ctx, repo, c); err != nil {
			return err
		}
		return repo.Create(ctx, c)
	})
}

func (s *courseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *courseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseService) ListByTerm(ctx context.Context, year int, semester domain.Semester) ([]domain.Course, error) {
	return s.courses.ListByTerm(ctx, year, semester)
}

func (s *courseService) Update(ctx context.Context, c *domain.Course) (err error) {
	defer observe(ctx, s.observer, "update-course", time.Now(), &err, map[string]any{
		"course_id": c.ID,
		"slot":      c.Slot().String(),
	})

	if err = c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = s.clock.now()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCourseRepo(tx)
		if _, err := repo.GetByID(ctx, c.ID); err != nil {
			return err
		}
		if err := checkSlotTx(ctx, repo, c); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
}

func (s *courseService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-course", time.Now(), &err, map[string]any{"course_id": id})
	return s.courses.Delete(ctx, id)
}

func (s *courseService) Timetable(ctx context.Context, year int, semester domain.Semester, showSaturday bool) (*TimetableView, error) {
	courses, err := s.courses.ListByTerm(ctx, year, semester)
	if err != nil {
		return nil, err
	}
	grid, hidden := timetable.BuildGrid(courses, year, semester, timetable.Weekdays(showSaturday))
	return &TimetableView{Grid: grid, Hidden: hidden}, nil
}

// MigrateLegacy runs on every start. It writes only when at least one course
// still has the legacy year, and all writes share one transaction. Slots the
// migration makes shared are reported, not resolved.
func (s *courseService) MigrateLegacy(ctx context.Context) (report *MigrationReport, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "migrate-courses", time.Now(), &err, fields)

	report = &MigrationReport{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCourseRepo(tx)
		courses, err := repo.List(ctx)
		if err != nil {
			return err
		}
		migrated, n := timetable.MigrateLegacy(courses, s.clock.now())
		if n == 0 {
			return nil
		}
		moved := make(map[string]bool, n)
		for i := range migrated {
			if !courses[i].IsLegacy() {
				continue
			}
			if err := repo.Update(ctx, &migrated[i]); err != nil {
				return err
			}
			moved[migrated[i].ID] = true
		}
		report.Migrated = n
		for _, c := range timetable.Collisions(migrated) {
			if moved[c.Kept.ID] || moved[c.Shadowed.ID] {
				report.Collisions = append(report.Collisions, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["migrated"] = report.Migrated
	fields["slot_collisions"] = len(report.Collisions)
	return report, nil
}
