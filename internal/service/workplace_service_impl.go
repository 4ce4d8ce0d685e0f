package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/onlyone/internal/db"
	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/google/uuid"
)

type workplaceService struct {
	workplaces repository.WorkplaceRepo
	uow        db.UnitOfWork
	clock      Clock
	observer   UseCaseObserver
}

func NewWorkplaceService(workplaces repository.WorkplaceRepo, uow db.UnitOfWork, clock Clock, observers ...UseCaseObserver) WorkplaceService {
	return &workplaceService{
		workplaces: workplaces,
		uow:        uow,
		clock:      clock,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *workplaceService) Create(ctx context.Context, w *domain.Workplace) (err error) {
	defer observe(ctx, s.observer, "create-workplace", time.Now(), &err, map[string]any{"name": w.Name})

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Color == "" {
		w.Color = domain.ColorBlue
	}
	if err = w.Validate(); err != nil {
		return err
	}
	now := s.clock.now()
	w.CreatedAt = now
	w.UpdatedAt = now
	return s.workplaces.Create(ctx, w)
}

func (s *workplaceService) GetByID(ctx context.Context, id string) (*domain.Workplace, error) {
	return s.workplaces.GetByID(ctx, id)
}

func (s *workplaceService) List(ctx context.Context) ([]domain.Workplace, error) {
	return s.workplaces.List(ctx)
}

func (s *workplaceService) Update(ctx context.Context, w *domain.Workplace) (err error) {
	defer observe(ctx, s.observer, "update-workplace", time.Now(), &err, map[string]any{"workplace_id": w.ID})

	if err = w.Validate(); err != nil {
		return err
	}
	w.UpdatedAt = s.clock.now()
	return s.workplaces.Update(ctx, w)
}

func (s *workplaceService) Delete(ctx context.Context, id string) (orphaned int, err error) {
	fields := map[string]any{"workplace_id": id}
	defer observe(ctx, s.observer, "delete-workplace", time.Now(), &err, fields)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteShiftRepo(tx).CountByWorkplace(ctx, id)
		if err != nil {
			return err
		}
		if err := repository.NewSQLiteWorkplaceRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		orphaned = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	fields["orphaned_shifts"] = orphaned
	return orphaned, nil
}

// seededKey marks that the default workplaces were offered once. After that
// an empty workplace list is the user's choice and stays empty.
const seededKey = "workplaces_seeded"

func (s *workplaceService) SeedDefaults(ctx context.Context) (created int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "seed-workplaces", time.Now(), &err, fields)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		meta := repository.NewSQLiteMetaRepo(tx)
		if _, err := meta.Get(ctx, seededKey); err == nil {
			return nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		repo := repository.NewSQLiteWorkplaceRepo(tx)
		n, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		now := s.clock.now()
		// Databases from before the marker existed already hold the user's
		// workplaces; only mark them.
		if n == 0 {
			for _, w := range domain.DefaultWorkplaces() {
				w.ID = uuid.New().String()
				w.CreatedAt = now
				w.UpdatedAt = now
				if err := repo.Create(ctx, &w); err != nil {
					return err
				}
				created++
			}
		}
		return meta.Set(ctx, seededKey, now.Format(time.RFC3339))
	})
	if err != nil {
		return 0, err
	}
	fields["created"] = created
	return created, nil
}
