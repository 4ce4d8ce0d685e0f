package service

import (
	"context"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	clock    Clock
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, clock Clock, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, clock: clock, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	defer observe(ctx, s.observer, "create-task", time.Now(), &err, map[string]any{"title": t.Title})

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if err = t.Validate(); err != nil {
		return err
	}
	now := s.clock.now()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// List returns every task ordered by mode. The repository already returns
// insertion order, which is the "added" mode.
func (s *taskService) List(ctx context.Context, mode schedule.TaskSortMode) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.SortTasks(tasks, mode), nil
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) (err error) {
	defer observe(ctx, s.observer, "update-task", time.Now(), &err, map[string]any{"task_id": t.ID})

	if err = t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = s.clock.now()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) ToggleCompleted(ctx context.Context, id string) (task *domain.Task, err error) {
	fields := map[string]any{"task_id": id}
	defer observe(ctx, s.observer, "toggle-task", time.Now(), &err, fields)

	task, err = s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task.ToggleCompleted(s.clock.now())
	fields["completed"] = task.Completed
	if err = s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-task", time.Now(), &err, map[string]any{"task_id": id})
	return s.tasks.Delete(ctx, id)
}
