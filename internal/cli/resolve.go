package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/schedule"
)

func resolveEventID(ctx context.Context, app *App, input string) (string, error) {
	events, err := app.Events.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return resolveID("event", input, ids)
}

func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, schedule.SortAdded)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return resolveID("task", input, ids)
}

func resolveShiftID(ctx context.Context, app *App, input string) (string, error) {
	shifts, err := app.Shifts.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(shifts))
	for i, s := range shifts {
		ids[i] = s.ID
	}
	return resolveID("shift", input, ids)
}

func resolveCourseID(ctx context.Context, app *App, input string) (string, error) {
	courses, err := app.Courses.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return resolveID("course", input, ids)
}

// resolveWorkplace accepts a workplace name (case-insensitive) or an ID prefix.
func resolveWorkplace(ctx context.Context, app *App, input string) (*domain.Workplace, error) {
	if input == "" {
		return nil, fmt.Errorf("workplace is required")
	}
	workplaces, err := app.Workplaces.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range workplaces {
		if strings.EqualFold(workplaces[i].Name, input) {
			return &workplaces[i], nil
		}
	}
	ids := make([]string, len(workplaces))
	for i, w := range workplaces {
		ids[i] = w.ID
	}
	id, err := resolveID("workplace", input, ids)
	if err != nil {
		return nil, err
	}
	return app.Workplaces.GetByID(ctx, id)
}
