package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateDefaultsPriority(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTaskService(env.tasks, env.now())

	task := &domain.Task{Title: "Read chapter 3", Date: time.Date(2025, time.June, 12, 0, 0, 0, 0, time.Local)}
	require.NoError(t, svc.Create(context.Background(), task))
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.True(t, task.CreatedAt.Equal(env.clock.Now()))
}

func TestTaskService_ListSortModes(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTaskService(env.tasks, env.now())
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2025, time.June, d, 0, 0, 0, 0, time.Local) }
	for _, task := range []*domain.Task{
		{Title: "low-early", Date: day(1), Priority: domain.PriorityLow},
		{Title: "high-late", Date: day(20), Priority: domain.PriorityHigh},
		{Title: "high-early", Date: day(5), Priority: domain.PriorityHigh},
	} {
		require.NoError(t, svc.Create(ctx, task))
	}

	titles := func(ts []domain.Task) []string {
		out := make([]string, len(ts))
		for i, t := range ts {
			out[i] = t.Title
		}
		return out
	}

	added, err := svc.List(ctx, schedule.SortAdded)
	require.NoError(t, err)
	assert.Equal(t, []string{"low-early", "high-late", "high-early"}, titles(added))

	byPriority, err := svc.List(ctx, schedule.SortPriority)
	require.NoError(t, err)
	assert.Equal(t, []string{"high-early", "high-late", "low-early"}, titles(byPriority))

	byDue, err := svc.List(ctx, schedule.SortDueDate)
	require.NoError(t, err)
	assert.Equal(t, []string{"low-early", "high-early", "high-late"}, titles(byDue))
}

func TestTaskService_ToggleCompleted(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTaskService(env.tasks, env.now())
	ctx := context.Background()

	task := &domain.Task{Title: "Pay rent", Date: time.Date(2025, time.June, 25, 0, 0, 0, 0, time.Local)}
	require.NoError(t, svc.Create(ctx, task))

	env.clock.Advance(time.Hour)
	toggled, err := svc.ToggleCompleted(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.True(t, toggled.UpdatedAt.Equal(env.clock.Now()))

	toggled, err = svc.ToggleCompleted(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}
