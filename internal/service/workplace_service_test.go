package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/domain"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkplaceService_SeedDefaultsOnce(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWorkplaceService(env.workplaces, env.uow, env.now())
	ctx := context.Background()

	n, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "アルバイト", list[0].Name)
	assert.InDelta(t, 1000.0, list[0].HourlyRate, 1e-9)
	assert.Equal(t, "パート", list[1].Name)
	assert.InDelta(t, 1200.0, list[1].HourlyRate, 1e-9)

	n, err = svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWorkplaceService_SeedSkippedWhenUserHasWorkplaces(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWorkplaceService(env.workplaces, env.uow, env.now())
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, &domain.Workplace{Name: "Library", HourlyRate: 1100}))

	n, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWorkplaceService_SeedNotRepeatedAfterUserDeletesAll(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWorkplaceService(env.workplaces, env.uow, env.now())
	ctx := context.Background()

	_, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	list, err := svc.List(ctx)
	require.NoError(t, err)
	for _, w := range list {
		_, err := svc.Delete(ctx, w.ID)
		require.NoError(t, err)
	}

	// Next start.
	restarted := NewWorkplaceService(env.workplaces, env.uow, env.now())
	n, err := restarted.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	list, err = restarted.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestWorkplaceService_SeedMarksExistingDatabase(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWorkplaceService(env.workplaces, env.uow, env.now())
	ctx := context.Background()

	w := testutil.NewTestWorkplace("Library")
	require.NoError(t, env.workplaces.Create(ctx, w))

	n, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = svc.Delete(ctx, w.ID)
	require.NoError(t, err)
	n, err = svc.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "a database that already had workplaces never gets defaults")
}

func TestWorkplaceService_CreateDefaultsColor(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWorkplaceService(env.workplaces, env.uow, env.now())

	w := &domain.Workplace{Name: "Cafe", HourlyRate: 1050}
	require.NoError(t, svc.Create(context.Background(), w))
	assert.NotEmpty(t, w.ID)
	assert.Equal(t, domain.ColorBlue, w.Color)
}

func TestWorkplaceService_RejectsNegativeRate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWorkplaceService(env.workplaces, env.uow, env.now())

	err := svc.Create(context.Background(), &domain.Workplace{Name: "Bad", HourlyRate: -5})
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestWorkplaceService_DeleteOrphansShifts(t *testing.T) {
	env := newTestEnv(t)
	svc := NewWorkplaceService(env.workplaces, env.uow, env.now())
	stats := NewStatsService(env.shifts, env.workplaces)
	ctx := context.Background()

	w := testutil.NewTestWorkplace("Store", testutil.WithRate(1000))
	require.NoError(t, env.workplaces.Create(ctx, w))
	day := testutil.Day(2025, time.June, 3)
	require.NoError(t, env.shifts.Create(ctx, testutil.NewTestShift(w.ID, day, 9, 12)))
	require.NoError(t, env.shifts.Create(ctx, testutil.NewTestShift(w.ID, day, 13, 15)))

	orphaned, err := svc.Delete(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, orphaned)

	st, err := stats.Monthly(ctx, 2025, time.June)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, st.TotalHours, 1e-9)
	assert.InDelta(t, 0.0, st.TotalIncome, 1e-9)
	require.Len(t, st.ByWorkplace, 1)
	assert.True(t, st.ByWorkplace[0].Workplace.IsUnknown())

	_, err = svc.Delete(ctx, w.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
