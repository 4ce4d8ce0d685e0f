package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	day := testutil.Day(2025, time.May, 3)
	ev := testutil.NewTestEvent("Concert", day, testutil.WithEventTimes(18, 21), testutil.WithEventNotes("Hall B"))
	require.NoError(t, repo.Create(ctx, ev))

	fetched, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Concert", fetched.Title)
	assert.Equal(t, "Hall B", fetched.Notes)
	assert.True(t, fetched.Date.Equal(day))
	assert.True(t, fetched.StartTime.Equal(ev.StartTime))
	assert.True(t, fetched.EndTime.Equal(ev.EndTime))
	assert.False(t, fetched.AllDay)
	assert.True(t, fetched.CreatedAt.Equal(ev.CreatedAt))
}

func TestEventRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepo_ListBetween_InclusiveDates(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	before := testutil.NewTestEvent("before", testutil.Day(2025, time.April, 30))
	first := testutil.NewTestEvent("first", testutil.Day(2025, time.May, 1))
	last := testutil.NewTestEvent("last", testutil.Day(2025, time.May, 31))
	after := testutil.NewTestEvent("after", testutil.Day(2025, time.June, 1))
	require.NoError(t, repo.Create(ctx, after))
	require.NoError(t, repo.Create(ctx, last))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, before))

	got, err := repo.ListBetween(ctx, testutil.Day(2025, time.May, 1), testutil.Day(2025, time.May, 31))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "last", got[1].Title)
}

func TestEventRepo_ListEmptyIsNotNil(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEventRepo_UpdateAndDelete(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	ev := testutil.NewTestEvent("Draft", testutil.Day(2025, time.May, 3))
	require.NoError(t, repo.Create(ctx, ev))

	ev.Title = "Final"
	ev.AllDay = true
	require.NoError(t, repo.Update(ctx, ev))

	fetched, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", fetched.Title)
	assert.True(t, fetched.AllDay)

	require.NoError(t, repo.Delete(ctx, ev.ID))
	_, err = repo.GetByID(ctx, ev.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, ev.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, ev), ErrNotFound)
}
