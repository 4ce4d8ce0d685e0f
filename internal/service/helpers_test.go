package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/db"
	"github.com/alexanderramin/onlyone/internal/repository"
	"github.com/alexanderramin/onlyone/internal/testutil"
)

// testEnv wires every service over one in-memory database.
type testEnv struct {
	db         *sql.DB
	uow        db.UnitOfWork
	clock      *testutil.Clock
	events     *repository.SQLiteEventRepo
	tasks      *repository.SQLiteTaskRepo
	shifts     *repository.SQLiteShiftRepo
	workplaces *repository.SQLiteWorkplaceRepo
	courses    *repository.SQLiteCourseRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:         database,
		uow:        testutil.NewTestUoW(database),
		clock:      testutil.NewClock(time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)),
		events:     repository.NewSQLiteEventRepo(database),
		tasks:      repository.NewSQLiteTaskRepo(database),
		shifts:     repository.NewSQLiteShiftRepo(database),
		workplaces: repository.NewSQLiteWorkplaceRepo(database),
		courses:    repository.NewSQLiteCourseRepo(database),
	}
}

func (e *testEnv) now() Clock { return e.clock.Now }
