package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateNormalizeCourseSemester(db); err != nil {
		return fmt.Errorf("normalizing course semesters: %w", err)
	}
	return nil
}

// migrateNormalizeCourseSemester repairs rows whose semester is neither
// first nor second. They are treated as first semester, the column default.
func migrateNormalizeCourseSemester(db *sql.DB) error {
	_, err := db.Exec(`UPDATE courses SET semester = 'first'
		WHERE semester NOT IN ('first','second')`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workplaces (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		color       TEXT NOT NULL DEFAULT 'blue'
		            CHECK(color IN ('red','blue','green','orange','purple','pink','yellow','gray')),
		hourly_rate REAL NOT NULL DEFAULT 0 CHECK(hourly_rate >= 0),
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS events (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		all_day    INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT '',
		date       TEXT NOT NULL,
		priority   TEXT NOT NULL DEFAULT 'medium'
		           CHECK(priority IN ('low','medium','high')),
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date)`,

	// workplace_id is deliberately not a foreign key: deleting a workplace
	// leaves its shifts in place and they resolve to the unknown workplace.
	`CREATE TABLE IF NOT EXISTS shifts (
		id            TEXT PRIMARY KEY,
		date          TEXT NOT NULL,
		start_time    TEXT NOT NULL,
		end_time      TEXT NOT NULL,
		workplace_id  TEXT NOT NULL,
		break_minutes INTEGER NOT NULL DEFAULT 0 CHECK(break_minutes >= 0),
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_date ON shifts(date)`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_workplace ON shifts(workplace_id)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		professor  TEXT NOT NULL DEFAULT '',
		room       TEXT NOT NULL DEFAULT '',
		weekday    TEXT NOT NULL,
		period     INTEGER NOT NULL CHECK(period BETWEEN 1 AND 6),
		color      TEXT NOT NULL DEFAULT 'blue',
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Migration: term scoping. Rows that predate it read back with year 0
	// and are assigned a term by the course migration on next startup.
	`ALTER TABLE courses ADD COLUMN year INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE courses ADD COLUMN semester TEXT NOT NULL DEFAULT 'first'`,
	`CREATE INDEX IF NOT EXISTS idx_courses_term ON courses(year, semester)`,

	// One-time startup steps record themselves here so they do not repeat.
	`CREATE TABLE IF NOT EXISTS meta (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
