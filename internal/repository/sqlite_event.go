package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/onlyone/internal/db"
	"github.com/alexanderramin/onlyone/internal/domain"
)

const eventColumns = `id, title, notes, date, start_time, end_time, all_day, created_at, updated_at`

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Notes,
		formatDate(e.Date),
		formatTimestamp(e.StartTime),
		formatTimestamp(e.EndTime),
		boolToInt(e.AllDay),
		formatTimestamp(e.CreatedAt),
		formatTimestamp(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (r *SQLiteEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanEvent(row)
}

func (r *SQLiteEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date, start_time, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time, rowid`
	rows, err := r.db.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing events between: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET title = ?, notes = ?, date = ?, start_time = ?, end_time = ?, all_day = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Title,
		e.Notes,
		formatDate(e.Date),
		formatTimestamp(e.StartTime),
		formatTimestamp(e.EndTime),
		boolToInt(e.AllDay),
		formatTimestamp(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	return requireAffected(res, "event")
}

func (r *SQLiteEventRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return requireAffected(res, "event")
}

// scanEvent scans a single event from a *sql.Row.
func (r *SQLiteEventRepo) scanEvent(row *sql.Row) (*domain.Event, error) {
	var e domain.Event
	var dateStr, startStr, endStr, createdAtStr, updatedAtStr string
	var allDay int

	err := row.Scan(&e.ID, &e.Title, &e.Notes, &dateStr, &startStr, &endStr, &allDay, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}
	if err := r.populateEvent(&e, allDay, dateStr, startStr, endStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &e, nil
}

// scanEvents scans multiple events from *sql.Rows.
func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	events := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		var dateStr, startStr, endStr, createdAtStr, updatedAtStr string
		var allDay int

		if err := rows.Scan(&e.ID, &e.Title, &e.Notes, &dateStr, &startStr, &endStr, &allDay, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		if err := r.populateEvent(&e, allDay, dateStr, startStr, endStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}

// populateEvent fills in parsed fields after scanning raw strings.
func (r *SQLiteEventRepo) populateEvent(e *domain.Event, allDay int, dateStr, startStr, endStr, createdAtStr, updatedAtStr string) error {
	var err error
	e.AllDay = intToBool(allDay)
	if e.Date, err = parseDate(dateStr); err != nil {
		return fmt.Errorf("parsing event date: %w", err)
	}
	if e.StartTime, err = parseTimestamp(startStr); err != nil {
		return fmt.Errorf("parsing start_time: %w", err)
	}
	if e.EndTime, err = parseTimestamp(endStr); err != nil {
		return fmt.Errorf("parsing end_time: %w", err)
	}
	e.CreatedAt, e.UpdatedAt, err = timestamps(createdAtStr, updatedAtStr)
	return err
}
