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

const shiftColumns = `id, date, start_time, end_time, workplace_id, break_minutes, notes, created_at, updated_at`

// SQLiteShiftRepo implements ShiftRepo using a SQLite database.
type SQLiteShiftRepo struct {
	db db.DBTX
}

// NewSQLiteShiftRepo creates a new SQLiteShiftRepo.
func NewSQLiteShiftRepo(db db.DBTX) *SQLiteShiftRepo {
	return &SQLiteShiftRepo{db: db}
}

func (r *SQLiteShiftRepo) Create(ctx context.Context, s *domain.Shift) error {
	query := `INSERT INTO shifts (` + shiftColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		formatDate(s.Date),
		formatTimestamp(s.StartTime),
		formatTimestamp(s.EndTime),
		s.WorkplaceID,
		s.BreakMinutes,
		s.Notes,
		formatTimestamp(s.CreatedAt),
		formatTimestamp(s.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting shift: %w", err)
	}
	return nil
}

func (r *SQLiteShiftRepo) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Shift
	var dateStr, startStr, endStr, createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &dateStr, &startStr, &endStr, &s.WorkplaceID, &s.BreakMinutes, &s.Notes, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("shift: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning shift: %w", err)
	}
	if err := populateShift(&s, dateStr, startStr, endStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteShiftRepo) List(ctx context.Context) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts ORDER BY date, start_time, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing shifts: %w", err)
	}
	defer rows.Close()
	return scanShifts(rows)
}

func (r *SQLiteShiftRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time, rowid`
	rows, err := r.db.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing shifts between: %w", err)
	}
	defer rows.Close()
	return scanShifts(rows)
}

func (r *SQLiteShiftRepo) CountByWorkplace(ctx context.Context, workplaceID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shifts WHERE workplace_id = ?`, workplaceID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting shifts by workplace: %w", err)
	}
	return n, nil
}

func (r *SQLiteShiftRepo) Update(ctx context.Context, s *domain.Shift) error {
	query := `UPDATE shifts SET date = ?, start_time = ?, end_time = ?, workplace_id = ?, break_minutes = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		formatDate(s.Date),
		formatTimestamp(s.StartTime),
		formatTimestamp(s.EndTime),
		s.WorkplaceID,
		s.BreakMinutes,
		s.Notes,
		formatTimestamp(s.UpdatedAt),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shift: %w", err)
	}
	return requireAffected(res, "shift")
}

func (r *SQLiteShiftRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting shift: %w", err)
	}
	return requireAffected(res, "shift")
}

func scanShifts(rows *sql.Rows) ([]domain.Shift, error) {
	shifts := []domain.Shift{}
	for rows.Next() {
		var s domain.Shift
		var dateStr, startStr, endStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&s.ID, &dateStr, &startStr, &endStr, &s.WorkplaceID, &s.BreakMinutes, &s.Notes, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning shift row: %w", err)
		}
		if err := populateShift(&s, dateStr, startStr, endStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}
	return shifts, nil
}

func populateShift(s *domain.Shift, dateStr, startStr, endStr, createdAtStr, updatedAtStr string) error {
	var err error
	if s.Date, err = parseDate(dateStr); err != nil {
		return fmt.Errorf("parsing shift date: %w", err)
	}
	if s.StartTime, err = parseTimestamp(startStr); err != nil {
		return fmt.Errorf("parsing start_time: %w", err)
	}
	if s.EndTime, err = parseTimestamp(endStr); err != nil {
		return fmt.Errorf("parsing end_time: %w", err)
	}
	s.CreatedAt, s.UpdatedAt, err = timestamps(createdAtStr, updatedAtStr)
	return err
}
