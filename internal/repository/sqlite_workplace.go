package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/onlyone/internal/db"
	"github.com/alexanderramin/onlyone/internal/domain"
)

const workplaceColumns = `id, name, color, hourly_rate, notes, created_at, updated_at`

// SQLiteWorkplaceRepo implements WorkplaceRepo using a SQLite database.
type SQLiteWorkplaceRepo struct {
	db db.DBTX
}

// NewSQLiteWorkplaceRepo creates a new SQLiteWorkplaceRepo.
func NewSQLiteWorkplaceRepo(db db.DBTX) *SQLiteWorkplaceRepo {
	return &SQLiteWorkplaceRepo{db: db}
}

func (r *SQLiteWorkplaceRepo) Create(ctx context.Context, w *domain.Workplace) error {
	query := `INSERT INTO workplaces (` + workplaceColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Name,
		string(w.Color),
		w.HourlyRate,
		w.Notes,
		formatTimestamp(w.CreatedAt),
		formatTimestamp(w.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting workplace: %w", err)
	}
	return nil
}

func (r *SQLiteWorkplaceRepo) GetByID(ctx context.Context, id string) (*domain.Workplace, error) {
	query := `SELECT ` + workplaceColumns + ` FROM workplaces WHERE id = ?`
	var w domain.Workplace
	var color, createdAtStr, updatedAtStr string

	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &color, &w.HourlyRate, &w.Notes, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("workplace: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning workplace: %w", err)
	}
	w.Color = domain.Color(color)
	if w.CreatedAt, w.UpdatedAt, err = timestamps(createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *SQLiteWorkplaceRepo) List(ctx context.Context) ([]domain.Workplace, error) {
	query := `SELECT ` + workplaceColumns + ` FROM workplaces ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing workplaces: %w", err)
	}
	defer rows.Close()

	workplaces := []domain.Workplace{}
	for rows.Next() {
		var w domain.Workplace
		var color, createdAtStr, updatedAtStr string
		if err := rows.Scan(&w.ID, &w.Name, &color, &w.HourlyRate, &w.Notes, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning workplace row: %w", err)
		}
		w.Color = domain.Color(color)
		if w.CreatedAt, w.UpdatedAt, err = timestamps(createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		workplaces = append(workplaces, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workplaces: %w", err)
	}
	return workplaces, nil
}

func (r *SQLiteWorkplaceRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workplaces`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting workplaces: %w", err)
	}
	return n, nil
}

func (r *SQLiteWorkplaceRepo) Update(ctx context.Context, w *domain.Workplace) error {
	query := `UPDATE workplaces SET name = ?, color = ?, hourly_rate = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Name,
		string(w.Color),
		w.HourlyRate,
		w.Notes,
		formatTimestamp(w.UpdatedAt),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating workplace: %w", err)
	}
	return requireAffected(res, "workplace")
}

// Delete removes the workplace only. Shifts that reference it are left in
// place.
func (r *SQLiteWorkplaceRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workplaces WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting workplace: %w", err)
	}
	return requireAffected(res, "workplace")
}
