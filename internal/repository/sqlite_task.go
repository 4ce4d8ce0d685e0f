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

const taskColumns = `id, title, notes, date, priority, completed, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database. Lists come
// back in insertion order, which is what the "added" sort mode relies on.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Notes,
		formatDate(t.Date),
		string(t.Priority),
		boolToInt(t.Completed),
		formatTimestamp(t.CreatedAt),
		formatTimestamp(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	var t domain.Task
	var dateStr, priority, createdAtStr, updatedAtStr string
	var completed int

	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Title, &t.Notes, &dateStr, &priority, &completed, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	if err := populateTask(&t, priority, completed, dateStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListBetween(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE date >= ? AND date <= ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, formatDate(from), formatDate(to))
	if err != nil {
		return nil, fmt.Errorf("listing tasks between: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, notes = ?, date = ?, priority = ?, completed = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Notes,
		formatDate(t.Date),
		string(t.Priority),
		boolToInt(t.Completed),
		formatTimestamp(t.UpdatedAt),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task")
}

func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		var dateStr, priority, createdAtStr, updatedAtStr string
		var completed int

		if err := rows.Scan(&t.ID, &t.Title, &t.Notes, &dateStr, &priority, &completed, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		if err := populateTask(&t, priority, completed, dateStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func populateTask(t *domain.Task, priority string, completed int, dateStr, createdAtStr, updatedAtStr string) error {
	var err error
	t.Priority = domain.TaskPriority(priority)
	t.Completed = intToBool(completed)
	if t.Date, err = parseDate(dateStr); err != nil {
		return fmt.Errorf("parsing task date: %w", err)
	}
	t.CreatedAt, t.UpdatedAt, err = timestamps(createdAtStr, updatedAtStr)
	return err
}
