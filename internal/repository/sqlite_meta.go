package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/onlyone/internal/db"
)

// SQLiteMetaRepo implements MetaRepo over the meta key/value table.
type SQLiteMetaRepo struct {
	db db.DBTX
}

func NewSQLiteMetaRepo(db db.DBTX) *SQLiteMetaRepo {
	return &SQLiteMetaRepo{db: db}
}

func (r *SQLiteMetaRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("meta %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading meta %q: %w", key, err)
	}
	return value, nil
}

// Set inserts key or overwrites its value.
func (r *SQLiteMetaRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO meta (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, formatTimestamp(time.Now()))
	if err != nil {
		return fmt.Errorf("writing meta %q: %w", key, err)
	}
	return nil
}
