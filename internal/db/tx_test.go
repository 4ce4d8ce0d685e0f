package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/onlyone/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertWorkplace = `INSERT INTO workplaces (id, name, hourly_rate, created_at, updated_at)
	VALUES (?, ?, ?, '2025-06-01T00:00:00Z', '2025-06-01T00:00:00Z')`

func openTxDB(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func countWorkplaces(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM workplaces`).Scan(&n))
	return n
}

func TestWithinTx(t *testing.T) {
	errStop := errors.New("stop")

	tests := []struct {
		name    string
		fn      func(ctx context.Context, tx db.DBTX) error
		wantErr error
		want    int
	}{
		{
			name: "commits both rows",
			fn: func(ctx context.Context, tx db.DBTX) error {
				if _, err := tx.ExecContext(ctx, insertWorkplace, "a", "Cafe", 1000); err != nil {
					return err
				}
				_, err := tx.ExecContext(ctx, insertWorkplace, "b", "Bookstore", 1100)
				return err
			},
			want: 2,
		},
		{
			name: "callback error rolls back",
			fn: func(ctx context.Context, tx db.DBTX) error {
				if _, err := tx.ExecContext(ctx, insertWorkplace, "a", "Cafe", 1000); err != nil {
					return err
				}
				return errStop
			},
			wantErr: errStop,
		},
		{
			name: "constraint failure rolls back earlier rows",
			fn: func(ctx context.Context, tx db.DBTX) error {
				if _, err := tx.ExecContext(ctx, insertWorkplace, "a", "Cafe", 1000); err != nil {
					return err
				}
				_, err := tx.ExecContext(ctx, insertWorkplace, "b", "Bad rate", -1)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, uow := openTxDB(t)

			err := uow.WithinTx(context.Background(), tt.fn)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.want == 0:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, countWorkplaces(t, database))
		})
	}
}

func TestWithinTx_PanicRollsBackAndRepanics(t *testing.T) {
	database, uow := openTxDB(t)

	assert.PanicsWithValue(t, "boom", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertWorkplace, "a", "Cafe", 1000)
			panic("boom")
		})
	})
	assert.Equal(t, 0, countWorkplaces(t, database))
}

func TestWithinTx_CanceledContext(t *testing.T) {
	_, uow := openTxDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		called = true
		return nil
	})
	assert.Error(t, err)
	assert.False(t, called)
}
