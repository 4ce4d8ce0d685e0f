package repository

import (
	"database/sql"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// formatDate stores the calendar date of t as seen in its own location.
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// parseDate reads a stored date as local midnight.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// parseTimestamp parses an RFC3339 value and moves it into the local zone so
// day comparisons line up with dates read through parseDate.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(time.Local), nil
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// requireAffected maps a zero-row UPDATE or DELETE to ErrNotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}

// timestamps parses the created_at/updated_at pair every table carries.
func timestamps(createdAtStr, updatedAtStr string) (created, updated time.Time, err error) {
	created, err = parseTimestamp(createdAtStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing created_at: %w", err)
	}
	updated, err = parseTimestamp(updatedAtStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return created, updated, nil
}
