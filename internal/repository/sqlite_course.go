package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/onlyone/internal/db"
	"github.com/alexanderramin/onlyone/internal/domain"
)

const courseColumns = `id, title, professor, room, weekday, period, color, notes, year, semester, created_at, updated_at`

// SQLiteCourseRepo implements CourseRepo using a SQLite database. It does not
// enforce slot uniqueness; callers check with timetable.CheckSlot inside the
// same transaction as the write.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(db db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: db}
}

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		c.Professor,
		c.Room,
		c.Weekday,
		c.Period,
		string(c.Color),
		c.Notes,
		c.Year,
		string(c.Semester),
		formatTimestamp(c.CreatedAt),
		formatTimestamp(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`
	var c domain.Course
	var color, semester, createdAtStr, updatedAtStr string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Title, &c.Professor, &c.Room, &c.Weekday, &c.Period, &color, &c.Notes,
		&c.Year, &semester, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	if err := populateCourse(&c, color, semester, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *SQLiteCourseRepo) ListByTerm(ctx context.Context, year int, semester domain.Semester) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE year = ? AND semester = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, year, string(semester))
	if err != nil {
		return nil, fmt.Errorf("listing courses by term: %w", err)
	}
	defer rows.Close()
	return scanCourses(rows)
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	query := `UPDATE courses SET title = ?, professor = ?, room = ?, weekday = ?, period = ?, color = ?, notes = ?,
		year = ?, semester = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Title,
		c.Professor,
		c.Room,
		c.Weekday,
		c.Period,
		string(c.Color),
		c.Notes,
		c.Year,
		string(c.Semester),
		formatTimestamp(c.UpdatedAt),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return requireAffected(res, "course")
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return requireAffected(res, "course")
}

func scanCourses(rows *sql.Rows) ([]domain.Course, error) {
	courses := []domain.Course{}
	for rows.Next() {
		var c domain.Course
		var color, semester, createdAtStr, updatedAtStr string
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Professor, &c.Room, &c.Weekday, &c.Period, &color, &c.Notes,
			&c.Year, &semester, &createdAtStr, &updatedAtStr,
		); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		if err := populateCourse(&c, color, semester, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func populateCourse(c *domain.Course, color, semester, createdAtStr, updatedAtStr string) error {
	var err error
	c.Color = domain.Color(color)
	c.Semester = domain.Semester(semester)
	c.CreatedAt, c.UpdatedAt, err = timestamps(createdAtStr, updatedAtStr)
	return err
}
