package courses

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const courseColumns = `id, tenant_id, title, category, instructor_id, level, price, rating, enrollment_count, published, created_at`

// GetByID fetches one course.
func (r *PGRepo) GetByID(ctx context.Context, courseID string) (Course, error) {
	const query = `
SELECT ` + courseColumns + `
FROM courses
WHERE id = $1
LIMIT 1`
	course, err := scanCourse(r.DB.QueryRowContext(ctx, query, courseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Course{}, ErrNotFound
		}
		return Course{}, err
	}
	return course, nil
}

// ListPublished returns all published courses, newest first.
func (r *PGRepo) ListPublished(ctx context.Context) ([]Course, error) {
	const query = `
SELECT ` + courseColumns + `
FROM courses
WHERE published
ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, course)
	}
	return out, rows.Err()
}

const enrollmentSelect = `
SELECT e.id, e.user_id, e.course_id, e.status, e.progress, e.enrolled_at, e.completed_at,
       c.category, c.instructor_id, c.level
FROM enrollments e
JOIN courses c ON c.id = e.course_id`

// ListUserEnrollments returns the user's enrollment history with course
// attributes joined in.
func (r *PGRepo) ListUserEnrollments(ctx context.Context, userID string) ([]Enrollment, error) {
	const query = enrollmentSelect + `
WHERE e.user_id = $1
ORDER BY e.enrolled_at, e.id`
	return r.queryEnrollments(ctx, query, userID)
}

// ListPeerEnrollments returns enrollments of users who share at least one
// course with the given user, excluding the user's own rows.
func (r *PGRepo) ListPeerEnrollments(ctx context.Context, userID string) ([]Enrollment, error) {
	const query = enrollmentSelect + `
WHERE e.user_id <> $1
  AND e.user_id IN (
    SELECT DISTINCT user_id
    FROM enrollments
    WHERE user_id <> $1
      AND course_id IN (SELECT course_id FROM enrollments WHERE user_id = $1)
  )
ORDER BY e.user_id, e.enrolled_at, e.id`
	return r.queryEnrollments(ctx, query, userID)
}

func (r *PGRepo) queryEnrollments(ctx context.Context, query string, args ...any) ([]Enrollment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Enrollment
	for rows.Next() {
		var e Enrollment
		var completedAt sql.NullTime
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CourseID,
			&e.Status,
			&e.Progress,
			&e.EnrolledAt,
			&completedAt,
			&e.Category,
			&e.InstructorID,
			&e.Level,
		); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			e.CompletedAt = &completedAt.Time
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(row rowScanner) (Course, error) {
	var course Course
	var tenantID sql.NullString
	var rating sql.NullFloat64
	if err := row.Scan(
		&course.ID,
		&tenantID,
		&course.Title,
		&course.Category,
		&course.InstructorID,
		&course.Level,
		&course.Price,
		&rating,
		&course.EnrollmentCount,
		&course.Published,
		&course.CreatedAt,
	); err != nil {
		return Course{}, err
	}
	if tenantID.Valid {
		course.TenantID = tenantID.String
	}
	if rating.Valid {
		course.Rating = &rating.Float64
	}
	return course, nil
}

var _ Repo = (*PGRepo)(nil)
