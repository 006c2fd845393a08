package courses

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used in dev mode and
// tests.
type MemoryRepo struct {
	mu          sync.RWMutex
	courses     map[string]Course
	enrollments []Enrollment
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{courses: make(map[string]Course)}
}

// PutCourse stores or replaces a course.
func (r *MemoryRepo) PutCourse(course Course) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses[course.ID] = course
}

// PutEnrollment appends an enrollment row.
func (r *MemoryRepo) PutEnrollment(enrollment Enrollment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enrollments = append(r.enrollments, enrollment)
}

// GetByID fetches one course.
func (r *MemoryRepo) GetByID(ctx context.Context, courseID string) (Course, error) {
	if err := ctx.Err(); err != nil {
		return Course{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	course, ok := r.courses[courseID]
	if !ok {
		return Course{}, ErrNotFound
	}
	return course, nil
}

// ListPublished returns published courses, newest first.
func (r *MemoryRepo) ListPublished(ctx context.Context) ([]Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Course, 0, len(r.courses))
	for _, course := range r.courses {
		if course.Published {
			out = append(out, course)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ListUserEnrollments returns the user's enrollments with course attributes
// joined in.
func (r *MemoryRepo) ListUserEnrollments(ctx context.Context, userID string) ([]Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Enrollment
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, r.joined(e))
		}
	}
	return out, nil
}

// ListPeerEnrollments returns enrollments of users sharing at least one
// course with the given user.
func (r *MemoryRepo) ListPeerEnrollments(ctx context.Context, userID string) ([]Enrollment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	own := make(map[string]bool)
	for _, e := range r.enrollments {
		if e.UserID == userID {
			own[e.CourseID] = true
		}
	}
	peers := make(map[string]bool)
	for _, e := range r.enrollments {
		if e.UserID != userID && own[e.CourseID] {
			peers[e.UserID] = true
		}
	}

	var out []Enrollment
	for _, e := range r.enrollments {
		if peers[e.UserID] {
			out = append(out, r.joined(e))
		}
	}
	return out, nil
}

func (r *MemoryRepo) joined(e Enrollment) Enrollment {
	if course, ok := r.courses[e.CourseID]; ok {
		e.Category = course.Category
		e.InstructorID = course.InstructorID
		e.Level = course.Level
	}
	return e
}

var _ Repo = (*MemoryRepo)(nil)
