package courses

import "context"

// Repo defines the read-side queries the recommendation layer needs. All
// results are snapshots; callers never mutate course or enrollment state
// through this interface.
type Repo interface {
	GetByID(ctx context.Context, courseID string) (Course, error)
	ListPublished(ctx context.Context) ([]Course, error)
	ListUserEnrollments(ctx context.Context, userID string) ([]Enrollment, error)
	// ListPeerEnrollments returns enrollments of every other user who shares
	// at least one course with the given user.
	ListPeerEnrollments(ctx context.Context, userID string) ([]Enrollment, error)
}
