package recommendations

import (
	"context"

	"edurise-backend/internal/courses"
	"edurise-backend/internal/shared/metrics"
	"edurise-backend/internal/shared/telemetry"
)

// CourseSource supplies the read-only snapshots one recommendation call
// consumes. Satisfied by courses.Repo.
type CourseSource interface {
	ListPublished(ctx context.Context) ([]courses.Course, error)
	ListUserEnrollments(ctx context.Context, userID string) ([]courses.Enrollment, error)
	ListPeerEnrollments(ctx context.Context, userID string) ([]courses.Enrollment, error)
}

// Service fetches snapshots and runs the engine. The engine itself performs
// no I/O; this layer owns the storage boundary.
type Service struct {
	Courses CourseSource
	Engine  *Engine
}

// NewService constructs a Service.
func NewService(source CourseSource, engine *Engine) *Service {
	return &Service{Courses: source, Engine: engine}
}

// Recommend loads the user's history, the candidate pool, and peer
// enrollments, then runs the engine. Snapshot fetch failures surface as
// errors; the engine call itself cannot fail.
func (s *Service) Recommend(ctx context.Context, userID string, limit int, algorithm string) (Result, error) {
	started := metrics.NowMillis()

	history, err := s.Courses.ListUserEnrollments(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	pool, err := s.Courses.ListPublished(ctx)
	if err != nil {
		return Result{}, err
	}

	// Peer data is only consulted for returning users; skip the heaviest
	// query for the cold-start path.
	var peers []courses.Enrollment
	if len(history) > 0 {
		peers, err = s.Courses.ListPeerEnrollments(ctx, userID)
		if err != nil {
			return Result{}, err
		}
	}

	result := s.Engine.Recommend(Input{
		History:         toHistory(history),
		Pool:            toPool(pool),
		PeerEnrollments: toPeers(peers),
		Limit:           limit,
		Algorithm:       algorithm,
	})

	metrics.IncRecommendationRequests()
	metrics.ObserveRecommendationDurationMs(metrics.NowMillis() - started)
	telemetry.Info("recommendations.served", map[string]any{
		"user_id":   userID,
		"algorithm": algorithm,
		"returned":  len(result.Items),
	})
	return result, nil
}

func toHistory(enrollments []courses.Enrollment) []Enrollment {
	out := make([]Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, Enrollment{
			CourseID:     e.CourseID,
			Category:     e.Category,
			InstructorID: e.InstructorID,
			Level:        e.Level,
			Status:       e.Status,
		})
	}
	return out
}

func toPool(catalog []courses.Course) []Course {
	out := make([]Course, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, Course{
			ID:              c.ID,
			Category:        c.Category,
			InstructorID:    c.InstructorID,
			Level:           c.Level,
			Price:           c.Price,
			Rating:          c.Rating,
			EnrollmentCount: c.EnrollmentCount,
			CreatedAt:       c.CreatedAt,
		})
	}
	return out
}

func toPeers(enrollments []courses.Enrollment) []PeerEnrollment {
	out := make([]PeerEnrollment, 0, len(enrollments))
	for _, e := range enrollments {
		out = append(out, PeerEnrollment{
			UserID:    e.UserID,
			CourseID:  e.CourseID,
			Progress:  e.Progress,
			Completed: e.Status == courses.StatusCompleted,
		})
	}
	return out
}
