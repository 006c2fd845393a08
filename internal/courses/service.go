package courses

import "context"

// Service exposes catalog reads to handlers.
type Service struct {
	Repo Repo
}

func (s *Service) Get(ctx context.Context, courseID string) (Course, error) {
	return s.Repo.GetByID(ctx, courseID)
}

func (s *Service) ListCatalog(ctx context.Context) ([]Course, error) {
	return s.Repo.ListPublished(ctx)
}

func (s *Service) ListHistory(ctx context.Context, userID string) ([]Enrollment, error) {
	return s.Repo.ListUserEnrollments(ctx, userID)
}
