package interactions

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"edurise-backend/internal/shared/metrics"
	"edurise-backend/internal/shared/telemetry"
)

// Service appends interaction records. Tracking is best-effort telemetry:
// store failures are logged and reported through the stored flag, never as an
// error that interrupts the user action being tracked.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// RecordInput carries one interaction to record. ID and CreatedAt are
// assigned by the service.
type RecordInput struct {
	TenantID      string
	UserID        string
	CourseID      string
	Type          string
	AlgorithmUsed string
	Score         *float64
	Reason        string
	SessionID     string
	PageContext   string
	Position      *int
}

// Record validates and appends one interaction. The returned flag reports
// whether the record was persisted; the error is non-nil only for rejected
// input, in which case nothing is persisted.
func (s *Service) Record(ctx context.Context, in RecordInput) (Interaction, bool, error) {
	if !ValidType(in.Type) {
		metrics.IncInteractionRejected()
		return Interaction{}, false, ErrInvalidInteractionType
	}
	if strings.TrimSpace(in.UserID) == "" || strings.TrimSpace(in.CourseID) == "" {
		metrics.IncInteractionRejected()
		return Interaction{}, false, ErrInvalidInput
	}

	rec := Interaction{
		ID:             uuid.NewString(),
		TenantID:       in.TenantID,
		UserID:         in.UserID,
		CourseID:       in.CourseID,
		Type:           in.Type,
		AlgorithmUsed:  in.AlgorithmUsed,
		Score:          in.Score,
		Reason:         in.Reason,
		SessionID:      in.SessionID,
		PageContext:    in.PageContext,
		PositionInList: in.Position,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.Repo.Insert(ctx, rec); err != nil {
		metrics.IncInteractionDropped()
		telemetry.Error("interaction.store_failed", map[string]any{
			"user_id":          rec.UserID,
			"course_id":        rec.CourseID,
			"interaction_type": rec.Type,
			"error":            err.Error(),
		})
		return rec, false, nil
	}
	metrics.IncInteractionRecorded()
	return rec, true, nil
}
