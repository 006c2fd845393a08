package analytics

import (
	"context"
	"time"

	"edurise-backend/internal/interactions"
)

// Service computes recommendation feedback aggregates. Pure read-side; it
// never writes.
type Service struct {
	Source Source
}

// NewService constructs a Service.
func NewService(source Source) *Service {
	return &Service{Source: source}
}

// Summarize aggregates interactions recorded at or after since, optionally
// scoped to one tenant. Rates are zero, not an error, when the window has no
// views.
func (s *Service) Summarize(ctx context.Context, tenantID string, since time.Time) (Summary, error) {
	buckets, err := s.Source.BucketsSince(ctx, tenantID, since)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		InteractionsByType:   make(map[string]int),
		AlgorithmPerformance: make(map[string]AlgorithmStats),
	}

	perAlgorithm := make(map[string]map[string]int)
	for _, b := range buckets {
		summary.TotalInteractions += b.Count
		summary.InteractionsByType[b.Type] += b.Count
		if b.Algorithm == "" {
			continue
		}
		byType := perAlgorithm[b.Algorithm]
		if byType == nil {
			byType = make(map[string]int)
			perAlgorithm[b.Algorithm] = byType
		}
		byType[b.Type] += b.Count
	}

	summary.ClickThroughRate = rate(
		summary.InteractionsByType[interactions.TypeClick],
		summary.InteractionsByType[interactions.TypeView],
	)
	summary.ConversionRate = rate(
		summary.InteractionsByType[interactions.TypeEnroll],
		summary.InteractionsByType[interactions.TypeView],
	)

	for algorithm, byType := range perAlgorithm {
		stats := AlgorithmStats{
			Views:       byType[interactions.TypeView],
			Clicks:      byType[interactions.TypeClick],
			Enrollments: byType[interactions.TypeEnroll],
		}
		for _, n := range byType {
			stats.Interactions += n
		}
		stats.ClickThroughRate = rate(stats.Clicks, stats.Views)
		stats.ConversionRate = rate(stats.Enrollments, stats.Views)
		summary.AlgorithmPerformance[algorithm] = stats
	}

	return summary, nil
}

func rate(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
