package recommendations

import "sort"

const popularityReason = "Popular with learners on the platform."

// PopularityGenerator scores candidates by enrollment volume and rating. It
// never depends on the user profile, so it is the only generator guaranteed to
// produce results for brand-new users.
type PopularityGenerator struct {
	Config Config
}

// Name returns the generator's algorithm tag.
func (g PopularityGenerator) Name() string { return AlgorithmPopularity }

// Generate returns scored candidates from the pool, skipping excluded course
// ids. Courses without rating data are never eligible.
func (g PopularityGenerator) Generate(pool []Course, exclude map[string]bool) []Candidate {
	eligible := make([]Course, 0, len(pool))
	for _, course := range pool {
		if exclude[course.ID] {
			continue
		}
		if course.EnrollmentCount < g.Config.PopularityMinEnrollments {
			continue
		}
		if course.Rating == nil || *course.Rating < g.Config.PopularityMinRating {
			continue
		}
		eligible = append(eligible, course)
	}

	// Enrollment volume first, rating second, id last for determinism.
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].EnrollmentCount != eligible[j].EnrollmentCount {
			return eligible[i].EnrollmentCount > eligible[j].EnrollmentCount
		}
		if *eligible[i].Rating != *eligible[j].Rating {
			return *eligible[i].Rating > *eligible[j].Rating
		}
		return eligible[i].ID < eligible[j].ID
	})

	out := make([]Candidate, 0, len(eligible))
	for _, course := range eligible {
		score := float64(course.EnrollmentCount)/100 + *course.Rating/5
		if score > 1 {
			score = 1
		}
		out = append(out, Candidate{
			CourseID:  course.ID,
			Score:     score,
			Reason:    popularityReason,
			Algorithm: AlgorithmPopularity,
			Metadata: map[string]any{
				"enrollment_count": course.EnrollmentCount,
				"avg_rating":       *course.Rating,
			},
		})
	}
	return out
}
