package recommendations

import (
	"math"
	"sort"
)

const contentBasedReason = "Similar to courses in your learning history."

// ContentBasedGenerator scores candidates by weighted similarity to the user's
// profile: category frequency, difficulty progression, instructor familiarity,
// and course quality.
type ContentBasedGenerator struct {
	Config Config
}

// Name returns the generator's algorithm tag.
func (g ContentBasedGenerator) Name() string { return AlgorithmContentBased }

// Generate returns scored candidates from the pool. Candidates more than one
// difficulty level above the user's demonstrated level are skipped, and scores
// at or below the configured floor are dropped.
func (g ContentBasedGenerator) Generate(profile Profile, pool []Course) []Candidate {
	if profile.IsNewUser() {
		return nil
	}

	total := float64(profile.TotalEnrollments)
	userAvg := averageLevelOrdinal(profile)
	weights := g.Config.Content

	out := make([]Candidate, 0, len(pool))
	for _, course := range pool {
		if profile.EnrolledCourseIDs[course.ID] {
			continue
		}
		ordinal := float64(levelOrdinal(course.Level))
		if ordinal > userAvg+1 {
			continue
		}

		categoryMatch := float64(profile.CategoryCounts[course.Category]) / total
		difficultyFit := 1 - math.Abs(ordinal-userAvg)/3
		instructorFamiliarity := float64(profile.InstructorCounts[course.InstructorID]) / total
		qualityMatch := 0.0
		if course.Rating != nil && *course.Rating >= g.Config.QualityRatingFloor {
			qualityMatch = 1
		}

		score := weights.Category*categoryMatch +
			weights.Difficulty*difficultyFit +
			weights.Instructor*instructorFamiliarity +
			weights.Quality*qualityMatch
		if score > 1 {
			score = 1
		}
		if score <= g.Config.ContentMinScore {
			continue
		}

		out = append(out, Candidate{
			CourseID:  course.ID,
			Score:     score,
			Reason:    contentBasedReason,
			Algorithm: AlgorithmContentBased,
			Metadata: map[string]any{
				"category_match":         categoryMatch,
				"difficulty_fit":         difficultyFit,
				"instructor_familiarity": instructorFamiliarity,
				"quality_match":          qualityMatch,
			},
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].CourseID < out[j].CourseID
	})
	return out
}
