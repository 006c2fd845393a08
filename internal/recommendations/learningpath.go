package recommendations

import "sort"

const learningPathReason = "Learners who completed the same courses took this next."

// LearningPathGenerator scores candidates by what peers who completed the same
// courses went on to take. It is a progression count over qualifying peers,
// not a sequence-aware path model.
type LearningPathGenerator struct {
	Config Config
}

// Name returns the generator's algorithm tag.
func (g LearningPathGenerator) Name() string { return AlgorithmLearningPath }

// Generate returns scored candidates from the pool. Returns nil when the user
// has no completed courses.
func (g LearningPathGenerator) Generate(profile Profile, peers []PeerEnrollment, pool []Course) []Candidate {
	if len(profile.CompletedCourseIDs) == 0 || len(peers) == 0 {
		return nil
	}

	byPeer := make(map[string][]PeerEnrollment)
	completedShared := make(map[string]int)
	for _, pe := range peers {
		byPeer[pe.UserID] = append(byPeer[pe.UserID], pe)
		if pe.Completed && profile.CompletedCourseIDs[pe.CourseID] {
			completedShared[pe.UserID]++
		}
	}

	// A peer qualifies when they completed every course the user completed.
	progression := make(map[string]int)
	for peerID, shared := range completedShared {
		if shared < len(profile.CompletedCourseIDs) {
			continue
		}
		for _, pe := range byPeer[peerID] {
			if profile.EnrolledCourseIDs[pe.CourseID] {
				continue
			}
			progression[pe.CourseID]++
		}
	}

	out := make([]Candidate, 0, len(progression))
	for _, course := range pool {
		count := progression[course.ID]
		if count == 0 {
			continue
		}
		out = append(out, Candidate{
			CourseID:  course.ID,
			Score:     float64(count),
			Reason:    learningPathReason,
			Algorithm: AlgorithmLearningPath,
			Metadata: map[string]any{
				"progression_count": count,
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
