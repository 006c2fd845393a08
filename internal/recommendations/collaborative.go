package recommendations

import "sort"

const collaborativeReason = "Students with similar interests also enrolled in this course."

// CollaborativeGenerator scores candidates by similar-user overlap: peers who
// share enough courses with the target user vote for the courses they took and
// stuck with.
type CollaborativeGenerator struct {
	Config Config
}

// Name returns the generator's algorithm tag.
func (g CollaborativeGenerator) Name() string { return AlgorithmCollaborative }

// Generate returns scored candidates from the pool. Returns nil for users
// without enrollment history; the facade handles the popularity fallback.
func (g CollaborativeGenerator) Generate(profile Profile, pool []Course, peers []PeerEnrollment) []Candidate {
	if profile.IsNewUser() || len(peers) == 0 {
		return nil
	}

	overlap := make(map[string]int)
	byPeer := make(map[string][]PeerEnrollment)
	for _, pe := range peers {
		byPeer[pe.UserID] = append(byPeer[pe.UserID], pe)
		if profile.EnrolledCourseIDs[pe.CourseID] {
			overlap[pe.UserID]++
		}
	}

	type courseAgg struct {
		peerCount   int
		progressSum float64
	}
	byCourse := make(map[string]*courseAgg)
	for peerID, shared := range overlap {
		if shared < g.Config.PeerOverlapMin {
			continue
		}
		for _, pe := range byPeer[peerID] {
			if profile.EnrolledCourseIDs[pe.CourseID] {
				continue
			}
			agg := byCourse[pe.CourseID]
			if agg == nil {
				agg = &courseAgg{}
				byCourse[pe.CourseID] = agg
			}
			agg.peerCount++
			agg.progressSum += pe.Progress
		}
	}

	out := make([]Candidate, 0, len(byCourse))
	for _, course := range pool {
		agg := byCourse[course.ID]
		if agg == nil || agg.peerCount < g.Config.PeerCountMin {
			continue
		}
		avgProgress := agg.progressSum / float64(agg.peerCount)
		if avgProgress < g.Config.PeerProgressFloor {
			continue
		}
		out = append(out, Candidate{
			CourseID:  course.ID,
			Score:     float64(agg.peerCount),
			Reason:    collaborativeReason,
			Algorithm: AlgorithmCollaborative,
			Metadata: map[string]any{
				"similar_users_count": agg.peerCount,
				"avg_completion_rate": avgProgress,
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
