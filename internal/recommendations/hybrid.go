package recommendations

import (
	"sort"
	"time"
)

// Combiner merges generator outputs into a single deduplicated ranked list.
// Scores from algorithms that agree on a course accumulate rather than
// overwrite each other.
type Combiner struct {
	Config Config
}

type blendEntry struct {
	courseID string
	score    float64
	reason   string
	sources  []string
	metadata map[string]any
}

// Combine blends generator outputs keyed by algorithm tag. Each generator's
// batch is normalized to [0,1] against its own maximum before weighting, since
// raw scores are not cross-comparable. Learning-path results are folded in
// only when collaborative, content-based, and popularity leave slots unfilled.
// Ordering is deterministic: blended score descending, course creation date
// descending, course id ascending.
func (c Combiner) Combine(outputs map[string][]Candidate, pool []Course, limit int) Result {
	if limit <= 0 {
		limit = c.Config.DefaultLimit
	}

	blended := make(map[string]*blendEntry)
	blend := func(tag string, weight float64) {
		batch := outputs[tag]
		max := maxScore(batch)
		if max <= 0 || weight <= 0 {
			return
		}
		for _, cand := range batch {
			entry := blended[cand.CourseID]
			if entry == nil {
				entry = &blendEntry{
					courseID: cand.CourseID,
					reason:   cand.Reason,
					metadata: cloneMetadata(cand.Metadata),
				}
				blended[cand.CourseID] = entry
			}
			entry.score += weight * (cand.Score / max)
			entry.sources = append(entry.sources, tag)
		}
	}

	blend(AlgorithmCollaborative, c.Config.Hybrid.Collaborative)
	blend(AlgorithmContentBased, c.Config.Hybrid.ContentBased)
	blend(AlgorithmPopularity, c.Config.Hybrid.Popularity)
	if len(blended) < limit {
		blend(AlgorithmLearningPath, c.Config.Hybrid.LearningPath)
	}

	createdAt := make(map[string]time.Time, len(pool))
	for _, course := range pool {
		createdAt[course.ID] = course.CreatedAt
	}

	entries := make([]*blendEntry, 0, len(blended))
	for _, entry := range blended {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].score != entries[j].score {
			return entries[i].score > entries[j].score
		}
		ci, cj := createdAt[entries[i].courseID], createdAt[entries[j].courseID]
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return entries[i].courseID < entries[j].courseID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	items := make([]Item, 0, len(entries))
	for i, entry := range entries {
		score := entry.score
		if score > 1 {
			score = 1
		}
		tag := AlgorithmHybridMulti
		if len(entry.sources) == 1 {
			tag = hybridTagPrefix + entry.sources[0]
		}
		metadata := entry.metadata
		if metadata == nil {
			metadata = map[string]any{}
		}
		metadata["sources"] = entry.sources
		items = append(items, Item{
			CourseID:  entry.courseID,
			Score:     score,
			Reason:    entry.reason,
			Algorithm: tag,
			Position:  i + 1,
			Metadata:  metadata,
		})
	}
	return Result{Items: items}
}

func maxScore(batch []Candidate) float64 {
	max := 0.0
	for _, cand := range batch {
		if cand.Score > max {
			max = cand.Score
		}
	}
	return max
}

func cloneMetadata(metadata map[string]any) map[string]any {
	if metadata == nil {
		return nil
	}
	out := make(map[string]any, len(metadata))
	for k, v := range metadata {
		out[k] = v
	}
	return out
}
