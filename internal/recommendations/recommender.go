package recommendations

// Request modes accepted by Recommend. Anything else falls back to hybrid.
const (
	ModeHybrid        = "hybrid"
	ModeCollaborative = "collaborative"
	ModeContentBased  = "content_based"
	ModePopularity    = "popularity"
)

// Input carries everything one Recommend call needs. Pool and PeerEnrollments
// are read-only snapshots supplied by the caller; the engine performs no I/O.
type Input struct {
	History         []Enrollment
	Pool            []Course
	PeerEnrollments []PeerEnrollment
	Limit           int
	Algorithm       string
}

// Engine is the recommendation facade. It is stateless: every call builds a
// fresh profile, so concurrent calls need no coordination.
type Engine struct {
	cfg           Config
	collaborative CollaborativeGenerator
	contentBased  ContentBasedGenerator
	popularity    PopularityGenerator
	learningPath  LearningPathGenerator
	combiner      Combiner
}

// NewEngine constructs an Engine with the given configuration.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:           cfg,
		collaborative: CollaborativeGenerator{Config: cfg},
		contentBased:  ContentBasedGenerator{Config: cfg},
		popularity:    PopularityGenerator{Config: cfg},
		learningPath:  LearningPathGenerator{Config: cfg},
		combiner:      Combiner{Config: cfg},
	}
}

// Recommend builds the user's profile, runs the selected generators, and
// returns a ranked, truncated result. New users short-circuit to popularity;
// unknown algorithm values silently fall back to hybrid. An empty pool yields
// an empty result, never an error.
func (e *Engine) Recommend(in Input) Result {
	limit := in.Limit
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	profile := BuildProfile(in.History, e.cfg)

	if profile.IsNewUser() {
		return finalize(e.popularity.Generate(in.Pool, nil), limit)
	}

	switch normalizeMode(in.Algorithm) {
	case ModeCollaborative:
		return finalize(e.collaborative.Generate(profile, in.Pool, in.PeerEnrollments), limit)
	case ModeContentBased:
		return finalize(e.contentBased.Generate(profile, in.Pool), limit)
	case ModePopularity:
		return finalize(e.popularity.Generate(in.Pool, profile.EnrolledCourseIDs), limit)
	default:
		outputs := map[string][]Candidate{
			AlgorithmCollaborative: e.collaborative.Generate(profile, in.Pool, in.PeerEnrollments),
			AlgorithmContentBased:  e.contentBased.Generate(profile, in.Pool),
			AlgorithmPopularity:    e.popularity.Generate(in.Pool, profile.EnrolledCourseIDs),
			AlgorithmLearningPath:  e.learningPath.Generate(profile, in.PeerEnrollments, in.Pool),
		}
		return e.combiner.Combine(outputs, in.Pool, limit)
	}
}

func normalizeMode(algorithm string) string {
	switch algorithm {
	case ModeCollaborative, ModeContentBased, ModePopularity:
		return algorithm
	default:
		return ModeHybrid
	}
}

// finalize normalizes a single generator's batch to [0,1], preserves the
// generator's own ordering, truncates, and assigns 1-indexed positions.
func finalize(batch []Candidate, limit int) Result {
	if len(batch) > limit {
		batch = batch[:limit]
	}
	max := maxScore(batch)
	items := make([]Item, 0, len(batch))
	for i, cand := range batch {
		score := cand.Score
		if max > 0 {
			score = cand.Score / max
		}
		if score > 1 {
			score = 1
		}
		items = append(items, Item{
			CourseID:  cand.CourseID,
			Score:     score,
			Reason:    cand.Reason,
			Algorithm: cand.Algorithm,
			Position:  i + 1,
			Metadata:  cand.Metadata,
		})
	}
	return Result{Items: items}
}
