package recommendations

import "time"

// Skill and course difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Enrollment statuses the engine recognizes.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusDropped   = "dropped"
)

// Algorithm tags carried on scored candidates.
const (
	AlgorithmCollaborative = "collaborative"
	AlgorithmContentBased  = "content_based"
	AlgorithmPopularity    = "popularity_based"
	AlgorithmLearningPath  = "learning_path"
	AlgorithmHybridMulti   = "hybrid_multi"
	hybridTagPrefix        = "hybrid_"
)

// Course is a read-only projection of a course eligible for recommendation.
// The engine never holds a live reference back to the source store.
type Course struct {
	ID              string
	Category        string
	InstructorID    string
	Level           string
	Price           float64
	Rating          *float64 // nil when the course has no rating data
	EnrollmentCount int
	CreatedAt       time.Time
}

// Enrollment is one entry of the target user's enrollment history.
type Enrollment struct {
	CourseID     string
	Category     string
	InstructorID string
	Level        string
	Status       string
}

// PeerEnrollment is a read-only view of another user's enrollment, supplied by
// the caller for peers sharing at least one course with the target user.
type PeerEnrollment struct {
	UserID    string
	CourseID  string
	Progress  float64 // 0-100
	Completed bool
}

// Profile is a user's derived preference profile. Built fresh per call,
// never cached by the engine.
type Profile struct {
	EnrolledCourseIDs  map[string]bool
	CompletedCourseIDs map[string]bool
	CategoryCounts     map[string]int
	InstructorCounts   map[string]int
	LevelCounts        map[string]int
	TotalEnrollments   int
	CompletedCount     int
	SkillLevel         string
}

// IsNewUser reports whether the user has no enrollment history.
func (p Profile) IsNewUser() bool {
	return p.TotalEnrollments == 0
}

// Candidate is a scored course produced by a single generator. Scores are at
// generator-local scale until normalized by the combiner or the facade.
type Candidate struct {
	CourseID  string
	Score     float64
	Reason    string
	Algorithm string
	Metadata  map[string]any
}

// Item is one entry of a finished recommendation result. Score is normalized
// to [0,1] and Position is 1-indexed; both stay stable until the next call.
type Item struct {
	CourseID  string         `json:"courseId"`
	Score     float64        `json:"score"`
	Reason    string         `json:"reason"`
	Algorithm string         `json:"algorithm"`
	Position  int            `json:"position"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Result is the ordered recommendation list returned by the engine.
type Result struct {
	Items []Item `json:"items"`
}

func levelOrdinal(level string) int {
	switch level {
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	default:
		return 1
	}
}
