package recommendations

import (
	"math"
	"testing"
)

func ratingOf(v float64) *float64 { return &v }

func TestContentBasedWeightedScore(t *testing.T) {
	history := []Enrollment{
		{CourseID: "a", Category: "data", InstructorID: "i1", Level: LevelBeginner, Status: StatusActive},
		{CourseID: "b", Category: "data", InstructorID: "i1", Level: LevelBeginner, Status: StatusActive},
	}
	profile := BuildProfile(history, DefaultConfig())
	pool := []Course{
		{ID: "x", Category: "data", InstructorID: "i2", Level: LevelBeginner, Rating: ratingOf(4.5)},
	}

	got := ContentBasedGenerator{Config: DefaultConfig()}.Generate(profile, pool)

	if len(got) != 1 {
		t.Fatalf("expected one candidate, got %d", len(got))
	}
	// Full category match (0.4) + exact difficulty fit (0.3) + high rating (0.1).
	if math.Abs(got[0].Score-0.8) > 1e-9 {
		t.Fatalf("expected score 0.8, got %v", got[0].Score)
	}
	if got[0].Metadata["instructor_familiarity"] != 0.0 {
		t.Fatalf("expected zero instructor familiarity, got %v", got[0].Metadata["instructor_familiarity"])
	}
}

func TestContentBasedInstructorFamiliarity(t *testing.T) {
	history := []Enrollment{
		{CourseID: "a", Category: "data", InstructorID: "i1", Level: LevelBeginner},
		{CourseID: "b", Category: "web", InstructorID: "i1", Level: LevelBeginner},
	}
	profile := BuildProfile(history, DefaultConfig())
	pool := []Course{
		{ID: "x", Category: "mobile", InstructorID: "i1", Level: LevelBeginner},
	}

	got := ContentBasedGenerator{Config: DefaultConfig()}.Generate(profile, pool)

	if len(got) != 1 {
		t.Fatalf("expected one candidate, got %d", len(got))
	}
	// No category match, exact difficulty fit (0.3), full instructor familiarity (0.2).
	if math.Abs(got[0].Score-0.5) > 1e-9 {
		t.Fatalf("expected score 0.5, got %v", got[0].Score)
	}
}

func TestContentBasedSkipsCoursesAboveUserLevel(t *testing.T) {
	history := []Enrollment{
		{CourseID: "a", Category: "data", Level: LevelBeginner},
	}
	profile := BuildProfile(history, DefaultConfig())
	pool := []Course{
		{ID: "adv", Category: "data", Level: LevelAdvanced, Rating: ratingOf(5)},
		{ID: "mid", Category: "data", Level: LevelIntermediate, Rating: ratingOf(5)},
	}

	got := ContentBasedGenerator{Config: DefaultConfig()}.Generate(profile, pool)

	for _, cand := range got {
		if cand.CourseID == "adv" {
			t.Fatalf("advanced course should be skipped for a beginner profile")
		}
	}
	if len(got) != 1 || got[0].CourseID != "mid" {
		t.Fatalf("expected only the intermediate course, got %v", got)
	}
}

func TestContentBasedDropsScoresBelowFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContentMinScore = 0.25

	history := []Enrollment{
		{CourseID: "a", Category: "data", InstructorID: "i1", Level: LevelAdvanced},
		{CourseID: "b", Category: "data", InstructorID: "i1", Level: LevelAdvanced},
		{CourseID: "c", Category: "data", InstructorID: "i1", Level: LevelAdvanced},
	}
	profile := BuildProfile(history, cfg)
	// Difficulty fit is the only nonzero component and stays under the floor.
	pool := []Course{
		{ID: "x", Category: "other", InstructorID: "i9", Level: LevelIntermediate},
	}

	got := ContentBasedGenerator{Config: cfg}.Generate(profile, pool)
	if len(got) != 0 {
		t.Fatalf("expected below-floor candidate to be dropped, got %v", got)
	}
}

func TestContentBasedSkipsEnrolledCourses(t *testing.T) {
	history := []Enrollment{
		{CourseID: "a", Category: "data", Level: LevelBeginner},
	}
	profile := BuildProfile(history, DefaultConfig())
	pool := []Course{
		{ID: "a", Category: "data", Level: LevelBeginner, Rating: ratingOf(5)},
	}

	got := ContentBasedGenerator{Config: DefaultConfig()}.Generate(profile, pool)
	if len(got) != 0 {
		t.Fatalf("expected enrolled course to be skipped, got %v", got)
	}
}

func TestContentBasedNewUserReturnsNil(t *testing.T) {
	profile := BuildProfile(nil, DefaultConfig())
	got := ContentBasedGenerator{Config: DefaultConfig()}.Generate(profile, []Course{{ID: "x"}})
	if got != nil {
		t.Fatalf("expected nil for new user, got %v", got)
	}
}
