package recommendations

// BuildProfile derives a user's preference profile from their enrollment
// history. An empty history yields an empty profile at skill level beginner.
// Deterministic; no side effects.
func BuildProfile(history []Enrollment, cfg Config) Profile {
	profile := Profile{
		EnrolledCourseIDs:  make(map[string]bool, len(history)),
		CompletedCourseIDs: make(map[string]bool),
		CategoryCounts:     make(map[string]int),
		InstructorCounts:   make(map[string]int),
		LevelCounts:        make(map[string]int),
		SkillLevel:         LevelBeginner,
	}

	for _, e := range history {
		if e.CourseID == "" {
			continue
		}
		profile.EnrolledCourseIDs[e.CourseID] = true
		profile.TotalEnrollments++
		if e.Category != "" {
			profile.CategoryCounts[e.Category]++
		}
		if e.InstructorID != "" {
			profile.InstructorCounts[e.InstructorID]++
		}
		profile.LevelCounts[e.Level]++
		if e.Status == StatusCompleted {
			profile.CompletedCourseIDs[e.CourseID] = true
		}
	}
	profile.CompletedCount = len(profile.CompletedCourseIDs)

	switch {
	case profile.CompletedCount >= cfg.SkillAdvancedAt:
		profile.SkillLevel = LevelAdvanced
	case profile.CompletedCount >= cfg.SkillIntermediateAt:
		profile.SkillLevel = LevelIntermediate
	}
	return profile
}

// averageLevelOrdinal returns the enrollment-weighted average difficulty
// ordinal of the profile, or 1 for an empty profile.
func averageLevelOrdinal(profile Profile) float64 {
	if profile.TotalEnrollments == 0 {
		return 1
	}
	sum := 0
	for level, count := range profile.LevelCounts {
		sum += levelOrdinal(level) * count
	}
	return float64(sum) / float64(profile.TotalEnrollments)
}
