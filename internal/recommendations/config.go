package recommendations

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// ContentWeights is the weighted-similarity tuple used by the content-based
// generator. The weights are expected to sum to 1.0.
type ContentWeights struct {
	Category   float64
	Difficulty float64
	Instructor float64
	Quality    float64
}

// HybridWeights is the per-algorithm blend applied by the combiner.
type HybridWeights struct {
	Collaborative float64
	ContentBased  float64
	Popularity    float64
	LearningPath  float64
}

// Config holds every tunable of the engine. All values have working defaults;
// none are buried in generator logic.
type Config struct {
	// Collaborative filtering.
	PeerOverlapMin    int     // shared courses required to count a user as a peer
	PeerCountMin      int     // qualifying peers required before a course is a candidate
	PeerProgressFloor float64 // minimum peer-average progress (percent) on a candidate

	// Content-based scoring.
	Content            ContentWeights
	ContentMinScore    float64 // candidates at or below this are dropped
	QualityRatingFloor float64 // rating at or above which the quality component fires

	// Popularity eligibility.
	PopularityMinEnrollments int
	PopularityMinRating      float64

	// Hybrid blending.
	Hybrid HybridWeights

	// Skill-level thresholds on completed-course count.
	SkillIntermediateAt int
	SkillAdvancedAt     int

	DefaultLimit int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		PeerOverlapMin:    2,
		PeerCountMin:      2,
		PeerProgressFloor: 50,
		Content: ContentWeights{
			Category:   0.4,
			Difficulty: 0.3,
			Instructor: 0.2,
			Quality:    0.1,
		},
		ContentMinScore:          0.1,
		QualityRatingFloor:       4.0,
		PopularityMinEnrollments: 5,
		PopularityMinRating:      3.5,
		Hybrid: HybridWeights{
			Collaborative: 0.5,
			ContentBased:  0.4,
			Popularity:    0.2,
			LearningPath:  0.3,
		},
		SkillIntermediateAt: 3,
		SkillAdvancedAt:     15,
		DefaultLimit:        10,
	}
}

// ConfigFromEnv overrides defaults with REC_* env vars if present.
func ConfigFromEnv(defaults Config) Config {
	cfg := defaults
	if v, ok := readEnvInt("REC_PEER_OVERLAP_MIN"); ok {
		cfg.PeerOverlapMin = v
	}
	if v, ok := readEnvInt("REC_PEER_COUNT_MIN"); ok {
		cfg.PeerCountMin = v
	}
	if v, ok := readEnvFloat("REC_PEER_PROGRESS_FLOOR"); ok {
		cfg.PeerProgressFloor = v
	}
	if v, ok := readEnvFloat("REC_CONTENT_WEIGHT_CATEGORY"); ok {
		cfg.Content.Category = v
	}
	if v, ok := readEnvFloat("REC_CONTENT_WEIGHT_DIFFICULTY"); ok {
		cfg.Content.Difficulty = v
	}
	if v, ok := readEnvFloat("REC_CONTENT_WEIGHT_INSTRUCTOR"); ok {
		cfg.Content.Instructor = v
	}
	if v, ok := readEnvFloat("REC_CONTENT_WEIGHT_QUALITY"); ok {
		cfg.Content.Quality = v
	}
	if v, ok := readEnvFloat("REC_CONTENT_MIN_SCORE"); ok {
		cfg.ContentMinScore = v
	}
	if v, ok := readEnvFloat("REC_QUALITY_RATING_FLOOR"); ok {
		cfg.QualityRatingFloor = v
	}
	if v, ok := readEnvInt("REC_POPULARITY_MIN_ENROLLMENTS"); ok {
		cfg.PopularityMinEnrollments = v
	}
	if v, ok := readEnvFloat("REC_POPULARITY_MIN_RATING"); ok {
		cfg.PopularityMinRating = v
	}
	if v, ok := readEnvFloat("REC_HYBRID_WEIGHT_COLLABORATIVE"); ok {
		cfg.Hybrid.Collaborative = v
	}
	if v, ok := readEnvFloat("REC_HYBRID_WEIGHT_CONTENT"); ok {
		cfg.Hybrid.ContentBased = v
	}
	if v, ok := readEnvFloat("REC_HYBRID_WEIGHT_POPULARITY"); ok {
		cfg.Hybrid.Popularity = v
	}
	if v, ok := readEnvFloat("REC_HYBRID_WEIGHT_LEARNING_PATH"); ok {
		cfg.Hybrid.LearningPath = v
	}
	if v, ok := readEnvInt("REC_SKILL_INTERMEDIATE_AT"); ok {
		cfg.SkillIntermediateAt = v
	}
	if v, ok := readEnvInt("REC_SKILL_ADVANCED_AT"); ok {
		cfg.SkillAdvancedAt = v
	}
	if v, ok := readEnvInt("REC_DEFAULT_LIMIT"); ok {
		cfg.DefaultLimit = v
	}
	return cfg
}

func readEnvInt(key string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("recommendations env %s invalid int: %v", key, err)
		return 0, false
	}
	return val, true
}

func readEnvFloat(key string) (float64, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("recommendations env %s invalid float: %v", key, err)
		return 0, false
	}
	return val, true
}
