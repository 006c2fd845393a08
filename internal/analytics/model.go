package analytics

// AlgorithmStats holds per-algorithm interaction counts and rates over the
// summarized window.
type AlgorithmStats struct {
	Interactions     int     `json:"interactions"`
	Views            int     `json:"views"`
	Clicks           int     `json:"clicks"`
	Enrollments      int     `json:"enrollments"`
	ClickThroughRate float64 `json:"clickThroughRate"`
	ConversionRate   float64 `json:"conversionRate"`
}

// Summary is the aggregate reported to operators. Rates are always in [0,1]
// and zero when there are no views.
type Summary struct {
	TotalInteractions    int                       `json:"totalInteractions"`
	InteractionsByType   map[string]int            `json:"interactionsByType"`
	ClickThroughRate     float64                   `json:"clickThroughRate"`
	ConversionRate       float64                   `json:"conversionRate"`
	AlgorithmPerformance map[string]AlgorithmStats `json:"algorithmPerformance"`
}

// Bucket is one (algorithm, interaction type) count from the source.
// Algorithm is empty for records with no algorithm attribution.
type Bucket struct {
	Algorithm string
	Type      string
	Count     int
}
