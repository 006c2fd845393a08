package analytics

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubSource struct {
	buckets []Bucket
	err     error
}

func (s stubSource) BucketsSince(ctx context.Context, tenantID string, since time.Time) ([]Bucket, error) {
	return s.buckets, s.err
}

func TestSummarizeComputesRates(t *testing.T) {
	source := stubSource{buckets: []Bucket{
		{Algorithm: "hybrid_multi", Type: "view", Count: 100},
		{Algorithm: "hybrid_multi", Type: "click", Count: 25},
		{Algorithm: "hybrid_multi", Type: "enroll", Count: 10},
		{Algorithm: "popularity_based", Type: "view", Count: 50},
		{Algorithm: "popularity_based", Type: "click", Count: 5},
	}}

	got, err := NewService(source).Summarize(context.Background(), "", time.Time{})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if got.TotalInteractions != 190 {
		t.Fatalf("expected 190 total interactions, got %d", got.TotalInteractions)
	}
	if got.InteractionsByType["view"] != 150 {
		t.Fatalf("expected 150 views, got %d", got.InteractionsByType["view"])
	}
	if got.ClickThroughRate != 0.2 {
		t.Fatalf("expected overall CTR 0.2, got %v", got.ClickThroughRate)
	}
	// 10 enrolls over 150 views.
	if got.ConversionRate != float64(10)/float64(150) {
		t.Fatalf("unexpected conversion rate %v", got.ConversionRate)
	}

	hybrid := got.AlgorithmPerformance["hybrid_multi"]
	if hybrid.Interactions != 135 || hybrid.ClickThroughRate != 0.25 || hybrid.ConversionRate != 0.1 {
		t.Fatalf("unexpected hybrid stats: %+v", hybrid)
	}
	popularity := got.AlgorithmPerformance["popularity_based"]
	if popularity.ClickThroughRate != 0.1 || popularity.ConversionRate != 0 {
		t.Fatalf("unexpected popularity stats: %+v", popularity)
	}
}

func TestSummarizeZeroViewsYieldsZeroRates(t *testing.T) {
	source := stubSource{buckets: []Bucket{
		{Algorithm: "hybrid_multi", Type: "click", Count: 7},
		{Algorithm: "hybrid_multi", Type: "wishlist", Count: 2},
	}}

	got, err := NewService(source).Summarize(context.Background(), "", time.Time{})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if got.ClickThroughRate != 0 || got.ConversionRate != 0 {
		t.Fatalf("expected zero rates without views, got ctr=%v conv=%v", got.ClickThroughRate, got.ConversionRate)
	}
	if got.AlgorithmPerformance["hybrid_multi"].ClickThroughRate != 0 {
		t.Fatalf("expected zero per-algorithm CTR without views")
	}
}

func TestSummarizeUnattributedRecordsCountInTotalsOnly(t *testing.T) {
	source := stubSource{buckets: []Bucket{
		{Algorithm: "", Type: "view", Count: 30},
		{Algorithm: "hybrid_multi", Type: "view", Count: 10},
	}}

	got, err := NewService(source).Summarize(context.Background(), "", time.Time{})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if got.TotalInteractions != 40 {
		t.Fatalf("expected 40 total, got %d", got.TotalInteractions)
	}
	if _, ok := got.AlgorithmPerformance[""]; ok {
		t.Fatalf("unattributed records must not appear in algorithm performance")
	}
	if got.AlgorithmPerformance["hybrid_multi"].Views != 10 {
		t.Fatalf("expected 10 attributed views")
	}
}

func TestSummarizePropagatesSourceError(t *testing.T) {
	source := stubSource{err: errors.New("boom")}

	_, err := NewService(source).Summarize(context.Background(), "", time.Time{})
	if err == nil {
		t.Fatalf("expected source error to propagate")
	}
}

func TestSummarizeEmptyWindow(t *testing.T) {
	got, err := NewService(stubSource{}).Summarize(context.Background(), "", time.Time{})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got.TotalInteractions != 0 {
		t.Fatalf("expected empty summary, got %+v", got)
	}
	if got.InteractionsByType == nil || got.AlgorithmPerformance == nil {
		t.Fatalf("maps must be initialized for JSON encoding")
	}
}
