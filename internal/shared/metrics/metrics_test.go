package metrics

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func renderHistogram(h *histogram) string {
	var buf bytes.Buffer
	writeHistogram(&buf, "test_duration_ms", "test histogram", h.Snapshot())
	return buf.String()
}

func bucketValue(t *testing.T, rendered, le string) uint64 {
	t.Helper()
	prefix := "test_duration_ms_bucket{le=\"" + le + "\"} "
	for _, line := range strings.Split(rendered, "\n") {
		if strings.HasPrefix(line, prefix) {
			v, err := strconv.ParseUint(strings.TrimPrefix(line, prefix), 10, 64)
			if err != nil {
				t.Fatalf("parse bucket %s: %v", le, err)
			}
			return v
		}
	}
	t.Fatalf("bucket le=%q not found in:\n%s", le, rendered)
	return 0
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{1, 5, 10})
	h.Observe(0.5)

	rendered := renderHistogram(h)
	for _, le := range []string{"1", "5", "10", "+Inf"} {
		if got := bucketValue(t, rendered, le); got != 1 {
			t.Fatalf("le=%s: expected 1, got %d", le, got)
		}
	}
	if !strings.Contains(rendered, "test_duration_ms_count 1\n") {
		t.Fatalf("expected count 1 in:\n%s", rendered)
	}
}

func TestHistogramBucketsNeverExceedCount(t *testing.T) {
	h := newHistogram([]float64{1, 5, 10})
	for _, v := range []float64{0.5, 0.75, 3, 7, 200} {
		h.Observe(v)
	}

	rendered := renderHistogram(h)
	want := map[string]uint64{"1": 2, "5": 3, "10": 4, "+Inf": 5}
	for le, expected := range want {
		got := bucketValue(t, rendered, le)
		if got != expected {
			t.Fatalf("le=%s: expected %d, got %d", le, expected, got)
		}
		if got > h.Snapshot().count {
			t.Fatalf("le=%s: bucket %d exceeds observation count %d", le, got, h.Snapshot().count)
		}
	}
	if !strings.Contains(rendered, "test_duration_ms_sum 211.25\n") {
		t.Fatalf("expected sum 211.25 in:\n%s", rendered)
	}
}

func TestRenderIncludesAllSeries(t *testing.T) {
	out := Render()
	for _, name := range []string{
		"recommendation_requests_total",
		"interaction_recorded_total",
		"interaction_dropped_total",
		"interaction_rejected_total",
		"recommendation_duration_ms_bucket{le=\"+Inf\"}",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected series %s in output:\n%s", name, out)
		}
	}
}
