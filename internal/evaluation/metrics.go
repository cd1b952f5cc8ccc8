package evaluation

import (
	"math"
	"sort"
	"time"
)

// Percentile returns sorted[floor(n*q)], clamped to the last element.
// sorted must be ascending. An empty sample yields 0.
func Percentile(sorted []time.Duration, q float64) time.Duration {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	idx := int(float64(n) * q)
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// Score weighs accuracy (percent) against average latency:
// 0.7*accuracy + 0.3*max(0, 100 - seconds*100).
func Score(accuracy float64, avgLatency time.Duration) float64 {
	latencyScore := math.Max(0, 100-avgLatency.Seconds()*100)
	return accuracyWeight*accuracy + latencyWeight*latencyScore
}

// Rank orders reports by accuracy, highest first. Ties keep their input order.
func Rank(reports []ModelReport) []ModelReport {
	ranked := make([]ModelReport, len(reports))
	copy(ranked, reports)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Accuracy > ranked[j].Accuracy
	})
	return ranked
}

// Recommend returns the report with the highest score; the first one wins ties.
func Recommend(reports []ModelReport) *ModelReport {
	if len(reports) == 0 {
		return nil
	}
	best := &reports[0]
	for i := range reports[1:] {
		if reports[i+1].Score > best.Score {
			best = &reports[i+1]
		}
	}
	return best
}

func summarize(r *ModelReport, latencies []time.Duration) {
	if r.Total > 0 {
		r.Accuracy = 100 * float64(r.Correct) / float64(r.Total)
		r.Robustness = 100 * float64(r.Total-r.Invalid) / float64(r.Total)
	}

	if n := len(latencies); n > 0 {
		sorted := make([]time.Duration, n)
		copy(sorted, latencies)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		var sum time.Duration
		for _, l := range sorted {
			sum += l
		}
		r.AvgLatency = sum / time.Duration(n)
		r.P50Latency = Percentile(sorted, 0.5)
		r.P95Latency = Percentile(sorted, 0.95)
	}

	r.Score = Score(r.Accuracy, r.AvgLatency)
}
