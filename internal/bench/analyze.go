// internal/bench/analyze.go
package bench

import (
	"math"
	"sort"
)

// Analysis is the derived fastest/slowest/ratio/average view over a set of
// per-product mean times.
type Analysis struct {
	FastestProduct   string  `json:"fastest_product"`
	FastestTime      float64 `json:"fastest_time"`
	SlowestProduct   string  `json:"slowest_product"`
	SlowestTime      float64 `json:"slowest_time"`
	AverageTime      float64 `json:"average_time"`
	PerformanceRatio float64 `json:"performance_ratio"`
	TotalProducts    int     `json:"total_products"`
}

// AnalyzeResults reduces a product→mean-seconds map to an Analysis. An empty
// map returns nil rather than an error. Products are scanned in sorted name
// order so extrema ties break deterministically. PerformanceRatio is
// slowest/fastest, or +Inf whenever the fastest time is exactly zero.
func AnalyzeResults(results map[string]float64) *Analysis {
	if len(results) == 0 {
		return nil
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	fastest, slowest := names[0], names[0]
	sum := 0.0
	for _, name := range names {
		t := results[name]
		sum += t
		if t < results[fastest] {
			fastest = name
		}
		if t > results[slowest] {
			slowest = name
		}
	}

	ratio := math.Inf(1)
	if results[fastest] > 0 {
		ratio = results[slowest] / results[fastest]
	}

	return &Analysis{
		FastestProduct:   fastest,
		FastestTime:      results[fastest],
		SlowestProduct:   slowest,
		SlowestTime:      results[slowest],
		AverageTime:      sum / float64(len(names)),
		PerformanceRatio: ratio,
		TotalProducts:    len(names),
	}
}
