// internal/report/json.go
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/mwiater/benchpress/internal/bench"
	"github.com/mwiater/benchpress/internal/util"
)

// Run bundles one sampling run for export: the raw per-product means, the
// derived analysis, and enough metadata to reproduce the run.
type Run struct {
	Timestamp  time.Time
	Iterations int
	Results    map[string]float64
	Analysis   *bench.Analysis
}

type jsonDocument struct {
	Metadata jsonMetadata       `json:"metadata"`
	Results  map[string]float64 `json:"results"`
	Analysis *jsonAnalysis      `json:"analysis"`
}

type jsonMetadata struct {
	Timestamp            string `json:"timestamp"`
	TotalProducts        int    `json:"total_products"`
	IterationsPerProduct int    `json:"iterations_per_product"`
	TotalMeasurements    int    `json:"total_measurements"`
}

// jsonAnalysis mirrors bench.Analysis with the ratio widened to any, since
// +Inf is not representable in JSON and marshals as its string form instead.
type jsonAnalysis struct {
	FastestProduct   string  `json:"fastest_product"`
	FastestTime      float64 `json:"fastest_time"`
	SlowestProduct   string  `json:"slowest_product"`
	SlowestTime      float64 `json:"slowest_time"`
	AverageTime      float64 `json:"average_time"`
	PerformanceRatio any     `json:"performance_ratio"`
	TotalProducts    int     `json:"total_products"`
}

// RatioValue coerces a performance ratio to a JSON-safe value: finite ratios
// pass through, non-finite ones become their string representation.
func RatioValue(ratio float64) any {
	if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		if math.IsInf(ratio, 1) {
			return "inf"
		}
		if math.IsInf(ratio, -1) {
			return "-inf"
		}
		return "nan"
	}
	return ratio
}

// MarshalRun serializes a run as an indented UTF-8 JSON document.
func MarshalRun(run Run) ([]byte, error) {
	doc := jsonDocument{
		Metadata: jsonMetadata{
			Timestamp:            run.Timestamp.Format(time.RFC3339),
			TotalProducts:        len(run.Results),
			IterationsPerProduct: run.Iterations,
			TotalMeasurements:    len(run.Results) * run.Iterations,
		},
		Results: run.Results,
	}
	if run.Analysis != nil {
		doc.Analysis = &jsonAnalysis{
			FastestProduct:   run.Analysis.FastestProduct,
			FastestTime:      run.Analysis.FastestTime,
			SlowestProduct:   run.Analysis.SlowestProduct,
			SlowestTime:      run.Analysis.SlowestTime,
			AverageTime:      run.Analysis.AverageTime,
			PerformanceRatio: RatioValue(run.Analysis.PerformanceRatio),
			TotalProducts:    run.Analysis.TotalProducts,
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteJSON writes the run document to path, overwriting any existing file.
func WriteJSON(path string, run Run) error {
	data, err := MarshalRun(run)
	if err != nil {
		return fmt.Errorf("marshal benchmark run: %w", err)
	}
	if err := util.WriteFile(path, data); err != nil {
		return fmt.Errorf("write json report: %w", err)
	}
	return nil
}
