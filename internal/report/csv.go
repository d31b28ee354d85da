// internal/report/csv.go
package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/mwiater/benchpress/internal/bench"
)

// WriteCSV writes the per-product means to path, one ranked row per product
// in ascending time order. When an analysis is supplied, a blank separator
// record and an Analysis/Value block follow the product rows.
func WriteCSV(path string, results map[string]float64, analysis *bench.Analysis) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv report: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Product", "Execution_Time_Seconds", "Rank"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if results[names[i]] == results[names[j]] {
			return names[i] < names[j]
		}
		return results[names[i]] < results[names[j]]
	})

	for rank, name := range names {
		row := []string{name, formatSeconds(results[name]), strconv.Itoa(rank + 1)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if analysis != nil {
		rows := [][]string{
			{},
			{"Analysis", "Value"},
			{"Fastest Product", analysis.FastestProduct},
			{"Fastest Time", formatSeconds(analysis.FastestTime)},
			{"Slowest Product", analysis.SlowestProduct},
			{"Slowest Time", formatSeconds(analysis.SlowestTime)},
			{"Performance Ratio", formatRatio(analysis.PerformanceRatio)},
			{"Average Time", formatSeconds(analysis.AverageTime)},
		}
		for _, row := range rows {
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("write csv analysis row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 6, 64)
}

func formatRatio(ratio float64) string {
	if math.IsInf(ratio, 1) {
		return "inf"
	}
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}
