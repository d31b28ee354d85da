// internal/report/sort.go
// Package report renders benchmark results and analyses to the console and
// to JSON/CSV files.
package report

import (
	"sort"

	"github.com/mwiater/benchpress/internal/bench"
)

// SortKey selects the ordering of the tabular report. It replaces free-form
// field-name lookup with a closed set of known orderings.
type SortKey int

const (
	// SortNone preserves insertion order.
	SortNone SortKey = iota
	// SortByTime orders by execution time, slowest first.
	SortByTime
	// SortByMemory orders by memory usage, largest first.
	SortByMemory
	// SortByName orders alphabetically.
	SortByName
)

// ParseSortKey maps a CLI sort-field name to a SortKey. Unknown names map to
// SortNone so a bad flag value degrades to insertion order instead of
// failing the whole report.
func ParseSortKey(name string) SortKey {
	switch name {
	case "execution_time":
		return SortByTime
	case "memory_usage":
		return SortByMemory
	case "name":
		return SortByName
	default:
		return SortNone
	}
}

// sortResults returns a sorted copy, leaving the caller's slice untouched.
// Time and memory sort descending so the interesting outliers surface first;
// names sort ascending. Ties keep their original relative order.
func sortResults(results []bench.BenchmarkResult, key SortKey) []bench.BenchmarkResult {
	sorted := make([]bench.BenchmarkResult, len(results))
	copy(sorted, results)

	switch key {
	case SortByTime:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ExecutionTime > sorted[j].ExecutionTime
		})
	case SortByMemory:
		sort.SliceStable(sorted, func(i, j int) bool {
			return memoryOrZero(sorted[i]) > memoryOrZero(sorted[j])
		})
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	}
	return sorted
}

func memoryOrZero(r bench.BenchmarkResult) uint64 {
	if r.MemoryUsage == nil {
		return 0
	}
	return *r.MemoryUsage
}
