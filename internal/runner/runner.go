// internal/runner/runner.go
// Package runner executes ordered collections of benchmark definitions and
// keeps their results for reporting.
package runner

import (
	"context"
	"sort"

	"github.com/mwiater/benchpress/internal/bench"
	"github.com/mwiater/benchpress/internal/logging"
	"github.com/mwiater/benchpress/internal/report"
	"github.com/mwiater/benchpress/internal/util"
)

// Runner owns an ordered list of benchmark definitions and the results of
// the most recent RunAll. It is mutated only by the goroutine driving
// RunAll; there are no concurrent writers in this design.
type Runner struct {
	benchmarks []*bench.Benchmark
	results    []bench.BenchmarkResult
}

// New returns an empty runner.
func New() *Runner {
	return &Runner{}
}

// Add appends a benchmark definition to the run order.
func (r *Runner) Add(b *bench.Benchmark) {
	r.benchmarks = append(r.benchmarks, b)
}

// Benchmarks returns the registered definitions in run order.
func (r *Runner) Benchmarks() []*bench.Benchmark {
	return r.benchmarks
}

// Results returns the results collected by the most recent RunAll.
func (r *Runner) Results() []bench.BenchmarkResult {
	return r.results
}

// RunAll executes every definition sequentially, replacing any previous
// results. The first failing benchmark aborts the batch; results collected
// before the failure are kept. Cancellation is honored between benchmarks
// so an interrupt never truncates a single benchmark's sample set.
func (r *Runner) RunAll(ctx context.Context, verbose bool) ([]bench.BenchmarkResult, error) {
	r.results = r.results[:0]

	for i, b := range r.benchmarks {
		if err := ctx.Err(); err != nil {
			return r.results, err
		}

		if verbose {
			logging.LogEvent("Running benchmark %d/%d: %s", i+1, len(r.benchmarks), b.Name)
		}

		result, err := b.Run()
		if err != nil {
			return r.results, err
		}
		r.results = append(r.results, result)

		if verbose {
			logging.LogEvent("  Time: %s", util.FormatDuration(result.ExecutionTime))
			if result.MemoryUsage != nil {
				logging.LogEvent("  Memory: %s", util.FormatMemory(result.MemoryUsage))
			}
		}
	}
	return r.results, nil
}

// Report renders the collected results as a grid table.
func (r *Runner) Report(key report.SortKey) string {
	return report.Table(r.results, key)
}

// Slowest returns up to n results ordered by execution time, slowest first.
// Ties keep their run order.
func (r *Runner) Slowest(n int) []bench.BenchmarkResult {
	sorted := make([]bench.BenchmarkResult, len(r.results))
	copy(sorted, r.results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExecutionTime > sorted[j].ExecutionTime
	})
	return sorted[:util.Min(n, len(sorted))]
}

// Fastest returns up to n results ordered by execution time, fastest first.
func (r *Runner) Fastest(n int) []bench.BenchmarkResult {
	sorted := make([]bench.BenchmarkResult, len(r.results))
	copy(sorted, r.results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExecutionTime < sorted[j].ExecutionTime
	})
	return sorted[:util.Min(n, len(sorted))]
}

// MemoryIntensive returns up to n results ordered by memory usage, largest
// first. Results without a memory measurement are excluded.
func (r *Runner) MemoryIntensive(n int) []bench.BenchmarkResult {
	var measured []bench.BenchmarkResult
	for _, result := range r.results {
		if result.MemoryUsage != nil {
			measured = append(measured, result)
		}
	}
	sort.SliceStable(measured, func(i, j int) bool {
		return *measured[i].MemoryUsage > *measured[j].MemoryUsage
	})
	return measured[:util.Min(n, len(measured))]
}

// Clear drops all definitions and results.
func (r *Runner) Clear() {
	r.benchmarks = nil
	r.results = nil
}
