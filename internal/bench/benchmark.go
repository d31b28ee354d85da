// internal/bench/benchmark.go
package bench

import (
	"fmt"
	"time"
)

// Benchmark is a reusable benchmark definition. Running it does not mutate
// the definition, so the same Benchmark can be executed any number of times.
type Benchmark struct {
	Name          string
	Func          func() error
	Setup         func() error
	Teardown      func() error
	Iterations    int
	MeasureMemory bool
	MeasureCPU    bool
}

// NewBenchmark returns a definition with measurement enabled and a single
// iteration, mirroring the defaults callers most often want.
func NewBenchmark(name string, fn func() error) *Benchmark {
	return &Benchmark{
		Name:          name,
		Func:          fn,
		Iterations:    1,
		MeasureMemory: true,
		MeasureCPU:    true,
	}
}

// Run executes the benchmark and returns its result. Setup runs first and a
// setup failure aborts before any measurement. Teardown runs exactly once on
// every exit path after setup succeeds, workload failure and panic included.
// A failed workload produces no result.
func (b *Benchmark) Run() (result BenchmarkResult, err error) {
	if b.Func == nil {
		return BenchmarkResult{}, fmt.Errorf("benchmark %q has no workload", b.Name)
	}
	if b.Iterations < 1 {
		return BenchmarkResult{}, fmt.Errorf("benchmark %q: iterations must be >= 1, got %d", b.Name, b.Iterations)
	}

	if b.Setup != nil {
		if err := b.Setup(); err != nil {
			return BenchmarkResult{}, fmt.Errorf("benchmark %q setup: %w", b.Name, err)
		}
	}

	if b.Teardown != nil {
		defer func() {
			terr := b.Teardown()
			if terr != nil && err == nil {
				result = BenchmarkResult{}
				err = fmt.Errorf("benchmark %q teardown: %w", b.Name, terr)
			}
		}()
	}

	return b.measure()
}

// measure performs the timed loop between the setup and teardown phases.
func (b *Benchmark) measure() (BenchmarkResult, error) {
	var tracer MemTracer
	if b.MeasureMemory {
		tracer.Start()
	}

	var cpu *cpuAccountant
	if b.MeasureCPU {
		acct, err := newCPUAccountant()
		if err != nil {
			return BenchmarkResult{}, fmt.Errorf("benchmark %q cpu accounting: %w", b.Name, err)
		}
		cpu = acct
	}

	total := 0.0
	for i := 0; i < b.Iterations; i++ {
		start := time.Now()
		err := b.Func()
		total += time.Since(start).Seconds()
		if err != nil {
			if b.MeasureMemory {
				tracer.Stop()
			}
			return BenchmarkResult{}, fmt.Errorf("benchmark %q iteration %d: %w", b.Name, i+1, err)
		}
	}

	result := BenchmarkResult{
		Name:          b.Name,
		ExecutionTime: total / float64(b.Iterations),
		Iterations:    b.Iterations,
		Metadata:      map[string]any{},
	}

	if b.MeasureMemory {
		peak := tracer.Stop()
		result.MemoryUsage = &peak
	}
	if cpu != nil {
		usage, err := cpu.delta()
		if err != nil {
			return BenchmarkResult{}, fmt.Errorf("benchmark %q cpu accounting: %w", b.Name, err)
		}
		result.CPUUsage = &usage
	}

	return result, nil
}
