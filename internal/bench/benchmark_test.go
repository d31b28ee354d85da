// internal/bench/benchmark_test.go
package bench

import (
	"errors"
	"strings"
	"testing"
)

func TestBenchmarkRun(t *testing.T) {
	t.Parallel()

	calls := 0
	b := &Benchmark{
		Name: "counter",
		Func: func() error {
			calls++
			return nil
		},
		Iterations: 5,
	}

	result, err := b.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected 5 invocations, got %d", calls)
	}
	if result.Name != "counter" || result.Iterations != 5 {
		t.Fatalf("unexpected result identity: %+v", result)
	}
	if result.ExecutionTime < 0 {
		t.Fatalf("execution time must be non-negative, got %f", result.ExecutionTime)
	}
	if result.MemoryUsage != nil || result.CPUUsage != nil {
		t.Fatalf("disabled measurements must be absent: %+v", result)
	}
}

func TestBenchmarkRunMeasuresMemory(t *testing.T) {
	t.Parallel()

	b := &Benchmark{
		Name: "allocator",
		Func: func() error {
			buf := make([]byte, 1<<20)
			buf[0] = 1
			return nil
		},
		Iterations:    2,
		MeasureMemory: true,
	}

	result, err := b.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if result.MemoryUsage == nil {
		t.Fatal("expected a memory measurement")
	}
	if *result.MemoryUsage < 1<<20 {
		t.Fatalf("expected at least 1MiB traced, got %d bytes", *result.MemoryUsage)
	}
}

func TestBenchmarkRunMeasuresCPU(t *testing.T) {
	t.Parallel()

	b := &Benchmark{
		Name: "spinner",
		Func: func() error {
			sum := 0
			for i := 0; i < 100000; i++ {
				sum += i
			}
			_ = sum
			return nil
		},
		Iterations: 3,
		MeasureCPU: true,
	}

	result, err := b.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	// The delta is unclamped and can legitimately be zero or negative; only
	// its presence is guaranteed.
	if result.CPUUsage == nil {
		t.Fatal("expected a cpu measurement")
	}
}

func TestBenchmarkRunLifecycle(t *testing.T) {
	t.Parallel()

	var order []string
	b := &Benchmark{
		Name:       "lifecycle",
		Setup:      func() error { order = append(order, "setup"); return nil },
		Func:       func() error { order = append(order, "work"); return nil },
		Teardown:   func() error { order = append(order, "teardown"); return nil },
		Iterations: 2,
	}

	if _, err := b.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	want := "setup,work,work,teardown"
	if got := strings.Join(order, ","); got != want {
		t.Fatalf("lifecycle order: got %s want %s", got, want)
	}
}

func TestBenchmarkRunTeardownOnFailure(t *testing.T) {
	t.Parallel()

	workloadErr := errors.New("workload exploded")
	teardownRan := false
	b := &Benchmark{
		Name:       "failing",
		Func:       func() error { return workloadErr },
		Teardown:   func() error { teardownRan = true; return nil },
		Iterations: 3,
	}

	if _, err := b.Run(); !errors.Is(err, workloadErr) {
		t.Fatalf("expected the workload error, got %v", err)
	}
	if !teardownRan {
		t.Fatal("teardown must run when the workload fails")
	}
}

func TestBenchmarkRunTeardownOnPanic(t *testing.T) {
	t.Parallel()

	teardownRan := false
	b := &Benchmark{
		Name:       "panicking",
		Func:       func() error { panic("boom") },
		Teardown:   func() error { teardownRan = true; return nil },
		Iterations: 1,
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		_, _ = b.Run()
	}()

	if !teardownRan {
		t.Fatal("teardown must run when the workload panics")
	}
}

func TestBenchmarkRunSetupFailure(t *testing.T) {
	t.Parallel()

	setupErr := errors.New("no fixtures")
	teardownRan := false
	b := &Benchmark{
		Name:       "broken-setup",
		Setup:      func() error { return setupErr },
		Func:       func() error { t.Error("workload must not run after setup failure"); return nil },
		Teardown:   func() error { teardownRan = true; return nil },
		Iterations: 1,
	}

	if _, err := b.Run(); !errors.Is(err, setupErr) {
		t.Fatalf("expected the setup error, got %v", err)
	}
	if teardownRan {
		t.Fatal("teardown must not run when setup fails")
	}
}

func TestBenchmarkRunValidation(t *testing.T) {
	t.Parallel()

	if _, err := (&Benchmark{Name: "nofunc", Iterations: 1}).Run(); err == nil {
		t.Fatal("expected error for missing workload")
	}
	if _, err := (&Benchmark{Name: "noiter", Func: func() error { return nil }}).Run(); err == nil {
		t.Fatal("expected error for zero iterations")
	}
}

func TestNewBenchmarkDefaults(t *testing.T) {
	t.Parallel()

	b := NewBenchmark("defaults", func() error { return nil })
	if b.Iterations != 1 || !b.MeasureMemory || !b.MeasureCPU {
		t.Fatalf("unexpected defaults: %+v", b)
	}
}
