// internal/bench/memtrace_test.go
package bench

import "testing"

// sink keeps test allocations reachable so they cannot be stack-allocated
// away before the tracer samples the heap.
var sink []byte

func TestMemTracer(t *testing.T) {
	var tracer MemTracer
	tracer.Start()

	sink = make([]byte, 1<<20)
	sink[0] = 1

	traced := tracer.Stop()
	if traced < 1<<20 {
		t.Fatalf("expected at least 1MiB traced, got %d", traced)
	}

	if again := tracer.Stop(); again != 0 {
		t.Fatalf("stopped tracer must report 0, got %d", again)
	}
}

func TestMemTracerIndependentInstances(t *testing.T) {
	var a, b MemTracer
	a.Start()
	b.Start()

	sink = make([]byte, 1<<20)
	sink[0] = 1

	if a.Stop() == 0 && b.Stop() == 0 {
		t.Fatal("both tracers missed the allocation")
	}
}
