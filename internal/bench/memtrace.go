// internal/bench/memtrace.go
package bench

import "runtime"

// MemTracer brackets a benchmark run and reports how many bytes were
// allocated between Start and Stop. It is an explicit scoped object rather
// than a process-global toggle, so independent runs cannot interfere with
// each other's baselines.
type MemTracer struct {
	baseline uint64
	active   bool
}

// Start records the current cumulative allocation counter as the baseline.
func (t *MemTracer) Start() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	t.baseline = ms.TotalAlloc
	t.active = true
}

// Stop returns the bytes allocated since Start and deactivates the tracer.
// Stop on an inactive tracer returns zero.
func (t *MemTracer) Stop() uint64 {
	if !t.active {
		return 0
	}
	t.active = false
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.TotalAlloc - t.baseline
}
