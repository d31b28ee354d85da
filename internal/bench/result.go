// internal/bench/result.go
package bench

// BenchmarkResult is the aggregate outcome of one executed benchmark
// definition. MemoryUsage and CPUUsage are nil when the corresponding
// measurement was disabled. CPUUsage is the raw delta between two process
// CPU samples and is not clamped, so scheduler noise can make it zero or
// negative.
type BenchmarkResult struct {
	Name          string         `json:"name"`
	ExecutionTime float64        `json:"execution_time"`
	MemoryUsage   *uint64        `json:"memory_usage,omitempty"`
	CPUUsage      *float64       `json:"cpu_usage,omitempty"`
	Iterations    int            `json:"iterations"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}
