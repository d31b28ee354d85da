// internal/bench/cpu.go
package bench

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

// cpuAccountant samples this process's CPU usage at the start and end of a
// benchmark run and reports the difference.
type cpuAccountant struct {
	proc  *process.Process
	start float64
}

// newCPUAccountant takes the starting sample. Errors from the OS probe are
// returned so the caller can decide whether to run without CPU accounting.
func newCPUAccountant() (*cpuAccountant, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	start, err := proc.CPUPercent()
	if err != nil {
		return nil, err
	}
	return &cpuAccountant{proc: proc, start: start}, nil
}

// delta returns end sample minus start sample. The value is intentionally
// unclamped: scheduler noise can produce zero or negative readings.
func (a *cpuAccountant) delta() (float64, error) {
	end, err := a.proc.CPUPercent()
	if err != nil {
		return 0, err
	}
	return end - a.start, nil
}
