// internal/report/table.go
package report

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mwiater/benchpress/internal/bench"
	"github.com/mwiater/benchpress/internal/util"
)

const maxNameWidth = 40

// Table renders benchmark results as a bordered grid. An empty result set
// yields a short notice instead of an empty grid.
func Table(results []bench.BenchmarkResult, key SortKey) string {
	if len(results) == 0 {
		return "No benchmark results available. Run benchmarks first."
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("Benchmark", "Time", "Memory", "CPU %", "Iterations")

	for _, result := range sortResults(results, key) {
		t.Row(
			util.TruncateRunes(result.Name, maxNameWidth),
			util.FormatDuration(result.ExecutionTime),
			util.FormatMemory(result.MemoryUsage),
			formatCPU(result.CPUUsage),
			strconv.Itoa(result.Iterations),
		)
	}

	return t.String()
}

func formatCPU(usage *float64) string {
	if usage == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *usage)
}
