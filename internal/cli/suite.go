// internal/cli/suite.go
package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mwiater/benchpress/internal/appconfig"
	"github.com/mwiater/benchpress/internal/bench"
	"github.com/mwiater/benchpress/internal/report"
	"github.com/mwiater/benchpress/internal/runner"
	"github.com/mwiater/benchpress/internal/util"
)

var (
	suiteIterations int
	suiteSortBy     string
	suiteNoMemory   bool
	suiteNoCPU      bool
	suiteTopN       int
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run the example benchmark suite and print a ranked report",
	RunE: func(cmd *cobra.Command, args []string) error {
		if suiteIterations <= 0 {
			return exitErrf(1, "iterations must be positive, got %d", suiteIterations)
		}

		r := runner.New()
		for _, def := range exampleBenchmarks() {
			def.Iterations = suiteIterations
			def.MeasureMemory = !suiteNoMemory
			def.MeasureCPU = !suiteNoCPU
			r.Add(def)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if _, err := r.RunAll(ctx, VerboseEnabled()); err != nil {
			if ctx.Err() != nil {
				return exitErrf(130, "benchmarking interrupted by user")
			}
			return fmt.Errorf("run benchmarks: %w", err)
		}

		fmt.Println("Benchmark Results:")
		fmt.Println(r.Report(report.ParseSortKey(suiteSortBy)))

		fmt.Printf("\nTop %d Fastest:\n", suiteTopN)
		for i, result := range r.Fastest(suiteTopN) {
			fmt.Printf("  %d. %s: %s\n", i+1, fastestAccent(result.Name), util.FormatDuration(result.ExecutionTime))
		}

		if !suiteNoMemory {
			fmt.Printf("\nTop %d Memory Intensive:\n", suiteTopN)
			for i, result := range r.MemoryIntensive(suiteTopN) {
				fmt.Printf("  %d. %s: %s\n", i+1, slowestAccent(result.Name), util.FormatMemory(result.MemoryUsage))
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(suiteCmd)
	suiteCmd.Flags().IntVarP(&suiteIterations, "iterations", "i", 10, "number of iterations per benchmark")
	suiteCmd.Flags().StringVarP(&suiteSortBy, "sort-by", "s", "execution_time", "sort results by field (execution_time, memory_usage, name)")
	suiteCmd.Flags().BoolVar(&suiteNoMemory, "no-memory", false, "disable memory usage measurement")
	suiteCmd.Flags().BoolVar(&suiteNoCPU, "no-cpu", false, "disable CPU usage measurement")
	suiteCmd.Flags().IntVar(&suiteTopN, "top", appconfig.DefaultTopN, "how many entries to show in the top lists")
}

// exampleBenchmarks builds the demonstration workload trio: CPU-light,
// CPU-heavy, and allocation-heavy.
func exampleBenchmarks() []*bench.Benchmark {
	fast := bench.NewBenchmark("Fast Function", func() error {
		sum := 0
		for i := 0; i < 1000; i++ {
			sum += i
		}
		_ = sum
		return nil
	})

	slow := bench.NewBenchmark("Slow Function", func() error {
		sum := 0
		for i := 0; i < 100000; i++ {
			sum += i
		}
		_ = sum
		return nil
	})

	memory := bench.NewBenchmark("Memory Intensive", func() error {
		values := make([]int, 50000)
		for i := range values {
			values[i] = i
		}
		_ = values
		return nil
	})

	return []*bench.Benchmark{fast, slow, memory}
}
