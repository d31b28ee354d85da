// internal/cli/run.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/k0kubun/pp"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mwiater/benchpress/internal/appconfig"
	"github.com/mwiater/benchpress/internal/bench"
	"github.com/mwiater/benchpress/internal/logging"
	"github.com/mwiater/benchpress/internal/report"
	"github.com/mwiater/benchpress/internal/tui"
	"github.com/mwiater/benchpress/internal/util"
)

var fastestAccent = color.New(color.FgGreen).SprintFunc()
var slowestAccent = color.New(color.FgRed).SprintFunc()

var (
	runIterations int
	runProducts   []string
	runOutputDir  string
	runJSON       bool
	runCSV        bool
	runProgress   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sample the synthetic workload per product and report the means",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		iterations := resolveIterations(cmd, runIterations, cfg)
		if iterations <= 0 {
			return exitErrf(1, "iterations must be positive, got %d", iterations)
		}

		products, err := resolveProducts(cmd, runProducts, cfg)
		if err != nil {
			return err
		}

		outputDir := runOutputDir
		if !cmd.Flags().Changed("output-dir") && cfg != nil {
			outputDir = cfg.OutputDirectory()
		}
		exportJSON := runJSON || (cfg != nil && cfg.ExportJSON)
		exportCSV := runCSV || (cfg != nil && cfg.ExportCSV)

		verbose := VerboseEnabled()
		if verbose {
			logging.LogEvent("Benchmarking %d products with %d iterations each...", len(products), iterations)
			if cfg != nil {
				pp.Fprintln(os.Stderr, cfg)
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		results, err := sampleProducts(ctx, products, iterations, verbose)
		if err != nil {
			if ctx.Err() != nil {
				return exitErrf(130, "benchmarking interrupted by user")
			}
			return err
		}

		analysis := bench.AnalyzeResults(results)
		printRunReport(results, analysis)

		if exportJSON || exportCSV {
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			run := report.Run{
				Timestamp:  time.Now(),
				Iterations: iterations,
				Results:    results,
				Analysis:   analysis,
			}
			if exportJSON {
				path := filepath.Join(outputDir, "benchmark_results.json")
				if err := report.WriteJSON(path, run); err != nil {
					return err
				}
				fmt.Printf("JSON results written to %s\n", path)
			}
			if exportCSV {
				path := filepath.Join(outputDir, "benchmark_results.csv")
				if err := report.WriteCSV(path, results, analysis); err != nil {
					return err
				}
				fmt.Printf("CSV results written to %s\n", path)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVarP(&runIterations, "iterations", "i", appconfig.DefaultIterations, "number of iterations per product")
	runCmd.Flags().StringSliceVarP(&runProducts, "products", "p", nil, "product names to benchmark (repeatable)")
	runCmd.Flags().StringVarP(&runOutputDir, "output-dir", "o", appconfig.DefaultOutputDir, "directory for exported reports")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "export results to JSON")
	runCmd.Flags().BoolVar(&runCSV, "csv", false, "export results to CSV")
	runCmd.Flags().BoolVar(&runProgress, "progress", false, "show an interactive progress bar while sampling")
}

// resolveIterations prefers an explicit flag, then the config, then the
// default. A user-supplied non-positive value is returned as-is so the
// caller can reject it.
func resolveIterations(cmd *cobra.Command, flagValue int, cfg *appconfig.Config) int {
	if cmd.Flags().Changed("iterations") {
		return flagValue
	}
	if cfg != nil {
		return cfg.IterationCount()
	}
	return appconfig.DefaultIterations
}

// resolveProducts prefers explicit flags, then the config, then the fixed
// sample list. An explicitly empty product list is a configuration error.
func resolveProducts(cmd *cobra.Command, flagValue []string, cfg *appconfig.Config) ([]string, error) {
	if cmd.Flags().Changed("products") {
		var products []string
		for _, name := range flagValue {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				products = append(products, trimmed)
			}
		}
		if len(products) == 0 {
			return nil, exitErrf(2, "no products specified")
		}
		return products, nil
	}
	if cfg != nil {
		return cfg.ProductList(), nil
	}
	return bench.DefaultProducts, nil
}

// sampleProducts routes through the interactive progress view when asked for
// and attached to a terminal, and plain sequential sampling otherwise.
func sampleProducts(ctx context.Context, products []string, iterations int, verbose bool) (map[string]float64, error) {
	if runProgress && isatty.IsTerminal(os.Stdout.Fd()) {
		return tui.RunSampling(ctx, products, iterations)
	}

	var onProduct func(name string, done, total int)
	if verbose {
		onProduct = func(name string, done, total int) {
			logging.LogEvent("Sampled %s (%d/%d)", name, done, total)
		}
	}
	return bench.MeasureProductsContext(ctx, products, iterations, onProduct)
}

// printRunReport writes the per-product means and the analysis summary.
func printRunReport(results map[string]float64, analysis *bench.Analysis) {
	heading := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	fmt.Println(heading.Render("Benchmark Results:"))
	fmt.Println(strings.Repeat("-", 40))

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-12s: %s\n", name, util.FormatDuration(results[name]))
	}

	if analysis == nil {
		return
	}

	fmt.Println()
	fmt.Println(heading.Render("Analysis:"))
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("Fastest: %s (%s)\n", fastestAccent(analysis.FastestProduct), util.FormatDuration(analysis.FastestTime))
	fmt.Printf("Slowest: %s (%s)\n", slowestAccent(analysis.SlowestProduct), util.FormatDuration(analysis.SlowestTime))
	fmt.Printf("Performance ratio: %.2fx\n", analysis.PerformanceRatio)
	fmt.Printf("Average time: %s\n", util.FormatDuration(analysis.AverageTime))
}
