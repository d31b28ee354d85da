// internal/util/util.go
package util

import (
	"fmt"
	"math"
	"os"
	"strings"
	"unicode/utf8"
)

// WriteFile writes data to a file with 0o644 permissions.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// FormatDuration renders a duration in seconds as a human-readable string,
// choosing the largest unit that keeps the magnitude readable. Boundaries
// are strict less-than on the upper unit.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 1e-6:
		return fmt.Sprintf("%.2f ns", seconds*1e9)
	case seconds < 1e-3:
		return fmt.Sprintf("%.2f µs", seconds*1e6)
	case seconds < 1:
		return fmt.Sprintf("%.2f ms", seconds*1e3)
	case seconds < 60:
		return fmt.Sprintf("%.2f s", seconds)
	default:
		minutes := int(seconds / 60)
		return fmt.Sprintf("%dm %.2fs", minutes, seconds-float64(minutes)*60)
	}
}

// FormatMemory renders a byte count as a human-readable string using
// 1024-based multiples. A nil count means the measurement was absent.
func FormatMemory(bytesUsed *uint64) string {
	if bytesUsed == nil {
		return "N/A"
	}
	n := *bytesUsed
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/(1024*1024*1024))
	}
}

// ValidateBenchmarkName reports whether a benchmark name follows naming
// conventions: non-empty, at most 100 runes, and alphanumeric aside from
// underscores, hyphens, and spaces.
func ValidateBenchmarkName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return false
	}
	stripped := strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if !isAlnum(r) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// PerformanceRatio compares a baseline measurement against a current one.
// For timings, higher means the current measurement is faster. A zero
// baseline yields +Inf when current is also zero, otherwise 0.
func PerformanceRatio(baseline, current float64) float64 {
	if baseline == 0 {
		if current == 0 {
			return math.Inf(1)
		}
		return 0
	}
	return baseline / current
}
