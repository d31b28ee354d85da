// internal/util/util_test.go
package util

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	data := []byte("test payload")

	if err := WriteFile(path, data); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("unexpected file contents: got %q want %q", got, data)
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "no truncation", in: "hello", max: 10, want: "hello"},
		{name: "ascii truncation", in: "helloworld", max: 5, want: "hello…"},
		{name: "multibyte truncation", in: "こんにちは世界", max: 4, want: "こんにち…"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateRunes(tt.in, tt.max); got != tt.want {
				t.Fatalf("TruncateRunes(%q,%d)=%q want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "nanoseconds", seconds: 5e-9, want: "5.00 ns"},
		{name: "microseconds", seconds: 150e-6, want: "150.00 µs"},
		{name: "milliseconds", seconds: 0.25, want: "250.00 ms"},
		{name: "seconds", seconds: 5.5, want: "5.50 s"},
		{name: "minutes", seconds: 125.75, want: "2m 5.75s"},
		{name: "zero", seconds: 0, want: "0.00 ns"},
		{name: "microsecond boundary", seconds: 1e-6, want: "1.00 µs"},
		{name: "millisecond boundary", seconds: 1e-3, want: "1.00 ms"},
		{name: "second boundary", seconds: 1, want: "1.00 s"},
		{name: "minute boundary", seconds: 60, want: "1m 0.00s"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDuration(tt.seconds); got != tt.want {
				t.Fatalf("FormatDuration(%g)=%q want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatMemory(t *testing.T) {
	t.Parallel()

	mem := func(n uint64) *uint64 { return &n }

	tests := []struct {
		name string
		in   *uint64
		want string
	}{
		{name: "absent", in: nil, want: "N/A"},
		{name: "bytes", in: mem(512), want: "512 B"},
		{name: "kilobytes", in: mem(2048), want: "2.00 KB"},
		{name: "megabytes", in: mem(5 * 1024 * 1024), want: "5.00 MB"},
		{name: "gigabytes", in: mem(3 * 1024 * 1024 * 1024), want: "3.00 GB"},
		{name: "zero", in: mem(0), want: "0 B"},
		{name: "kb boundary", in: mem(1024), want: "1.00 KB"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatMemory(tt.in); got != tt.want {
				t.Fatalf("FormatMemory=%q want %q", got, tt.want)
			}
		})
	}
}

func TestValidateBenchmarkName(t *testing.T) {
	t.Parallel()

	valid := []string{"Fast Function", "load_test-1", "x"}
	for _, name := range valid {
		if !ValidateBenchmarkName(name) {
			t.Fatalf("expected %q to be valid", name)
		}
	}

	invalid := []string{"", "   ", "bad!name", "emoji🚀", strings.Repeat("a", 101)}
	for _, name := range invalid {
		if ValidateBenchmarkName(name) {
			t.Fatalf("expected %q to be invalid", name)
		}
	}
}

func TestPerformanceRatio(t *testing.T) {
	t.Parallel()

	if got := PerformanceRatio(2, 1); got != 2 {
		t.Fatalf("PerformanceRatio(2,1)=%f want 2", got)
	}
	if got := PerformanceRatio(0, 1); got != 0 {
		t.Fatalf("PerformanceRatio(0,1)=%f want 0", got)
	}
	if got := PerformanceRatio(0, 0); !math.IsInf(got, 1) {
		t.Fatalf("PerformanceRatio(0,0)=%f want +Inf", got)
	}
}
