// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultIterations is the per-product sample count used when the config and flags omit one.
	DefaultIterations = 100
	// DefaultOutputDir is where JSON/CSV reports land unless overridden.
	DefaultOutputDir = "benchmark_results"
	// DefaultTopN is how many entries the suite command's top lists show.
	DefaultTopN = 3
)

// Config represents the top-level application configuration.
type Config struct {
	Products   []string `json:"products"`
	Iterations int      `json:"iterations"`
	OutputDir  string   `json:"outputDir,omitempty"`
	SortBy     string   `json:"sortBy,omitempty"`
	ExportJSON bool     `json:"exportJson"`
	ExportCSV  bool     `json:"exportCsv"`
	NoMemory   bool     `json:"noMemory"`
	NoCPU      bool     `json:"noCpu"`
	Verbose    bool     `json:"verbose"`
	LogFile    string   `json:"logFile,omitempty"`
	ConfigPath string   `json:"-"`
}

// configSchema constrains the shape of the config file before unmarshaling,
// so a typoed key or mistyped value fails with a pointed message instead of
// silently becoming a zero value.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "products":   {"type": "array", "items": {"type": "string", "minLength": 1}},
    "iterations": {"type": "integer", "minimum": 1},
    "outputDir":  {"type": "string"},
    "sortBy":     {"type": "string"},
    "exportJson": {"type": "boolean"},
    "exportCsv":  {"type": "boolean"},
    "noMemory":   {"type": "boolean"},
    "noCpu":      {"type": "boolean"},
    "verbose":    {"type": "boolean"},
    "logFile":    {"type": "string"}
  }
}`

// ProductList returns the configured products, falling back to the fixed
// four-entry sample list when none are configured.
func (c Config) ProductList() []string {
	if len(c.Products) > 0 {
		return c.Products
	}
	return []string{"ProductA", "ProductB", "ProductC", "ProductD"}
}

// IterationCount returns the configured iteration count or the default.
func (c Config) IterationCount() int {
	if c.Iterations > 0 {
		return c.Iterations
	}
	return DefaultIterations
}

// OutputDirectory returns the configured output directory or the default.
func (c Config) OutputDirectory() string {
	if dir := strings.TrimSpace(c.OutputDir); dir != "" {
		return dir
	}
	return DefaultOutputDir
}

// LogFilePath returns the path to the application log file; empty disables
// file logging.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// Validate checks raw config file contents against the embedded schema.
func Validate(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateFile checks the config file at path against the embedded schema.
// A missing file is not an error; the defaults apply.
func ValidateFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config file %q: %w", path, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config file %q: %w", path, err)
	}
	return Validate(raw)
}
