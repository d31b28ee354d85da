// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/benchpress/internal/appconfig"
	"github.com/mwiater/benchpress/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// exitError carries a process exit code through cobra's error return path.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// exitErrf builds an exitError with a formatted message.
func exitErrf(code int, format string, args ...any) error {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...)}
}

var rootCmd = &cobra.Command{
	Use:           "benchpress",
	Short:         "benchpress — time workloads, rank products, and export the results",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Check the config file's shape, then load it (file or defaults).
		if err := appconfig.ValidateFile(cfgFile); err != nil {
			return err
		}
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		// 2) If the user did NOT set a flag, copy the config value into the
		//    flag so both pflags and viper reflect the same, final value.
		for _, name := range []string{"verbose"} {
			if !cmd.Flags().Changed(name) {
				val := viper.GetBool(name)
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}
		if !cmd.Flags().Changed("logFile") {
			_ = cmd.Flags().Set("logFile", viper.GetString("logFile"))
		}

		// 3) Materialize the merged configuration (flags > config > defaults)
		//    into a stable snapshot for the subcommands.
		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		cfg.ConfigPath = cfgFile
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute runs the root command and exits with the mapped status code.
func Execute() {
	os.Exit(execute())
}

// execute runs the root command, closes the log file, and maps failures to
// process exit codes: a typed exitError keeps its code, an interrupted run
// exits 130, and any other error exits 1. The command is silenced so each
// failure is reported to stderr exactly once, here.
func execute() int {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	err := rootCmd.Execute()
	_ = logging.Close()
	if err == nil {
		return 0
	}

	var exit *exitError
	switch {
	case errors.As(err, &exit):
		fmt.Fprintln(os.Stderr, "Error: "+exit.msg)
		return exit.code
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "Benchmarking interrupted by user.")
		return 130
	default:
		fmt.Fprintln(os.Stderr, "Error: "+err.Error())
		if VerboseEnabled() {
			pp.Fprintln(os.Stderr, err)
		}
		return 1
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String("logFile", "", "mirror progress output to this file")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("verbose", false)
	viper.SetDefault("iterations", appconfig.DefaultIterations)
	viper.SetDefault("outputDir", appconfig.DefaultOutputDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			// No file: fine, we'll use defaults/flags.
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// VerboseEnabled reflects the merged viper state.
func VerboseEnabled() bool { return viper.GetBool("verbose") }

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
