// Command logschema validates and inspects log pattern schemas.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vrclog/logschema/internal/config"
	"github.com/vrclog/logschema/internal/logging"
)

var (
	cfg = config.Load()

	// global flags
	verbose   bool
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "logschema",
	Short: "Validate and inspect log pattern schemas",
	Long: `logschema loads YAML schemas describing timestamp formats, named variable
patterns and delimiter characters for log parsing, and reports exactly what is
wrong with a schema that does not validate.

Defaults can be set with LOGSCHEMA_LOG_LEVEL, LOGSCHEMA_LOG_FORMAT and
LOGSCHEMA_OUTPUT.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel,
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", cfg.LogFormat,
		"Log format: text, json")
}

// newLogger builds the diagnostic logger for a command. Logs go to stderr so
// they never mix with command output.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := logging.ParseLevel(logLevel)
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(cmd.ErrOrStderr(), logFormat, level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
