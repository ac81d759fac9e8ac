package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vrclog/logschema/pkg/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate schema files",
	Long: `Validate one or more schema files.

Each file is reported on its own line. The command exits non-zero if any
file fails to validate.

Examples:
  logschema check schema.yaml
  logschema check -v configs/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return checkFiles(cmd.OutOrStdout(), args, newLogger(cmd))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// checkFiles validates every path and writes one status line per file.
// All files are checked even after a failure.
func checkFiles(out io.Writer, paths []string, logger *slog.Logger) error {
	failed := 0
	for i, path := range paths {
		s, err := schema.ParseFile(path, schema.WithLogger(logger.With(slog.Int("file", i+1))))
		if err != nil {
			failed++
			logger.Debug("schema rejected", slog.Int("file", i+1), slog.Any("error", err))
			if _, werr := fmt.Fprintf(out, "FAIL %s: %v\n", path, err); werr != nil {
				return werr
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "ok   %s: %s\n", path, summary(s)); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d schema files invalid", failed, len(paths))
	}
	return nil
}

func summary(s *schema.ParsedSchema) string {
	return fmt.Sprintf("%d timestamps, %d variables, %d delimiters",
		len(s.Timestamps()), len(s.Variables()), s.Delimiters().Len())
}
