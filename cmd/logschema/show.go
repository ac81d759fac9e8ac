package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vrclog/logschema/pkg/schema"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print the entries of a schema",
	Long: `Validate a schema file and print its entries and delimiters.

Output is human-readable by default; use --format jsonl for one JSON object
per line, which is easy to process with jq.

Examples:
  logschema show schema.yaml
  logschema show --format jsonl schema.yaml | jq 'select(.kind == "variable")'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ValidFormats[showFormat] {
			return fmt.Errorf("unknown format: %s", showFormat)
		}
		s, err := schema.ParseFile(args[0], schema.WithLogger(newLogger(cmd)))
		if err != nil {
			return err
		}
		return OutputSchema(showFormat, s, cmd.OutOrStdout())
	},
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", cfg.Output,
		"Output format: jsonl, pretty")
	rootCmd.AddCommand(showCmd)
}
