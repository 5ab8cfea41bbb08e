package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation"
	_ "github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/validation/rules"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a network document for structural problems",
	Long: `Run every network check on a JSON or YAML document and print the
findings, errors first. Exits non-zero when any error is found.

Examples:
  supplynet-cli validate network.json
  supplynet-cli validate network.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readDocument(args[0])
		if err != nil {
			return err
		}
		report := validation.Validate(g)

		out := cmd.OutOrStdout()
		for _, f := range report.Findings {
			fmt.Fprintf(out, "[%s] %s: %s\n", f.Severity, f.Check, f.Message)
			if f.Detail != "" {
				fmt.Fprintf(out, "    %s\n", f.Detail)
			}
		}
		fmt.Fprintf(out, "%d error(s), %d warning(s)\n", report.Errors, report.Warnings)

		if !report.Valid {
			return fmt.Errorf("network has %d error(s)", report.Errors)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
