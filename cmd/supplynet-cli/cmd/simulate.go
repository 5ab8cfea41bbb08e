package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/exchange"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/simulation"
)

var (
	engineURL   string
	horizonDays int
	csvPath     string
	timeout     time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <file>",
	Short: "Run a network document through the simulation engine",
	Long: `Send a JSON or YAML network document to the simulation engine and print
the headline metrics. --csv also writes them as a results CSV.

Examples:
  supplynet-cli simulate network.json --days 60
  supplynet-cli simulate network.yaml --engine http://sim:8000 --csv results.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readDocument(args[0])
		if err != nil {
			return err
		}
		client := simulation.NewEngineClient(engineURL, timeout, 0)
		res, err := client.Run(cmd.Context(), g, horizonDays)
		if err != nil {
			return err
		}

		data, err := exchange.ResultsCSV(res.Metrics)
		if err != nil {
			return err
		}
		if csvPath != "" {
			if err := os.WriteFile(csvPath, data, 0o644); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "horizon: %d days\n%s", res.HorizonDays, data)
		return nil
	},
}

func init() {
	defaultURL := os.Getenv("SIM_ENGINE_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8000"
	}
	simulateCmd.Flags().StringVar(&engineURL, "engine", defaultURL, "simulation engine base URL")
	simulateCmd.Flags().IntVar(&horizonDays, "days", simulation.DefaultHorizonDays, "simulation horizon in days")
	simulateCmd.Flags().StringVar(&csvPath, "csv", "", "also write the results CSV to this file")
	simulateCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "engine request timeout")
	rootCmd.AddCommand(simulateCmd)
}
