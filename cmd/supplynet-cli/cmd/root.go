package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/auth"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/domain"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/exchange"
	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/repository"
)

var (
	dbPath string
	owner  string
)

var rootCmd = &cobra.Command{
	Use:   "supplynet-cli",
	Short: "Validate, simulate and store supply network documents",
	Long: `supplynet-cli works on supply network documents ({nodes, edges, demands}
as JSON or YAML) without running the API server.

It can validate a document, send it to the simulation engine, and keep
networks in a local SQLite file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := os.Getenv("SQLITE_PATH")
	if defaultDB == "" {
		defaultDB = "supplynet.db"
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to the SQLite network store")
	rootCmd.PersistentFlags().StringVar(&owner, "owner", auth.DemoUser, "owner id for stored networks")
}

func openRepo() (*repository.SQLiteRepository, error) {
	return repository.NewSQLiteRepository(dbPath)
}

func readDocument(path string) (domain.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Graph{}, err
	}
	g, err := exchange.Import(path, data)
	if err != nil {
		return domain.Graph{}, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
