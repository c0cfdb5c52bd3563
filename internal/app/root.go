package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fnzahra/shelfwise/internal/config"
)

var (
	dbPath  string
	cfgPath string

	// RootCmd is the root command for shelfwise
	RootCmd = &cobra.Command{
		Use:   "shelfwise",
		Short: "Market-basket analysis with tiered merchandising recommendations",
		Long: `shelfwise mines co-occurrence patterns from retail transaction exports
and turns them into a ranked five-tier merchandising plan: shelf placement,
bundling, secondary support, promotion, and checkout complements.

The analysis runs Apriori frequent-itemset mining at two support levels
(a standard pass for the pairwise bundling signal and a long-tail pass for
low-volume products), derives association rules filtered by confidence and
lift, and partitions the catalog greedily into five disjoint tiers.

Quick Start:
  1. shelfwise import transactions.csv
  2. shelfwise analyze
  3. shelfwise rules --potential   # inspect the long-tail signal

Examples:
  # Import transaction exports into the local cache
  shelfwise import jan.csv feb.csv

  # Analyze the cached transactions
  shelfwise analyze

  # One-shot analysis straight from files, no cache
  shelfwise analyze jan.csv feb.csv

  # Re-analyze automatically as new exports land
  shelfwise watch ./exports`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("shelfwise: market-basket analysis and shelf-tier recommendations")
			fmt.Println()
			fmt.Println("Run 'shelfwise import <file.csv>' to load transactions.")
			fmt.Println("Run 'shelfwise analyze' to build the tier recommendation.")
			fmt.Println("Run 'shelfwise --help' for the full reference.")
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.shelfwise/shelfwise.db)")
	RootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default: $XDG_CONFIG_HOME/shelfwise/config.yaml)")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".shelfwise")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create shelfwise directory: %w", err)
	}

	return filepath.Join(dir, "shelfwise.db"), nil
}

// loadConfig reads the config file named by --config, or the default
// location. A missing file yields the built-in defaults.
func loadConfig() (config.Config, error) {
	path := cfgPath
	if path == "" {
		dir, err := config.Dir()
		if err != nil {
			return config.Default(), fmt.Errorf("failed to locate config directory: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	return config.Load(path)
}
