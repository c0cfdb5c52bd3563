package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fnzahra/shelfwise/internal/ingest"
	"github.com/fnzahra/shelfwise/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv> [file.csv ...]",
	Short: "Import transaction CSV files into the local cache",
	Long: `Parse one or more transaction CSV exports and cache the cleaned rows in
the shelfwise database.

Each file needs a header row with an invoice column and an item column
(configurable via the config file). Item names are lowercased and trimmed,
rows with a blank invoice or item are dropped, and duplicate invoice/item
pairs collapse, including across repeated imports of the same file.`,
	Example: `  # Import one export
  shelfwise import january.csv

  # Import a batch
  shelfwise import exports/*.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	return importFiles(st, args, cfg.IngestOptions())
}

// importFiles ingests each file into the store under its own import record.
// Shared with the watch command.
func importFiles(st *store.Store, paths []string, opts ingest.Options) error {
	for _, path := range paths {
		rows, err := ingest.ReadFile(path, opts)
		if err != nil {
			return err
		}

		imp := store.NewImport(path)
		if err := st.SaveImport(imp, rows); err != nil {
			return fmt.Errorf("failed to import %s: %w", path, err)
		}
		fmt.Printf("Imported %s: %d row%s read, %d new\n",
			path, len(rows), plural(len(rows)), imp.RowCount)
	}
	return nil
}
