package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the transaction cache contents",
	Long: `Display what is currently in the shelfwise database: how many files
have been imported, how many baskets and distinct products they contain,
and the most recent imports.`,
	Example: `  shelfwise status`,
	RunE:    runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sum, err := st.Summary()
	if err != nil {
		return err
	}

	if sum.Imports == 0 {
		fmt.Println("The transaction cache is empty.")
		fmt.Println("Run 'shelfwise import <file.csv>' to load transactions.")
		return nil
	}

	fmt.Printf("Imports:        %d\n", sum.Imports)
	fmt.Printf("Baskets:        %d\n", sum.Baskets)
	fmt.Printf("Distinct items: %d\n", sum.Items)
	fmt.Printf("Line items:     %d\n", sum.Rows)
	fmt.Printf("Last import:    %s\n", sum.LastImport.Local().Format("2006-01-02 15:04:05"))

	imports, err := st.ListImports()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent imports:")
	const maxShown = 5
	for i, imp := range imports {
		if i == maxShown {
			fmt.Printf("  ... and %d more\n", len(imports)-maxShown)
			break
		}
		fmt.Printf("  %s  %-30s %d new row%s\n",
			imp.ImportedAt.Local().Format("2006-01-02 15:04"),
			imp.Source, imp.RowCount, plural(imp.RowCount))
	}
	return nil
}
