package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fnzahra/shelfwise/internal/analyzer"
	"github.com/fnzahra/shelfwise/internal/output"
)

var (
	rulesPotential bool
	rulesTop       int

	rulesCmd = &cobra.Command{
		Use:   "rules [file.csv ...]",
		Short: "List association rules without building tiers",
		Long: `Mine the transactions and list association rules, strongest lift first.

By default the main pass is shown: exact product pairs at the standard
support floor. With --potential the long-tail pass is shown instead:
itemsets of any size whose support falls in the long-tail band.`,
		Example: `  # Strongest product pairs from the cache
  shelfwise rules

  # Long-tail rules from a file
  shelfwise rules --potential january.csv

  # Show everything
  shelfwise rules --top 0`,
		RunE: runRules,
	}
)

func init() {
	rulesCmd.Flags().BoolVar(&rulesPotential, "potential", false, "show the long-tail rule pass")
	rulesCmd.Flags().IntVar(&rulesTop, "top", 20, "rules shown (0 = all)")

	RootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	if rulesTop < 0 {
		return fmt.Errorf("invalid top: %d (must be >= 0)", rulesTop)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	params := cfg.Params()
	if err := params.Validate(); err != nil {
		return err
	}

	baskets, err := gatherBaskets(args, cfg)
	if err != nil {
		return err
	}
	if len(baskets) == 0 {
		fmt.Println("No transactions to analyze.")
		fmt.Println("Run 'shelfwise import <file.csv>' first, or pass files directly.")
		return nil
	}

	if rulesPotential {
		freq := analyzer.Mine(baskets, params.LongtailMinSupport)
		rules := analyzer.PotentialRules(freq, params)
		fmt.Printf("Long-tail rules (support %.3f-%.3f) from %d basket%s:\n",
			params.LongtailMinSupport, params.LongtailMaxSupport, len(baskets), plural(len(baskets)))
		fmt.Print(output.RenderRuleTable(rules, rulesTop))
		return nil
	}

	freq := analyzer.Mine(baskets, params.MinSupport)
	rules := analyzer.MainRules(freq, params)
	fmt.Printf("Main rules (support >= %.3f) from %d basket%s:\n",
		params.MinSupport, len(baskets), plural(len(baskets)))
	fmt.Print(output.RenderRuleTable(rules, rulesTop))
	return nil
}
