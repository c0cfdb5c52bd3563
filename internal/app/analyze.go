package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fnzahra/shelfwise/internal/analyzer"
	"github.com/fnzahra/shelfwise/internal/basket"
	"github.com/fnzahra/shelfwise/internal/config"
	"github.com/fnzahra/shelfwise/internal/ingest"
	"github.com/fnzahra/shelfwise/internal/output"
)

var (
	analyzeMinSupport  float64
	analyzeMinConf     float64
	analyzeMinLift     float64
	analyzeLongtailMin float64
	analyzeLongtailMax float64
	analyzeLens        string
	analyzeTopRules    int

	analyzeCmd = &cobra.Command{
		Use:   "analyze [file.csv ...]",
		Short: "Run the basket analysis and print the tier recommendation",
		Long: `Run the full analysis pipeline and print the five-tier merchandising
recommendation together with the strongest association rules.

Without arguments, the cached transactions imported earlier are analyzed.
With file arguments, the files are analyzed directly and the cache is not
touched.

The pipeline mines frequent itemsets twice: once at --min-support for the
main pairwise bundling signal, and once at --longtail-min-support for
low-volume products whose rule support stays below --longtail-max-support.
Rules must meet --min-confidence and --min-lift in both passes.

Tier 1 ranking is controlled by --lens:
  scores   rule-derived importance over all rules (default)
  support  raw single-item support from the main mining pass`,
		Example: `  # Analyze the cached transactions
  shelfwise analyze

  # Analyze files directly with a higher support floor
  shelfwise analyze --min-support 0.05 january.csv

  # Rank Tier 1 by raw item support
  shelfwise analyze --lens support`,
		RunE: runAnalyze,
	}
)

func init() {
	def := analyzer.DefaultParams()
	analyzeCmd.Flags().Float64Var(&analyzeMinSupport, "min-support", def.MinSupport, "main pass support floor (fraction of baskets)")
	analyzeCmd.Flags().Float64Var(&analyzeMinConf, "min-confidence", def.MinConfidence, "rule confidence floor")
	analyzeCmd.Flags().Float64Var(&analyzeMinLift, "min-lift", def.MinLift, "rule lift floor")
	analyzeCmd.Flags().Float64Var(&analyzeLongtailMin, "longtail-min-support", def.LongtailMinSupport, "long-tail pass support floor")
	analyzeCmd.Flags().Float64Var(&analyzeLongtailMax, "longtail-max-support", def.LongtailMaxSupport, "long-tail rule support ceiling")
	analyzeCmd.Flags().StringVar(&analyzeLens, "lens", "", "Tier 1 ranking lens: scores or support")
	analyzeCmd.Flags().IntVar(&analyzeTopRules, "top", 10, "rules shown per table (0 = all)")

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeTopRules < 0 {
		return fmt.Errorf("invalid top: %d (must be >= 0)", analyzeTopRules)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	params, opts, err := analysisSettings(cmd, cfg)
	if err != nil {
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

	report := analyzer.Analyze(baskets, params, opts)

	fmt.Printf("Analyzed %d basket%s\n", len(baskets), plural(len(baskets)))
	fmt.Printf("Main rules (support >= %.3f): %d\n", params.MinSupport, len(report.MainRules))
	fmt.Printf("Long-tail rules (support %.3f-%.3f): %d\n\n",
		params.LongtailMinSupport, params.LongtailMaxSupport, len(report.PotentialRules))

	fmt.Println("Tier recommendation")
	fmt.Println()
	fmt.Print(output.RenderTierReport(report.Tiers))

	fmt.Println("Top main rules")
	fmt.Print(output.RenderRuleTable(report.MainRules, analyzeTopRules))
	fmt.Println()
	fmt.Println("Top long-tail rules")
	fmt.Print(output.RenderRuleTable(report.PotentialRules, analyzeTopRules))
	return nil
}

// analysisSettings resolves thresholds and the tier lens: config file over
// defaults, explicit flags over both.
func analysisSettings(cmd *cobra.Command, cfg config.Config) (analyzer.Params, analyzer.TierOptions, error) {
	params := cfg.Params()
	if cmd.Flags().Changed("min-support") {
		params.MinSupport = analyzeMinSupport
	}
	if cmd.Flags().Changed("min-confidence") {
		params.MinConfidence = analyzeMinConf
	}
	if cmd.Flags().Changed("min-lift") {
		params.MinLift = analyzeMinLift
	}
	if cmd.Flags().Changed("longtail-min-support") {
		params.LongtailMinSupport = analyzeLongtailMin
	}
	if cmd.Flags().Changed("longtail-max-support") {
		params.LongtailMaxSupport = analyzeLongtailMax
	}
	if err := params.Validate(); err != nil {
		return params, analyzer.TierOptions{}, err
	}

	lensName := cfg.Lens
	if analyzeLens != "" {
		lensName = analyzeLens
	}
	lens, err := analyzer.ParseTierLens(lensName)
	if err != nil {
		return params, analyzer.TierOptions{}, err
	}
	return params, analyzer.TierOptions{Lens: lens}, nil
}

// gatherBaskets loads baskets from the given files, or from the cache when
// no files are named.
func gatherBaskets(files []string, cfg config.Config) ([]basket.Basket, error) {
	if len(files) > 0 {
		rows, err := ingest.ReadFiles(files, cfg.IngestOptions())
		if err != nil {
			return nil, err
		}
		return ingest.Baskets(rows), nil
	}

	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.LoadBaskets()
}
