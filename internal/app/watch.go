package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fnzahra/shelfwise/internal/analyzer"
	"github.com/fnzahra/shelfwise/internal/output"
	"github.com/fnzahra/shelfwise/internal/watcher"
)

var (
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a directory and re-analyze as exports land",
		Long: `Watch a directory for new or changed transaction CSV files. Whenever
files settle (no further writes for the debounce period), they are imported
into the cache and the full analysis reruns, printing a fresh tier
recommendation.

The command runs until interrupted (Ctrl-C).`,
		Example: `  # Re-analyze whenever the POS drops a new export
  shelfwise watch ./exports

  # Wait longer for large exports to finish copying
  shelfwise watch --debounce 10s ./exports`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "quiet period before re-analyzing")

	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	params := cfg.Params()
	if err := params.Validate(); err != nil {
		return err
	}
	lens, err := analyzer.ParseTierLens(cfg.Lens)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	w, err := watcher.New(args[0], watchDebounce)
	if err != nil {
		return err
	}
	defer w.Stop()

	w.Start(func(paths []string) {
		fmt.Printf("\nDetected %d changed file%s\n", len(paths), plural(len(paths)))
		if err := importFiles(st, paths, cfg.IngestOptions()); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}

		baskets, err := st.LoadBaskets()
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		report := analyzer.Analyze(baskets, params, analyzer.TierOptions{Lens: lens})

		fmt.Printf("Analyzed %d basket%s: %d main rule%s, %d long-tail rule%s\n\n",
			len(baskets), plural(len(baskets)),
			len(report.MainRules), plural(len(report.MainRules)),
			len(report.PotentialRules), plural(len(report.PotentialRules)))
		fmt.Print(output.RenderTierReport(report.Tiers))
	})

	fmt.Printf("Watching %s for transaction files (Ctrl-C to stop)\n", args[0])

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping watch")
	return nil
}
