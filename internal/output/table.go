// Package output renders analysis results for the terminal: association
// rule tables and the five-tier recommendation report. Rendering uses ASCII
// tables with ANSI colors when stdout is a TTY; NO_COLOR disables color.
package output

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/fnzahra/shelfwise/internal/analyzer"
	"github.com/fnzahra/shelfwise/internal/basket"
)

// ANSI color codes for tier display.
const (
	colorReset   = "\033[0m"
	colorYellow  = "\033[33m"
	colorGreen   = "\033[32m"
	colorBlue    = "\033[34m"
	colorRed     = "\033[31m"
	colorMagenta = "\033[35m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderRuleTable renders association rules sorted by lift descending,
// capped at limit rows (0 means no cap). Ties resolve by support descending,
// then antecedent and consequent names, so output is stable across runs.
func RenderRuleTable(rules []basket.Rule, limit int) string {
	if len(rules) == 0 {
		return "No association rules at the current thresholds.\n"
	}

	sorted := make([]basket.Rule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lift != sorted[j].Lift {
			return sorted[i].Lift > sorted[j].Lift
		}
		if sorted[i].Support != sorted[j].Support {
			return sorted[i].Support > sorted[j].Support
		}
		if a, b := sorted[i].Antecedent.Key(), sorted[j].Antecedent.Key(); a != b {
			return a < b
		}
		return sorted[i].Consequent.Key() < sorted[j].Consequent.Key()
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-28s %-28s %8s %11s %7s\n",
		"Antecedent", "Consequent", "Support", "Confidence", "Lift"))
	sb.WriteString(strings.Repeat("─", 86))
	sb.WriteString("\n")

	for _, r := range sorted {
		sb.WriteString(fmt.Sprintf("%-28s %-28s %8.4f %11.3f %7.3f\n",
			truncate(joinItems(r.Antecedent), 28),
			truncate(joinItems(r.Consequent), 28),
			r.Support,
			r.Confidence,
			r.Lift))
	}
	return sb.String()
}

// tierHeading describes one tier block in the report.
type tierHeading struct {
	name  string
	desc  string
	color string
}

var tierHeadings = []tierHeading{
	{
		name:  "Tier 1 — Main shelf block",
		desc:  "Strongest products overall; keep stocked and placed in the most strategic shelf area.",
		color: colorYellow,
	},
	{
		name:  "Tier 2 — Primary bundling partners",
		desc:  "Most frequent companions of Tier 1; bundle or display adjacent to the main block.",
		color: colorGreen,
	},
	{
		name:  "Tier 3 — Supporting products",
		desc:  "Secondary associates of the main block; place nearby to widen cross-selling.",
		color: colorBlue,
	},
	{
		name:  "Tier 4 — Promotion candidates",
		desc:  "Low-volume products with strong associations; suited to themed promotions.",
		color: colorRed,
	},
	{
		name:  "Tier 5 — Checkout complements",
		desc:  "Frequent rule consequents; basket closers for checkout or endcap placement.",
		color: colorMagenta,
	},
}

// RenderTierReport renders the five-tier recommendation, one block per tier.
func RenderTierReport(tiers *analyzer.TierSet) string {
	var sb strings.Builder
	for i, list := range tiers.Lists() {
		h := tierHeadings[i]
		sb.WriteString(colorize(h.color, h.name))
		sb.WriteString("\n")
		sb.WriteString("  " + h.desc + "\n")
		if len(list) == 0 {
			sb.WriteString("  (no products identified for this tier)\n")
		} else {
			sb.WriteString("  " + strings.Join(list, " · ") + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// joinItems renders itemset members for a table cell.
func joinItems(s basket.Itemset) string {
	return strings.Join(s, ", ")
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
