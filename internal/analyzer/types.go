package analyzer

import (
	"fmt"

	"github.com/fnzahra/shelfwise/internal/basket"
)

// Tier size caps. Tier 1 is intentionally smaller: it names the handful of
// products that anchor the main shelf block.
const (
	Tier1Cap = 3
	TierCap  = 5
)

// Params holds the analysis thresholds. All values are fractions of the
// basket count except MinLift, which is a ratio.
type Params struct {
	MinSupport         float64 // main mining pass support floor
	MinConfidence      float64 // rule confidence floor, both passes
	MinLift            float64 // rule lift floor, both passes
	LongtailMinSupport float64 // long-tail mining pass support floor
	LongtailMaxSupport float64 // long-tail rule support ceiling
}

// DefaultParams returns the standard thresholds: main rules at 1% support,
// long-tail rules between 0.2% and 1%.
func DefaultParams() Params {
	return Params{
		MinSupport:         0.01,
		MinConfidence:      0.30,
		MinLift:            1.5,
		LongtailMinSupport: 0.002,
		LongtailMaxSupport: 0.01,
	}
}

// Validate checks that thresholds are in their natural ranges. The pipeline
// itself assumes validated parameters and only guards against division by
// zero, so callers accepting user input should validate first.
func (p Params) Validate() error {
	if p.MinSupport < 0 || p.MinSupport > 1 {
		return fmt.Errorf("min-support %g out of range [0,1]", p.MinSupport)
	}
	if p.MinConfidence < 0 || p.MinConfidence > 1 {
		return fmt.Errorf("min-confidence %g out of range [0,1]", p.MinConfidence)
	}
	if p.MinLift < 0 {
		return fmt.Errorf("min-lift %g must be >= 0", p.MinLift)
	}
	if p.LongtailMinSupport < 0 || p.LongtailMinSupport > 1 {
		return fmt.Errorf("longtail-min-support %g out of range [0,1]", p.LongtailMinSupport)
	}
	if p.LongtailMaxSupport < 0 || p.LongtailMaxSupport > 1 {
		return fmt.Errorf("longtail-max-support %g out of range [0,1]", p.LongtailMaxSupport)
	}
	if p.LongtailMinSupport > p.LongtailMaxSupport {
		return fmt.Errorf("longtail-min-support %g exceeds longtail-max-support %g",
			p.LongtailMinSupport, p.LongtailMaxSupport)
	}
	return nil
}

// MiningResult holds the frequent itemsets found by one mining pass, keyed
// by the canonical itemset key.
type MiningResult struct {
	Sets    map[string]basket.Itemset // key -> itemset
	Support map[string]float64        // key -> relative support
	Counts  map[string]int            // key -> absolute basket count
	Baskets int                       // total baskets in the pass
}

func newMiningResult(baskets int) *MiningResult {
	return &MiningResult{
		Sets:    make(map[string]basket.Itemset),
		Support: make(map[string]float64),
		Counts:  make(map[string]int),
		Baskets: baskets,
	}
}

func (r *MiningResult) add(s basket.Itemset, count int) {
	key := s.Key()
	r.Sets[key] = s
	r.Counts[key] = count
	r.Support[key] = float64(count) / float64(r.Baskets)
}

// SupportOf returns the relative support of the given itemset, or ok=false
// if the itemset is not frequent in this pass.
func (r *MiningResult) SupportOf(s basket.Itemset) (float64, bool) {
	sup, ok := r.Support[s.Key()]
	return sup, ok
}

// TierLens selects how Tier 1 candidates are ranked.
type TierLens string

const (
	// LensRuleScore ranks Tier 1 by rule-derived importance over the
	// combined main and long-tail rule sets. This is the default.
	LensRuleScore TierLens = "scores"
	// LensSupport ranks Tier 1 by raw single-item support from the main
	// mining pass.
	LensSupport TierLens = "support"
)

// ParseTierLens validates a lens name from user input.
func ParseTierLens(s string) (TierLens, error) {
	switch TierLens(s) {
	case LensRuleScore, LensSupport:
		return TierLens(s), nil
	}
	return "", fmt.Errorf("invalid lens %q (must be %s or %s)", s, LensRuleScore, LensSupport)
}

// TierSet is the five-tier merchandising recommendation. The tiers are
// pairwise disjoint and ordered by priority; a tier may be shorter than its
// cap, or empty, when not enough candidates remain.
type TierSet struct {
	Core      []string // Tier 1: main shelf block, cap 3
	Bundling  []string // Tier 2: primary bundling partners for Tier 1
	Support   []string // Tier 3: secondary support around the main block
	Promotion []string // Tier 4: long-tail products worth dedicated promotion
	Checkout  []string // Tier 5: complements, checkout/endcap placement
}

// Lists returns the five tiers in priority order.
func (t *TierSet) Lists() [][]string {
	return [][]string{t.Core, t.Bundling, t.Support, t.Promotion, t.Checkout}
}

// Report is the full output of one analysis run, consumed by the
// presentation layer.
type Report struct {
	MainRules      []basket.Rule
	PotentialRules []basket.Rule
	MainFreq       *MiningResult
	PotentialFreq  *MiningResult
	Tiers          *TierSet
}
