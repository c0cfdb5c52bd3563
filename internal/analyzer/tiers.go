package analyzer

import (
	"sort"

	"github.com/fnzahra/shelfwise/internal/basket"
)

// TierOptions configures the tier builder.
type TierOptions struct {
	// Lens selects the Tier 1 ranking source; zero value means LensRuleScore.
	Lens TierLens
}

// BuildTiers partitions the item universe into the five merchandising tiers.
// Selection is greedy and sequential: each stage ranks its own scoring lens
// over the items not yet claimed by earlier stages, so the tiers are
// pairwise disjoint by construction. The stage order is part of the
// contract; jointly optimizing across tiers would change the results.
//
// Stages:
//
//	Tier 1 (cap 3): importance over main+long-tail rules combined, or raw
//	        main-pass singleton support under LensSupport.
//	Tier 2 (cap 5): partner strength — rules touching a Tier 1 item
//	        accumulate onto their non-Tier-1 members.
//	Tier 3 (cap 5): remaining items by the combined importance score.
//	Tier 4 (cap 5): remaining items by long-tail-only importance.
//	Tier 5 (cap 5): remaining items by consequent-only importance.
func BuildTiers(mainRules, potentialRules []basket.Rule, mainFreq, potentialFreq *MiningResult, opts TierOptions) *TierSet {
	combined := make([]basket.Rule, 0, len(mainRules)+len(potentialRules))
	combined = append(combined, mainRules...)
	combined = append(combined, potentialRules...)

	combinedScores := ItemScores(combined)
	claimed := make(map[string]bool)

	var tier1Source map[string]float64
	if opts.Lens == LensSupport {
		tier1Source = SingleItemSupport(mainFreq)
	} else {
		tier1Source = combinedScores
	}
	core := takeTop(tier1Source, Tier1Cap, claimed)

	// Tier 2: accumulate rule strength onto the partners of Tier 1 items.
	partnerScores := make(map[string]float64)
	for _, r := range combined {
		items := r.Antecedent.Union(r.Consequent)
		if !touchesClaimed(items, core) {
			continue
		}
		strength := r.Strength()
		for _, item := range items {
			if !contains(core, item) {
				partnerScores[item] += strength
			}
		}
	}
	bundling := takeTop(partnerScores, TierCap, claimed)

	support := takeTop(combinedScores, TierCap, claimed)
	promotion := takeTop(ItemScores(potentialRules), TierCap, claimed)
	checkout := takeTop(ConsequentScores(combined), TierCap, claimed)

	return &TierSet{
		Core:      core,
		Bundling:  bundling,
		Support:   support,
		Promotion: promotion,
		Checkout:  checkout,
	}
}

// takeTop selects up to n unclaimed items from scores, highest score first,
// ties broken by item name ascending so output is deterministic. Selected
// items are marked claimed for the following stages.
func takeTop(scores map[string]float64, n int, claimed map[string]bool) []string {
	type ranked struct {
		item  string
		score float64
	}
	cands := make([]ranked, 0, len(scores))
	for item, score := range scores {
		if !claimed[item] {
			cands = append(cands, ranked{item, score})
		}
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].item < cands[j].item
	})

	if len(cands) > n {
		cands = cands[:n]
	}
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		claimed[c.item] = true
		out = append(out, c.item)
	}
	return out
}

func touchesClaimed(items basket.Itemset, tier []string) bool {
	for _, t := range tier {
		if items.Contains(t) {
			return true
		}
	}
	return false
}

func contains(items []string, item string) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}
