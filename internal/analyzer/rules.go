package analyzer

import (
	"sort"

	"github.com/fnzahra/shelfwise/internal/basket"
)

// GenerateRules derives association rules from the frequent itemsets in
// freq. Every itemset of size ≥ 2 (or exactly 2 when exactPairOnly is set)
// is split into every non-empty proper antecedent subset with the remainder
// as consequent. A rule is emitted when its confidence reaches minConf and
// its lift reaches minLift.
//
// Both subset supports are looked up in freq; they are guaranteed present
// because subsets of a frequent itemset are frequent. If a lookup is missing
// or zero anyway, that split is skipped rather than failing the run.
//
// Rules are returned in a deterministic order: by itemset key, then by
// antecedent enumeration order (size ascending, members lexicographic).
func GenerateRules(freq *MiningResult, minConf, minLift float64, exactPairOnly bool) []basket.Rule {
	keys := make([]string, 0, len(freq.Sets))
	for key := range freq.Sets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rules []basket.Rule
	for _, key := range keys {
		set := freq.Sets[key]
		if set.Size() < 2 {
			continue
		}
		if exactPairOnly && set.Size() != 2 {
			continue
		}
		supUnion := freq.Support[key]

		for r := 1; r < set.Size(); r++ {
			for _, ante := range combinations(set, r) {
				cons := set.Without(ante)
				supA, okA := freq.SupportOf(ante)
				supB, okB := freq.SupportOf(cons)
				if !okA || !okB || supA == 0 || supB == 0 {
					continue
				}
				conf := supUnion / supA
				lift := conf / supB
				if conf >= minConf && lift >= minLift {
					rules = append(rules, basket.Rule{
						Antecedent: ante,
						Consequent: cons,
						Support:    supUnion,
						Confidence: conf,
						Lift:       lift,
					})
				}
			}
		}
	}
	return rules
}

// FilterBySupportBand keeps the rules whose support lies in the closed
// interval [lo, hi].
func FilterBySupportBand(rules []basket.Rule, lo, hi float64) []basket.Rule {
	out := make([]basket.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Support >= lo && r.Support <= hi {
			out = append(out, r)
		}
	}
	return out
}

// MainRules runs the standard rule pass: exact two-item itemsets with
// support in [MinSupport, 1]. This is the pairwise bundling signal.
func MainRules(freq *MiningResult, p Params) []basket.Rule {
	rules := GenerateRules(freq, p.MinConfidence, p.MinLift, true)
	return FilterBySupportBand(rules, p.MinSupport, 1.0)
}

// PotentialRules runs the long-tail rule pass: itemsets of any size ≥ 2 with
// support in [LongtailMinSupport, LongtailMaxSupport] — frequent enough to be
// meaningful, not already captured by the main pass.
func PotentialRules(freq *MiningResult, p Params) []basket.Rule {
	rules := GenerateRules(freq, p.MinConfidence, p.MinLift, false)
	return FilterBySupportBand(rules, p.LongtailMinSupport, p.LongtailMaxSupport)
}

// combinations enumerates every r-member subset of set, preserving the
// canonical member order, in lexicographic index order.
func combinations(set basket.Itemset, r int) []basket.Itemset {
	var out []basket.Itemset
	pick := make([]string, 0, r)

	var walk func(start int)
	walk = func(start int) {
		if len(pick) == r {
			out = append(out, basket.Itemset(append([]string{}, pick...)))
			return
		}
		for i := start; i <= len(set)-(r-len(pick)); i++ {
			pick = append(pick, set[i])
			walk(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	walk(0)
	return out
}
