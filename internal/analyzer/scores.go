package analyzer

import "github.com/fnzahra/shelfwise/internal/basket"

// ItemScores accumulates each item's importance over the given rules:
// support·confidence·lift summed over every rule in which the item appears,
// on either side. Items with no contributing rule are absent from the map;
// a missing lookup reads as zero.
func ItemScores(rules []basket.Rule) map[string]float64 {
	scores := make(map[string]float64)
	for _, r := range rules {
		strength := r.Strength()
		for _, item := range r.Antecedent.Union(r.Consequent) {
			scores[item] += strength
		}
	}
	return scores
}

// ConsequentScores is the checkout-complement variant of ItemScores: only
// consequent members accumulate, so items that frequently close out a basket
// rank highest.
func ConsequentScores(rules []basket.Rule) map[string]float64 {
	scores := make(map[string]float64)
	for _, r := range rules {
		strength := r.Strength()
		for _, item := range r.Consequent {
			scores[item] += strength
		}
	}
	return scores
}

// SingleItemSupport extracts the singleton supports from a mining result.
func SingleItemSupport(freq *MiningResult) map[string]float64 {
	out := make(map[string]float64)
	for key, set := range freq.Sets {
		if set.Size() == 1 {
			out[set[0]] = freq.Support[key]
		}
	}
	return out
}
