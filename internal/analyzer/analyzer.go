package analyzer

import "github.com/fnzahra/shelfwise/internal/basket"

// Analyze runs the full pipeline over the given baskets: two mining passes
// (standard and long-tail support floors), the main and potential rule
// passes, and the tier builder. The result is a pure, deterministic function
// of (baskets, params, opts); nothing persists between runs.
//
// Zero baskets or unsatisfiable thresholds produce an empty report, not an
// error.
func Analyze(baskets []basket.Basket, p Params, opts TierOptions) *Report {
	mainFreq := Mine(baskets, p.MinSupport)
	mainRules := MainRules(mainFreq, p)

	potFreq := Mine(baskets, p.LongtailMinSupport)
	potRules := PotentialRules(potFreq, p)

	return &Report{
		MainRules:      mainRules,
		PotentialRules: potRules,
		MainFreq:       mainFreq,
		PotentialFreq:  potFreq,
		Tiers:          BuildTiers(mainRules, potRules, mainFreq, potFreq, opts),
	}
}
