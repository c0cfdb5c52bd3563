package analyzer

import (
	"reflect"
	"testing"

	"github.com/fnzahra/shelfwise/internal/basket"
)

// tierBaskets is a dataset wide enough to populate several tiers: a strong
// bread/butter/jam block, a milk/cocoa pair, and a couple of rare items.
func tierBaskets() []basket.Basket {
	return mkBaskets(
		[]string{"bread", "butter"},
		[]string{"bread", "butter"},
		[]string{"bread", "butter", "jam"},
		[]string{"bread", "jam"},
		[]string{"milk", "cocoa"},
		[]string{"milk", "cocoa"},
		[]string{"milk", "bread"},
		[]string{"tea", "honey"},
	)
}

func tierParams() Params {
	return Params{
		MinSupport:         0.2,
		MinConfidence:      0.3,
		MinLift:            0.8,
		LongtailMinSupport: 0.1,
		LongtailMaxSupport: 0.25,
	}
}

func assertDisjointAndCapped(t *testing.T, tiers *TierSet) {
	t.Helper()

	caps := []int{Tier1Cap, TierCap, TierCap, TierCap, TierCap}
	seen := make(map[string]int)
	for i, list := range tiers.Lists() {
		if len(list) > caps[i] {
			t.Errorf("tier %d has %d items, cap is %d", i+1, len(list), caps[i])
		}
		for _, item := range list {
			if prev, ok := seen[item]; ok {
				t.Errorf("item %q appears in tier %d and tier %d", item, prev, i+1)
			}
			seen[item] = i + 1
		}
	}
}

func TestBuildTiers_DisjointAndCapped(t *testing.T) {
	p := tierParams()
	baskets := tierBaskets()

	mainFreq := Mine(baskets, p.MinSupport)
	potFreq := Mine(baskets, p.LongtailMinSupport)
	mainRules := MainRules(mainFreq, p)
	potRules := PotentialRules(potFreq, p)

	tiers := BuildTiers(mainRules, potRules, mainFreq, potFreq, TierOptions{})
	assertDisjointAndCapped(t, tiers)

	if len(tiers.Core) == 0 {
		t.Error("expected a non-empty Tier 1 from the test dataset")
	}
}

func TestBuildTiers_EmptyInput(t *testing.T) {
	p := DefaultParams()
	mainFreq := Mine(nil, p.MinSupport)
	potFreq := Mine(nil, p.LongtailMinSupport)

	tiers := BuildTiers(nil, nil, mainFreq, potFreq, TierOptions{})
	for i, list := range tiers.Lists() {
		if len(list) != 0 {
			t.Errorf("tier %d not empty for empty input: %v", i+1, list)
		}
	}
}

func TestBuildTiers_SupportLens(t *testing.T) {
	p := tierParams()
	baskets := tierBaskets()

	mainFreq := Mine(baskets, p.MinSupport)
	potFreq := Mine(baskets, p.LongtailMinSupport)
	mainRules := MainRules(mainFreq, p)
	potRules := PotentialRules(potFreq, p)

	tiers := BuildTiers(mainRules, potRules, mainFreq, potFreq, TierOptions{Lens: LensSupport})
	assertDisjointAndCapped(t, tiers)

	// Singleton supports: bread 0.75, butter 0.375, milk 0.375, jam 0.25,
	// cocoa 0.25. The butter/milk tie resolves by item name.
	want := []string{"bread", "butter", "milk"}
	if !reflect.DeepEqual(tiers.Core, want) {
		t.Errorf("support-lens Tier 1 = %v, want %v", tiers.Core, want)
	}
}

func TestBuildTiers_PartnersExcludeTier1(t *testing.T) {
	p := tierParams()
	baskets := tierBaskets()

	mainFreq := Mine(baskets, p.MinSupport)
	potFreq := Mine(baskets, p.LongtailMinSupport)
	mainRules := MainRules(mainFreq, p)
	potRules := PotentialRules(potFreq, p)

	tiers := BuildTiers(mainRules, potRules, mainFreq, potFreq, TierOptions{})
	for _, core := range tiers.Core {
		for _, partner := range tiers.Bundling {
			if core == partner {
				t.Errorf("Tier 1 item %q reappears in Tier 2", core)
			}
		}
	}
}

func TestBuildTiers_TieBreakByName(t *testing.T) {
	// Two perfectly symmetric items: equal scores everywhere, so ordering
	// must fall back to the item name.
	baskets := mkBaskets(
		[]string{"yeast", "zest"},
		[]string{"yeast", "zest"},
	)
	p := Params{MinSupport: 0.5, MinConfidence: 0.1, MinLift: 0.1, LongtailMinSupport: 0.25, LongtailMaxSupport: 0.4}

	mainFreq := Mine(baskets, p.MinSupport)
	potFreq := Mine(baskets, p.LongtailMinSupport)
	tiers := BuildTiers(MainRules(mainFreq, p), PotentialRules(potFreq, p), mainFreq, potFreq, TierOptions{})

	want := []string{"yeast", "zest"}
	if !reflect.DeepEqual(tiers.Core, want) {
		t.Errorf("Tier 1 = %v, want %v (name tie-break)", tiers.Core, want)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	baskets := tierBaskets()
	p := tierParams()

	first := Analyze(baskets, p, TierOptions{})
	second := Analyze(baskets, p, TierOptions{})

	if !reflect.DeepEqual(first.MainRules, second.MainRules) {
		t.Error("main rules differ across identical runs")
	}
	if !reflect.DeepEqual(first.PotentialRules, second.PotentialRules) {
		t.Error("potential rules differ across identical runs")
	}
	if !reflect.DeepEqual(first.Tiers, second.Tiers) {
		t.Error("tier assignments differ across identical runs")
	}
}

func TestAnalyze_EmptyBaskets(t *testing.T) {
	report := Analyze(nil, DefaultParams(), TierOptions{})

	if len(report.MainRules) != 0 || len(report.PotentialRules) != 0 {
		t.Error("expected no rules for empty input")
	}
	for i, list := range report.Tiers.Lists() {
		if len(list) != 0 {
			t.Errorf("tier %d not empty: %v", i+1, list)
		}
	}
}

func TestParseTierLens(t *testing.T) {
	if _, err := ParseTierLens("scores"); err != nil {
		t.Errorf("ParseTierLens(scores): %v", err)
	}
	if _, err := ParseTierLens("support"); err != nil {
		t.Errorf("ParseTierLens(support): %v", err)
	}
	if _, err := ParseTierLens("bogus"); err == nil {
		t.Error("ParseTierLens(bogus) should fail")
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default params should validate: %v", err)
	}

	bad := []Params{
		{MinSupport: -0.1},
		{MinSupport: 1.5},
		{MinConfidence: 2},
		{MinLift: -1},
		{LongtailMinSupport: 0.5, LongtailMaxSupport: 0.1},
	}
	for i, p := range bad {
		if err := p.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, p)
		}
	}
}
