// Package analyzer implements the market-basket analysis pipeline: Apriori
// frequent-itemset mining, association-rule derivation, item importance
// scoring, and the five-tier recommendation builder.
//
// Every stage is a pure function of its inputs. The pipeline is synchronous
// and single-threaded; candidate enumeration at level k can be combinatorially
// large, which is the known scalability limit of this design.
package analyzer

import (
	"sort"

	"github.com/fnzahra/shelfwise/internal/basket"
)

// Mine discovers every itemset whose support meets minSupport, level-wise
// with anti-monotone pruning:
//
//  1. Count singletons; keep those reaching minCount = max(1, floor(minSupport·n)).
//  2. At each level k ≥ 2, candidates are unions of pairs of surviving
//     (k−1)-itemsets whose union has exactly k members. This is the naive
//     join: a candidate's other (k−1)-subsets are not checked. Correctness
//     is unaffected because every candidate is counted exactly against the
//     baskets; only pruning efficiency is lost.
//  3. Keep candidates reaching minCount; stop when a level yields none.
//
// An empty basket collection yields an empty result.
func Mine(baskets []basket.Basket, minSupport float64) *MiningResult {
	n := len(baskets)
	res := newMiningResult(n)
	if n == 0 {
		return res
	}

	minCount := int(minSupport * float64(n))
	if minCount < 1 {
		minCount = 1
	}

	// Level 1: singleton counts.
	singles := make(map[string]int)
	for _, b := range baskets {
		for item := range b {
			singles[item]++
		}
	}

	level := make(map[string]basket.Itemset)
	for item, count := range singles {
		if count >= minCount {
			s := basket.NewItemset(item)
			res.add(s, count)
			level[s.Key()] = s
		}
	}

	for k := 2; len(level) > 0; k++ {
		next := make(map[string]basket.Itemset)
		for _, cand := range joinLevel(level, k) {
			count := 0
			for _, b := range baskets {
				if cand.SubsetOf(b) {
					count++
				}
			}
			if count >= minCount {
				res.add(cand, count)
				next[cand.Key()] = cand
			}
		}
		level = next
	}

	return res
}

// joinLevel generates the level-k candidates: unions of pairs of frequent
// (k−1)-itemsets that have exactly k members, deduplicated by key.
func joinLevel(level map[string]basket.Itemset, k int) map[string]basket.Itemset {
	keys := make([]string, 0, len(level))
	for key := range level {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cands := make(map[string]basket.Itemset)
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			u := level[keys[i]].Union(level[keys[j]])
			if u.Size() == k {
				cands[u.Key()] = u
			}
		}
	}
	return cands
}
