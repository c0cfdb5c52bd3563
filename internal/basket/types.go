// Package basket defines the market-basket domain types shared by the
// ingest, store, and analyzer packages: transactions (baskets), canonical
// itemsets, and association rules.
package basket

import (
	"sort"
	"strings"
)

// keySep separates members inside an itemset key. The unit separator cannot
// appear in normalized item identifiers, so keys are collision-free.
const keySep = "\x1f"

// Itemset is an unordered, duplicate-free set of item identifiers. The
// canonical form keeps members sorted ascending, so two itemsets with the
// same members always compare and hash identically via Key.
type Itemset []string

// NewItemset builds a canonical itemset from the given items, sorting and
// removing duplicates.
func NewItemset(items ...string) Itemset {
	s := make(Itemset, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		s = append(s, it)
	}
	sort.Strings(s)
	return s
}

// ItemsetFromKey reverses Key, rebuilding the itemset it encodes.
func ItemsetFromKey(key string) Itemset {
	if key == "" {
		return Itemset{}
	}
	return Itemset(strings.Split(key, keySep))
}

// Key returns the canonical string identity of the itemset. Itemsets with
// equal member sets produce equal keys, so Key is usable as a map key.
func (s Itemset) Key() string {
	return strings.Join(s, keySep)
}

// Size returns the number of members.
func (s Itemset) Size() int {
	return len(s)
}

// Contains reports whether item is a member of the itemset.
func (s Itemset) Contains(item string) bool {
	i := sort.SearchStrings(s, item)
	return i < len(s) && s[i] == item
}

// SubsetOf reports whether every member of the itemset appears in b.
func (s Itemset) SubsetOf(b Basket) bool {
	for _, item := range s {
		if !b.Has(item) {
			return false
		}
	}
	return true
}

// Union returns the canonical union of two itemsets.
func (s Itemset) Union(other Itemset) Itemset {
	return NewItemset(append(append([]string{}, s...), other...)...)
}

// Without returns the members of the itemset not present in other.
func (s Itemset) Without(other Itemset) Itemset {
	out := make(Itemset, 0, len(s))
	for _, item := range s {
		if !other.Contains(item) {
			out = append(out, item)
		}
	}
	return out
}

// Equal reports whether both itemsets have the same members.
func (s Itemset) Equal(other Itemset) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Basket is one transaction's set of distinct item identifiers. Identifiers
// are assumed to be already normalized by the ingest layer; two equal strings
// are the same item.
type Basket map[string]struct{}

// NewBasket builds a basket from the given items, dropping duplicates.
func NewBasket(items ...string) Basket {
	b := make(Basket, len(items))
	for _, it := range items {
		b[it] = struct{}{}
	}
	return b
}

// Has reports whether item is in the basket.
func (b Basket) Has(item string) bool {
	_, ok := b[item]
	return ok
}

// Items returns the basket members in sorted order.
func (b Basket) Items() []string {
	items := make([]string, 0, len(b))
	for it := range b {
		items = append(items, it)
	}
	sort.Strings(items)
	return items
}

// Rule is one association rule: customers whose baskets contain every
// antecedent member tend to also contain the consequent members.
// Antecedent and consequent are disjoint; their union is a frequent itemset.
type Rule struct {
	Antecedent Itemset
	Consequent Itemset
	Support    float64 // support of antecedent ∪ consequent
	Confidence float64 // support(union) / support(antecedent)
	Lift       float64 // confidence / support(consequent)
}

// Strength is the rule's contribution to item importance scoring.
func (r Rule) Strength() float64 {
	return r.Support * r.Confidence * r.Lift
}
