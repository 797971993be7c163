package utils

import (
	"cmp"
	"slices"
)

type Pair[T cmp.Ordered] struct {
	First  T
	Second T
}

// GeneratePairs returns every unordered two-element combination of items.
// Duplicates are collapsed and items are sorted first, so each pair
// has First < Second and the output order is deterministic.
func GeneratePairs[T cmp.Ordered](items []T) []Pair[T] {
	unique := slices.Clone(items)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	if len(unique) < 2 {
		return []Pair[T]{}
	}

	pairs := make([]Pair[T], 0, len(unique)*(len(unique)-1)/2)
	for i := 0; i < len(unique)-1; i++ {
		for j := i + 1; j < len(unique); j++ {
			pairs = append(pairs, Pair[T]{First: unique[i], Second: unique[j]})
		}
	}
	return pairs
}
