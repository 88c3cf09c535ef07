package identified

import (
	"hash/maphash"
	"slices"
)

// Equal reports whether a and b hold equal elements in the same order.
// Only the observable ordered sequence matters; identity functions and
// internal map layout are irrelevant.
func Equal[ID, E comparable](a, b *Vec[ID, E]) bool {
	return slices.Equal(a.Elements(), b.Elements())
}

// EqualFunc is Equal with a caller-supplied element equality, for element
// types that are not comparable.
func EqualFunc[ID comparable, E any](a, b *Vec[ID, E], eq func(E, E) bool) bool {
	return slices.EqualFunc(a.Elements(), b.Elements(), eq)
}

// Hash returns a hash of the ordered element sequence, consistent with
// Equal: collections that compare equal hash equal under the same seed.
func Hash[ID, E comparable](v *Vec[ID, E], seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for e := range v.Values() {
		maphash.WriteComparable(&h, e)
	}
	return h.Sum64()
}
