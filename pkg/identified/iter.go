package identified

import (
	"iter"
	"slices"
)

// Values returns an iterator over the elements in insertion order. Each
// call yields a fresh iterator; the collection must not be mutated during
// iteration.
func (v *Vec[ID, E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, id := range v.order {
			if !yield(v.store[id]) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs in insertion order.
func (v *Vec[ID, E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, id := range v.order {
			if !yield(i, v.store[id]) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator: elements are yielded in insertion
// order and removed from the collection as they go. Breaking early keeps
// the not-yet-yielded tail. The whole drain is O(n), not a repeated
// remove-at-front.
func (v *Vec[ID, E]) Drain() iter.Seq[E] {
	return func(yield func(E) bool) {
		n := 0
		for _, id := range v.order {
			e := v.store[id]
			delete(v.store, id)
			n++
			if !yield(e) {
				break
			}
		}
		v.order = slices.Delete(v.order, 0, n)
	}
}
