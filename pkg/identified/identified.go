// Package identified provides an insertion-ordered collection of unique
// elements, where uniqueness is decided by an identity derived from each
// element rather than by the element value itself.
//
// A Vec pairs an ordered id sequence with an id-to-element map, giving
// array-like iteration order together with O(1)-average lookup by id. It
// trades memory for speed: if you need something compact, use a sorted
// slice instead.
//
// Basic usage:
//
//	users := identified.New(func(u User) int { return u.ID })
//	users.Append(User{ID: 42, Name: "Blob"})
//	u, ok := users.Get(42)
//
// Element types that know their own id can use the Of form instead and
// skip the identity function:
//
//	users := identified.NewOf[int, User]()
//
// An element's id must not change while it is stored; mutating a field the
// identity function reads leaves the collection unable to find the element
// again. This is a documented precondition, not something the collection
// can check cheaply.
//
// A Vec is not safe for concurrent use. Callers that share one across
// goroutines must provide their own synchronization.
package identified

import (
	"fmt"
	"slices"
)

// IDFunc derives the identity of an element. It must be pure and return
// the same id for the same element for as long as the element is stored.
type IDFunc[ID comparable, E any] func(E) ID

// Vec is an ordered collection of elements with unique ids.
//
// The zero value is not usable; construct with New, FromUnique,
// FromCombining or TryFromCombining.
type Vec[ID comparable, E any] struct {
	order []ID
	store map[ID]E
	idOf  IDFunc[ID, E]
}

// New creates an empty Vec using idOf to derive element ids.
func New[ID comparable, E any](idOf IDFunc[ID, E]) *Vec[ID, E] {
	if idOf == nil {
		panic("identified: nil identity function")
	}
	return &Vec[ID, E]{
		store: make(map[ID]E),
		idOf:  idOf,
	}
}

// FromUnique creates a Vec from elements assumed to have unique ids,
// appended in the order given. If a duplicate id does occur, the earliest
// element wins and later ones are silently dropped.
func FromUnique[ID comparable, E any](idOf IDFunc[ID, E], elems ...E) *Vec[ID, E] {
	v := New(idOf)
	v.AppendAll(elems...)
	return v
}

// Len returns the number of elements.
//
// Len also verifies the internal invariant that the id sequence and the
// element map have the same size; a divergence means the collection has
// been corrupted and Len panics rather than keep serving wrong answers.
func (v *Vec[ID, E]) Len() int {
	if len(v.order) != len(v.store) {
		panic(fmt.Sprintf("identified: order/store desync: %d ids, %d elements", len(v.order), len(v.store)))
	}
	return len(v.order)
}

// IDs returns the ids in insertion order. The slice is a copy; mutating it
// does not affect the collection.
func (v *Vec[ID, E]) IDs() []ID {
	out := make([]ID, len(v.order))
	copy(out, v.order)
	return out
}

// IndexOf returns the position of id in insertion order.
//
// This is a linear scan. The collection deliberately keeps no id-to-index
// cache: every positional insert or removal would have to re-index all
// subsequent ids, which costs more than it saves unless index lookups
// dominate structural mutation.
func (v *Vec[ID, E]) IndexOf(id ID) (int, bool) {
	i := slices.Index(v.order, id)
	return i, i >= 0
}

// Contains reports whether an element with the same id as e is present.
// It compares ids only, never element values.
func (v *Vec[ID, E]) Contains(e E) bool {
	return v.ContainsID(v.idOf(e))
}

// ContainsID reports whether an element with the given id is present.
func (v *Vec[ID, E]) ContainsID(id ID) bool {
	_, ok := v.store[id]
	return ok
}

// Get returns the element with the given id.
func (v *Vec[ID, E]) Get(id ID) (E, bool) {
	e, ok := v.store[id]
	return e, ok
}

// At returns the element at position i, or false if i is out of bounds.
func (v *Vec[ID, E]) At(i int) (E, bool) {
	if i < 0 || i >= v.Len() {
		var zero E
		return zero, false
	}
	return v.store[v.order[i]], true
}

// Elements returns the elements in insertion order.
func (v *Vec[ID, E]) Elements() []E {
	out := make([]E, 0, v.Len())
	for _, id := range v.order {
		out = append(out, v.store[id])
	}
	return out
}

// Append adds e at the end if its id is not already present. It returns
// whether e was added, and the index of the element with e's id — the new
// end position when added, the existing position otherwise.
func (v *Vec[ID, E]) Append(e E) (bool, int) {
	return v.Insert(e, v.Len())
}

// AppendAll appends each element in turn, silently skipping any whose id
// is already present in the collection or earlier in the input.
func (v *Vec[ID, E]) AppendAll(elems ...E) {
	for _, e := range elems {
		v.Append(e)
	}
}

// Insert adds e at position at if its id is not already present, shifting
// later elements right. It returns whether e was added, and the index of
// the element with e's id. When the id already exists the collection is
// unchanged and the requested position is ignored.
//
// Panics if e is new and at is not in [0, Len()].
func (v *Vec[ID, E]) Insert(e E, at int) (bool, int) {
	id := v.idOf(e)
	if i := slices.Index(v.order, id); i >= 0 {
		return false, i
	}
	v.insertAt(id, e, at)
	return true, at
}

// UpdateOrAppend replaces the stored element with the same id as e,
// keeping its position, or appends e when the id is new. It returns the
// previous element and whether a replacement happened.
func (v *Vec[ID, E]) UpdateOrAppend(e E) (prev E, replaced bool) {
	id := v.idOf(e)
	if old, ok := v.store[id]; ok {
		v.store[id] = e
		return old, true
	}
	v.store[id] = e
	v.order = append(v.order, id)
	var zero E
	return zero, false
}

// UpdateOrInsert replaces the stored element with the same id as e,
// keeping its existing position (at is ignored), or inserts e at position
// at when the id is new. It returns the previous element, whether a
// replacement happened, and the index the element ended up at.
//
// Panics if e is new and at is not in [0, Len()].
func (v *Vec[ID, E]) UpdateOrInsert(e E, at int) (prev E, replaced bool, index int) {
	id := v.idOf(e)
	if i := slices.Index(v.order, id); i >= 0 {
		old := v.store[id]
		v.store[id] = e
		return old, true, i
	}
	v.insertAt(id, e, at)
	var zero E
	return zero, false, at
}

// UpdateAt replaces the element at position i with e and returns the
// previous element. The id derived from e must equal the id stored at i;
// a mismatch is a programmer error and panics, as does an out-of-bounds i.
func (v *Vec[ID, E]) UpdateAt(e E, i int) E {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("identified: index %d out of range for length %d", i, v.Len()))
	}
	id := v.idOf(e)
	if id != v.order[i] {
		panic(fmt.Sprintf("identified: replacement id %v does not match id %v at index %d", id, v.order[i], i))
	}
	prev := v.store[id]
	v.store[id] = e
	return prev
}

// TryUpdate replaces the stored element with the same id as e and returns
// the previous element. Unlike UpdateOrAppend it never grows the
// collection: when the id is absent it returns a *NotFoundError.
func (v *Vec[ID, E]) TryUpdate(e E) (E, error) {
	id := v.idOf(e)
	old, ok := v.store[id]
	if !ok {
		var zero E
		return zero, &NotFoundError{ID: id}
	}
	v.store[id] = e
	return old, nil
}

// Mutate applies fn to the stored element with the given id, in place, and
// reports whether the id was present. The mutation must not change the id
// the identity function derives from the element.
func (v *Vec[ID, E]) Mutate(id ID, fn func(*E)) bool {
	e, ok := v.store[id]
	if !ok {
		return false
	}
	fn(&e)
	v.store[id] = e
	return true
}

// TryAppend appends e and returns its new index. Unlike Append it treats
// an existing id as an error (*DuplicateIDError) instead of skipping.
func (v *Vec[ID, E]) TryAppend(e E) (int, error) {
	id := v.idOf(e)
	if v.ContainsID(id) {
		return 0, &DuplicateIDError{ID: id}
	}
	at := v.Len()
	v.insertAt(id, e, at)
	return at, nil
}

// TryAppendUnique appends e to v and returns its new index, failing when
// an element with the same id already exists. The two failure modes are
// distinguished: *DuplicateValueError when the stored element equals e
// (a true duplicate), *DuplicateIDError when it differs (an identity
// collision with a different payload).
func TryAppendUnique[ID, E comparable](v *Vec[ID, E], e E) (int, error) {
	id := v.idOf(e)
	if existing, ok := v.store[id]; ok {
		if existing == e {
			return 0, &DuplicateValueError{Value: e}
		}
		return 0, &DuplicateIDError{ID: id}
	}
	at := v.Len()
	v.insertAt(id, e, at)
	return at, nil
}

// RemoveByID removes and returns the element with the given id. Absence is
// not an error: the collection is left unchanged and ok is false.
func (v *Vec[ID, E]) RemoveByID(id ID) (E, bool) {
	i := slices.Index(v.order, id)
	if i < 0 {
		var zero E
		return zero, false
	}
	e := v.store[id]
	delete(v.store, id)
	v.order = slices.Delete(v.order, i, i+1)
	return e, true
}

// Remove removes and returns the stored element with the same id as e.
func (v *Vec[ID, E]) Remove(e E) (E, bool) {
	return v.RemoveByID(v.idOf(e))
}

// RemoveAt removes and returns the element at position i, shifting later
// elements left. Panics if i is out of bounds.
func (v *Vec[ID, E]) RemoveAt(i int) E {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("identified: index %d out of range for length %d", i, v.Len()))
	}
	id := v.order[i]
	e := v.store[id]
	delete(v.store, id)
	v.order = slices.Delete(v.order, i, i+1)
	return e
}

// RemoveAtOffsets removes the elements at the given positions, interpreted
// against the layout before this call: each offset is reduced by the
// number of removals already performed, so ascending input removes exactly
// the named original positions. Unsorted input gets the same compensation
// arithmetic applied in the order given, which is rarely what you want —
// pass offsets in ascending order.
func (v *Vec[ID, E]) RemoveAtOffsets(offsets ...int) {
	removed := 0
	for _, off := range offsets {
		v.RemoveAt(off - removed)
		removed++
	}
}

// String renders the elements in insertion order as a bracketed list.
func (v *Vec[ID, E]) String() string {
	return fmt.Sprint(v.Elements())
}

func (v *Vec[ID, E]) insertAt(id ID, e E, at int) {
	if at < 0 || at > len(v.order) {
		panic(fmt.Sprintf("identified: insert index %d out of range for length %d", at, len(v.order)))
	}
	v.order = slices.Insert(v.order, at, id)
	v.store[id] = e
}
