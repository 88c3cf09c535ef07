package identified

// Choice selects which of two same-id elements survives a conflict during
// bulk construction.
type Choice int

const (
	// KeepExisting keeps the element already in the collection.
	KeepExisting Choice = iota
	// KeepNew replaces the stored value with the incoming element. The
	// id keeps the position of its first occurrence; only the value
	// changes.
	KeepNew
)

// CombineFunc decides a conflict between two elements with the same id.
// n is the number of distinct ids seen so far, which is also the position
// the incoming element would have been appended at.
type CombineFunc[E any] func(n int, existing, incoming E) Choice

// TryCombineFunc is like CombineFunc but may refuse to choose, aborting
// the construction with its error.
type TryCombineFunc[E any] func(n int, existing, incoming E) (Choice, error)

// FromCombining creates a Vec from a sequence that may contain duplicate
// ids, calling combine for each conflict. Expected O(n) for n elements.
func FromCombining[ID comparable, E any](idOf IDFunc[ID, E], elems []E, combine CombineFunc[E]) *Vec[ID, E] {
	v, err := TryFromCombining(idOf, elems, func(n int, existing, incoming E) (Choice, error) {
		return combine(n, existing, incoming), nil
	})
	if err != nil {
		panic("identified: infallible combine returned an error")
	}
	return v
}

// TryFromCombining is like FromCombining but aborts on the first error
// returned by combine. No partially built collection is returned.
func TryFromCombining[ID comparable, E any](idOf IDFunc[ID, E], elems []E, combine TryCombineFunc[E]) (*Vec[ID, E], error) {
	v := New(idOf)
	for _, e := range elems {
		id := idOf(e)
		existing, ok := v.store[id]
		if !ok {
			v.order = append(v.order, id)
			v.store[id] = e
			continue
		}
		choice, err := combine(len(v.order), existing, e)
		if err != nil {
			return nil, err
		}
		if choice == KeepNew {
			v.store[id] = e
		}
	}
	return v, nil
}
