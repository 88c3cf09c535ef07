package identified

// Identifiable is implemented by element types that know their own id.
type Identifiable[ID comparable] interface {
	ID() ID
}

// Of is a Vec whose identity function is the element's own ID method.
//
// Of embeds Vec, so every Vec operation is promoted onto it. Named
// wrapper types get the same treatment by embedding Of in turn:
//
//	type Users struct {
//		identified.Of[int, User]
//	}
//
// and forward nothing by hand.
type Of[ID comparable, E Identifiable[ID]] struct {
	Vec[ID, E]
}

// NewOf creates an empty Of.
func NewOf[ID comparable, E Identifiable[ID]]() *Of[ID, E] {
	return &Of[ID, E]{Vec: *newByID[ID, E]()}
}

// OfUnique creates an Of from elements assumed to have unique ids; later
// duplicates are silently dropped, like FromUnique.
func OfUnique[ID comparable, E Identifiable[ID]](elems ...E) *Of[ID, E] {
	o := NewOf[ID, E]()
	o.AppendAll(elems...)
	return o
}

// OfCombining creates an Of from a sequence that may contain duplicate
// ids, resolving each conflict with combine.
func OfCombining[ID comparable, E Identifiable[ID]](elems []E, combine CombineFunc[E]) *Of[ID, E] {
	return &Of[ID, E]{Vec: *FromCombining(idByMethod[ID, E](), elems, combine)}
}

// TryOfCombining is the fallible form of OfCombining.
func TryOfCombining[ID comparable, E Identifiable[ID]](elems []E, combine TryCombineFunc[E]) (*Of[ID, E], error) {
	v, err := TryFromCombining(idByMethod[ID, E](), elems, combine)
	if err != nil {
		return nil, err
	}
	return &Of[ID, E]{Vec: *v}, nil
}

// UnmarshalJSON decodes a plain element array, like Vec.UnmarshalJSON,
// but works on a zero-value Of since the identity function comes from the
// element type itself.
func (o *Of[ID, E]) UnmarshalJSON(data []byte) error {
	if o.idOf == nil {
		o.Vec = *newByID[ID, E]()
	}
	return o.Vec.UnmarshalJSON(data)
}

func newByID[ID comparable, E Identifiable[ID]]() *Vec[ID, E] {
	return New(idByMethod[ID, E]())
}

func idByMethod[ID comparable, E Identifiable[ID]]() IDFunc[ID, E] {
	return func(e E) ID { return e.ID() }
}
