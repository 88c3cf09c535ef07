package identified

import (
	"encoding/json"
	"errors"
)

// MarshalJSON encodes the collection as a plain array of elements in
// insertion order. Ids are never serialized; they are re-derived on
// decode.
func (v *Vec[ID, E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Elements())
}

// UnmarshalJSON decodes a plain array of elements, deriving each id with
// the collection's identity function. A duplicate derived id fails with a
// *DuplicateElementError naming the zero-based offset of the first
// duplicate; nothing is silently deduplicated. The receiver must have
// been constructed with New (or one of the other constructors) so an
// identity function is available. On any error the receiver is left
// unchanged.
func (v *Vec[ID, E]) UnmarshalJSON(data []byte) error {
	if v.idOf == nil {
		return errors.New("identified: cannot unmarshal into a Vec without an identity function")
	}
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	rebuilt, err := TryFromCombining(v.idOf, elems, func(n int, _, _ E) (Choice, error) {
		return KeepExisting, &DuplicateElementError{Offset: n}
	})
	if err != nil {
		return err
	}
	v.order = rebuilt.order
	v.store = rebuilt.store
	return nil
}
