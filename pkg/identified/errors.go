package identified

import "fmt"

// NotFoundError is returned when an operation requires an element with a
// given id and none is present.
type NotFoundError struct {
	ID any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("element with id %v not found in collection", e.ID)
}

// DuplicateIDError is returned when an operation requires a new id but an
// element with the same id already exists.
type DuplicateIDError struct {
	ID any
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate element with same id %v found", e.ID)
}

// DuplicateValueError is returned by TryAppendUnique when the collection
// already holds an element equal to the one being appended.
type DuplicateValueError struct {
	Value any
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate element with same value %v found", e.Value)
}

// DuplicateElementError is returned when deserialization encounters two
// elements deriving the same id. Offset is the zero-based position of the
// first duplicate in the input array.
type DuplicateElementError struct {
	Offset int
}

func (e *DuplicateElementError) Error() string {
	return fmt.Sprintf("duplicate element at offset %d", e.Offset)
}
