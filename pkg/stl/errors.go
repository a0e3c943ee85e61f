package stl

import (
	"errors"
	"fmt"
)

// Codec errors. Use errors.Is to match them; the concrete error types below
// carry the byte and value counts.
var (
	ErrTruncatedInput      = errors.New("truncated STL data")
	ErrMalformedGeometry   = errors.New("malformed STL geometry")
	ErrVertexCountMismatch = errors.New("vertex buffer length does not match triangle count")
)

// TruncatedInputError reports a binary buffer shorter than its header promises.
type TruncatedInputError struct {
	Expected int64
	Actual   int64
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated STL data: expected at least %d bytes, got %d", e.Expected, e.Actual)
}

func (e *TruncatedInputError) Unwrap() error {
	return ErrTruncatedInput
}

// MalformedGeometryError reports an ASCII file whose vertex coordinates do not
// form whole triangles.
type MalformedGeometryError struct {
	Values int
}

func (e *MalformedGeometryError) Error() string {
	return fmt.Sprintf("malformed STL geometry: %d vertex coordinates is not a multiple of %d (incomplete triangle)", e.Values, 9)
}

func (e *MalformedGeometryError) Unwrap() error {
	return ErrMalformedGeometry
}
