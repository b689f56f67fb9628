package internal

import "github.com/pkg/errors"

// Geometry never makes the pipeline fail. The one thing that can go wrong is
// an index buffer that doesn't match its positions, and that panics with a
// MeshError which the public API recovers into an error.

type MeshError struct {
	error
}

// Panic with a MeshError.
func fatalf(format string, args ...interface{}) {
	panic(MeshError{errors.Errorf(format, args...)})
}

// Convert a recovered MeshError back into an error. Anything else is a real
// panic and is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if meshError, ok := r.(MeshError); ok {
			return meshError.error
		}
		panic(r)
	}
	return nil
}
