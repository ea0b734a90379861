package geom

import "github.com/pkg/errors"

// Invalid construction (zero direction vectors, coincident points, empty point
// sets) is a programmer error, and threading errors through every constructor
// and every intersection that builds new geometry would bury the algorithms.
// Instead, the kernel panics with a KernelError, and the public API in the
// root package recovers to convert it to an error.

type KernelError struct {
	error
}

func (e KernelError) Unwrap() error {
	return e.error
}

// Panic with a KernelError.
func fatalf(format string, args ...interface{}) {
	panic(KernelError{errors.Errorf(format, args...)})
}

// Convert a recovered KernelError back to its error. Anything else, runtime
// errors included, is re-panicked.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if kernelError, ok := r.(KernelError); ok {
			return kernelError.error
		}
		panic(r)
	}
	return nil
}
