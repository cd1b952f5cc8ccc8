package router

import "errors"

var (
	// ErrAmbiguous marks model output that names neither label.
	ErrAmbiguous = errors.New("classification ambiguous")

	// ErrBackendPanic marks a backend call that panicked.
	ErrBackendPanic = errors.New("backend panicked")
)
