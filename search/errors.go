package search

import "errors"

var (
	// ErrUnknownMode indicates a mode name that maps to no search.
	ErrUnknownMode = errors.New("search: unknown mode")
	// ErrBadWorkers indicates a negative worker count for a parallel search.
	ErrBadWorkers = errors.New("search: workers must be >= 0")
)
