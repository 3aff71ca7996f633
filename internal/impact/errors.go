package impact

import "errors"

var (
	// ErrUnknownComposition indicates a composition name missing from the registry.
	ErrUnknownComposition = errors.New("impact: unknown composition")

	// ErrDuplicateComposition indicates a second registration under the same name.
	ErrDuplicateComposition = errors.New("impact: composition already registered")
)
