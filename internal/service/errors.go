package service

import "errors"

// Domain errors surfaced by the services. Handlers translate these to
// status codes; anything else is treated as an internal store failure.
var (
	// ErrNotFound means no article matches the given identifier
	ErrNotFound = errors.New("news not found")

	// ErrAuthorNotFound means the article's author reference does not
	// resolve to a user; reads fail closed instead of projecting a
	// dangling reference
	ErrAuthorNotFound = errors.New("news author not found")

	// ErrEmptyUpdate means an update carried no fields to apply
	ErrEmptyUpdate = errors.New("no fields to update")
)
