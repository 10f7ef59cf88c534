package catalog

import "errors"

var (
	// ErrIncompleteResource blocks toggling a resource to active while its
	// required dimensions are still unset.
	ErrIncompleteResource = errors.New("resource is missing required dimensions, complete it before enabling")

	// ErrNotDeletable protects carrier catalog entries. A pure PROVIDER
	// resource can only be deactivated, the next sync would bring it back
	// anyway.
	ErrNotDeletable = errors.New("provider catalog resources cannot be deleted, only deactivated")

	// ErrEmptyCatalog guards the merge. A failed carrier fetch must be
	// surfaced as an error by the caller, never passed down here as an empty
	// catalog (that would look identical to "the carrier removed everything").
	ErrEmptyCatalog = errors.New("refusing to sync an empty provider catalog")
)
