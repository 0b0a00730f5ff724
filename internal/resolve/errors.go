package resolve

import "errors"

// Failure taxonomy. Everything is recovered at the resolver boundary and
// surfaced as a tagged Result; nothing here propagates past the router.
var (
	ErrValidation = errors.New("validation")
	ErrDuplicate  = errors.New("duplicate")
	ErrReference  = errors.New("reference")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage")
)
