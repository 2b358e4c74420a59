package domain

import "errors"

// Error taxonomy for the session API. Handlers discriminate with errors.Is;
// repositories and services wrap these with context via fmt.Errorf("%w").
var (
	// ErrInvalidRequest marks a request rejected before any store access.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound marks a well-formed session id that resolves to nothing.
	ErrNotFound = errors.New("session not found")

	// ErrInvalidID marks an id that does not satisfy the identifier format.
	// It is reported outward the same as ErrNotFound; the distinction exists
	// for logging.
	ErrInvalidID = errors.New("invalid session id")

	// ErrStoreUnavailable marks a persistence layer failure. Surfaced as an
	// opaque server error, never retried.
	ErrStoreUnavailable = errors.New("session store unavailable")
)
