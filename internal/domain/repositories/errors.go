package repositories

import "errors"

var (
	// ErrDuplicate reports a unique-constraint violation, e.g. a second
	// user with the same (username, site) pair.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidCursor reports a pagination cursor that does not point at
	// an existing record.
	ErrInvalidCursor = errors.New("invalid cursor")
)
