package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a new user cannot be inserted
	// because the username is taken. Concurrent registrations of the same
	// username are serialized by the unique constraint: exactly one wins.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the lookup, and when
	// a caption is saved for an owner that does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query fails for a reason that has
	// no domain meaning.
	ErrExecutingQuery = errors.New("unexpected DB error")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
