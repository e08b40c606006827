package session

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or deleted session IDs.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session outlived its idle TTL.
	ErrSessionExpired = errors.New("session expired")
	// ErrNotAuthenticated is returned by caption operations on an
	// anonymous session.
	ErrNotAuthenticated = errors.New("session is not authenticated")
	// ErrNoActiveCaption is returned when no caption was generated in the
	// session yet.
	ErrNoActiveCaption = errors.New("no active caption")
	// ErrNoCandidates is returned when a generation result is empty.
	ErrNoCandidates = errors.New("no caption candidates")
	// ErrCandidateOutOfRange is returned by Select for an unknown index.
	ErrCandidateOutOfRange = errors.New("candidate index out of range")
	// ErrNothingToCommit is returned when the active caption was already
	// committed and has not been edited since.
	ErrNothingToCommit = errors.New("nothing to commit")
)
