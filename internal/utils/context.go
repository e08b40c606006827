// Package utils provides general-purpose helpers used across the service:
// typed context keys, JSON response writing, the resty HTTP client wrapper,
// session token handling and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-captioner/internal/session"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key the session middleware stores the acquired
// *session.Session under.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, sess)
}

// GetSessionFromContext retrieves the session stored by [WithSession].
// ok is false when no session is attached.
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionCtxKey).(*session.Session)
	return sess, ok && sess != nil
}
