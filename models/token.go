package models

import "time"

// Token is an issued session token.
//
// SignedString holds the compact serialized JWT (header.payload.signature)
// ready to be transmitted in the Authorization header. SessionID and Username
// are the parsed "jti" and "sub" claims.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SessionID identifies the server-side session the token is bound to.
	SessionID string `json:"-"`

	// Username is the authenticated user the session belongs to.
	Username string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
