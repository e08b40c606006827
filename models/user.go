package models

import "time"

// Role is the access level stored with every user record.
type Role string

const (
	// RoleUser is assigned to every account created through registration.
	RoleUser Role = "user"

	// RoleAdmin is reserved. Nothing in the service grants or checks it yet.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database and never exposed via JSON.
	UserID int64 `json:"-"`

	// Username is the unique user name chosen at registration.
	Username string `json:"username"`

	// PasswordVerifier is the salted one-way verifier of the user's password.
	// It is never a plaintext password and never leaves the server.
	PasswordVerifier string `json:"-"`

	// Email is the contact address given at registration.
	Email string `json:"email"`

	// Role is the access level of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the plaintext input of registration and login.
// Email is only used by registration.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}
