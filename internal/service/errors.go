package service

import "errors"

var (
	// ErrInvalidInput is returned for empty or malformed user input. It is
	// detected before any store or provider is called.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateUsername is returned by registration when the username is
	// taken, including when a concurrent registration won the race.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrAuthenticationFailed is the only error login reports for bad
	// credentials. Unknown user and wrong password are not distinguished.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrPasswordHashing means no verifier could be produced. No user is
	// stored in that case.
	ErrPasswordHashing = errors.New("password hashing failed")

	ErrGenerationFailed = errors.New("caption generation failed")
	ErrFetchFailed      = errors.New("image fetch failed")
	ErrDecodeFailed     = errors.New("image decode failed")
	ErrPersistFailed    = errors.New("caption could not be saved")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Reasons behind ErrAuthenticationFailed. They are logged, never returned.
var (
	errUserNotFound  = errors.New("user not found")
	errWrongPassword = errors.New("wrong password")
)
