// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the session middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the session middleware when
	// the incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrSessionMismatch is returned when a valid token names a session that
	// is held by a different user or is no longer authenticated.
	ErrSessionMismatch = errors.New("token does not match session")
)

// Messages shown to the user.
const (
	msgSignupSuccess       = "Signup successful! You can now login."
	msgSignupFieldsMissing = "All fields are required for signup."
	msgUsernameTaken       = "Username already exists. Please choose a different username."
	msgLoginSuccess        = "Login successful!"
	msgLoginFieldsMissing  = "Username and password are required for login."
	msgLoginFailed         = "Login failed. Invalid username or password."
	msgLoginRequired       = "Please login to access this feature."
	msgLogoutSuccess       = "Logged out."
	msgInvalidJSON         = "Invalid JSON was passed"
	msgNoImage             = "Please provide an image URL or upload an image."
	msgNotFound            = "Not found."
	msgGenerationFailed    = "Caption generation failed. Please try again."
	msgFetchFailed         = "Could not download the image. Please check the URL and try again."
	msgDecodeFailed        = "Could not read the image. Please use a JPG or PNG file of reasonable size."
)
