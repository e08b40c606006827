package adapter

import "errors"

// Provider failure kinds. Every error returned by this package wraps exactly
// one of them so callers can branch with errors.Is.
var (
	ErrGeneration           = errors.New("caption generation failed")
	ErrTranslation          = errors.New("translation failed")
	ErrFetch                = errors.New("image fetch failed")
	ErrDecode               = errors.New("image decode failed")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrImageTooLarge        = errors.New("image too large")
	ErrInvalidImageURL      = errors.New("invalid image url")
)

// Upstream HTTP status errors, wrapped alongside the failure kind.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("provider unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)
