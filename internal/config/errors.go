package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token settings or an unusable
	// password hashing cost.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing address or non-positive
	// timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates missing provider URLs or
	// non-positive call timeouts.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCaptionConfigs indicates a negative variant count or a
	// non-positive concurrency limit.
	ErrInvalidCaptionConfigs = errors.New("invalid captions configuration")
	// ErrInvalidTranslationConfigs indicates an unparsable base language or
	// an empty language list.
	ErrInvalidTranslationConfigs = errors.New("invalid translation configuration")
)
