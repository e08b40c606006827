// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-captioner service. It aggregates all sub-configurations and is
// populated by merging defaults, an optional config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address, timeouts and session lifetime.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the caption/translation provider endpoints and the
	// per-call timeouts of every external call.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Captions controls the diversification engine.
	Captions Captions `envPrefix:"CAPTIONS_"`

	// Translation controls the translation fan-out.
	Translation Translation `envPrefix:"TRANSLATION_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// The format is chosen by the file extension.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// PasswordHashTime, PasswordHashMemory (KiB) and PasswordHashThreads are
	// the argon2id cost parameters applied to new password verifiers.
	PasswordHashTime    uint32 `env:"PASSWORD_HASH_TIME"`
	PasswordHashMemory  uint32 `env:"PASSWORD_HASH_MEMORY"`
	PasswordHashThreads uint8  `env:"PASSWORD_HASH_THREADS"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: "postgres://" and "postgresql://" URLs open
	// PostgreSQL, anything else is treated as a SQLite file path
	// (":memory:" included).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// SessionTTL is the idle lifetime of a session.
	// Env: SERVER_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// MaxUploadSize caps the multipart body of an image upload, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter holds settings for the outbound provider integrations.
type Adapter struct {
	// CaptionURL is the base URL of the caption model provider.
	// Env: ADAPTER_CAPTION_URL
	CaptionURL string `env:"CAPTION_URL"`

	// TranslationURL is the base URL of the translation provider.
	// Env: ADAPTER_TRANSLATION_URL
	TranslationURL string `env:"TRANSLATION_URL"`

	// CaptionTimeout bounds one caption generation call.
	// Env: ADAPTER_CAPTION_TIMEOUT
	CaptionTimeout time.Duration `env:"CAPTION_TIMEOUT"`

	// TranslationTimeout bounds one per-language translation call.
	// Env: ADAPTER_TRANSLATION_TIMEOUT
	TranslationTimeout time.Duration `env:"TRANSLATION_TIMEOUT"`

	// FetchTimeout bounds the download of an image by URL.
	// Env: ADAPTER_FETCH_TIMEOUT
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT"`

	// RetryCount is the number of resty retries on transport errors.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// MaxImageBytes caps the size of a fetched image.
	// Env: ADAPTER_MAX_IMAGE_BYTES
	MaxImageBytes int64 `env:"MAX_IMAGE_BYTES"`

	// MaxImagePixels caps width*height of a decoded image, uploaded or fetched.
	// Env: ADAPTER_MAX_IMAGE_PIXELS
	MaxImagePixels int64 `env:"MAX_IMAGE_PIXELS"`
}

// Captions configures the caption diversification engine.
type Captions struct {
	// Variants is the number of noisy generation attempts (N).
	// Env: CAPTIONS_VARIANTS
	Variants int `env:"VARIANTS"`

	// Concurrency limits how many noisy attempts run at once.
	// Env: CAPTIONS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Translation configures the translation fan-out.
type Translation struct {
	// BaseLanguage is the language captions are generated in.
	// Env: TRANSLATION_BASE_LANGUAGE
	BaseLanguage string `env:"BASE_LANGUAGE"`

	// Languages is the list of codes offered to clients.
	// Env: TRANSLATION_LANGUAGES (comma separated)
	Languages []string `env:"LANGUAGES" envSeparator:","`

	// Concurrency limits how many per-language calls run at once.
	// Env: TRANSLATION_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the service
// configuration. Sources are applied in the following order, each one
// overriding the non-zero fields of the previous ones:
//  1. Built-in defaults
//  2. JSON or YAML file (path resolved from env and flags)
//  3. Environment variables (a .env file in the working directory is
//     loaded first, without overriding variables already set)
//  4. Command-line flags
//
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags(args).
		withFile().
		build()
}
