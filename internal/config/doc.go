// Package config provides configuration loading, merging, and validation
// for the captioner service.
//
// Configuration is assembled from several sources, each overriding the
// non-zero fields of the previous one:
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables (optionally seeded from a .env file)
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
