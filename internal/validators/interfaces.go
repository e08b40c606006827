// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the stores and
// providers.
//
// A Validator validates a value as a whole, or only the named fields when
// field names are given. Services wrap the returned errors in their own
// invalid-input sentinel.
package validators

import "context"

// Validator validates input values, optionally restricted to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
