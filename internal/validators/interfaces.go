// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of inputs that reach boa-sync from
// outside: Link page requests, provider webhooks and statement files.
//
// Validation is structural only. Whether an item exists or a token is still
// accepted by the provider is decided by the services.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
// Without fields every rule of the value's type is checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
