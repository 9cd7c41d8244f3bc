// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [GetConfig] and [Plaid.Validate].
var (
	// ErrMissingPlaidCredentials indicates that PLAID_CLIENT_ID or
	// PLAID_SECRET is not set for a command that talks to the provider.
	ErrMissingPlaidCredentials = errors.New("missing Plaid credentials: set PLAID_CLIENT_ID and PLAID_SECRET")
	// ErrInvalidPlaidEnvironment indicates a PLAID_ENV outside
	// sandbox/development/production.
	ErrInvalidPlaidEnvironment = errors.New("invalid Plaid environment")
	// ErrInvalidPlaidBaseURL indicates a PLAID_BASE_URL that cannot be parsed
	// or names the Plaid host of a different environment.
	ErrInvalidPlaidBaseURL = errors.New("invalid Plaid base URL")
	// ErrInvalidStoragePolicy indicates an unknown items file policy.
	ErrInvalidStoragePolicy = errors.New("invalid storage policy")
	// ErrNegativeDuration indicates a negative timeout or interval.
	ErrNegativeDuration = errors.New("durations must not be negative")
)
