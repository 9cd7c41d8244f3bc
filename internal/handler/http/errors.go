// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingVerificationHeader is returned when webhook verification is
	// enabled and the request carries no Plaid-Verification header.
	ErrMissingVerificationHeader = errors.New("missing `Plaid-Verification` header")

	ErrEmptyBody = errors.New("request body is empty")
)
