// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// HTTP-class errors, matched by status code when the provider body carries no
// structured error.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Provider errors, matched against the error_type / error_code of a
// *[PlaidError].
var (
	// ErrItemLoginRequired means the user must re-authenticate through Link
	// in update mode. Consent expiry and revoked credentials end up here.
	ErrItemLoginRequired = errors.New("item login required")

	// ErrRateLimitExceeded is returned for RATE_LIMIT_EXCEEDED errors and for
	// HTTP 429.
	ErrRateLimitExceeded = errors.New("provider rate limit exceeded")

	// ErrInvalidAccessToken means the access token is unknown or was removed.
	ErrInvalidAccessToken = errors.New("invalid access token")

	// ErrInvalidPublicToken means the public token expired or was already
	// exchanged.
	ErrInvalidPublicToken = errors.New("invalid public token")

	// ErrInstitutionDown covers institution outages.
	ErrInstitutionDown = errors.New("institution is not available")

	// ErrSyncMutationDuringPagination means the transaction feed changed
	// while pages were being fetched. Pagination must restart from the last
	// committed cursor.
	ErrSyncMutationDuringPagination = errors.New("transactions changed during pagination")

	// ErrProviderItemNotFound means the provider no longer knows the item.
	ErrProviderItemNotFound = errors.New("item not found at provider")
)

var (
	// ErrSandboxOnly is returned by sandbox helpers against any other
	// environment.
	ErrSandboxOnly = errors.New("operation is only available in the sandbox environment")

	// ErrMissingUserID is returned when a link token is requested without a
	// client user id.
	ErrMissingUserID = errors.New("user id is required")

	// ErrMissingAccessToken is returned when a call needs an access token and
	// got none.
	ErrMissingAccessToken = errors.New("access token is required")

	// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
	ErrDecodingResponse = errors.New("error decoding provider response")
)

// ErrInvalidWebhook is returned when a webhook fails signature, age or body
// hash verification.
var ErrInvalidWebhook = errors.New("webhook verification failed")
