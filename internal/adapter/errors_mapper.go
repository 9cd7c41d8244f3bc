// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/boasync/boa-sync/models"
	"github.com/go-resty/resty/v2"
)

// Provider error types and codes interpreted by [PlaidError.Is].
const (
	errorTypeItem        = "ITEM_ERROR"
	errorTypeRateLimit   = "RATE_LIMIT_EXCEEDED"
	errorTypeInstitution = "INSTITUTION_ERROR"

	codeItemLoginRequired     = "ITEM_LOGIN_REQUIRED"
	codeInvalidAccessToken    = "INVALID_ACCESS_TOKEN"
	codeInvalidPublicToken    = "INVALID_PUBLIC_TOKEN"
	codeItemNotFound          = "ITEM_NOT_FOUND"
	codeMutationDuringPaging  = "TRANSACTIONS_SYNC_MUTATION_DURING_PAGINATION"
	codeInstitutionDown       = "INSTITUTION_DOWN"
	codeInstitutionNotRespond = "INSTITUTION_NOT_RESPONDING"
)

// PlaidError is a structured error reported by the provider. It carries the
// provider's code and message unchanged.
type PlaidError struct {
	StatusCode int
	models.ProviderError
}

// Error implements error.
func (e *PlaidError) Error() string {
	msg := fmt.Sprintf("plaid %s (%s): %s", e.ErrorCode, e.ErrorType, e.ErrorMessage)
	if e.RequestID != "" {
		msg += " [request_id " + e.RequestID + "]"
	}
	return msg
}

// Is lets errors.Is match a provider error against the package sentinels.
func (e *PlaidError) Is(target error) bool {
	switch target {
	case ErrItemLoginRequired:
		return e.ErrorCode == codeItemLoginRequired
	case ErrRateLimitExceeded:
		return e.ErrorType == errorTypeRateLimit || e.StatusCode == http.StatusTooManyRequests
	case ErrInvalidAccessToken:
		return e.ErrorCode == codeInvalidAccessToken
	case ErrInvalidPublicToken:
		return e.ErrorCode == codeInvalidPublicToken
	case ErrProviderItemNotFound:
		return e.ErrorCode == codeItemNotFound
	case ErrSyncMutationDuringPagination:
		return e.ErrorCode == codeMutationDuringPaging
	case ErrInstitutionDown:
		return e.ErrorType == errorTypeInstitution ||
			e.ErrorCode == codeInstitutionDown ||
			e.ErrorCode == codeInstitutionNotRespond
	}
	return target != nil && target == statusError(e.StatusCode)
}

// IsItemError reports whether err is an item-level provider error, meaning
// the item itself needs attention rather than the request.
func IsItemError(err error) bool {
	var pErr *PlaidError
	return errors.As(err, &pErr) && pErr.ErrorType == errorTypeItem
}

// AsPlaidError extracts the provider error from err.
func AsPlaidError(err error) (*PlaidError, bool) {
	var pErr *PlaidError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// mapPlaidError turns a non-2xx response into an error. Bodies carrying a
// provider error object become *PlaidError; anything else is mapped by status.
func mapPlaidError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var perr models.ProviderError
	if err := json.Unmarshal(resp.Body(), &perr); err == nil && perr.ErrorCode != "" {
		return &PlaidError{StatusCode: resp.StatusCode(), ProviderError: perr}
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))

	if sentinel := statusError(resp.StatusCode()); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

func statusError(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	}
	return nil
}
