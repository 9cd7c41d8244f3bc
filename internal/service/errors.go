// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/boasync/boa-sync/internal/adapter"
	"github.com/boasync/boa-sync/models"
)

var (
	// ErrItemNeedsAttention is returned when sync is requested for an item
	// that must be re-linked or is being removed.
	ErrItemNeedsAttention = errors.New("item needs attention before it can be synced")

	ErrEmptyPublicToken   = errors.New("public token is empty")
	ErrInvalidStatement   = errors.New("invalid statement")
	ErrNoMatchingAccount  = errors.New("no synced account matches the statement")
	ErrLedgerNotAvailable = errors.New("ledger database is not configured")
)

// statusForError maps a provider failure to the item status it implies. ok
// is false for failures that say nothing about the item itself.
func statusForError(err error) (status models.ItemStatus, ok bool) {
	switch {
	case errors.Is(err, adapter.ErrItemLoginRequired):
		return models.ItemStatusRequiresReauth, true
	case adapter.IsItemError(err):
		return models.ItemStatusError, true
	}
	return "", false
}

// statusForProviderError maps the error object attached to an item or a
// webhook. A nil error means the item is healthy.
func statusForProviderError(perr *models.ProviderError) models.ItemStatus {
	if perr == nil {
		return models.ItemStatusActive
	}
	if status, ok := statusForError(&adapter.PlaidError{ProviderError: *perr}); ok {
		return status
	}
	return models.ItemStatusError
}
