// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ItemStatus describes whether a linked bank connection can be synced.
type ItemStatus string

const (
	// ItemStatusActive marks an item that is healthy and may be synced.
	ItemStatusActive ItemStatus = "active"

	// ItemStatusError marks an item whose last provider call reported an
	// item-level error other than a login problem.
	ItemStatusError ItemStatus = "error"

	// ItemStatusRequiresReauth marks an item whose credentials expired or were
	// revoked at the institution. The user must go through Link in update mode
	// before sync is attempted again.
	ItemStatusRequiresReauth ItemStatus = "requires_reauth"

	// ItemStatusPendingRemoval marks an item that the owner asked to
	// disconnect but whose provider-side removal has not completed yet.
	ItemStatusPendingRemoval ItemStatus = "pending_removal"
)

// Valid reports whether s is one of the known statuses.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusActive, ItemStatusError, ItemStatusRequiresReauth, ItemStatusPendingRemoval:
		return true
	}
	return false
}

// Syncable reports whether sync may be attempted for an item in status s.
func (s ItemStatus) Syncable() bool {
	return s == ItemStatusActive || s == ItemStatusError
}

// Item is the locally cached record of one linked bank connection.
//
// The JSON tags define the on-disk layout of the items file: an object keyed
// by item id whose values are Item records. The access token is stored in
// plaintext, so the file must stay readable by its owner only.
type Item struct {
	// ItemID is the provider-issued identifier of the connection. It is stable
	// for the lifetime of the link and is the primary key of the store.
	ItemID string `json:"itemId"`

	// AccessToken is the long-lived secret authorizing provider calls for this
	// item. It is set once at creation and never changes afterwards.
	AccessToken string `json:"accessToken"`

	// InstitutionID identifies the bank behind the item. Optional.
	InstitutionID string `json:"institutionId,omitempty"`

	// InstitutionName is the human-readable bank name. Optional.
	InstitutionName string `json:"institutionName,omitempty"`

	// UserID is the owning application user. Several items may share it.
	UserID string `json:"userId,omitempty"`

	// Status drives whether sync should be attempted.
	Status ItemStatus `json:"status"`

	// SyncCursor marks how much transaction history has been consumed from
	// the provider. Empty means sync from the beginning.
	SyncCursor string `json:"syncCursor,omitempty"`

	// LastSyncAt is set whenever the sync cursor is advanced.
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`

	// CreatedAt is set once when the item is first saved.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt changes on every mutation of the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// ItemUpdate carries a partial update of an [Item]. Nil fields are left
// untouched. The access token and creation time are deliberately absent.
type ItemUpdate struct {
	InstitutionID   *string
	InstitutionName *string
	UserID          *string
	Status          *ItemStatus
	SyncCursor      *string
	LastSyncAt      *time.Time
}

// ItemStatusReport pairs the local record with the provider's current view
// of the item.
type ItemStatusReport struct {
	Item     Item        `json:"item"`
	Provider ItemDetails `json:"provider"`

	// Changed is set when the local status was updated to match the provider.
	Changed bool `json:"changed"`
}
