// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service orchestrates the item store, the ledger and the Plaid
// gateway into the operations exposed by the CLI and the link server.
package service

import (
	"context"
	"time"

	"github.com/boasync/boa-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ItemService manages the link lifecycle of items.
type ItemService interface {
	// CreateLinkToken starts a Link session for userID. An empty userID gets a
	// generated one.
	CreateLinkToken(ctx context.Context, userID string, products []string) (models.LinkToken, error)

	// CreateUpdateLinkToken starts Link in update mode for a stored item.
	CreateUpdateLinkToken(ctx context.Context, itemID string) (models.LinkToken, error)

	// Link exchanges publicToken and stores the new item right away, active
	// and with an empty cursor. Institution details are filled in afterwards
	// on a best-effort basis.
	Link(ctx context.Context, publicToken, userID string) (models.Item, error)

	// SandboxLink creates and links a sandbox item without the Link UI.
	SandboxLink(ctx context.Context, institutionID string, products []string, userID string) (models.Item, error)

	// Status asks the provider about an item and aligns the local status.
	Status(ctx context.Context, itemID string) (models.ItemStatusReport, error)

	// Remove invalidates the item at the provider and then deletes the local
	// record together with its ledger rows.
	Remove(ctx context.Context, itemID string) error

	// List returns the items of userID, or every item for an empty userID.
	List(ctx context.Context, userID string) []models.Item
}

// SyncService pulls transactions for items into the ledger, advancing the
// stored cursor after every page.
type SyncService interface {
	SyncItem(ctx context.Context, itemID string, opts models.SyncOptions) (models.SyncResult, error)
	SyncAll(ctx context.Context, opts models.SyncOptions) []models.SyncResult
}

// SyncJob runs [SyncService.SyncAll] periodically and single-item syncs on
// demand.
type SyncJob interface {
	// Start launches the job. A non-positive interval disables the periodic
	// run; triggers still work.
	Start(ctx context.Context, interval time.Duration)
	// Stop cancels the job and waits for the running sync to return.
	Stop()
	// Trigger queues a sync of itemID. It reports false when the queue is
	// full.
	Trigger(itemID string) bool
}

// ReconcileService cross-references a parsed statement with synced
// transactions.
type ReconcileService interface {
	Reconcile(ctx context.Context, itemID string, statement models.Statement, opts models.ReconcileOptions) (models.ReconcileReport, error)
}

// WebhookService reacts to provider webhooks.
type WebhookService interface {
	HandleWebhook(ctx context.Context, hook models.Webhook) error
}
