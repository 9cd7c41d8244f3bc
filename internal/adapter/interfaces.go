// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the Plaid HTTP API.
//
// [PlaidGateway] is a stateless translator between domain calls and provider
// requests: it never persists anything and never retries. Provider failures
// come back as *[PlaidError], which matches the sentinels in errors.go via
// [errors.Is] (for example [ErrItemLoginRequired] or [ErrRateLimitExceeded]),
// so callers can decide between prompting a re-link and giving up.
package adapter

import (
	"context"

	"github.com/boasync/boa-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/plaid_gateway_mock.go -package=mock

// PlaidGateway is the set of provider calls boa-sync makes.
type PlaidGateway interface {
	// CreateLinkToken starts a Link session. Empty product, country and
	// language fields fall back to the configured defaults. Webhook and
	// redirect URLs from req win over the configured ones.
	CreateLinkToken(ctx context.Context, req models.LinkTokenRequest) (models.LinkToken, error)

	// CreateUpdateLinkToken starts Link in update mode for an existing item,
	// used to repair an item whose login expired.
	CreateUpdateLinkToken(ctx context.Context, userID, accessToken string) (models.LinkToken, error)

	// ExchangePublicToken trades the short-lived public token produced by Link
	// for the item's permanent access token. The result must be persisted
	// immediately.
	ExchangePublicToken(ctx context.Context, publicToken string) (models.TokenExchange, error)

	// GetItem returns the provider's view of an item. Safe to call repeatedly.
	GetItem(ctx context.Context, accessToken string) (models.ItemDetails, error)

	// RemoveItem invalidates accessToken at the provider. Deleting the local
	// record is the caller's job.
	RemoveItem(ctx context.Context, accessToken string) (models.ItemRemoval, error)

	// GetInstitution returns metadata about a bank. Empty countryCodes fall
	// back to the configured defaults.
	GetInstitution(ctx context.Context, institutionID string, countryCodes []string) (models.Institution, error)

	// CreateSandboxPublicToken mints a public token without the Link UI. It
	// returns [ErrSandboxOnly] outside the sandbox environment.
	CreateSandboxPublicToken(ctx context.Context, institutionID string, products []string) (models.SandboxPublicToken, error)

	// GetAccounts lists the accounts of an item with cached balances.
	GetAccounts(ctx context.Context, accessToken string) ([]models.Account, error)

	// SyncTransactions fetches one page of the incremental transactions feed
	// starting at cursor. An empty cursor starts from the beginning of the
	// item's history.
	SyncTransactions(ctx context.Context, accessToken, cursor string, count int) (models.TransactionsSyncPage, error)

	// GetWebhookVerificationKey fetches the public key that signed a webhook.
	GetWebhookVerificationKey(ctx context.Context, keyID string) (models.WebhookVerificationKey, error)
}
